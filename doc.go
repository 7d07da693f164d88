// Package eyesclosed discovers random maximal matchings in graphs whose edges
// are visible only through pairwise adjacency queries.
//
// The algorithm is the priority-greedy matching from "Matching with our Eyes
// Closed": draw a uniformly random priority order over the vertices, then let
// every still-free vertex, in that order, commit to its highest-priority free
// neighbor. Edges are never enumerated; they are discovered by asking the
// oracle "are u and v adjacent?".
//
// Packages:
//
//	oracle/   - fixed-size adjacency Graph, the read-only Adjacency contract, query counting
//	matching/ - Compute / ComputeWithOrder, validation, concurrent Sample and Stats
//	generate/ - G(n,p), path, cycle, complete and star graphs for tests and demos
//	edgelist/ - YAML edge-list load/store
//	render/   - Graphviz DOT output of graphs and matchings
//	metrics/  - Prometheus counters and histograms for matching runs
//	cmd/eyesclosed - sampling driver
//
// Quick example:
//
//	g, _ := oracle.NewGraph(4)
//	_ = g.Connect(0, 1)
//	_ = g.Connect(1, 2)
//	_ = g.Connect(2, 3)
//	m, _ := matching.ComputeWithOrder(g, []int{2, 0, 1, 3})
//	fmt.Println(m.Pairs()) // [(2,1)]
//
//	go get github.com/katalvlaran/eyesclosed
package eyesclosed
