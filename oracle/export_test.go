package oracle

// Test bridge: white-box corruption hooks used to reach ErrInvalidGraphState.

// BreakMirrorForTest drops v from u's neighbor set without touching u in v's.
func BreakMirrorForTest(g *Graph, u, v int) { delete(g.adj[u], v) }

// AddSelfLoopForTest inserts u into its own neighbor set.
func AddSelfLoopForTest(g *Graph, u int) { g.adj[u][u] = struct{}{} }

// AddDanglingForTest inserts an out-of-range neighbor into u's set.
func AddDanglingForTest(g *Graph, u, v int) { g.adj[u][v] = struct{}{} }

// TruncateForTest drops the last neighbor set while keeping n.
func TruncateForTest(g *Graph) { g.adj = g.adj[:len(g.adj)-1] }
