// SPDX-License-Identifier: MIT

// Command eyesclosed samples random matchings of a graph through its
// adjacency oracle, validates every draw and reports aggregate statistics.
//
//	eyesclosed --vertices 20 --prob 0.1 --draws 100 --dot match.dot
//	eyesclosed --graph g.yaml --listen :9090
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/eyesclosed/edgelist"
	"github.com/katalvlaran/eyesclosed/generate"
	"github.com/katalvlaran/eyesclosed/matching"
	"github.com/katalvlaran/eyesclosed/metrics"
	"github.com/katalvlaran/eyesclosed/oracle"
	"github.com/katalvlaran/eyesclosed/render"
)

// topEdges is how many of the most frequent matching edges are reported.
const topEdges = 5

// Args are what are used to build the CLI.
type Args struct {
	Vertices int     `arg:"--vertices,env:EYESCLOSED_VERTICES" default:"20" help:"vertex count of the random graph"`
	Prob     float64 `arg:"--prob,env:EYESCLOSED_PROB" default:"0.1" help:"edge probability of the random graph"`
	Seed     int64   `arg:"--seed,env:EYESCLOSED_SEED" default:"1" help:"seed for graph generation and sampling"`
	Draws    int     `arg:"--draws,env:EYESCLOSED_DRAWS" default:"1" help:"number of independent matchings to draw"`
	Workers  int     `arg:"--workers,env:EYESCLOSED_WORKERS" help:"concurrent draws (0 = GOMAXPROCS)"`
	Graph    string  `arg:"--graph,env:EYESCLOSED_GRAPH" help:"YAML edge list to load instead of a random graph"`
	Dot      string  `arg:"--dot" help:"write the first matching as Graphviz DOT to this file"`
	Listen   string  `arg:"--listen,env:EYESCLOSED_LISTEN" help:"serve /metrics on this address until interrupted"`
	Verbose  bool    `arg:"-v,--verbose" help:"debug logging and per-draw output"`
}

// Description is shown at the top of --help.
func (Args) Description() string {
	return "eyesclosed samples random matchings of a graph seen only through adjacency queries\n"
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Main(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "eyesclosed: %v\n", err)
		os.Exit(1)
	}
}

// Main program that returns error.
func Main(ctx context.Context, argv []string, stdout, stderr io.Writer) error {
	var args Args
	parser, err := arg.NewParser(arg.Config{Program: "eyesclosed"}, &args)
	if err != nil {
		// programming error
		return err
	}
	err = parser.Parse(argv)
	if errors.Is(err, arg.ErrHelp) {
		parser.WriteHelp(stdout)
		return nil
	}
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if args.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	g, err := loadGraph(args)
	if err != nil {
		return err
	}
	logger.Info("graph ready", "vertices", g.VertexCount(), "edges", g.EdgeCount(), "source", graphSource(args))

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return err
	}

	counting := oracle.NewCounting(g)
	start := time.Now()
	ms, err := matching.Sample(ctx, counting, args.Draws,
		matching.WithSeed(args.Seed),
		matching.WithWorkers(args.Workers),
		matching.WithOnDraw(func(d matching.Draw) {
			collector.Observe(d.Matching, 0, d.Elapsed)
			logger.Debug("draw", "index", d.Index, "pairs", d.Matching.Len(), "elapsed", d.Elapsed)
		}),
	)
	if err != nil {
		return fmt.Errorf("sample: %w", err)
	}
	collector.OracleQueries.Add(float64(counting.Queries()))

	for i, m := range ms {
		if err := matching.Validate(g, m); err != nil {
			return fmt.Errorf("draw %d: %w", i, err)
		}
		if args.Verbose {
			fmt.Fprintf(stdout, "draw %d: %v\n", i, m.Pairs())
		}
	}
	report(stdout, matching.Summarize(ms), counting.Queries())
	logger.Info("sampling done", "draws", len(ms), "queries", counting.Queries(), "elapsed", time.Since(start))

	if args.Dot != "" {
		if err := writeDot(args.Dot, g, ms); err != nil {
			return err
		}
		logger.Info("wrote dot", "path", args.Dot)
	}

	if args.Listen != "" {
		return serve(ctx, logger, args.Listen, reg)
	}

	return nil
}

func loadGraph(args Args) (*oracle.Graph, error) {
	if args.Graph != "" {
		return edgelist.Load(args.Graph)
	}
	return generate.Random(args.Vertices, args.Prob, rand.New(rand.NewSource(args.Seed)))
}

func graphSource(args Args) string {
	if args.Graph != "" {
		return args.Graph
	}
	return fmt.Sprintf("G(%d,%g)", args.Vertices, args.Prob)
}

func report(w io.Writer, st matching.Stats, queries uint64) {
	fmt.Fprintf(w, "draws:   %d\n", st.Draws)
	fmt.Fprintf(w, "size:    min=%d max=%d mean=%.3f\n", st.MinSize, st.MaxSize, st.MeanSize)
	fmt.Fprintf(w, "queries: %d\n", queries)

	edges := make([]oracle.Edge, 0, len(st.EdgeCounts))
	for e := range st.EdgeCounts {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		ci, cj := st.EdgeCounts[edges[i]], st.EdgeCounts[edges[j]]
		if ci != cj {
			return ci > cj
		}
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
	for i, e := range edges {
		if i == topEdges {
			break
		}
		fmt.Fprintf(w, "edge %-7s %.3f\n", e, st.EdgeFrequency(e))
	}
}

func writeDot(path string, g *oracle.Graph, ms []*matching.Matching) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	if len(ms) == 0 {
		err = render.Graph(f, g, "graph")
	} else {
		err = render.Matching(f, g, ms[0], "matching")
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("dot: %w", err)
	}

	return nil
}

func serve(ctx context.Context, logger *slog.Logger, addr string, reg *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	logger.Info("serving metrics", "addr", addr)

	select {
	case err := <-errc:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
