package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/apsp/dijkstra"
	"github.com/katalvlaran/apsp/floydwarshall"
	"github.com/katalvlaran/apsp/graphio"
	"github.com/katalvlaran/apsp/render"
)

// solveFlags are shared by solve and demo.
type solveFlags struct {
	plain     bool
	workers   int
	verify    bool
	verifyMax int64
}

func (c *CLI) addSolveFlags(cmd *cobra.Command, f *solveFlags) {
	cmd.Flags().BoolVar(&f.plain, "plain", false, "unstyled output (overrides config)")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "goroutines per pivot round (overrides config)")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "cross-check every row against Dijkstra (non-negative weights)")
	cmd.Flags().Int64Var(&f.verifyMax, "verify-max", 0, "with --verify, only compare distances up to this value")
}

// verifyOptions turns the --verify-max flag into Dijkstra options.
func verifyOptions(cmd *cobra.Command, f solveFlags) []dijkstra.Option {
	if !cmd.Flags().Changed("verify-max") {
		return nil
	}
	return []dijkstra.Option{dijkstra.WithMaxDistance(f.verifyMax)}
}

// resolve layers explicitly set flags over the config.
func (c *CLI) resolve(cmd *cobra.Command, f solveFlags) (plain bool, workers int) {
	plain, workers = c.Config.Plain, c.Config.Workers
	if cmd.Flags().Changed("plain") {
		plain = f.plain
	}
	if cmd.Flags().Changed("workers") {
		workers = f.workers
	}
	return plain, workers
}

func (c *CLI) solveCommand() *cobra.Command {
	var flags solveFlags

	cmd := &cobra.Command{
		Use:   "solve <graph-file>",
		Short: "Compute all-pairs shortest paths for a graph file",
		Long: `Solve reads a graph (.yaml, .yml, .toml, .txt or .edges) and prints the
distance matrix, the next-hop matrix and whether a negative cycle exists.
A negative cycle is reported, not treated as a failure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			plain, workers := c.resolve(cmd, flags)
			return c.solve(cmd.Context(), cmd.OutOrStdout(), g, plain, workers, flags.verify, verifyOptions(cmd, flags)...)
		},
	}
	c.addSolveFlags(cmd, &flags)

	return cmd
}

func (c *CLI) demoCommand() *cobra.Command {
	var flags solveFlags

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Solve the built-in 5-vertex sample graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plain, workers := c.resolve(cmd, flags)
			return c.solve(cmd.Context(), cmd.OutOrStdout(), sampleGraph(), plain, workers, flags.verify,
				verifyOptions(cmd, flags)...)
		},
	}
	c.addSolveFlags(cmd, &flags)

	return cmd
}

func (c *CLI) pathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path <graph-file> <from> <to>",
		Short: "Print one shortest path and its distance",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("from: %w", err)
			}
			to, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("to: %w", err)
			}
			g, err := c.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.path(cmd.Context(), cmd.OutOrStdout(), g, from, to)
		},
	}
}

// load reads and validates a graph file.
func (c *CLI) load(ctx context.Context, path string) (*graphio.Graph, error) {
	logger := loggerFromContext(ctx)
	g, err := graphio.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded graph", "file", path, "vertices", g.Vertices, "edges", len(g.Edges))

	return g, nil
}

// compute runs the engine with the context, worker count and a per-pivot
// debug hook.
func (c *CLI) compute(ctx context.Context, g *graphio.Graph, workers int) (*floydwarshall.Result, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	res, err := floydwarshall.Compute(g.Vertices, g.Edges,
		floydwarshall.WithContext(ctx),
		floydwarshall.WithWorkers(workers),
		floydwarshall.WithOnPivot(func(k int) {
			logger.Debug("pivot", "k", k, "of", g.Vertices)
		}),
	)
	if err != nil {
		return nil, err
	}
	prog.done("Solved", "vertices", g.Vertices, "edges", len(g.Edges), "workers", workers)
	if res.NegativeCycle {
		logger.Warn("negative cycle detected", "vertices", res.NegativeCycleVertices())
	}

	return res, nil
}

func (c *CLI) solve(ctx context.Context, w io.Writer, g *graphio.Graph, plain bool, workers int,
	verify bool, vopts ...dijkstra.Option) error {
	res, err := c.compute(ctx, g, workers)
	if err != nil {
		return err
	}
	verified := false
	if verify {
		if verified, err = c.verify(ctx, g, res, vopts...); err != nil {
			return err
		}
	}
	if plain {
		return render.Plain(w, res)
	}

	printTitle(w, "Distance Matrix")
	fmt.Fprintln(w, render.Distances(res.Dist))
	printTitle(w, "Next Matrix")
	fmt.Fprintln(w, render.Next(res.Next))
	if res.NegativeCycle {
		printWarning(w, "Negative Cycle: %s", render.YesNo(true))
		printDetail(w, "vertices with negative self-distance: %v", res.NegativeCycleVertices())
		return nil
	}
	printSuccess(w, "Negative Cycle: %s", render.YesNo(false))
	if verified {
		printSuccess(w, "Distances agree with Dijkstra from every source")
	}

	return nil
}

// verify cross-checks res against Dijkstra. Graphs it cannot judge (a
// negative cycle or any negative weight) are skipped with a warning and
// report false.
func (c *CLI) verify(ctx context.Context, g *graphio.Graph, res *floydwarshall.Result, opts ...dijkstra.Option) (bool, error) {
	logger := loggerFromContext(ctx)
	if res.NegativeCycle {
		logger.Warn("skipping verification", "reason", "negative cycle")
		return false, nil
	}

	prog := newProgress(logger)
	err := dijkstra.CrossCheck(ctx, g.Vertices, g.Edges, res.Dist, opts...)
	if errors.Is(err, dijkstra.ErrNegativeWeight) {
		logger.Warn("skipping verification", "reason", "negative weights")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	prog.done("Verified", "sources", g.Vertices)

	return true, nil
}

func (c *CLI) path(ctx context.Context, w io.Writer, g *graphio.Graph, from, to int) error {
	res, err := c.compute(ctx, g, c.Config.Workers)
	if err != nil {
		return err
	}
	p, err := res.Path(from, to)
	if err != nil {
		return err
	}
	d, err := res.Distance(from, to)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s\ndistance: %s\n", render.Path(p), d)
	if res.NegativeCycle {
		printWarning(w, "negative cycle present; path may be unreliable")
	}

	return nil
}

// sampleGraph is the 5-vertex demo graph.
func sampleGraph() *graphio.Graph {
	return &graphio.Graph{
		Vertices: 5,
		Edges: []floydwarshall.Edge{
			{From: 0, To: 1, Weight: 10},
			{From: 0, To: 3, Weight: 5},
			{From: 1, To: 3, Weight: 2},
			{From: 1, To: 2, Weight: 1},
			{From: 2, To: 4, Weight: 4},
			{From: 3, To: 1, Weight: 3},
			{From: 3, To: 2, Weight: 9},
			{From: 3, To: 4, Weight: 2},
			{From: 4, To: 2, Weight: 6},
		},
	}
}
