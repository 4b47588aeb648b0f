// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/negpath/bellmanford"
	"github.com/katalvlaran/negpath/converters"
	"github.com/katalvlaran/negpath/core"
	"github.com/katalvlaran/negpath/dijkstra"
	"github.com/katalvlaran/negpath/graphio"
	"github.com/katalvlaran/negpath/internal/config"
	"github.com/katalvlaran/negpath/internal/ctxlog"
	"github.com/katalvlaran/negpath/johnson"
)

// Graph modes for "run". Directionality is chosen per engine here, never
// inside the engines.
const (
	// ModeLegacy: Dijkstra on the undirected reading of the file,
	// Bellman-Ford and Johnson on the directed one.
	ModeLegacy = "legacy"
	// ModeDirected: every engine on the directed graph.
	ModeDirected = "directed"
	// ModeUndirected: every engine on the undirected graph.
	ModeUndirected = "undirected"
)

type runOptions struct {
	out      string
	mode     string
	frontier string
	workers  int
	verify   bool
}

// engineResult is one engine's answer for the queried pair.
type engineResult struct {
	name    string
	dist    core.Distance
	elapsed time.Duration
	err     error
}

func newRunCommand(cfg *config.Config) *cobra.Command {
	o := runOptions{mode: ModeLegacy, frontier: dijkstra.FrontierHeap.String()}
	cmd := &cobra.Command{
		Use:   "run <graph-file> <source> <dest>",
		Short: "Run all three engines on one query and record their timings",
		Long: `run reads a graph file ("V E" followed by E "u v w" triples), computes the
source→dest distance with Bellman-Ford, Dijkstra and Johnson's algorithm,
prints each answer with its running time, and appends a timing line
"<dijkstra-ms> <bellman-ms> <johnson-ms>    <distance>" to --out.

An engine that fails (negative cycle, negative weight for Dijkstra) is
reported without stopping the others; the command then exits with status 1.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("out") {
				o.out = cfg.TimingsFile
			}
			if !cmd.Flags().Changed("workers") {
				o.workers = cfg.Workers
			}
			src, err := strconv.Atoi(args[1])
			if err != nil {
				return usageError(fmt.Sprintf("invalid source %q", args[1]))
			}
			dst, err := strconv.Atoi(args[2])
			if err != nil {
				return usageError(fmt.Sprintf("invalid destination %q", args[2]))
			}

			return runQuery(cmd.Context(), cmd.OutOrStdout(), args[0], src, dst, o)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.out, "out", "o", "", "Append the timing line to this file")
	f.StringVar(&o.mode, "mode", o.mode, "Graph directionality: legacy, directed or undirected")
	f.StringVar(&o.frontier, "frontier", o.frontier, "Dijkstra frontier: heap or set")
	f.IntVarP(&o.workers, "workers", "w", 1, "Concurrent Dijkstra runs inside Johnson")
	f.BoolVar(&o.verify, "verify", false, "Cross-check Johnson's table against gonum")

	return cmd
}

// graphs returns the graphs used by Dijkstra, Bellman-Ford and Johnson, in
// that order.
func graphs(in *graphio.Input, mode string) (dij, bf, jn *core.Graph, err error) {
	var directed, undirected *core.Graph
	if mode != ModeUndirected {
		if directed, err = in.Directed(); err != nil {
			return nil, nil, nil, err
		}
	}
	if mode != ModeDirected {
		if undirected, err = in.Undirected(); err != nil {
			return nil, nil, nil, err
		}
	}

	switch mode {
	case ModeLegacy:
		return undirected, directed, directed, nil
	case ModeDirected:
		return directed, directed, directed, nil
	case ModeUndirected:
		return undirected, undirected, undirected, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown mode %q", mode)
	}
}

func runQuery(ctx context.Context, w io.Writer, path string, src, dst int, o runOptions) error {
	logger := ctxlog.FromContext(ctx)

	frontier, err := dijkstra.ParseFrontier(o.frontier)
	if err != nil {
		return usageError(fmt.Sprintf("invalid --frontier %q", o.frontier))
	}
	if o.workers < 1 {
		return usageError("--workers must be at least 1")
	}
	switch o.mode {
	case ModeLegacy, ModeDirected, ModeUndirected:
	default:
		return usageError(fmt.Sprintf("invalid --mode %q", o.mode))
	}

	// 1) Load and validate the input.
	in, err := readGraph(path)
	if err != nil {
		return err
	}
	for _, v := range [...]int{src, dst} {
		if v < 0 || v >= in.V {
			return usageError(fmt.Sprintf("vertex %d outside [0, %d)", v, in.V))
		}
	}
	gDij, gBF, gJn, err := graphs(in, o.mode)
	if err != nil {
		return usageError(err.Error())
	}
	logger.Debug("Graph loaded.", "path", path, "vertices", in.V, "edges", len(in.Edges), "mode", o.mode)

	// 2) Run each engine under its own timer.
	bf := timed("Bellman-Ford", func() (core.Distance, error) {
		d, err := bellmanford.ShortestPaths(gBF, src)
		if err != nil {
			return core.Unreached(), err
		}
		return d.At(dst), nil
	})
	dij := timed("Dijkstra", func() (core.Distance, error) {
		d, err := dijkstra.ShortestPaths(gDij, src, dijkstra.WithFrontier(frontier))
		if err != nil {
			return core.Unreached(), err
		}
		return d.At(dst), nil
	})
	var table *johnson.Result
	jn := timed("Johnson", func() (core.Distance, error) {
		res, err := johnson.AllPairs(gJn, johnson.WithWorkers(o.workers), johnson.WithFrontier(frontier))
		if err != nil {
			return core.Unreached(), err
		}
		table = res
		return res.At(src, dst), nil
	})

	// 3) Report.
	failed := false
	for _, r := range []engineResult{bf, dij, jn} {
		printResult(w, r, src, dst)
		if r.err != nil {
			failed = true
			logger.Warn("Engine failed.", "engine", r.name, "error", r.err)
		}
	}
	if table != nil {
		if u, v, d, ok := table.Shortest(); ok {
			fmt.Fprintf(w, "Shortest pair overall: %d → %d, distance %s\n", u, v, d)
		}
	}

	// 4) Optional oracle check.
	if o.verify && table != nil {
		if err = converters.VerifyJohnson(gJn, table); err != nil {
			logger.Error("Verification failed.", "error", err)
			return &ExitError{Code: ExitFailure, Message: err.Error()}
		}
		logger.Info("Johnson table matches gonum.")
	}

	// 5) Timing line; the distance column is Dijkstra's answer.
	if o.out != "" {
		t := graphio.Timings{
			Dijkstra:    dij.elapsed,
			BellmanFord: bf.elapsed,
			Johnson:     jn.elapsed,
			Distance:    dij.dist,
		}
		if err = appendTimings(o.out, t); err != nil {
			return &ExitError{Code: ExitFailure, Message: err.Error()}
		}
		logger.Debug("Timings appended.", "file", o.out, "line", t.String())
	}

	if failed {
		return &ExitError{Code: ExitFailure, Message: "one or more engines failed"}
	}

	return nil
}

func readGraph(path string) (*graphio.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ExitError{Code: ExitFailure, Message: err.Error()}
	}
	defer f.Close()

	in, err := graphio.Read(f)
	if err != nil {
		return nil, usageError(fmt.Sprintf("%s: %v", path, err))
	}

	return in, nil
}

func appendTimings(path string, t graphio.Timings) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if err = graphio.AppendTimings(f, t); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func timed(name string, fn func() (core.Distance, error)) engineResult {
	start := time.Now()
	d, err := fn()

	return engineResult{name: name, dist: d, elapsed: time.Since(start), err: err}
}

func printResult(w io.Writer, r engineResult, src, dst int) {
	label := color.New(color.FgCyan, color.Bold).Sprintf("%-12s", r.name)
	if r.err != nil {
		fmt.Fprintf(w, "%s %s\n", label, color.RedString("error: %v", r.err))
		return
	}
	fmt.Fprintf(w, "%s %d → %d  distance %s  took %s\n", label, src, dst, r.dist, r.elapsed)
}
