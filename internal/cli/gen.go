// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/negpath/builder"
	"github.com/katalvlaran/negpath/graphio"
	"github.com/katalvlaran/negpath/internal/ctxlog"
)

type genOptions struct {
	vertices  int
	density   float64
	seed      int64
	spread    int64
	maxWeight int64
	out       string
}

func newGenCommand() *cobra.Command {
	o := genOptions{vertices: 100, density: 0.05, seed: 1, maxWeight: 10}
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random graph file without negative cycles",
		Long: `gen samples a directed graph where every ordered pair is an edge with
probability --density. With --spread > 0 some weights are negative, but no
cycle has negative total weight.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGen(cmd, o)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&o.vertices, "vertices", "n", o.vertices, "Number of vertices")
	f.Float64VarP(&o.density, "density", "p", o.density, "Edge probability in [0,1]")
	f.Int64Var(&o.seed, "seed", o.seed, "Random seed")
	f.Int64Var(&o.spread, "spread", o.spread, "Vertex potential range [-k,k]; > 0 yields negative weights")
	f.Int64Var(&o.maxWeight, "max-weight", o.maxWeight, "Upper bound of base weights")
	f.StringVarP(&o.out, "out", "o", "", "Output file (default stdout)")

	return cmd
}

func runGen(cmd *cobra.Command, o genOptions) error {
	if o.spread < 0 || o.maxWeight < 0 {
		return usageError("--spread and --max-weight must be non-negative")
	}
	g, err := builder.Build(builder.RandomSparse(o.vertices, o.density),
		builder.WithSeed(o.seed), builder.WithSpread(o.spread), builder.WithMaxWeight(o.maxWeight))
	if err != nil {
		return usageError(err.Error())
	}

	var w io.Writer = cmd.OutOrStdout()
	if o.out != "" {
		f, err := os.Create(o.out)
		if err != nil {
			return &ExitError{Code: ExitFailure, Message: err.Error()}
		}
		defer f.Close()
		w = f
	}
	if err = graphio.Write(w, g.VertexCount(), g.Edges()); err != nil {
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("writing graph: %v", err)}
	}

	ctxlog.FromContext(cmd.Context()).Debug("Graph generated.",
		"vertices", g.VertexCount(), "edges", g.EdgeCount(), "seed", o.seed)

	return nil
}
