// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/negpath/internal/config"
	"github.com/katalvlaran/negpath/internal/ctxlog"
	"github.com/katalvlaran/negpath/internal/logging"
)

// NewRootCommand returns the negpath command tree. cfg supplies the flag
// defaults; out receives results and errOut receives logs.
func NewRootCommand(cfg config.Config, out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "negpath",
		Short: "negpath compares shortest-path engines on graphs with negative weights",
		Long: `negpath runs Bellman-Ford, Dijkstra and Johnson's algorithm on a
weighted graph file, reports the distance between two vertices, and records
how long each engine took.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate(); err != nil {
			return usageError(err.Error())
		}
		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return usageError(err.Error())
		}
		logger, err := logging.New(errOut, cfg.LogFormat, level)
		if err != nil {
			return usageError(err.Error())
		}
		cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

		return nil
	}

	root.AddCommand(
		newRunCommand(&cfg),
		newGenCommand(),
		newVersionCommand(),
	)

	return root
}
