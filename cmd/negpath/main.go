// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/negpath/internal/cli"
	"github.com/katalvlaran/negpath/internal/config"
)

// main is the entrypoint for the negpath binary.
func main() {
	// Use a minimal logger until the configured one is installed.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run loads configuration and executes the command tree.
func run(args []string, out, errOut io.Writer) error {
	envFile := config.DefaultEnvFile
	if v, ok := os.LookupEnv(config.EnvFile); ok {
		envFile = v
	}
	cfg, err := config.Load(envFile)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
	}

	cmd := cli.NewRootCommand(cfg, out, errOut)
	cmd.SetArgs(args)

	return cmd.ExecuteContext(context.Background())
}
