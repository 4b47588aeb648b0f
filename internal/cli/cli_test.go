// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/negpath/internal/cli"
	"github.com/katalvlaran/negpath/internal/config"
)

func init() {
	color.NoColor = true
}

const textbookFile = `5 8
0 1 -1
0 2 4
1 2 3
1 3 2
1 4 2
3 2 5
3 1 1
4 3 -3
`

// execute runs the command tree and returns stdout, stderr, and the error.
func execute(t *testing.T, cfg config.Config, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCommand(cfg, &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr), "want ExitError, got %v", err)

	return exitErr.Code
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, config.Default(), "version")
	require.NoError(t, err)
	assert.Equal(t, "negpath dev\n", out)
}

func TestRun_DirectedTextbook(t *testing.T) {
	path := writeFile(t, "g.txt", textbookFile)

	out, logs, err := execute(t, config.Default(), "run", path, "0", "3", "--mode", "directed")

	// Dijkstra rejects the negative weights; the other engines answer.
	assert.Equal(t, cli.ExitFailure, exitCode(t, err))
	assert.Contains(t, out, "Bellman-Ford 0 → 3  distance -2")
	assert.Contains(t, out, "Johnson      0 → 3  distance -2")
	assert.Contains(t, out, "negative edge weight")
	assert.Contains(t, out, "Shortest pair overall: 4 → 3, distance -3")
	assert.Contains(t, logs, "Engine failed.")
}

func TestRun_LegacyModeMixesDirectionality(t *testing.T) {
	path := writeFile(t, "g.txt", "3 2\n0 1 4\n2 1 1\n")

	out, _, err := execute(t, config.Default(), "run", path, "0", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "Bellman-Ford 0 → 2  distance inf")
	assert.Contains(t, lines[1], "Dijkstra     0 → 2  distance 5")
	assert.Contains(t, lines[2], "Johnson      0 → 2  distance inf")
}

func TestRun_TimingsAndVerify(t *testing.T) {
	dir := t.TempDir()
	graph := filepath.Join(dir, "g.txt")
	timings := filepath.Join(dir, "timings.txt")

	_, _, err := execute(t, config.Default(),
		"gen", "--vertices", "30", "--density", "0.2", "--seed", "4", "--out", graph)
	require.NoError(t, err)

	cfg := config.Default()
	cfg.TimingsFile = timings
	for i := 0; i < 2; i++ {
		_, logs, err := execute(t, cfg, "run", graph, "0", "7",
			"--mode", "directed", "--verify", "--workers", "3", "--frontier", "set")
		require.NoError(t, err)
		assert.Contains(t, logs, "Johnson table matches gonum.")
	}

	data, err := os.ReadFile(timings)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Len(t, strings.Fields(lines[0]), 4)
	assert.Contains(t, lines[0], "    ")
}

func TestRun_NegativeCycle(t *testing.T) {
	path := writeFile(t, "g.txt", "3 3\n0 1 1\n1 2 -1\n2 0 -1\n")

	out, _, err := execute(t, config.Default(), "run", path, "0", "2", "--mode", "directed")
	assert.Equal(t, cli.ExitFailure, exitCode(t, err))
	assert.Equal(t, 2, strings.Count(out, "negative cycle"))
}

func TestRun_UsageErrors(t *testing.T) {
	path := writeFile(t, "g.txt", textbookFile)

	cases := map[string][]string{
		"SourceOutOfRange": {"run", path, "9", "0"},
		"SourceNotNumber":  {"run", path, "x", "0"},
		"BadMode":          {"run", path, "0", "1", "--mode", "sideways"},
		"BadFrontier":      {"run", path, "0", "1", "--frontier", "queue"},
		"BadWorkers":       {"run", path, "0", "1", "--workers", "0"},
		"Malformed":        {"run", writeFile(t, "bad.txt", "2 1 0 x 1"), "0", "1"},
		"BadLogLevel":      {"version", "--log-level", "loud"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := execute(t, config.Default(), args...)
			assert.Equal(t, cli.ExitUsage, exitCode(t, err))
		})
	}
}

func TestRun_MissingFile(t *testing.T) {
	_, _, err := execute(t, config.Default(), "run", filepath.Join(t.TempDir(), "absent"), "0", "0")
	assert.Equal(t, cli.ExitFailure, exitCode(t, err))
}

func TestRun_WrongArgCount(t *testing.T) {
	_, _, err := execute(t, config.Default(), "run", "only-one")
	assert.Error(t, err)
}

func TestGen_Stdout(t *testing.T) {
	out, _, err := execute(t, config.Default(), "gen", "-n", "4", "-p", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "4 12", lines[0])
	assert.Len(t, lines, 13)
}

func TestGen_BadDensity(t *testing.T) {
	_, _, err := execute(t, config.Default(), "gen", "--density", "2")
	assert.Equal(t, cli.ExitUsage, exitCode(t, err))
}
