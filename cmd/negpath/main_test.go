// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/negpath/internal/cli"
	"github.com/katalvlaran/negpath/internal/config"
)

func TestRun_Version(t *testing.T) {
	t.Setenv(config.EnvFile, filepath.Join(t.TempDir(), "none.env"))

	out := &bytes.Buffer{}
	require.NoError(t, run([]string{"version"}, out, &bytes.Buffer{}))
	assert.Contains(t, out.String(), "negpath")
}

func TestRun_Help(t *testing.T) {
	t.Setenv(config.EnvFile, filepath.Join(t.TempDir(), "none.env"))

	out := &bytes.Buffer{}
	require.NoError(t, run([]string{"--help"}, out, &bytes.Buffer{}))
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_BadEnvironment(t *testing.T) {
	t.Setenv(config.EnvFile, filepath.Join(t.TempDir(), "none.env"))
	t.Setenv(config.EnvWorkers, "-2")

	err := run([]string{"version"}, &bytes.Buffer{}, &bytes.Buffer{})
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, cli.ExitUsage, exitErr.Code)
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, "test.env")
	timings := filepath.Join(dir, "timings.txt")
	graph := filepath.Join(dir, "g.txt")
	require.NoError(t, os.WriteFile(env, []byte("NEGPATH_TIMINGS_FILE="+timings+"\n"), 0o600))
	require.NoError(t, os.WriteFile(graph, []byte("4 1\n0 1 5\n"), 0o600))
	t.Setenv(config.EnvFile, env)
	t.Setenv(config.EnvTimingsFile, "")
	require.NoError(t, os.Unsetenv(config.EnvTimingsFile))

	out := &bytes.Buffer{}
	require.NoError(t, run([]string{"run", graph, "0", "1"}, out, &bytes.Buffer{}))
	assert.Contains(t, out.String(), "distance 5")

	data, err := os.ReadFile(timings)
	require.NoError(t, err)
	assert.Regexp(t, `^\S+ \S+ \S+    5\n$`, string(data))
}
