package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "cosimgen 0.1.0\n", out)
}

func TestSeededOutputIsReproducible(t *testing.T) {
	a, _, err := run(t, "--seed", "42", "-n", "8")
	require.NoError(t, err)
	b, _, err := run(t, "-s", "42", "--instructions", "8")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "# This file auto-generated by cosimgen\n"))
	assert.Equal(t, 4, strings.Count(a, "\n1:\t\tgoto 1b\n"))
}

func TestRejectsBadInstructionCount(t *testing.T) {
	_, _, err := run(t, "--seed", "1", "-n", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "instructions must be positive")
}

func TestRejectsArguments(t *testing.T) {
	_, _, err := run(t, "extra")
	require.Error(t, err)
}

func TestWritesOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "random.S")
	out, _, err := run(t, "-s", "3", "-n", "16", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "start_strand3:\n")
}

func TestStatsAndDistributions(t *testing.T) {
	_, errOut, err := run(t, "-s", "3", "-n", "16", "--stats")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Generation summary (seed 3)")

	out, _, err := run(t, "--dump-distributions")
	require.NoError(t, err)
	assert.Contains(t, out, "pointer-update")
	assert.NotContains(t, out, "start_strand0")
}

func captureExitHandlers(t *testing.T) *[]func() {
	t.Helper()
	var handlers []func()
	prev := onExit
	onExit = func(fn func()) { handlers = append(handlers, fn) }
	t.Cleanup(func() { onExit = prev })
	return &handlers
}

func TestTraceFileImpliesTrace(t *testing.T) {
	captureExitHandlers(t)
	path := filepath.Join(t.TempDir(), "rng.trace")
	_, _, err := run(t, "-s", "3", "-n", "4", "--trace-file", path, "-o", filepath.Join(t.TempDir(), "out.S"))
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# seed=3\n"))
}

func TestTraceCloseRegisteredForExit(t *testing.T) {
	handlers := captureExitHandlers(t)

	_, _, err := run(t, "-s", "3", "-n", "4", "-o", filepath.Join(t.TempDir(), "out.S"))
	require.NoError(t, err)
	assert.Empty(t, *handlers)

	path := filepath.Join(t.TempDir(), "rng.trace")
	_, _, err = run(t, "-s", "3", "-n", "4", "--trace-rng", "--trace-file", path, "-o", filepath.Join(t.TempDir(), "out.S"))
	require.NoError(t, err)
	require.Len(t, *handlers, 1)

	// Running the handler twice must be harmless.
	assert.NotPanics(t, func() {
		(*handlers)[0]()
		(*handlers)[0]()
	})
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "# seed=3", lines[0])
	assert.Contains(t, lines[len(lines)-1], " W ")
}

func TestTraceOpenFailureIsReported(t *testing.T) {
	handlers := captureExitHandlers(t)
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "rng.trace")
	_, _, err := run(t, "-s", "3", "-n", "4", "--trace-file", missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open rng trace")
	assert.Empty(t, *handlers)
}
