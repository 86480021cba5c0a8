package main

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/figly/wasiunix"
	"github.com/figly/wasiunix/internal/testing/maintester"
)

func TestMain_Version(t *testing.T) {
	stdout, stderr := maintester.TestMain(t, main, "wasiunix", "version")
	require.Equal(t, wasiunix.Version+"\n", stdout)
	require.Equal(t, "", stderr)
}

func TestMain_Catalog(t *testing.T) {
	stdout, stderr := maintester.TestMain(t, main, "wasiunix", "catalog")
	require.Equal(t, "", stderr)

	// One header line plus one line per catalog entry.
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Equal(t, len(wasiunix.Primitives())+1, len(lines))
	require.Contains(t, lines[0], "NAME")
	require.Contains(t, stdout, "Unix.spawn")
}

func TestMain_Probe(t *testing.T) {
	stdout, stderr := maintester.TestMain(t, main, "wasiunix", "probe")
	require.Equal(t, "", stderr)

	for _, p := range wasiunix.Primitives() {
		require.Contains(t, stdout, fmt.Sprintf("%s: %s not available\n", p.Name, p.Name))
	}
}

func TestDoMain_NoArgs(t *testing.T) {
	var stdOut, stdErr strings.Builder
	exitCode := -1

	withArgs(t, []string{"wasiunix"}, func() {
		doMain(&stdOut, &stdErr, func(code int) { exitCode = code })
	})

	require.Equal(t, 0, exitCode)
	require.Contains(t, stdErr.String(), "Usage:")
}

func TestDoMain_InvalidCommand(t *testing.T) {
	var stdOut, stdErr strings.Builder
	exitCode := -1

	withArgs(t, []string{"wasiunix", "nope"}, func() {
		doMain(&stdOut, &stdErr, func(code int) { exitCode = code })
	})

	require.Equal(t, 1, exitCode)
	require.Contains(t, stdErr.String(), "invalid command")
}

func TestProbesCoverCatalog(t *testing.T) {
	ps := wasiunix.Primitives()
	require.Equal(t, len(ps), len(probes))
	for i, p := range ps {
		require.Equal(t, p.Name, probes[i].name)
	}
}

// withArgs runs f with os.Args swapped out.
func withArgs(t *testing.T, args []string, f func()) {
	oldArgs := os.Args
	os.Args = args
	defer func() { os.Args = oldArgs }()
	f()
}
