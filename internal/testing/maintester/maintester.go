// Package maintester runs a command's main function under test, capturing
// what it wrote to the real stdout and stderr.
package maintester

import (
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMain runs main with os.Args set to args, returning everything written
// to stdout and stderr. os.Args and the standard streams are restored before
// returning, so failures remain visible in normal test output.
func TestMain(t *testing.T, main func(), args ...string) (stdout, stderr string) {
	oldArgs := os.Args
	os.Args = args
	defer func() { os.Args = oldArgs }()

	outR, outW, err := os.Pipe()
	require.NoError(t, err)
	errR, errW, err := os.Pipe()
	require.NoError(t, err)

	oldStdout, oldStderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = outW, errW
	revertOS := func() {
		os.Stdout, os.Stderr = oldStdout, oldStderr
		_ = outW.Close()
		_ = errW.Close()
	}
	defer revertOS()

	// Drain concurrently so main can't block on a full pipe buffer.
	var outB, errB strings.Builder
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); _, _ = io.Copy(&outB, outR) }()
	go func() { defer wg.Done(); _, _ = io.Copy(&errB, errR) }()

	main()

	// Revert os.XXX and close the write ends so the readers see EOF.
	revertOS()
	wg.Wait()
	_ = outR.Close()
	_ = errR.Close()

	// Normalize windows newlines so assertions are portable.
	stdout = strings.ReplaceAll(outB.String(), "\r\n", "\n")
	stderr = strings.ReplaceAll(errB.String(), "\r\n", "\n")
	return
}
