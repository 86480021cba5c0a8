package harness

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgname(t *testing.T) {
	// The test binary always has a resolvable path on supported test hosts.
	p := Progname()
	require.NotEmpty(t, p)
	require.NotEqual(t, prognameFallback, p)
}

func TestStartup(t *testing.T) {
	var got []string
	Startup(func(argv []string) { got = argv })

	require.Equal(t, []string{Progname()}, got)
}
