package sys

import (
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnavailableError(t *testing.T) {
	err := Unavailable("Unix.fork")
	require.EqualError(t, err, "Unix.fork not available")
	require.Equal(t, "Unix.fork", err.Name())
}

func TestUnavailableError_Deterministic(t *testing.T) {
	// The message depends only on the name, so repeated construction for the
	// same primitive is byte-identical.
	for i := 0; i < 3; i++ {
		require.Equal(t, "Unix.spawn not available", Unavailable("Unix.spawn").Error())
	}
}

func TestUnavailableError_IsENOSYS(t *testing.T) {
	err := Unavailable("Unix.pipe")
	require.ErrorIs(t, err, syscall.ENOSYS)

	var ue *UnavailableError
	require.True(t, errors.As(err, &ue))
	require.Equal(t, "Unix.pipe", ue.Name())
}
