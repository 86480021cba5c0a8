package unix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// The fs-flavored stubs must not touch the filesystem: the error is their
// only observable effect.

func TestChmod_NoSideEffect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	require.EqualError(t, Chmod(path, 0o777), "Unix.chmod not available")

	st, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), st.Mode().Perm())
}

func TestMkfifo_NoSideEffect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fifo")

	require.EqualError(t, Mkfifo(path, 0o600), "Unix.mkfifo not available")

	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestPipe_NoDescriptors(t *testing.T) {
	r, w, err := Pipe(false)
	require.EqualError(t, err, "Unix.pipe not available")
	require.Zero(t, r)
	require.Zero(t, w)
}

func TestDup_NoDescriptor(t *testing.T) {
	fd, err := Dup(int(os.Stdout.Fd()), false)
	require.EqualError(t, err, "Unix.dup not available")
	require.Zero(t, fd)
}
