package unix

import "io/fs"

// Chmod changes the permission bits of the file at path.
func Chmod(path string, mode fs.FileMode) error {
	return unavailable("chmod")
}

// Chown changes the owner and group of the file at path.
func Chown(path string, uid, gid int) error {
	return unavailable("chown")
}

// Chroot changes the root directory of the current process.
func Chroot(path string) error {
	return unavailable("chroot")
}

// Dup duplicates fd onto the lowest-numbered free descriptor, setting
// close-on-exec on the copy when cloexec is true.
func Dup(fd int, cloexec bool) (int, error) {
	return 0, unavailable("dup")
}

// Dup2 duplicates oldfd onto newfd, closing newfd first if open.
func Dup2(oldfd, newfd int, cloexec bool) error {
	return unavailable("dup2")
}

// Mkfifo creates a named pipe at path with the given permission bits.
func Mkfifo(path string, mode fs.FileMode) error {
	return unavailable("mkfifo")
}

// Pipe creates a pipe and returns its read and write descriptors.
func Pipe(cloexec bool) (int, int, error) {
	return 0, 0, unavailable("pipe")
}

// Umask sets the file-mode creation mask and returns the previous mask.
func Umask(mask fs.FileMode) (fs.FileMode, error) {
	return 0, unavailable("umask")
}

// Gethostname returns the host name of the machine.
func Gethostname() (string, error) {
	return "", unavailable("gethostname")
}
