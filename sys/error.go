// Package sys includes constants and types used by both public and internal APIs.
package sys

import "syscall"

// UnavailableError is returned by every call into a primitive the target
// platform cannot support. It is an ordinary recoverable error: the stub
// never retries, never recovers it internally and never terminates the
// process on its own.
//
// Here's an example of how to detect it:
//
//	if _, err := unix.Fork(); err != nil {
//		var ue *sys.UnavailableError
//		if errors.As(err, &ue) {
//			// ue.Name() == "Unix.fork"
//		}
//	}
type UnavailableError struct {
	name string
}

// Unavailable returns the error for the named primitive. The message format
// is fixed here so that every stub fails with a byte-identical message for
// the same name, regardless of arguments or call count.
func Unavailable(name string) *UnavailableError {
	return &UnavailableError{name: name}
}

// Name is the canonical name of the primitive that was called, e.g. "Unix.fork".
func (e *UnavailableError) Name() string {
	return e.name
}

func (e *UnavailableError) Error() string {
	return e.name + " not available"
}

// Unwrap makes errors.Is(err, syscall.ENOSYS) true, matching how platforms
// with partial support report the same condition.
func (e *UnavailableError) Unwrap() error {
	return syscall.ENOSYS
}
