// Package unix is the WASI rendition of the POSIX compatibility surface: it
// declares one function per cataloged primitive with the primitive's normal
// signature shape, and every one of them fails with sys.UnavailableError
// because the target platform has no process, signal or user management.
//
// Arguments are never inspected: the failure message for a primitive is
// byte-identical on every call, whatever the inputs. The error is the only
// observable effect.
//
// All functions are pure and stateless; they are safe to call from any number
// of goroutines without synchronization.
package unix

import "github.com/figly/wasiunix/sys"

// unavailable builds the error for one primitive. The canonical name prefix
// lives here; the message format lives in sys.Unavailable.
func unavailable(name string) error {
	return sys.Unavailable("Unix." + name)
}
