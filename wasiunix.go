// Package wasiunix describes the POSIX compatibility surface this module
// stubs out on restricted targets such as WASI.
//
// The unix subpackage exposes one function per cataloged primitive. On this
// build every one of them fails with sys.UnavailableError because the target
// platform has no process, signal or user management. The point of the stubs
// is link compatibility: code written against the full surface still compiles
// and runs, and fails loudly only when an unsupported primitive is actually
// called.
package wasiunix

// Version is the module version the wasiunix CLI reports.
const Version = "0.2.0"

// Primitive is one entry in the compatibility catalog.
type Primitive struct {
	// Name is the canonical primitive name, e.g. "Unix.fork". It appears
	// verbatim in the error message of the corresponding stub.
	Name string

	// Arity is the positional argument count of the primitive's C call
	// surface on supporting platforms, between 1 and 5.
	Arity int
}

// Primitives returns the catalog in its canonical order. The catalog is fixed
// at build time; the returned slice is a copy the caller may retain or modify.
func Primitives() []Primitive {
	ret := make([]Primitive, len(catalog))
	copy(ret, catalog)
	return ret
}

// LookupPrimitive returns the catalog entry with the given canonical name, or
// ok=false if the name isn't cataloged.
func LookupPrimitive(name string) (p Primitive, ok bool) {
	for _, e := range catalog {
		if e.Name == name {
			return e, true
		}
	}
	return
}
