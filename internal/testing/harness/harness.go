// Package harness bootstraps a runtime entry point the way the cross-test
// driver does: resolve the running executable's path and hand it over as
// argv[0].
package harness

import "os"

// prognameFallback is used when the platform cannot report the executable
// path at all.
const prognameFallback = "/unknown/program/name"

// Progname returns the path of the running executable. Discovery itself is
// delegated to the platform; if it fails, the invocation name is used, and
// failing that a fixed placeholder.
func Progname() string {
	if p, err := os.Executable(); err == nil && p != "" {
		return p
	}
	if len(os.Args) > 0 && os.Args[0] != "" {
		return os.Args[0]
	}
	return prognameFallback
}

// Startup invokes run with an argv containing only the resolved program name.
func Startup(run func(argv []string)) {
	run([]string{Progname()})
}
