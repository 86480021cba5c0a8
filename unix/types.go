package unix

// The types below define the signature surface of the stubbed primitives.
// They carry no behavior: nothing in this package ever produces a value of
// them, because no call succeeds.

// Signal is a POSIX signal number.
type Signal int

// Common signal numbers, for call sites written against the full surface.
const (
	SIGHUP  Signal = 1
	SIGINT  Signal = 2
	SIGQUIT Signal = 3
	SIGKILL Signal = 9
	SIGALRM Signal = 14
	SIGTERM Signal = 15
)

// WaitStatus reports how a waited-on child terminated. Only platforms with
// real process management produce values.
type WaitStatus uint32

// WaitFlag alters Waitpid behavior.
type WaitFlag int

const (
	// WNOHANG returns immediately if no child has exited.
	WNOHANG WaitFlag = 1 << iota
	// WUNTRACED also reports stopped children.
	WUNTRACED
)

// SigmaskHow selects what Sigprocmask does with its signal set.
type SigmaskHow int

const (
	// SigSetMask replaces the blocked set.
	SigSetMask SigmaskHow = iota
	// SigBlock adds to the blocked set.
	SigBlock
	// SigUnblock removes from the blocked set.
	SigUnblock
)

// Passwd is one password-database entry.
type Passwd struct {
	Name   string
	Passwd string
	UID    int
	GID    int
	Gecos  string
	Dir    string
	Shell  string
}

// Group is one group-database entry.
type Group struct {
	Name   string
	Passwd string
	GID    int
	Mem    []string
}
