package unix

// Sigprocmask changes the set of blocked signals per how and returns the
// previous set.
func Sigprocmask(how SigmaskHow, set []Signal) ([]Signal, error) {
	return nil, unavailable("sigprocmask")
}

// Sigpending returns the set of blocked signals that are currently pending.
func Sigpending() ([]Signal, error) {
	return nil, unavailable("sigpending")
}

// Sigsuspend temporarily replaces the blocked set and suspends the process
// until a signal is delivered.
func Sigsuspend(set []Signal) error {
	return unavailable("sigsuspend")
}

// Kill sends sig to the process with the given pid.
func Kill(pid int, sig Signal) error {
	return unavailable("kill")
}

// Alarm schedules a SIGALRM after the given number of seconds and returns the
// seconds remaining on any previously scheduled alarm.
func Alarm(seconds int) (int, error) {
	return 0, unavailable("alarm")
}
