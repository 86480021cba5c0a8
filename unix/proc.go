package unix

// Wait blocks until a child process terminates and returns its pid and exit
// status.
func Wait() (int, WaitStatus, error) {
	return 0, 0, unavailable("wait")
}

// Waitpid waits for the child with the given pid, or any child if pid is -1.
func Waitpid(pid int, flags WaitFlag) (int, WaitStatus, error) {
	return 0, 0, unavailable("waitpid")
}

// Fork creates a child process. It returns 0 in the child and the child's pid
// in the parent.
func Fork() (int, error) {
	return 0, unavailable("fork")
}

// Execv replaces the current process image, passing argv to the new one.
func Execv(path string, argv []string) error {
	return unavailable("execv")
}

// Execve is Execv with an explicit environment.
func Execve(path string, argv, envv []string) error {
	return unavailable("execve")
}

// Execvp is Execv resolving the program through PATH.
func Execvp(file string, argv []string) error {
	return unavailable("execvp")
}

// Execvpe is Execvp with an explicit environment.
func Execvpe(file string, argv, envv []string) error {
	return unavailable("execvpe")
}

// Spawn starts a child process without replacing the current one: the program
// at path runs with argv and envv, resolved through PATH when usePath is set,
// with stdio as its standard input, output and error descriptors. It returns
// the child's pid.
func Spawn(path string, argv, envv []string, usePath bool, stdio [3]int) (int, error) {
	return 0, unavailable("spawn")
}

// Getpid returns the process id of the current process.
func Getpid() (int, error) {
	return 0, unavailable("getpid")
}

// Getppid returns the process id of the parent process.
func Getppid() (int, error) {
	return 0, unavailable("getppid")
}

// Setsid detaches from the controlling terminal and returns the new session id.
func Setsid() (int, error) {
	return 0, unavailable("setsid")
}
