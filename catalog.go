package wasiunix

// catalog lists every stubbed primitive in the order of the original stub
// set. Keep this in sync with the exported functions in the unix package;
// the probe table in cmd/wasiunix covers every entry and its test enforces
// the correspondence.
var catalog = []Primitive{
	{"Unix.wait", 1},
	{"Unix.waitpid", 2},
	{"Unix.sigprocmask", 2},
	{"Unix.sigpending", 1},
	{"Unix.sigsuspend", 1},
	{"Unix.kill", 2},
	{"Unix.getpwnam", 1},
	{"Unix.getpwuid", 1},
	{"Unix.getgrnam", 1},
	{"Unix.getgrgid", 1},
	{"Unix.alarm", 1},
	{"Unix.chmod", 2},
	{"Unix.chown", 3},
	{"Unix.chroot", 1},
	{"Unix.dup", 2},
	{"Unix.dup2", 3},
	{"Unix.execv", 2},
	{"Unix.execve", 3},
	{"Unix.execvp", 2},
	{"Unix.execvpe", 3},
	{"Unix.fork", 1},
	{"Unix.getegid", 1},
	{"Unix.geteuid", 1},
	{"Unix.getgid", 1},
	{"Unix.getlogin", 1},
	{"Unix.getuid", 1},
	{"Unix.gethostname", 1},
	{"Unix.getpid", 1},
	{"Unix.getppid", 1},
	{"Unix.mkfifo", 2},
	{"Unix.pipe", 2},
	{"Unix.setgid", 1},
	{"Unix.setsid", 1},
	{"Unix.setuid", 1},
	{"Unix.spawn", 5},
	{"Unix.umask", 1},
}
