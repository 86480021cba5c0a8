package main

import "github.com/figly/wasiunix/unix"

// probe invokes one stubbed primitive with zero values of its arguments.
type probe struct {
	name string
	call func() error
}

// probes covers the catalog in its canonical order; doProbe flags any
// divergence between the two.
var probes = []probe{
	{"Unix.wait", func() error { _, _, err := unix.Wait(); return err }},
	{"Unix.waitpid", func() error { _, _, err := unix.Waitpid(0, 0); return err }},
	{"Unix.sigprocmask", func() error { _, err := unix.Sigprocmask(unix.SigSetMask, nil); return err }},
	{"Unix.sigpending", func() error { _, err := unix.Sigpending(); return err }},
	{"Unix.sigsuspend", func() error { return unix.Sigsuspend(nil) }},
	{"Unix.kill", func() error { return unix.Kill(0, 0) }},
	{"Unix.getpwnam", func() error { _, err := unix.Getpwnam(""); return err }},
	{"Unix.getpwuid", func() error { _, err := unix.Getpwuid(0); return err }},
	{"Unix.getgrnam", func() error { _, err := unix.Getgrnam(""); return err }},
	{"Unix.getgrgid", func() error { _, err := unix.Getgrgid(0); return err }},
	{"Unix.alarm", func() error { _, err := unix.Alarm(0); return err }},
	{"Unix.chmod", func() error { return unix.Chmod("", 0) }},
	{"Unix.chown", func() error { return unix.Chown("", 0, 0) }},
	{"Unix.chroot", func() error { return unix.Chroot("") }},
	{"Unix.dup", func() error { _, err := unix.Dup(0, false); return err }},
	{"Unix.dup2", func() error { return unix.Dup2(0, 0, false) }},
	{"Unix.execv", func() error { return unix.Execv("", nil) }},
	{"Unix.execve", func() error { return unix.Execve("", nil, nil) }},
	{"Unix.execvp", func() error { return unix.Execvp("", nil) }},
	{"Unix.execvpe", func() error { return unix.Execvpe("", nil, nil) }},
	{"Unix.fork", func() error { _, err := unix.Fork(); return err }},
	{"Unix.getegid", func() error { _, err := unix.Getegid(); return err }},
	{"Unix.geteuid", func() error { _, err := unix.Geteuid(); return err }},
	{"Unix.getgid", func() error { _, err := unix.Getgid(); return err }},
	{"Unix.getlogin", func() error { _, err := unix.Getlogin(); return err }},
	{"Unix.getuid", func() error { _, err := unix.Getuid(); return err }},
	{"Unix.gethostname", func() error { _, err := unix.Gethostname(); return err }},
	{"Unix.getpid", func() error { _, err := unix.Getpid(); return err }},
	{"Unix.getppid", func() error { _, err := unix.Getppid(); return err }},
	{"Unix.mkfifo", func() error { return unix.Mkfifo("", 0) }},
	{"Unix.pipe", func() error { _, _, err := unix.Pipe(false); return err }},
	{"Unix.setgid", func() error { return unix.Setgid(0) }},
	{"Unix.setsid", func() error { _, err := unix.Setsid(); return err }},
	{"Unix.setuid", func() error { return unix.Setuid(0) }},
	{"Unix.spawn", func() error { _, err := unix.Spawn("", nil, nil, false, [3]int{}); return err }},
	{"Unix.umask", func() error { _, err := unix.Umask(0); return err }},
}
