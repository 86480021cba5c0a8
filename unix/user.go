package unix

// Getpwnam looks up the password-database entry with the given login name.
func Getpwnam(name string) (*Passwd, error) {
	return nil, unavailable("getpwnam")
}

// Getpwuid looks up the password-database entry with the given user id.
func Getpwuid(uid int) (*Passwd, error) {
	return nil, unavailable("getpwuid")
}

// Getgrnam looks up the group-database entry with the given group name.
func Getgrnam(name string) (*Group, error) {
	return nil, unavailable("getgrnam")
}

// Getgrgid looks up the group-database entry with the given group id.
func Getgrgid(gid int) (*Group, error) {
	return nil, unavailable("getgrgid")
}

// Getlogin returns the login name of the user running the process.
func Getlogin() (string, error) {
	return "", unavailable("getlogin")
}

// Getuid returns the real user id of the process.
func Getuid() (int, error) {
	return 0, unavailable("getuid")
}

// Geteuid returns the effective user id of the process.
func Geteuid() (int, error) {
	return 0, unavailable("geteuid")
}

// Getgid returns the real group id of the process.
func Getgid() (int, error) {
	return 0, unavailable("getgid")
}

// Getegid returns the effective group id of the process.
func Getegid() (int, error) {
	return 0, unavailable("getegid")
}

// Setuid sets the real user id of the process.
func Setuid(uid int) error {
	return unavailable("setuid")
}

// Setgid sets the real group id of the process.
func Setgid(gid int) error {
	return unavailable("setgid")
}
