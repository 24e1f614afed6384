// Package signame maps POSIX signal numbers 1..31 to their long and
// abbreviated names, for composing the exec backend's diagnostic text.
package signame

type name struct {
	long   string
	abbrev string
}

var table = map[int]name{
	1:  {"Hangup", "SIGHUP"},
	2:  {"Interrupt", "SIGINT"},
	3:  {"Quit", "SIGQUIT"},
	4:  {"Illegal instruction", "SIGILL"},
	5:  {"Trace/breakpoint trap", "SIGTRAP"},
	6:  {"Aborted", "SIGABRT"},
	7:  {"Bus error", "SIGBUS"},
	8:  {"Floating point exception", "SIGFPE"},
	9:  {"Killed", "SIGKILL"},
	10: {"User defined signal 1", "SIGUSR1"},
	11: {"Segmentation fault", "SIGSEGV"},
	12: {"User defined signal 2", "SIGUSR2"},
	13: {"Broken pipe", "SIGPIPE"},
	14: {"Alarm clock", "SIGALRM"},
	15: {"Terminated", "SIGTERM"},
	16: {"Stack fault", "SIGSTKFLT"},
	17: {"Child exited", "SIGCHLD"},
	18: {"Continued", "SIGCONT"},
	19: {"Stopped (signal)", "SIGSTOP"},
	20: {"Stopped", "SIGTSTP"},
	21: {"Stopped (tty input)", "SIGTTIN"},
	22: {"Stopped (tty output)", "SIGTTOU"},
	23: {"Urgent I/O condition", "SIGURG"},
	24: {"CPU time limit exceeded", "SIGXCPU"},
	25: {"File size limit exceeded", "SIGXFSZ"},
	26: {"Virtual timer expired", "SIGVTALRM"},
	27: {"Profiling timer expired", "SIGPROF"},
	28: {"Window changed", "SIGWINCH"},
	29: {"I/O possible", "SIGPOLL"},
	30: {"Power failure", "SIGPWR"},
	31: {"Bad system call", "SIGSYS"},
}

// Lookup returns the long and abbreviated name for signal number sig.
// Unknown signal numbers (outside 1..31) return ("", "unknown").
func Lookup(sig int) (long string, abbrev string) {
	if n, ok := table[sig]; ok {
		return n.long, n.abbrev
	}
	return "", "unknown"
}
