package distrib

// Logger is an interface of logger interface.
// Prints verbose messages.
type Logger interface {
	Printf(format string, v ...any)
}
