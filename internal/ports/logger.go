package ports

// Logger defines the logging interface used across the core and adapters.
// It matches the key/value style of github.com/baditaflorin/l so that any
// of its loggers can be adapted without translation.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}
