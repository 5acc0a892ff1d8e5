package log

// Logger is the structured logging facade used throughout the SDK.
// Implementations must be safe for concurrent use.
type Logger interface {
	// Debug logs low-level detail useful during development.
	// keysAndValues adds structured context (e.g., "method", name).
	Debug(msg string, keysAndValues ...any)
	// Info logs routine events and state changes.
	Info(msg string, keysAndValues ...any)
	// Warn logs unexpected situations that are not errors.
	Warn(msg string, keysAndValues ...any)
	// Error logs failures that need attention.
	Error(msg string, keysAndValues ...any)
	// Fatal logs an unrecoverable failure and may terminate the program.
	Fatal(msg string, keysAndValues ...any)
	// WithKV returns a logger with an extra key-value pair attached to all
	// future log messages. Use for persistent context such as a component name.
	WithKV(key string, value any) Logger
	// WithName returns a logger with the given name appended to its hierarchy.
	WithName(name string) Logger
	// Name returns the logger's name.
	Name() string
}

// Level represents the severity level of a log message.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)
