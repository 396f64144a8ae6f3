package log

import (
	"math"
)

const (
	// LevelDebug indicates information useful for developers.
	LevelDebug = "debug"
	// LevelInfo is the default level for operational logs.
	LevelInfo = "info"
	// LevelWarn indicates recoverable issues.
	LevelWarn = "warn"
	// LevelError indicates failures requiring attention.
	LevelError = "error"
	// LevelNone disables logging.
	LevelNone = "none"

	PriorityDebug = 0
	PriorityInfo  = 1
	PriorityWarn  = 2
	PriorityError = 3
	// PriorityNone is always greater than any other priority.
	PriorityNone = math.MaxInt
)

var levelPriorities = map[string]int{
	LevelDebug: PriorityDebug,
	LevelInfo:  PriorityInfo,
	LevelWarn:  PriorityWarn,
	LevelError: PriorityError,
	LevelNone:  PriorityNone,
}

// LevelPriority returns the numeric priority for a given log level name (e.g., "info" -> 1).
// It returns false if the level name is unknown.
func LevelPriority(level string) (int, bool) {
	priority, ok := levelPriorities[level]

	return priority, ok
}

// Fields is a map of key-value pairs to add structured data to a log entry.
type Fields map[string]any

// Logger is the logging interface consumed by the library. It supports the
// standard log levels and derived loggers carrying additional fields.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)

	WithFields(fields Fields) Logger
}

func NewNopLogger() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (l nopLogger) Debug(_ string, _ ...any) {}

func (l nopLogger) Info(_ string, _ ...any) {}

func (l nopLogger) Warn(_ string, _ ...any) {}

func (l nopLogger) Error(_ string, _ ...any) {}

func (l nopLogger) WithFields(_ Fields) Logger { return l }

func mergeFields(base Fields, additional Fields) Fields {
	merged := make(Fields, len(base)+len(additional))

	for k, v := range base {
		merged[k] = v
	}

	for k, v := range additional {
		merged[k] = v
	}

	return merged
}
