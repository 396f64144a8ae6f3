package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/justtrackio/typemapper/pkg/clock"
)

const defaultTimestampFormat = "15:04:05.000"

// NewCliLogger creates a logger writing human-readable lines to stdout at info level.
func NewCliLogger() Logger {
	return NewIoWriterLogger(clock.NewRealClock(), os.Stdout, LevelInfo)
}

// NewIoWriterLogger creates a logger writing to the provided writer. Entries
// below the given level are discarded. Unknown level names disable logging.
func NewIoWriterLogger(clk clock.Clock, writer io.Writer, level string) Logger {
	priority, ok := LevelPriority(level)
	if !ok {
		priority = PriorityNone
	}

	return &ioWriterLogger{
		clock:    clk,
		writer:   writer,
		priority: priority,
		fields:   Fields{},
		lck:      &sync.Mutex{},
	}
}

type ioWriterLogger struct {
	clock    clock.Clock
	writer   io.Writer
	priority int
	fields   Fields
	lck      *sync.Mutex
}

func (l *ioWriterLogger) Debug(format string, args ...any) {
	l.log(PriorityDebug, LevelDebug, format, args)
}

func (l *ioWriterLogger) Info(format string, args ...any) {
	l.log(PriorityInfo, LevelInfo, format, args)
}

func (l *ioWriterLogger) Warn(format string, args ...any) {
	l.log(PriorityWarn, LevelWarn, format, args)
}

func (l *ioWriterLogger) Error(format string, args ...any) {
	l.log(PriorityError, LevelError, format, args)
}

func (l *ioWriterLogger) WithFields(fields Fields) Logger {
	return &ioWriterLogger{
		clock:    l.clock,
		writer:   l.writer,
		priority: l.priority,
		fields:   mergeFields(l.fields, fields),
		lck:      l.lck,
	}
}

func (l *ioWriterLogger) log(priority int, level string, format string, args []any) {
	if priority < l.priority {
		return
	}

	timestamp := l.clock.Now().Format(defaultTimestampFormat)
	msg := fmt.Sprintf(format, args...)

	l.lck.Lock()
	defer l.lck.Unlock()

	_, _ = fmt.Fprintf(l.writer, "%s %-5s %s%s\n", timestamp, strings.ToUpper(level), msg, formatFields(l.fields))
}

func formatFields(fields Fields) string {
	if len(fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, fields[k]))
	}

	return fmt.Sprintf(" {%s}", strings.Join(pairs, ", "))
}
