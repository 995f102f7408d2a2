package logger

import (
	"fmt"
	"log"

	"github.com/rs/zerolog"
)

// Logger is the logging interface used by the codec and the tools.
type Logger interface {
	Debug(format string, v ...any)
}

// stdLogger implements Logger through the standard log package
type stdLogger struct {
	category string
}

// NewLogger creates a logger with the given category
func NewLogger(category string) Logger {
	return &stdLogger{category: category}
}

func (l *stdLogger) Debug(format string, v ...any) {
	if l.category == "" {
		log.Printf(format, v...)
	} else {
		log.Printf("["+l.category+"] "+format, v...)
	}
}

// zerologLogger implements Logger on top of zerolog, one debug event per call
type zerologLogger struct {
	log zerolog.Logger
}

// NewZerolog adapts a zerolog.Logger. A non-empty category is attached as a field.
func NewZerolog(zl zerolog.Logger, category string) Logger {
	if category != "" {
		zl = zl.With().Str("category", category).Logger()
	}
	return &zerologLogger{log: zl}
}

func (l *zerologLogger) Debug(format string, v ...any) {
	if e := l.log.Debug(); e.Enabled() {
		e.Msg(fmt.Sprintf(format, v...))
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}
