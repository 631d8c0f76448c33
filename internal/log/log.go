package log

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var defaultLogger zerolog.Logger

func init() {
	// Initialize with default configuration
	Configure("info", "console", os.Stderr)
}

// Configure sets up the logger with the given settings
// Call this early in your main() function
func Configure(level, format string, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if format != "json" {
		writer = zerolog.ConsoleWriter{
			Out:        writer,
			TimeFormat: "15:04:05",
			NoColor:    !isTerminal(writer),
		}
	}

	defaultLogger = zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// GetLogger returns the configured logger instance
// Use this when passing to libraries
func GetLogger() *zerolog.Logger {
	return &defaultLogger
}

// Package-level convenience functions
func Trace(msg string, keysAndValues ...any) {
	emit(defaultLogger.Trace(), msg, keysAndValues)
}

func Debug(msg string, keysAndValues ...any) {
	emit(defaultLogger.Debug(), msg, keysAndValues)
}

func Info(msg string, keysAndValues ...any) {
	emit(defaultLogger.Info(), msg, keysAndValues)
}

func Warn(msg string, keysAndValues ...any) {
	emit(defaultLogger.Warn(), msg, keysAndValues)
}

func Error(msg string, keysAndValues ...any) {
	emit(defaultLogger.Error(), msg, keysAndValues)
}

func Fatal(msg string, keysAndValues ...any) {
	emit(defaultLogger.Fatal(), msg, keysAndValues)
}

func With(key string, value any) zerolog.Logger {
	return defaultLogger.With().Interface(key, value).Logger()
}

func WithError(err error) zerolog.Logger {
	return defaultLogger.With().Err(err).Logger()
}

// emit attaches alternating key/value pairs to the event. A trailing key
// without a value is logged under "!BADKEY".
func emit(e *zerolog.Event, msg string, keysAndValues []any) {
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok || i+1 >= len(keysAndValues) {
			e = e.Interface("!BADKEY", keysAndValues[i])
			continue
		}
		if err, isErr := keysAndValues[i+1].(error); isErr {
			e = e.AnErr(key, err)
			continue
		}
		e = e.Interface(key, keysAndValues[i+1])
	}
	e.Msg(msg)
}
