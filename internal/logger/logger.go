package logger

import (
	"os"
	"time"

	"codeberg.org/tkardel/baro/internal/errors"
	"github.com/rs/zerolog"
)

// The log stream goes to stderr: stdout is reserved for the rendered
// status line consumed by the bar.
var log = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init initializes the logger with the given level name
func Init(level string) error {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	log = zerolog.New(output).With().Timestamp().Logger()

	return SetLevel(level)
}

// SetLevel sets the global log level from its configuration name
func SetLevel(level string) error {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return errors.New().WithData(errors.ErrInvalidLogLevel, level)
	}
	zerolog.SetGlobalLevel(parsed)

	return nil
}

// Debug logs a debug message
func Debug() *zerolog.Event {
	return log.Debug()
}

// Info logs an info message
func Info() *zerolog.Event {
	return log.Info()
}

// Warn logs a warning message
func Warn() *zerolog.Event {
	return log.Warn()
}

// Error logs an error message
func Error() *zerolog.Event {
	return log.Error()
}

// Fatal logs a fatal message and exits the program
func Fatal() *zerolog.Event {
	return log.Fatal()
}
