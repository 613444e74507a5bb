// Package logger configures the application's zerolog logger. While the
// terminal interface is running, stdout belongs to it, so TUI-mode logs
// go to a file (or are discarded when none is configured).
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup returns a console logger for plain CLI commands.
//   - level: trace, debug, info, warn, error, fatal, panic
func Setup(level string) zerolog.Logger {
	return build(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}, level)
}

// SetupFile returns a logger writing JSON lines to path, for use while
// the terminal interface owns stdout. An empty path discards all output.
// The returned closer flushes and releases the file.
// nopCloser is the closer for the discard sink, which holds no file.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func SetupFile(path, level string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return build(io.Discard, level), nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	return build(f, level), f, nil
}

func build(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
