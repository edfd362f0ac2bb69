// Package logger owns the process-wide structured logger backed by zerolog.
// Call Setup once at startup; Get returns the configured logger anywhere else.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu       sync.Mutex
	instance zerolog.Logger
	ready    bool
)

// Setup configures the process logger. Level is one of trace, debug, info,
// warn, error (default info). Pretty switches to human-friendly console
// output; leave it off in production to emit pure JSON. A nil out defaults
// to os.Stdout. Repeated calls reconfigure the logger.
func Setup(level string, pretty bool, out io.Writer) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	zerolog.TimeFieldFormat = time.RFC3339Nano

	if out == nil {
		out = os.Stdout
	}
	if pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl := parseLevel(level)
	instance = zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Logger()
	ready = true

	return instance
}

// Get returns the process logger. Before Setup it returns a plain stderr
// logger so early failures are still visible.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !ready {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	return instance
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
