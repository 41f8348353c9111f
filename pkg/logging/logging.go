package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// logger writes to stderr so the stdio MCP transport keeps stdout clean.
var (
	mu     sync.RWMutex
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// zerologLevel maps the 0-9 verbosity scale onto zerolog levels.
// Level 0 logs errors and warnings only, 3+ adds info, 5+ adds debug.
func zerologLevel(level int) zerolog.Level {
	switch {
	case level >= 5:
		return zerolog.DebugLevel
	case level >= 3:
		return zerolog.InfoLevel
	default:
		return zerolog.WarnLevel
	}
}

// Initialize configures the global logger with the given verbosity level (0-9)
func Initialize(level int) {
	mu.Lock()
	defer mu.Unlock()
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerologLevel(level))
}

// SetOutput redirects log output, primarily for tests
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Output(w)
}

// Debug logs at debug level
func Debug(format string, v ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Debug().Msgf(format, v...)
}

// Info logs at info level
func Info(format string, v ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Info().Msgf(format, v...)
}

// Warn logs at warning level
func Warn(format string, v ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Warn().Msgf(format, v...)
}

// Error logs at error level
func Error(format string, v ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Error().Msgf(format, v...)
}
