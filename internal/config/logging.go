package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the process-wide logger. Use GetLogger or ComponentLogger to read
// it safely.
//
//nolint:gochecknoglobals // Shared structured logger.
var Logger zerolog.Logger

//nolint:gochecknoglobals // Guarded by logMu.
var (
	logMu         sync.RWMutex
	logFileHandle *os.File
)

// InitLogger replaces Logger with one at level that writes to stderr and,
// when file is set, appends to file as well. Unknown or empty levels mean
// info. A previously opened log file is closed.
func InitLogger(level, file string) error {
	logMu.Lock()
	defer logMu.Unlock()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	closeLogFileLocked()

	var out io.Writer = newConsoleWriter()
	if file != "" {
		f, openErr := openLogFile(file)
		if openErr != nil {
			return openErr
		}
		logFileHandle = f
		out = zerolog.MultiLevelWriter(out, f)
	}

	Logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return nil
}

// openLogFile opens file for appending, creating it and its directory.
func openLogFile(file string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(file), 0o700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

// CloseLogFile closes the log file, if any, and keeps logging to stderr at
// the current level.
func CloseLogFile() {
	logMu.Lock()
	defer logMu.Unlock()
	closeLogFileLocked()
}

// closeLogFileLocked must be called with logMu held.
func closeLogFileLocked() {
	if logFileHandle == nil {
		return
	}
	_ = logFileHandle.Close()
	logFileHandle = nil
	Logger = zerolog.New(newConsoleWriter()).Level(Logger.GetLevel()).With().Timestamp().Logger()
}

// newConsoleWriter writes to stderr; interactive lists own stdout.
func newConsoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
}

// GetLogger returns the current Logger.
func GetLogger() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return Logger
}

// ComponentLogger returns the current Logger tagged with a component field.
func ComponentLogger(component string) zerolog.Logger {
	return GetLogger().With().Str("component", component).Logger()
}

func isLogLevel(level string) bool {
	_, err := zerolog.ParseLevel(level)
	return err == nil
}

//nolint:gochecknoinits // Logging must work before configuration is loaded.
func init() {
	_ = InitLogger("info", "")
}
