// Package log provides opt-in debug logging to a file. A TUI owns the
// terminal, so nothing may ever be written to stdout or stderr while the
// program runs; debugging output goes to a side file instead.
package log

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	out    io.WriteCloser
	logger = log.New(io.Discard, "", log.LstdFlags|log.Lmicroseconds)
)

// SetFile directs debug logging to the given path, creating the file if
// needed. An empty path disables logging.
func SetFile(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if out != nil {
		_ = out.Close()
		out = nil
	}
	if path == "" {
		logger.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		logger.SetOutput(io.Discard)
		return err
	}
	out = f
	logger.SetOutput(f)
	return nil
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	logger.Printf(format, args...)
}

// Close closes the debug log file if open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		return nil
	}
	err := out.Close()
	out = nil
	logger.SetOutput(io.Discard)
	return err
}
