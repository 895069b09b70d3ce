// Package logging provides the optional debug log. The UI never prints
// errors itself, so this file sink is the only diagnostic surface.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Discard is a logger that drops everything. Used whenever no log file
// is configured.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// Open appends to the given log file and returns a debug-level logger
// plus a closer for the underlying file.
func Open(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return nil, nil, fmt.Errorf("log path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}
