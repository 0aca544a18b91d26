package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// maxLogSize triggers rotation to <file>.old when exceeded at startup
const maxLogSize = 10 * 1024 * 1024

// newLogger creates a [log.Logger] on w with timestamps and caller reporting
func newLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{ReportTimestamp: true, ReportCaller: true})
}

// setupLogging returns the logger used while the screen is open
// tcell owns the terminal, so output goes to path when debug is set and is discarded otherwise
// The returned file is nil when logging is discarded
func setupLogging(path string, debug bool) (*log.Logger, *os.File, error) {
	if !debug {
		return log.New(io.Discard), nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(path, path+".old"); err != nil {
			return nil, nil, fmt.Errorf("failed to rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := newLogger(f)
	logger.SetLevel(log.DebugLevel)
	return logger, f, nil
}
