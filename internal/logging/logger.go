// Package logging builds the application logger.
//
// The terminal belongs to the UI, so logs go to a file under the XDG state
// directory unless configured otherwise.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/reel/internal/config"
)

// DefaultFile returns the default log file path, creating its directory.
func DefaultFile() (string, error) {
	return xdg.StateFile(filepath.Join("reel", "reel.log"))
}

// Open resolves the log destination. The returned closer is a no-op for
// stderr.
func Open(cfg config.LogConfig) (io.Writer, func() error, error) {
	path := cfg.File
	switch path {
	case "-":
		return os.Stderr, func() error { return nil }, nil
	case "":
		p, err := DefaultFile()
		if err != nil {
			return nil, nil, fmt.Errorf("log path: %w", err)
		}
		path = p
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}

// New creates a slog logger backed by a charmbracelet/log handler.
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	var formatter log.Formatter
	switch cfg.Format {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	default:
		formatter = log.TextFormatter
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "reel",
		Formatter:       formatter,
		Level:           parseLevel(cfg.Level),
	})
	return slog.New(handler)
}

func parseLevel(s string) log.Level {
	switch s {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
