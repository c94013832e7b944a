// Package logging sets up the session log file. The terminal belongs to
// the renderer, so diagnostics never touch stdout.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// LogFilePath builds a per-session log file path.
func LogFilePath(logsDir string, sessionStart time.Time) string {
	return filepath.Join(logsDir, fmt.Sprintf("howitzer.%s.log", sessionStart.Format("20060102_150405")))
}

// Setup creates the logs directory and returns a file-backed logger.
// The caller closes the returned closer on shutdown.
func Setup(logsDir, level string) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return zerolog.Nop(), nil, err
	}
	f, err := os.Create(LogFilePath(logsDir, time.Now()))
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	logger := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	return logger, f, nil
}
