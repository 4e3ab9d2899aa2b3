// Package logging builds the zerolog loggers used by the commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing to w at the named level. Pretty output uses
// zerolog's console writer; otherwise each event is a JSON line.
func New(w io.Writer, level string, pretty bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// DefaultLogDir returns ~/.cubeguess/logs.
func DefaultLogDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubeguess", "logs"), nil
}

// OpenSessionLog creates a timestamped JSONL file in dir for one play
// session. The terminal belongs to the game while it runs, so play logs go
// to a file instead of stderr.
func OpenSessionLog(dir string, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	name := fmt.Sprintf("play_%s.jsonl", now.Format("20060102_150405"))
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}
	return f, nil
}
