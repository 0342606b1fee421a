// Package logger provides the session log.  The log always goes to a
// file, never to standard output: stdout belongs to the menu interface
// and mixing log lines into it would garble the prompts.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Log is the process-wide logger.  Until Init is called it discards
// everything, so packages can log unconditionally.
var Log = slog.New(slog.NewTextHandler(io.Discard, nil))

// Init points Log at the given file, creating or appending as needed.
func Init(path string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	Log = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return nil
}
