package logger

import (
	"log/slog"
	"os"
)

// New returns a structured JSON logger with source location enabled. Level
// accepts the slog level strings DEBUG, INFO, WARN, and ERROR; anything else
// falls back to ERROR.
func New(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     lvl,
	}))
}
