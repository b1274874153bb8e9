package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/batch-dashboard/internal/config"
)

// NewLogger builds the process logger on stderr and installs it as
// slog.Default. See NewLoggerTo for the accepted settings.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	return NewLoggerTo(os.Stderr, cfg)
}

// NewLoggerTo builds a logger writing to w and installs it as slog.Default.
// Format "json" is for the server; anything else gives text, which the
// dashboard uses for its log file. Level names are case-insensitive and an
// unknown level means info. Text output at debug carries source locations.
func NewLoggerTo(w io.Writer, cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.Level))); err != nil {
		level = slog.LevelInfo
	}

	json := strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: !json && level <= slog.LevelDebug,
	}

	var h slog.Handler = slog.NewTextHandler(w, opts)
	if json {
		h = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}
