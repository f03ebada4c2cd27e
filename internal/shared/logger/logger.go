// Package logger builds the slog handlers used by the theater binary.
// Output goes to stdout as text or JSON; every record carries the service
// name so combined logs from several runs can be told apart.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/talgya/combat-theater/internal/shared/config"
)

const service = "combat-theater"

// New returns a logger writing to w at the level named in cfg.
// Unknown level names fall back to info.
func New(w io.Writer, cfg config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: Level(cfg.Level)}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if cfg.JSONFormat {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler).With("service", service)
}

// Init installs a stdout logger as the slog default.
func Init(cfg config.LoggingConfig) {
	slog.SetDefault(New(os.Stdout, cfg))
	slog.Debug("Logger initialized", "component", "logger", "level", Level(cfg.Level).String(), "json_format", cfg.JSONFormat)
}

// Level maps a name such as "debug" or "WARN" to its slog level.
func Level(name string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo
	}
	return l
}
