package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/jobtracker-backend/internal/config"
)

const redacted = "[REDACTED]"

// secretAttrs are attribute keys whose values never reach the log output,
// wherever they appear in a group.
var secretAttrs = map[string]bool{
	"api_key":       true,
	"x-api-key":     true,
	"authorization": true,
	"credential":    true,
}

// NewLogger creates the process logger on os.Stderr and installs it as the
// slog default. Format "json" is structured output; anything else is text
// with source locations. Level is debug, info, warn or error and defaults
// to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	isJSON := strings.EqualFold(cfg.Format, "json")

	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   !isJSON,
		ReplaceAttr: redactSecrets,
	}

	var handler slog.Handler
	if isJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func redactSecrets(_ []string, a slog.Attr) slog.Attr {
	if secretAttrs[strings.ToLower(a.Key)] {
		return slog.String(a.Key, redacted)
	}
	return a
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
