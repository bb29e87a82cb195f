package internal

import (
	"io"
	"log/slog"
	"time"
)

// NewLogger builds the process logger: JSON with RFC3339Nano timestamps in
// prod, human-readable text everywhere else.
func NewLogger(w io.Writer, env string, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	if env == "prod" {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String("time", a.Value.Time().Format(time.RFC3339Nano))
			}
			return a
		}
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		return slog.LevelInfo
	default:
		slog.Default().Warn("Invalid log level. Using default level: info", slog.String("value", level))
		return slog.LevelInfo
	}
}
