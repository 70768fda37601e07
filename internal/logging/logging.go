// Package logging builds the structured logger used by the commands.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a tint-formatted logger writing to w. Empty string attributes
// are dropped and timestamps are printed in UTC with millisecond precision.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				a.Value = slog.StringValue(formatRFC3339Millis(a.Value.Time()))
			}
			if s, ok := a.Value.Any().(string); ok && s == "" {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// Level picks the logger level: debug when verbose, otherwise configured.
func Level(configured slog.Level, verbose bool) slog.Level {
	if verbose && configured > slog.LevelDebug {
		return slog.LevelDebug
	}
	return configured
}

func formatRFC3339Millis(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
