package logging

import (
	"io"
	"log/slog"
)

// Setup installs a JSON slog logger writing to w and returns its handler so
// that callers can fan it out with extra sinks later.
func Setup(w io.Writer) slog.Handler {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	return handler
}

// Attach replaces the default logger with one that writes to base and every
// extra handler.
func Attach(base slog.Handler, extra ...slog.Handler) {
	slog.SetDefault(slog.New(NewMultiHandler(append([]slog.Handler{base}, extra...)...)))
}
