package telemetry

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var slogOnce sync.Once

// InitSlog installs the default text handler, honoring LOG_LEVEL
// (debug/info/warn/error, defaults to info).
func InitSlog() {
	slogOnce.Do(func() {
		level := slog.LevelInfo
		switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}

		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})
		slog.SetDefault(slog.New(handler))
	})
}
