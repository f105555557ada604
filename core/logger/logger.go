package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	log  *slog.Logger
	once sync.Once
)

func get() *slog.Logger {
	once.Do(func() {
		if log == nil {
			log = newLogger("info")
		}
	})
	return log
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// Init sets the minimum log level. Safe to skip; defaults to info.
func Init(level string) {
	log = newLogger(level)
	once.Do(func() {})
}

func Debug(msg string, args ...any) {
	get().Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	get().Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	get().Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	get().Error(msg, normalize(args)...)
}

// normalize tolerates bare error values and trailing odd arguments in the
// key/value list, so call sites can do Error("Svc:Op:Error:", err).
func normalize(args []any) []any {
	out := make([]any, 0, len(args))
	for i := 0; i < len(args); i++ {
		if err, ok := args[i].(error); ok {
			out = append(out, slog.Any("error", err))
			continue
		}
		if i+1 < len(args) {
			if key, ok := args[i].(string); ok {
				out = append(out, slog.Any(key, args[i+1]))
				i++
				continue
			}
		}
		out = append(out, slog.Any("value", args[i]))
	}
	return out
}
