package logger

import (
	"log/slog"
	"os"
)

var Logger *slog.Logger

func InitLogger() *slog.Logger {
	config := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	Logger = slog.New(slog.NewTextHandler(os.Stdout, config))
	slog.SetDefault(Logger)

	return Logger
}

// SafeError logs through the package logger, initializing it on first use so
// call sites never have to nil-check during tests.
func SafeError(msg string, args ...any) {
	if Logger == nil {
		InitLogger()
	}
	Logger.Error(msg, args...)
}

// SafeInfo logs through the package logger, initializing it on first use.
func SafeInfo(msg string, args ...any) {
	if Logger == nil {
		InitLogger()
	}
	Logger.Info(msg, args...)
}

// SafeWarn logs through the package logger, initializing it on first use.
func SafeWarn(msg string, args ...any) {
	if Logger == nil {
		InitLogger()
	}
	Logger.Warn(msg, args...)
}
