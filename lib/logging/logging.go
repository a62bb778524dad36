// Package logging provides the shared zap logger for plugins and middlewares.
// Level comes from env LOG_LEVEL (debug, info, warn, error); default is info.
package logging

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once sync.Once
	base *zap.Logger
)

// L returns the process-wide logger, building it on first use.
func L() *zap.Logger {
	once.Do(func() {
		base = build(os.Getenv("LOG_LEVEL"))
	})
	return base
}

// Named returns a child logger tagged with a plugin or middleware name.
func Named(name string) *zap.Logger {
	return L().Named(name)
}

func build(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func parseLevel(s string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
