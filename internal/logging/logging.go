// Package logging builds the zap loggers used across the service.
package logging

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing at level in the given format. "json" selects
// the production encoder, anything else the development console encoder.
func New(level, format string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// PanicLogger reports panics recovered by the GraphQL executor. It satisfies
// the graphql-go log.Logger interface.
type PanicLogger struct {
	Logger *zap.Logger
}

func (l PanicLogger) LogPanic(ctx context.Context, value interface{}) {
	l.Logger.Error("graphql: panic occurred", zap.Any("panic", value), zap.Stack("stack"))
}
