package logger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"maildigest-backend/pkg/trace"
)

// New builds a production JSON logger at the given level ("debug", "info", ...).
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// WithRequestID adds the request id from ctx to logger, if there is one.
func WithRequestID(ctx context.Context, logger *zap.Logger) *zap.Logger {
	if id := trace.FromContext(ctx); id != "" {
		return logger.With(zap.String("request_id", id))
	}
	return logger
}
