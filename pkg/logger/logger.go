// Package logger is the service's structured logging facade over zap. A
// request or job attaches fields once with WithFields; every helper called
// with the derived context carries them.
package logger

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment logs human readable lines from debug level up.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment logs JSON lines from info level up.
	ProductionEnvironment = "production"
)

//nolint:gochecknoglobals
var (
	level         = zap.NewAtomicLevel()
	defaultLogger = zap.NewNop()
)

// Setup replaces the default logger with one configured for environment.
// Unknown environments get the development configuration.
func Setup(environment string) {
	cfg := zap.NewDevelopmentConfig()
	if environment == ProductionEnvironment {
		cfg = zap.NewProductionConfig()
	}

	level.SetLevel(cfg.Level.Level())
	cfg.Level = level

	l, err := cfg.Build()
	if err != nil {
		return
	}
	defaultLogger = l.With(zap.String("env", environment))
}

// SetLevel changes the minimum level of the default logger and every logger
// derived from it. An empty name keeps the current level.
func SetLevel(name string) error {
	if name == "" {
		return nil
	}

	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	level.SetLevel(lvl)

	return nil
}

// Sync flushes buffered entries of the default logger.
func Sync() {
	_ = defaultLogger.Sync()
}

type key struct{}

// Get returns the logger bound to ctx, or the default logger.
func Get(ctx context.Context) *zap.Logger {
	if l, _ := ctx.Value(key{}).(*zap.Logger); l != nil {
		return l
	}

	return defaultLogger
}

// WithLogger binds l to the returned context.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, l)
}

// WithFields binds a child of the context's logger carrying fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// IsDebug reports whether debug entries of ctx's logger would be written.
func IsDebug(ctx context.Context) bool {
	return Get(ctx).Core().Enabled(zap.DebugLevel)
}

// Slog adapts the context's logger for libraries that take a *slog.Logger,
// such as River.
func Slog(ctx context.Context) *slog.Logger {
	return slog.New(zapslog.NewHandler(Get(ctx).Core()))
}

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

// Fatal logs at fatal level and exits the process.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
