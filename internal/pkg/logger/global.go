package logger

import (
	"context"
	"sync"

	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
)

var (
	// globalLogger holds the singleton logger instance
	globalLogger *ZapLogger
	// once ensures the fallback logger is initialized only once
	once sync.Once
	// mu protects access to the global logger
	mu sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance.
// If no logger is set, it returns a default logger.
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	defer mu.RUnlock()

	if globalLogger == nil {
		once.Do(func() {
			defaultLogger, _ := zap.NewProduction()
			globalLogger = &ZapLogger{
				Logger: defaultLogger,
				sugar:  defaultLogger.Sugar(),
			}
		})
	}

	return globalLogger
}

// Global logger convenience functions

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}

// Context-aware variants add New Relic trace correlation when a transaction
// is carried in the context.

func withCtx(ctx context.Context) *zap.Logger {
	l := GetGlobalLogger()
	if txn := newrelic.FromContext(ctx); txn != nil {
		return l.WithNewRelicContext(txn)
	}
	return l.Logger
}

// InfoCtx logs an info message with trace correlation from the context
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	withCtx(ctx).Info(msg, fields...)
}

// WarnCtx logs a warning message with trace correlation from the context
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	withCtx(ctx).Warn(msg, fields...)
}

// ErrorCtx logs an error message with trace correlation from the context
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	withCtx(ctx).Error(msg, fields...)
}
