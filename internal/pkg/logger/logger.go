package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/radityabs/rutevis/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is our application logger. It writes structured JSON to stdout,
// optionally to a file, and forwards entries to New Relic when licensed.
type ZapLogger struct {
	*zap.Logger
	sugar       *zap.SugaredLogger
	nrApp       *newrelic.Application
	serviceName string
	filePath    string
	file        *os.File
}

// newRelicCore is a zapcore.Core that forwards logs to New Relic
type newRelicCore struct {
	encoder     zapcore.Encoder
	level       zapcore.Level
	nrApp       *newrelic.Application
	serviceName string
}

// Enabled returns true if the given level is enabled
func (c *newRelicCore) Enabled(level zapcore.Level) bool {
	return c.level.Enabled(level)
}

// With returns a new core with the given fields added
func (c *newRelicCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	return &clone
}

// Check determines whether the supplied entry should be written
func (c *newRelicCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

// Write logs the entry to New Relic
func (c *newRelicCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	if c.nrApp == nil {
		return nil
	}

	// Convert Zap fields to map
	encoder := zapcore.NewMapObjectEncoder()
	for _, field := range fields {
		field.AddTo(encoder)
	}

	logData := newrelic.LogData{
		Timestamp:  entry.Time.UnixMilli(),
		Message:    entry.Message,
		Severity:   entry.Level.String(),
		Attributes: encoder.Fields,
	}

	if logData.Attributes == nil {
		logData.Attributes = make(map[string]any)
	}
	logData.Attributes["service"] = c.serviceName
	logData.Attributes["caller"] = entry.Caller.TrimmedPath()

	if entry.Stack != "" {
		logData.Attributes["stacktrace"] = entry.Stack
	}

	c.nrApp.RecordLog(logData)
	return nil
}

// Sync is a no-op for New Relic core
func (c *newRelicCore) Sync() error {
	return nil
}

// ZapConfig holds Zap logger configuration
type ZapConfig struct {
	Level       string `json:"level"`
	FilePath    string `json:"file_path"`
	ServiceName string `json:"service_name"`
}

// NewZapLogger creates a new Zap application logger
func NewZapLogger(config ZapConfig, nrApp *newrelic.Application) (*ZapLogger, error) {
	// Parse log level
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewJSONEncoder(encoderConfig)

	var cores []zapcore.Core

	// Console output (always enabled)
	cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level))

	zapLogger := &ZapLogger{
		nrApp:       nrApp,
		serviceName: config.ServiceName,
		filePath:    config.FilePath,
	}

	// File output if path is provided
	if config.FilePath != "" {
		if err := zapLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(zapLogger.file), level))
	}

	// New Relic log forwarding if app is available
	if nrApp != nil {
		cores = append(cores, &newRelicCore{
			encoder:     encoder,
			level:       level,
			nrApp:       nrApp,
			serviceName: config.ServiceName,
		})
	}

	core := zapcore.NewTee(cores...)
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	zapLogger.Logger = logger
	zapLogger.sugar = logger.Sugar()

	return zapLogger, nil
}

// InitZapLoggerFromConfig creates a logger from the application configuration
// and installs it as the global logger.
func InitZapLoggerFromConfig(configs *models.Config, nrApp *newrelic.Application) (*ZapLogger, error) {
	zapLogger, err := NewZapLogger(ZapConfig{
		Level:       configs.Logger.Level,
		FilePath:    configs.Logger.FilePath,
		ServiceName: configs.App.Name,
	}, nrApp)
	if err != nil {
		return nil, err
	}

	SetGlobalLogger(zapLogger)
	return zapLogger, nil
}

// setupFileOutput configures file output for the logger
func (zl *ZapLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	zl.file = file
	return nil
}

// Close closes the log file and syncs the logger
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()
	_ = zl.sugar.Sync()

	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}

// WithNewRelicContext adds trace correlation fields from a transaction
func (zl *ZapLogger) WithNewRelicContext(txn *newrelic.Transaction) *zap.Logger {
	fields := []zap.Field{}

	if txn != nil {
		if mdw := txn.GetLinkingMetadata(); mdw.TraceID != "" {
			fields = append(fields,
				zap.String("trace.id", mdw.TraceID),
				zap.String("span.id", mdw.SpanID),
			)
		}
	}

	return zl.Logger.With(fields...)
}

// LogHTTPRequest logs an HTTP request with all relevant context
func (zl *ZapLogger) LogHTTPRequest(txn *newrelic.Transaction, method, path, clientIP, requestID string, statusCode int, latency time.Duration, err error) {
	logger := zl.WithNewRelicContext(txn).With(
		zap.String("service", zl.serviceName),
		zap.Int("status", statusCode),
		zap.String("latency", latency.String()),
		zap.Int64("latency_ms", latency.Milliseconds()),
		zap.String("client_ip", clientIP),
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
	)

	msg := "HTTP request"
	switch {
	case err != nil:
		logger.Error(msg, zap.Error(err))
	case statusCode >= 500:
		logger.Error(msg)
	case statusCode >= 400:
		logger.Warn(msg)
	default:
		logger.Info(msg)
	}
}
