// Package logger adapts zap to the ports.Logger abstraction.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger routes structured log output through a zap.SugaredLogger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZap creates a ZapLogger. Verbose enables debug-level output; otherwise
// only warnings and errors are emitted so one-shot fetches stay quiet.
func NewZap(verbose bool) *ZapLogger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return &ZapLogger{sugar: zap.NewNop().Sugar()}
	}
	return &ZapLogger{sugar: log.Sugar()}
}

// NewNop creates a logger that discards everything. Used by the watch view,
// which owns the terminal, and by tests.
func NewNop() *ZapLogger {
	return &ZapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.sugar.Debugw(msg, flatten(fields)...)
}

func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.sugar.Infow(msg, flatten(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.sugar.Warnw(msg, flatten(fields)...)
}

func (l *ZapLogger) Error(msg string, err error, fields map[string]interface{}) {
	args := flatten(fields)
	if err != nil {
		args = append(args, "error", err)
	}
	l.sugar.Errorw(msg, args...)
}

// Sync flushes buffered output before exit.
func (l *ZapLogger) Sync() {
	_ = l.sugar.Sync()
}

func flatten(fields map[string]interface{}) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}
