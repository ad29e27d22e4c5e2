// Package logger wraps zap behind a small key/value logging API used across
// the service. Console output is always on; when a log file path is
// configured, output is additionally written through lumberjack rotation.
package logger

import (
	"os"
	"path/filepath"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap.Logger.
type Logger struct {
	*zap.Logger
}

// New creates a logger writing JSON lines to stdout, and to logFile with
// rotation when logFile is non-empty.
func New(level, logFile string) *Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		CallerKey:      "caller",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.Lock(os.Stdout),
			zapLevel,
		),
	}

	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err == nil {
			rotated := &lumberjack.Logger{
				Filename:   logFile,
				MaxSize:    50, // MB
				MaxBackups: 5,
				MaxAge:     30, // days
				Compress:   true,
				LocalTime:  true,
			}
			cores = append(cores, zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderConfig),
				zapcore.AddSync(rotated),
				zapLevel,
			))
		}
	}

	core := zapcore.NewTee(cores...)
	return &Logger{Logger: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}
}

// Info logs at info level with alternating key/value fields.
func (l *Logger) Info(msg string, fields ...interface{}) {
	l.Logger.Info(msg, toZapFields(fields...)...)
}

// Debug logs at debug level with alternating key/value fields.
func (l *Logger) Debug(msg string, fields ...interface{}) {
	l.Logger.Debug(msg, toZapFields(fields...)...)
}

// Warn logs at warn level with alternating key/value fields.
func (l *Logger) Warn(msg string, fields ...interface{}) {
	l.Logger.Warn(msg, toZapFields(fields...)...)
}

// Error logs at error level with alternating key/value fields.
func (l *Logger) Error(msg string, fields ...interface{}) {
	l.Logger.Error(msg, toZapFields(fields...)...)
}

// Fatal logs at fatal level and exits the process.
func (l *Logger) Fatal(msg string, fields ...interface{}) {
	l.Logger.Fatal(msg, toZapFields(fields...)...)
}

func toZapFields(fields ...interface{}) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for i := 0; i < len(fields); i++ {
		switch f := fields[i].(type) {
		case error:
			zapFields = append(zapFields, zap.Error(f))
		case string:
			if i+1 < len(fields) {
				zapFields = append(zapFields, zap.Any(f, fields[i+1]))
				i++
			}
		default:
			zapFields = append(zapFields, zap.Any("field", f))
		}
	}
	return zapFields
}
