package logger

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// Logger is the logging interface shared by every service and the dispatcher.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
	WithFields(fields map[string]interface{}) Logger
	WithError(err error) Logger
}

// New builds a zap logger. format "json" selects the production encoder,
// anything else the development console encoder.
func New(levelStr, format string) *zap.Logger {
	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(levelStr))
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// ParseLevel is case-insensitive and falls back to info.
func ParseLevel(levelStr string) zapcore.Level {
	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(levelStr)))
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// WithRequestID tags l with the chi request ID carried by ctx, if any.
func WithRequestID(ctx context.Context, l Logger) Logger {
	id := middleware.GetReqID(ctx)
	if id == "" {
		return l
	}
	return l.WithFields(map[string]interface{}{"requestId": id})
}

type zapWrapper struct {
	l *zap.Logger
}

func wrap(l *zap.Logger) *zapWrapper {
	return &zapWrapper{l: l.WithOptions(zap.AddCallerSkip(2))}
}

func (z *zapWrapper) Debug(msg string, fields map[string]interface{}) {
	z.write(zapcore.DebugLevel, msg, fields)
}

func (z *zapWrapper) Info(msg string, fields map[string]interface{}) {
	z.write(zapcore.InfoLevel, msg, fields)
}

func (z *zapWrapper) Warn(msg string, fields map[string]interface{}) {
	z.write(zapcore.WarnLevel, msg, fields)
}

func (z *zapWrapper) Error(msg string, fields map[string]interface{}) {
	z.write(zapcore.ErrorLevel, msg, fields)
}

func (z *zapWrapper) WithFields(fields map[string]interface{}) Logger {
	return &zapWrapper{l: z.l.With(toZapFields(fields)...)}
}

func (z *zapWrapper) WithError(err error) Logger {
	return &zapWrapper{l: z.l.With(zap.Error(err))}
}

// write skips field conversion when the level is disabled.
func (z *zapWrapper) write(level zapcore.Level, msg string, fields map[string]interface{}) {
	if ce := z.l.Check(level, msg); ce != nil {
		ce.Write(toZapFields(fields)...)
	}
}

// toZapFields emits keys in sorted order so console output is stable.
func toZapFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		if err, ok := fields[k].(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, fields[k]))
	}
	return out
}

func NewStructured(levelStr, format string) Logger {
	return wrap(New(levelStr, format))
}

// NewZapAdapter wraps an existing *zap.Logger.
func NewZapAdapter(l *zap.Logger) Logger {
	return wrap(l)
}

// NewTestLogger routes output through testing.TB.
func NewTestLogger(t testing.TB) Logger {
	return wrap(zaptest.NewLogger(t))
}

func NewNoOpLogger() Logger {
	return wrap(zap.NewNop())
}
