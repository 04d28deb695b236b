package logger

import (
	"github.com/baditaflorin/formalized/internal/ports"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap sugared logger to ports.Logger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger builds a production zap logger. Console encoding is used unless
// jsonFormat is set; an empty file logs to stderr.
func NewZapLogger(file string, jsonFormat, debug bool) (ports.Logger, error) {
	config := zap.NewProductionConfig()
	if !jsonFormat {
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if file != "" {
		config.OutputPaths = []string{file}
	}

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: logger.Sugar()}, nil
}

// FromZap wraps an existing zap logger.
func FromZap(logger *zap.Logger) ports.Logger {
	return &ZapLogger{sugar: logger.Sugar()}
}

func (z *ZapLogger) Debug(msg string, keysAndValues ...interface{}) {
	z.sugar.Debugw(msg, keysAndValues...)
}

func (z *ZapLogger) Info(msg string, keysAndValues ...interface{}) {
	z.sugar.Infow(msg, keysAndValues...)
}

func (z *ZapLogger) Warn(msg string, keysAndValues ...interface{}) {
	z.sugar.Warnw(msg, keysAndValues...)
}

func (z *ZapLogger) Error(msg string, keysAndValues ...interface{}) {
	z.sugar.Errorw(msg, keysAndValues...)
}

// Close flushes buffered entries. Sync errors on terminals are ignored.
func (z *ZapLogger) Close() error {
	_ = z.sugar.Sync()
	return nil
}
