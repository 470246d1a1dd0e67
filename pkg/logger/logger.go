package logger

import (
	"go.uber.org/zap"
)

var base = zap.Must(zap.NewProduction())

// Init replaces the package logger. env "local" gets the human-readable
// development encoder, anything else stays on production JSON.
func Init(env string) error {
	var (
		l   *zap.Logger
		err error
	)
	if env == "local" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	base = l
	return nil
}

// L exposes the underlying zap logger for callers that need to build
// child loggers with preset fields.
func L() *zap.Logger { return base }

func Debug(msg string, fields ...zap.Field) { base.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { base.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { base.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { base.Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { base.Fatal(msg, fields...) }

// Sync flushes buffered entries; call on shutdown.
func Sync() { _ = base.Sync() }
