package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var L *zap.Logger

func init() {
	// Default logger so packages can log before Init runs (tests, tools)
	L = zap.NewNop()
}

// Init builds the process-wide logger. Development gets a human-readable
// console encoder, everything else structured JSON.
func Init(env string) error {
	var config zap.Config
	if env == "development" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "ts"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	built, err := config.Build()
	if err != nil {
		return err
	}
	L = built
	return nil
}

// Sync flushes buffered log entries
func Sync() {
	_ = L.Sync()
}

// WithComponent returns a logger tagged with a component field, used by
// handlers, services and middleware.
func WithComponent(component string) *zap.Logger {
	return L.With(zap.String("component", component))
}
