// Package logging provides the diagnostic logger for chag. Logs go to
// stderr so stdout only carries command output.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a wrapper of zap.SugaredLogger.
type Logger = *zap.SugaredLogger

// DefaultLevel is the level used until SetLogLevel is called.
const DefaultLevel = "warn"

var (
	level  = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	output zapcore.WriteSyncer = zapcore.Lock(zapcore.AddSync(os.Stderr))
)

// SetLogLevel sets the level of every logger with one of
// "debug", "info", "warn" or "error".
func SetLogLevel(name string) error {
	switch strings.ToLower(name) {
	case "debug":
		level.SetLevel(zapcore.DebugLevel)
	case "info":
		level.SetLevel(zapcore.InfoLevel)
	case "warn":
		level.SetLevel(zapcore.WarnLevel)
	case "error":
		level.SetLevel(zapcore.ErrorLevel)
	default:
		return fmt.Errorf("invalid log level: %s", name)
	}
	return nil
}

// SetOutput redirects loggers created afterwards to w. It returns a
// function restoring the previous output.
func SetOutput(w io.Writer) func() {
	prev := output
	output = zapcore.Lock(zapcore.AddSync(w))
	return func() { output = prev }
}

// New creates a named logger.
func New(name string) Logger {
	return newLogger(name)
}

// Debugf returns a printf-style function logging at debug level, for
// packages that accept a plain debug hook.
func Debugf(logger Logger) func(format string, args ...any) {
	return func(format string, args ...any) {
		logger.Debugf(format, args...)
	}
}

func newLogger(name string) Logger {
	return zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig()),
			output,
			level,
		),
	).Named(name).Sugar()
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		LevelKey:       "L",
		NameKey:        "N",
		MessageKey:     "M",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}
