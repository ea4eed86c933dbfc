// Package logging builds the zap loggers used by the rope front ends.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"honnef.co/go/rope"
)

type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel parses debug, info, warn or error, ignoring case. The empty
// string is info.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func (l Level) String() string {
	return toZapLevel(l).String()
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zap.DebugLevel
	case LevelInfo:
		return zap.InfoLevel
	case LevelWarn:
		return zap.WarnLevel
	case LevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// New returns a JSON logger writing to output, which is a path or one of
// "stderr" and "stdout". An output of "none" returns a no-op logger.
func New(level Level, output string) (*zap.Logger, error) {
	if output == "none" {
		return zap.NewNop(), nil
	}
	if output == "" {
		output = "stderr"
	}
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(toZapLevel(level)),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// Point returns a field that encodes p as an object with x and y keys.
func Point(key string, p rope.Point) zap.Field {
	return zap.Object(key, zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddFloat64("x", p.X)
		enc.AddFloat64("y", p.Y)
		return nil
	}))
}

// Spring returns a field describing a spring's constants and its derived
// damping ratio and stability bound.
func Spring(key string, p rope.SpringParams) zap.Field {
	return zap.Object(key, zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddFloat64("mass", p.Mass)
		enc.AddFloat64("stiffness", p.Stiffness)
		enc.AddFloat64("damping", p.Damping)
		enc.AddFloat64("damping_ratio", p.DampingRatio())
		enc.AddFloat64("stable_step", p.StableStep())
		return nil
	}))
}
