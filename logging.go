package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger is shared by every component. It defaults to a nop so library
// code and tests stay quiet; main swaps in the real one.
var logger = zap.NewNop()

// initLogger builds a console logger on stderr. verbose lowers the level
// to debug.
func initLogger(verbose bool) error {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       true,
		DisableStacktrace: true,
		Encoding:          "console",
		EncoderConfig:     encCfg,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = l
	return nil
}
