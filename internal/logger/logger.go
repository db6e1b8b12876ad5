// Package logger builds the zap logger shared by the serve and score commands.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the encoding and verbosity of the logger.
type Options struct {
	// JSON switches from human-readable console lines to JSON records.
	JSON bool
	// Debug lowers the level from info to debug.
	Debug bool
}

// New returns a zap logger for the scoring service. All output goes to
// stderr; stdout is reserved for score reports.
func New(opts Options) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	if opts.JSON {
		cfg.Encoding = "json"
	}
	if opts.Debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return cfg.Build()
}
