// Package logging owns the process-wide structured logger.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for the -v flag count.
const (
	VerbosityQuiet = 0 // warnings and errors only
	VerbosityInfo  = 1 // -v: phase progress
	VerbosityDebug = 2 // -vv: every written file
)

// Logger is the global logger. It is a no-op until Initialize is called, so
// packages can log unconditionally (tests included).
var Logger = zap.NewNop().Sugar()

// Options configures Initialize.
type Options struct {
	JSON      bool
	Verbosity int
	// Output defaults to stderr so stdout stays clean for command output.
	Output zapcore.WriteSyncer
}

// Initialize replaces the global logger.
func Initialize(opts Options) error {
	out := opts.Output
	if out == nil {
		out = zapcore.Lock(os.Stderr)
	}
	level := zap.NewAtomicLevelAt(VerbosityToLevel(opts.Verbosity))

	var encoder zapcore.Encoder
	if opts.JSON {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		if opts.Output != nil {
			cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	Logger = zap.New(zapcore.NewCore(encoder, out, level)).Sugar()
	return nil
}

// VerbosityToLevel maps a -v count to a zap level.
//
//	0     -> WarnLevel
//	1     -> InfoLevel
//	2+    -> DebugLevel
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityQuiet:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Sync flushes buffered log entries. Errors from syncing a terminal are ignored.
func Sync() {
	_ = Logger.Sync()
}
