// Package logging builds the console logger shared by the command line tools.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// ANSI colors for whole-line level coloring.
const (
	grey          = "\033[38;5;240m"
	boldLightGrey = "\033[1;38;5;240m"
	red           = "\033[38;5;9m"
	yellow        = "\033[38;5;11m"
	reset         = "\033[0m"
)

// fullLineColorLevelEncoder starts the line in the level's color; the line
// ending resets it.
func fullLineColorLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var color string
	switch l {
	case zapcore.DebugLevel:
		color = grey
	case zapcore.InfoLevel:
		color = boldLightGrey
	case zapcore.WarnLevel:
		color = yellow
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		color = red
	default:
		color = reset
	}
	enc.AppendString(color + l.CapitalString())
}

// Level returns the level New uses: warn by default, info when verbose,
// debug when debug.
func Level(verbose, debug bool) zapcore.Level {
	switch {
	case debug:
		return zapcore.DebugLevel
	case verbose:
		return zapcore.InfoLevel
	}
	return zapcore.WarnLevel
}

// New creates a console logger writing to w (stderr when nil). Lines are
// colored only when w is a terminal.
func New(w io.Writer, verbose, debug bool) *zap.Logger {
	if w == nil {
		w = os.Stderr
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = ""
	cfg.LevelKey = "L"
	cfg.NameKey = "N"
	cfg.FunctionKey = ""
	cfg.MessageKey = "M"
	cfg.StacktraceKey = "S"
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	cfg.ConsoleSeparator = " "
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if isTerminal(w) {
		cfg.EncodeLevel = fullLineColorLevelEncoder
		cfg.LineEnding = reset + zapcore.DefaultLineEnding
	}

	var opts []zap.Option
	if debug {
		cfg.CallerKey = "C"
		opts = append(opts, zap.AddCaller())
	} else {
		cfg.CallerKey = ""
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), Level(verbose, debug))
	return zap.New(core, opts...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
