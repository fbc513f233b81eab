// Package log builds the console logger for the generator CLI.
package log

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a logger that writes info messages to stdout and
// warnings and errors to stderr. Verbose mode additionally enables debug
// messages and prefixes every line with its level.
func NewLogger(stdout io.Writer, stderr io.Writer, verbose bool) *zap.SugaredLogger {
	cores := []zapcore.Core{
		stdoutCore(stdout, verbose),
		stderrCore(stderr, verbose),
	}
	return zap.New(zapcore.NewTee(cores...)).Sugar()
}

func stdoutCore(stdout io.Writer, verbose bool) zapcore.Core {
	levels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		// Log debug, info -> if verbose output enabled
		if verbose {
			return l == zapcore.DebugLevel || l == zapcore.InfoLevel
		}

		// Log info only
		return l == zapcore.InfoLevel
	})

	return zapcore.NewCore(consoleEncoder(verbose), zapcore.AddSync(stdout), levels)
}

func stderrCore(stderr io.Writer, verbose bool) zapcore.Core {
	return zapcore.NewCore(consoleEncoder(verbose), zapcore.AddSync(stderr), zapcore.WarnLevel)
}

// consoleEncoder logs the bare message; the level prefix appears only when
// verbose is enabled.
func consoleEncoder(verbose bool) zapcore.Encoder {
	levelKey := ""
	if verbose {
		levelKey = "level"
	}

	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         levelKey,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "\t",
	})
}
