// Package logging builds the console logger used by the CLI and the site
// builder.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// Console levels accepted by New.
const (
	LevelNone   = "none"
	LevelQuiet  = "quiet"
	LevelNormal = "normal"
	LevelDebug  = "debug"
)

// ErrUnknownLevel indicates an unsupported console level.
var ErrUnknownLevel = errors.New("unknown log level")

// New returns a zap logger writing info and debug entries to stdout and
// errors to stderr. Level "none" discards everything, "quiet" keeps errors.
func New(level string, stdout, stderr io.Writer) (*zap.Logger, error) {
	var lowFloor zapcore.Level
	switch strings.ToLower(level) {
	case LevelNone:
		return zap.NewNop(), nil
	case LevelQuiet:
		lowFloor = zapcore.ErrorLevel // disables the stdout core
	case "", LevelNormal:
		lowFloor = zapcore.InfoLevel
	case LevelDebug:
		lowFloor = zapcore.DebugLevel
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lowFloor <= lvl && lvl < zapcore.ErrorLevel
	})
	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(stdout), lowPriority),
		zapcore.NewCore(newEncoder(ec), zapcore.AddSync(stderr), highPriority),
	)
	return zap.New(core), nil
}

// consoleEnc drops the verbose form of error fields so wrapped errors
// print as a single line.
type consoleEnc struct {
	zapcore.Encoder
}

func newEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	return consoleEnc{zapcore.NewConsoleEncoder(cfg)}
}

func (c consoleEnc) Clone() zapcore.Encoder {
	return consoleEnc{c.Encoder.Clone()}
}

func (c consoleEnc) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	newFields := make([]zapcore.Field, 0, len(fields))
	for _, f := range fields {
		if f.Type == zapcore.ErrorType {
			if e, ok := f.Interface.(error); ok {
				f.Interface = errors.New(e.Error())
			}
		}
		newFields = append(newFields, f)
	}
	return c.Encoder.EncodeEntry(ent, newFields)
}
