package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	StdoutFile = "stdout"
	StderrFile = "stderr"

	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
	FormatZap    = "zap"
)

var ErrUnknownFormat = errors.New("unknown log format")

// Options stores the configuration of a Logger.  Lumberjack is used for rolling files.
type Options struct {
	// File is the system file path for the log file.  The special values "stdout" and "stderr"
	// select the corresponding standard stream.  When unset, callers that supply their own
	// writer get that writer, and New uses os.Stdout.
	File string `json:"file"`

	// MaxSize is the lumberjack MaxSize
	MaxSize int `json:"maxsize"`

	// MaxAge is the lumberjack MaxAge
	MaxAge int `json:"maxage"`

	// MaxBackups is the lumberjack MaxBackups
	MaxBackups int `json:"maxbackups"`

	// Format selects the encoding of each entry:  "logfmt" (the default), "json", or "zap".
	// The zap format writes zap's production JSON encoding through NewZapLogger.
	Format string `json:"format"`

	// Level is the error level to output: ERROR, INFO, WARN, or DEBUG.  Any unrecognized string,
	// including the empty string, is equivalent to passing ERROR.
	Level string `json:"level"`
}

// Validate checks that the Format is one this package knows how to produce
func (o *Options) Validate() error {
	switch o.format() {
	case FormatLogfmt, FormatJSON, FormatZap:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, o.Format)
	}
}

// output returns the writer named by File, or fallback when no file is configured
func (o *Options) output(fallback io.Writer) io.Writer {
	var file string
	if o != nil {
		file = o.File
	}

	switch file {
	case "":
		if fallback != nil {
			return fallback
		}

		return log.NewSyncWriter(os.Stdout)

	case StdoutFile:
		return log.NewSyncWriter(os.Stdout)

	case StderrFile:
		return log.NewSyncWriter(os.Stderr)

	default:
		return &lumberjack.Logger{
			Filename:   o.File,
			MaxSize:    o.MaxSize,
			MaxAge:     o.MaxAge,
			MaxBackups: o.MaxBackups,
		}
	}
}

func (o *Options) format() string {
	if o != nil && len(o.Format) > 0 {
		return strings.ToLower(o.Format)
	}

	return FormatLogfmt
}

func (o *Options) level() string {
	if o != nil {
		return o.Level
	}

	return ""
}
