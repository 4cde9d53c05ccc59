package logging

import (
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	defaultLogger = log.NewNopLogger()

	callerKey    interface{} = "caller"
	messageKey   interface{} = "msg"
	errorKey     interface{} = "error"
	timestampKey interface{} = "ts"

	levelFilters = map[string]level.Option{
		"DEBUG": level.AllowDebug(),
		"INFO":  level.AllowInfo(),
		"WARN":  level.AllowWarn(),
		"ERROR": level.AllowError(),
	}
)

// CallerKey returns the logging key to be used for the stack location of the logging call
func CallerKey() interface{} {
	return callerKey
}

// MessageKey returns the logging key to be used for the textual message of the log entry
func MessageKey() interface{} {
	return messageKey
}

// ErrorKey returns the logging key to be used for error instances
func ErrorKey() interface{} {
	return errorKey
}

// TimestampKey returns the logging key to be used for the timestamp
func TimestampKey() interface{} {
	return timestampKey
}

// DefaultLogger returns a global singleton NOP logger.
// This returned instance is safe for concurrent access.
func DefaultLogger() log.Logger {
	return defaultLogger
}

// New creates a go-kit Logger from a set of options.  The options object can be nil, in
// which case a logfmt logger that writes to os.Stdout is returned.
func New(o *Options) log.Logger {
	return NewWriterLogger(o, nil)
}

// NewWriterLogger is like New, but writes to w unless the options name a File.  A nil w
// falls back to os.Stdout.  The returned logger carries a UTC timestamp and filters
// according to the Level field.
func NewWriterLogger(o *Options, w io.Writer) log.Logger {
	return NewFilter(newFormatLogger(o.format(), o.output(w)), o)
}

func newFormatLogger(format string, w io.Writer) log.Logger {
	switch format {
	case FormatZap:
		// zap stamps its own time under TimestampKey
		return NewZapLogger(
			zap.New(zapcore.NewCore(
				zapcore.NewJSONEncoder(zapEncoderConfig()),
				zapcore.AddSync(w),
				zapcore.DebugLevel,
			)),
		)

	case FormatJSON:
		return log.WithPrefix(log.NewJSONLogger(w), TimestampKey(), log.DefaultTimestampUTC)

	default:
		return log.WithPrefix(log.NewLogfmtLogger(w), TimestampKey(), log.DefaultTimestampUTC)
	}
}

func zapEncoderConfig() zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = timestampKey.(string)
	ec.MessageKey = messageKey.(string)
	ec.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	return ec
}

// NewFilter applies the Options filtering rules in the package to an arbitrary go-kit Logger.
func NewFilter(next log.Logger, o *Options) log.Logger {
	allow, ok := levelFilters[strings.ToUpper(o.level())]
	if !ok {
		allow = level.AllowError()
	}

	return level.NewFilter(next, allow)
}

func leveled(next log.Logger, value level.Value, keyvals []interface{}) log.Logger {
	return log.WithPrefix(
		next,
		append([]interface{}{CallerKey(), log.DefaultCaller, level.Key(), value}, keyvals...)...,
	)
}

// Error places both the caller and a constant error level into the prefix of the returned logger.
// Additional key value pairs may also be added.
func Error(next log.Logger, keyvals ...interface{}) log.Logger {
	return leveled(next, level.ErrorValue(), keyvals)
}

// Info is the info level analog of Error
func Info(next log.Logger, keyvals ...interface{}) log.Logger {
	return leveled(next, level.InfoValue(), keyvals)
}

// Warn is the warn level analog of Error
func Warn(next log.Logger, keyvals ...interface{}) log.Logger {
	return leveled(next, level.WarnValue(), keyvals)
}

// Debug is the debug level analog of Error
func Debug(next log.Logger, keyvals ...interface{}) log.Logger {
	return leveled(next, level.DebugValue(), keyvals)
}
