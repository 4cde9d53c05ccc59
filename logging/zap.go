package logging

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapLogger adapts a zap.Logger onto the go-kit Logger interface
type zapLogger struct {
	*zap.Logger
}

// NewZapLogger produces a go-kit Logger that writes to the given zap.Logger.  The go-kit
// level, if present, selects the zap level and the MessageKey value becomes the zap message.
// Every other key/value pair becomes a zap field.  A nil zap.Logger produces DefaultLogger().
func NewZapLogger(l *zap.Logger) log.Logger {
	if l == nil {
		return DefaultLogger()
	}

	return zapLogger{l}
}

func (zl zapLogger) Log(keyvals ...interface{}) error {
	var (
		lvl    = zapcore.InfoLevel
		msg    string
		fields = make([]zap.Field, 0, len(keyvals)/2)
	)

	for i := 0; i+1 < len(keyvals); i += 2 {
		k, v := keyvals[i], keyvals[i+1]
		switch {
		case k == level.Key():
			lvl = zapLevel(v)

		case k == MessageKey():
			msg = fmt.Sprint(v)

		default:
			fields = append(fields, zap.Any(fmt.Sprint(k), v))
		}
	}

	if ce := zl.Logger.Check(lvl, msg); ce != nil {
		ce.Write(fields...)
	}

	return nil
}

func zapLevel(v interface{}) zapcore.Level {
	if lv, ok := v.(level.Value); ok {
		switch lv.String() {
		case "debug":
			return zapcore.DebugLevel
		case "warn":
			return zapcore.WarnLevel
		case "error":
			return zapcore.ErrorLevel
		}
	}

	return zapcore.InfoLevel
}
