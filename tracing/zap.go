package tracing

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// MarshalLogObject allows a Status to be logged as a zap object, e.g. zap.Object("status", s).
// A Status without a description omits that field.
func (s *Status) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt(CodeKey, s.code.Int())
	enc.AddString("name", s.code.String())
	if s.hasDescription {
		enc.AddString(DescriptionKey, s.description)
	}

	return nil
}

type zapSpan struct {
	Span
}

func (zs zapSpan) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString(SpanIDKey, zs.ID())
	enc.AddString(SpanNameKey, zs.Name())
	enc.AddTime(StartKey, zs.Start().UTC())
	enc.AddDuration(DurationKey, zs.Duration())
	if err := zs.Error(); err != nil {
		enc.AddString("error", err.Error())
	}

	return enc.AddObject("status", zs.Status())
}

// ZapSpan produces a zap field describing a span, keyed by "span".
func ZapSpan(s Span) zap.Field {
	return zap.Object(SpanNameKey, zapSpan{s})
}
