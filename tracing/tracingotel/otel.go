// Package tracingotel bridges tracing spans and statuses onto OpenTelemetry.
//
// OpenTelemetry only distinguishes success from failure, so the canonical code and its
// name are carried as span attributes.
package tracingotel

import (
	"context"

	"github.com/xmidt-org/tracestatus/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	CodeAttribute   = attribute.Key("status.code")
	NameAttribute   = attribute.Key("status.name")
	SpanIDAttribute = attribute.Key("xmidt.span.id")
)

// Code maps a Status onto the OpenTelemetry status code.  A nil Status is codes.Unset.
func Code(s *tracing.Status) codes.Code {
	switch {
	case s == nil:
		return codes.Unset
	case s.IsOK():
		return codes.Ok
	default:
		return codes.Error
	}
}

// SetStatus records a Status on an OpenTelemetry span, both as the span's status and as
// attributes holding the canonical code.  A nil Status does nothing.
func SetStatus(span trace.Span, s *tracing.Status) {
	if s == nil {
		return
	}

	span.SetAttributes(
		CodeAttribute.Int(s.Code().Int()),
		NameAttribute.String(s.Code().String()),
	)

	description, _ := s.Description()
	span.SetStatus(Code(s), description)
}

// Export replays finished spans through an OpenTelemetry tracer, preserving their start
// times and durations.  Each span's error, if any, is recorded before its status is set.
func Export(ctx context.Context, tracer trace.Tracer, spans ...tracing.Span) {
	for _, s := range spans {
		_, exported := tracer.Start(
			ctx,
			s.Name(),
			trace.WithTimestamp(s.Start()),
			trace.WithAttributes(SpanIDAttribute.String(s.ID())),
		)

		if err := s.Error(); err != nil {
			exported.RecordError(err)
		}

		SetStatus(exported, s.Status())
		exported.End(trace.WithTimestamp(s.Start().Add(s.Duration())))
	}
}
