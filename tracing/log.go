package tracing

import (
	"context"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/xmidt-org/tracestatus/logging"
)

const (
	SpanIDKey      = "spanID"
	SpanNameKey    = "span"
	StartKey       = "start"
	DurationKey    = "duration"
	CodeKey        = "code"
	DescriptionKey = "description"
)

// LogSpans writes one entry per span to the given logger.  Successful spans are logged
// at the info level, and spans with any other Status are logged at the error level along
// with their error.  A nil logger is treated as logging.DefaultLogger().
func LogSpans(logger log.Logger, spans ...Span) {
	if logger == nil {
		logger = logging.DefaultLogger()
	}

	for _, s := range spans {
		status := s.Status()
		keyvals := []interface{}{
			SpanIDKey, s.ID(),
			SpanNameKey, s.Name(),
			StartKey, s.Start().UTC(),
			DurationKey, s.Duration(),
			CodeKey, status.Code(),
		}

		if description, ok := status.Description(); ok {
			keyvals = append(keyvals, DescriptionKey, description)
		}

		if status.IsOK() {
			level.Info(logger).Log(append(keyvals, logging.MessageKey(), "span finished")...)
		} else {
			level.Error(logger).Log(append(keyvals, logging.MessageKey(), "span failed", logging.ErrorKey(), s.Error())...)
		}
	}
}

// LogSpansContext is LogSpans using the logger carried by ctx, as established with
// logging.WithLogger.  With no logger in the context, nothing is written.
func LogSpansContext(ctx context.Context, spans ...Span) {
	LogSpans(logging.GetLogger(ctx), spans...)
}
