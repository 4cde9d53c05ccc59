package tracing

import (
	"time"

	"github.com/segmentio/ksuid"
)

// Spanner acts as a factory for Spans
type Spanner interface {
	// Start begins a new, unfinished span.  The returned closure must be called
	// to finished the span, recording it with a duration, the given error, and the Status
	// derived from that error.  The returned closure is idempotent and only records the
	// first call.  It always returns the same Span instance.
	Start(string) func(error) Span
}

type SpannerOption func(*spanner)

// Now sets a now function on a spanner.  If now is nil, this option does nothing.
func Now(now func() time.Time) SpannerOption {
	return func(sp *spanner) {
		if now != nil {
			sp.now = now
		}
	}
}

// Since sets a since function on a spanner.  If since is nil, this option does nothing.
func Since(since func(time.Time) time.Duration) SpannerOption {
	return func(sp *spanner) {
		if since != nil {
			sp.since = since
		}
	}
}

// StatusFunc sets the strategy for turning a span's error into its Status.  By default,
// StatusFromError is used.  If f is nil, this option does nothing.  A nil Status returned
// from f is recorded as StatusFromError would record the error.
func StatusFunc(f func(error) *Status) SpannerOption {
	return func(sp *spanner) {
		if f != nil {
			sp.status = f
		}
	}
}

// NewSpanner constructs a new Spanner with the given options
func NewSpanner(o ...SpannerOption) Spanner {
	sp := &spanner{
		now:    time.Now,
		since:  time.Since,
		status: StatusFromError,
	}

	for _, option := range o {
		option(sp)
	}

	return sp
}

type spanner struct {
	now    func() time.Time
	since  func(time.Time) time.Duration
	status func(error) *Status
}

func (sp *spanner) Start(name string) func(error) Span {
	s := &span{
		id:    ksuid.New().String(),
		name:  name,
		start: sp.now(),
	}

	return func(err error) Span {
		status := sp.status(err)
		if status == nil {
			status = StatusFromError(err)
		}

		s.finish(sp.since(s.start), err, status)
		return s
	}
}
