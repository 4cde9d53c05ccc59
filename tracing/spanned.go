package tracing

// Spanned can be implemented by message objects to describe the spans
// involved in producing the message.  Generally, this interface should
// be implemented on transient objects that pass through the layers
// of an application.
type Spanned interface {
	Spans() []Span
}

// Spans extracts the slice of Span instances from a container, if possible.
//
//   If container implements Spanned, then container.Spans() is returned with a true.
//   If container is a Span, a slice of that one element is returned with a true.
//   If container is a []Span or a SpanError, it's returned as a []Span with a true.
//   Otherwise, this function returns nil, false.
func Spans(container interface{}) ([]Span, bool) {
	switch v := container.(type) {
	case Span:
		return []Span{v}, true
	case []Span:
		return v, true
	case SpanError:
		return []Span(v), true
	case Spanned:
		return v.Spans(), true
	default:
		return nil, false
	}
}

// Outcome summarizes a set of spans as a single Status: the Status of the first span
// that did not succeed.  If every span succeeded, or there are no spans, the shared
// OKStatus is returned.
func Outcome(spans ...Span) *Status {
	for _, s := range spans {
		if status := s.Status(); !status.IsOK() {
			return status
		}
	}

	return okStatus
}

// Failed returns a SpanError containing only the spans that did not succeed.  If every
// span succeeded, this function returns nil.
func Failed(spans ...Span) SpanError {
	var failed SpanError
	for _, s := range spans {
		if !s.Status().IsOK() {
			failed = append(failed, s)
		}
	}

	return failed
}
