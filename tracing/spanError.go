package tracing

import "bytes"

// SpanError is a simple slice of Spans that implements error.  To be meaningful,
// at least (1) Span in the slice must have failed, i.e. have a non-OK Status.
type SpanError []Span

func (se SpanError) String() string {
	return se.Error()
}

// Error reports each failed span as a quoted, comma-separated list of "name: status" entries.
func (se SpanError) Error() string {
	var output bytes.Buffer
	for _, s := range se {
		status := s.Status()
		if status.IsOK() {
			continue
		}

		if output.Len() > 0 {
			output.WriteRune(',')
		}

		output.WriteRune('"')
		output.WriteString(s.Name())
		output.WriteString(": ")
		if err := s.Error(); err != nil {
			output.WriteString(err.Error())
		} else {
			output.WriteString(status.Code().String())
		}

		output.WriteRune('"')
	}

	return output.String()
}

// Status returns the Status of the first failed span, which makes a SpanError a Statuser.
// If no span failed, the shared OKStatus is returned.
func (se SpanError) Status() *Status {
	return Outcome(se...)
}
