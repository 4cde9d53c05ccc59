package tracinghttp

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	gokithttp "github.com/go-kit/kit/transport/http"
	"github.com/xmidt-org/tracestatus/tracing"
)

const (
	SpanHeader   = "X-Xmidt-Span"
	StatusHeader = "X-Xmidt-Status"
	ErrorHeader  = "X-Xmidt-Error"
)

// HeadersForSpans emits header information for each Span.  The timeLayout may be empty, in which case time.RFC3339 is used.
// All times are converted to UTC prior to formatting.
//
// Every span produces a SpanHeader and a StatusHeader.  Spans that did not succeed also produce an ErrorHeader,
// which carries the HTTP status code of the span's error if it is a go-kit StatusCoder, or the conventional
// HTTP status code of the span's Status otherwise.
func HeadersForSpans(timeLayout string, h http.Header, spans ...tracing.Span) {
	if len(timeLayout) == 0 {
		timeLayout = time.RFC3339
	}

	output := new(bytes.Buffer)
	for _, s := range spans {
		output.Reset()
		fmt.Fprintf(output, `"%s","%s","%s"`, s.Name(), s.Start().UTC().Format(timeLayout), s.Duration())
		h.Add(SpanHeader, output.String())

		status := s.Status()
		output.Reset()
		fmt.Fprintf(output, `"%s",%d,"%s"`, s.Name(), status.Code().Int(), status.Code())
		h.Add(StatusHeader, output.String())

		if status.IsOK() {
			continue
		}

		text := status.Code().String()
		if err := s.Error(); err != nil {
			text = err.Error()
		}

		output.Reset()
		fmt.Fprintf(output, `"%s",%d,"%s"`, s.Name(), httpStatus(s.Error(), status), text)
		h.Add(ErrorHeader, output.String())
	}
}

func httpStatus(err error, status *tracing.Status) int {
	var coder gokithttp.StatusCoder
	if errors.As(err, &coder) {
		return coder.StatusCode()
	}

	return ToHTTPStatus(status.Code())
}
