package logging

import (
	"io"
	"strings"

	"github.com/go-kit/log"
)

// testSink is implemented by testing.T and testing.B
type testSink interface {
	Log(...interface{})
}

type testWriter struct {
	sink testSink
}

// Write sends one line per call to the sink.  The encoders terminate each entry with a
// newline, which the testing log would otherwise double.
func (tw testWriter) Write(data []byte) (int, error) {
	tw.sink.Log(strings.TrimSuffix(string(data), "\n"))
	return len(data), nil
}

// NewTestWriter returns an io.Writer which delegates to a testing log.
// The returned io.Writer does not need to be synchronized.
func NewTestWriter(t testSink) io.Writer {
	return testWriter{sink: t}
}

// NewTestLogger produces a go-kit Logger which writes to the supplied testing log.  A nil
// Options logs everything at DEBUG and above.  Any File in the Options is ignored.
func NewTestLogger(o *Options, t testSink) log.Logger {
	var tlo Options
	if o != nil {
		tlo = *o
	} else {
		tlo.Level = "DEBUG"
	}

	tlo.File = ""
	return NewWriterLogger(&tlo, NewTestWriter(t))
}
