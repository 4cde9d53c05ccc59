package logging

import (
	"sync"

	"github.com/go-kit/log"
)

// CaptureLogger is a go-kit Logger that records each log event as a map of key/value pairs
// so tests can make assertions against what was logged.  It is safe for concurrent use.
type CaptureLogger struct {
	lock    sync.Mutex
	entries []map[interface{}]interface{}
}

// NewCaptureLogger returns an empty CaptureLogger
func NewCaptureLogger() *CaptureLogger {
	return new(CaptureLogger)
}

// Log records keyvals.  An odd trailing key is paired with log.ErrMissingValue, as the
// go-kit encoders do.
func (cl *CaptureLogger) Log(keyvals ...interface{}) error {
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, log.ErrMissingValue)
	}

	m := make(map[interface{}]interface{}, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		m[keyvals[i]] = keyvals[i+1]
	}

	cl.lock.Lock()
	cl.entries = append(cl.entries, m)
	cl.lock.Unlock()
	return nil
}

// Entries returns a copy of the events recorded so far, oldest first
func (cl *CaptureLogger) Entries() []map[interface{}]interface{} {
	cl.lock.Lock()
	defer cl.lock.Unlock()
	return append([]map[interface{}]interface{}(nil), cl.entries...)
}

// Len returns the number of recorded events
func (cl *CaptureLogger) Len() int {
	cl.lock.Lock()
	defer cl.lock.Unlock()
	return len(cl.entries)
}
