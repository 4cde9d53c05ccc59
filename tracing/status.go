package tracing

import "fmt"

// Status is the outcome of a traced operation.  A Status is immutable once created.
//
// Statuses should be compared with Equal.  StatusOf hands out a shared instance for
// the canonical OK status, so pointer identity says nothing useful about equality.
type Status struct {
	code           StatusCode
	description    string
	hasDescription bool
}

// okStatus is the shared OK instance.  Package initialization runs exactly once, before
// any caller can see this value.
var okStatus = NewStatus(StatusOK)

// NewStatus creates a Status with the given code.  If a description is supplied, the first
// one is used verbatim, including the empty string.  Otherwise the canonical description
// for code is used, and if code has none the Status has no description at all.
//
// Any code is accepted, including ones outside the canonical set.
func NewStatus(code StatusCode, description ...string) *Status {
	s := &Status{code: code}
	if len(description) > 0 {
		s.description, s.hasDescription = description[0], true
	} else {
		s.description, s.hasDescription = code.Description()
	}

	return s
}

// StatusOf behaves like NewStatus, except that a request for an OK status with either no
// description or the canonical OK description returns the shared OKStatus instance.
func StatusOf(code StatusCode, description ...string) *Status {
	if code == StatusOK && (len(description) == 0 || description[0] == descriptions[StatusOK]) {
		return okStatus
	}

	return NewStatus(code, description...)
}

// OKStatus returns the shared, canonical OK status.
func OKStatus() *Status {
	return okStatus
}

// Code returns the code this Status was created with.
func (s *Status) Code() StatusCode {
	return s.code
}

// Description returns this status' description.  The boolean is false when the Status
// has no description, which is distinct from an empty description.
func (s *Status) Description() (string, bool) {
	return s.description, s.hasDescription
}

// IsOK tests if this Status represents success.  Only the code is consulted.
func (s *Status) IsOK() bool {
	return s.code == StatusOK
}

// Equal tests if two statuses have the same code and the same description.  Two nil
// statuses are equal.
func (s *Status) Equal(o *Status) bool {
	switch {
	case s == o:
		return true
	case s == nil || o == nil:
		return false
	default:
		return s.code == o.code &&
			s.hasDescription == o.hasDescription &&
			s.description == o.description
	}
}

func (s *Status) String() string {
	if s.hasDescription {
		return fmt.Sprintf("%s: %s", s.code, s.description)
	}

	return s.code.String()
}

// Err returns an error carrying this Status, or nil if this Status is OK.  The returned
// error implements Statuser.
func (s *Status) Err() error {
	if s.IsOK() {
		return nil
	}

	return &statusError{status: s}
}

// statusError is the error returned by Status.Err
type statusError struct {
	status *Status
}

func (se *statusError) Error() string {
	return se.status.String()
}

func (se *statusError) Status() *Status {
	return se.status
}
