package tracing

import (
	"context"
	"errors"
)

// Statuser is implemented by anything, typically an error, that carries a Status.
type Statuser interface {
	Status() *Status
}

// StatusFromError produces the Status that best describes an error:
//
//   A nil error is the shared OKStatus.
//   If anything in the error's chain is a Statuser with a non-nil Status, that Status is returned.
//   context.Canceled is StatusCancelled, and context.DeadlineExceeded is StatusDeadlineExceeded.
//   Anything else is StatusUnknown.
//
// Statuses derived from an error use the error's text as their description.
func StatusFromError(err error) *Status {
	if err == nil {
		return okStatus
	}

	var statuser Statuser
	if errors.As(err, &statuser) {
		if s := statuser.Status(); s != nil {
			return s
		}
	}

	switch {
	case errors.Is(err, context.Canceled):
		return NewStatus(StatusCancelled, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return NewStatus(StatusDeadlineExceeded, err.Error())

	default:
		return NewStatus(StatusUnknown, err.Error())
	}
}
