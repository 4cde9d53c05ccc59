package tracinghttp

import (
	"errors"
	"net/http"

	gokithttp "github.com/go-kit/kit/transport/http"
	"github.com/xmidt-org/tracestatus/tracing"
)

// StatusClientClosedRequest is the nonstandard status used when a client goes away before
// a response is written.
const StatusClientClosedRequest = 499

var codeToHTTP = map[tracing.StatusCode]int{
	tracing.StatusOK:                 http.StatusOK,
	tracing.StatusCancelled:          StatusClientClosedRequest,
	tracing.StatusUnknown:            http.StatusInternalServerError,
	tracing.StatusInvalidArgument:    http.StatusBadRequest,
	tracing.StatusDeadlineExceeded:   http.StatusGatewayTimeout,
	tracing.StatusNotFound:           http.StatusNotFound,
	tracing.StatusAlreadyExists:      http.StatusConflict,
	tracing.StatusPermissionDenied:   http.StatusForbidden,
	tracing.StatusResourceExhausted:  http.StatusTooManyRequests,
	tracing.StatusFailedPrecondition: http.StatusBadRequest,
	tracing.StatusAborted:            http.StatusConflict,
	tracing.StatusOutOfRange:         http.StatusBadRequest,
	tracing.StatusUnimplemented:      http.StatusNotImplemented,
	tracing.StatusInternal:           http.StatusInternalServerError,
	tracing.StatusUnavailable:        http.StatusServiceUnavailable,
	tracing.StatusDataLoss:           http.StatusInternalServerError,
	tracing.StatusUnauthenticated:    http.StatusUnauthorized,
}

var httpToCode = map[int]tracing.StatusCode{
	http.StatusBadRequest:                   tracing.StatusInvalidArgument,
	http.StatusUnauthorized:                 tracing.StatusUnauthenticated,
	http.StatusForbidden:                    tracing.StatusPermissionDenied,
	http.StatusNotFound:                     tracing.StatusNotFound,
	http.StatusConflict:                     tracing.StatusAborted,
	http.StatusPreconditionFailed:           tracing.StatusFailedPrecondition,
	http.StatusRequestedRangeNotSatisfiable: tracing.StatusOutOfRange,
	http.StatusTooManyRequests:              tracing.StatusResourceExhausted,
	StatusClientClosedRequest:               tracing.StatusCancelled,
	http.StatusInternalServerError:          tracing.StatusInternal,
	http.StatusNotImplemented:               tracing.StatusUnimplemented,
	http.StatusServiceUnavailable:           tracing.StatusUnavailable,
	http.StatusGatewayTimeout:               tracing.StatusDeadlineExceeded,
}

// FromHTTPStatus translates an HTTP response code into a canonical StatusCode.  Any 2xx or 3xx
// code is StatusOK.  Codes with no closer match are StatusUnknown.
func FromHTTPStatus(code int) tracing.StatusCode {
	if code >= 200 && code < 400 {
		return tracing.StatusOK
	}

	if c, ok := httpToCode[code]; ok {
		return c
	}

	return tracing.StatusUnknown
}

// ToHTTPStatus translates a StatusCode into the HTTP response code conventionally used for it.
// Codes outside the canonical set map to http.StatusInternalServerError.
func ToHTTPStatus(code tracing.StatusCode) int {
	if h, ok := codeToHTTP[code]; ok {
		return h
	}

	return http.StatusInternalServerError
}

// ErrorStatus is a strategy for tracing.StatusFunc that understands HTTP errors.  An error that
// carries a tracing.Statuser keeps that Status.  Otherwise, an error implementing go-kit's
// StatusCoder is translated with FromHTTPStatus.  Everything else falls back to
// tracing.StatusFromError.
func ErrorStatus(err error) *tracing.Status {
	if err == nil {
		return tracing.OKStatus()
	}

	var statuser tracing.Statuser
	if errors.As(err, &statuser) && statuser.Status() != nil {
		return statuser.Status()
	}

	var coder gokithttp.StatusCoder
	if errors.As(err, &coder) {
		return tracing.StatusOf(FromHTTPStatus(coder.StatusCode()), err.Error())
	}

	return tracing.StatusFromError(err)
}
