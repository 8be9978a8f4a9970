package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrTransport    = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("rejected by server")
	ErrDecode       = errors.New("malformed response")
)

// StatusError is a non-2xx answer. Kind is one of the sentinels above, or
// nil when the status has no special meaning.
type StatusError struct {
	Code   int
	Detail string
	Kind   error
}

func (e *StatusError) Error() string {
	text := http.StatusText(e.Code)
	if text == "" {
		text = "status"
	}
	msg := fmt.Sprintf("%d %s", e.Code, text)
	if e.Kind != nil {
		msg = e.Kind.Error() + ": " + msg
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *StatusError) Unwrap() error {
	return e.Kind
}

// Retryable reports whether another attempt might succeed.
func Retryable(err error) bool {
	return errors.Is(err, ErrTransport)
}

func kindForStatus(code int) error {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrValidation
	case http.StatusRequestTimeout, http.StatusTooManyRequests,
		http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrTransport
	default:
		return nil
	}
}
