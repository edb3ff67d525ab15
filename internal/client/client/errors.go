package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable matches BackendErrors caused by transport failures
	// (no HTTP response was received).
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized matches BackendErrors classified as KindUnauthorized.
	ErrUnauthorized = errors.New("unauthorized")
)

// Kind is the coarse classification of a backend failure.
type Kind int

const (
	KindGeneric Kind = iota
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "generic"
	}
}

// BackendError reports a failed gateway call: a non-2xx response, a transport
// failure (Status == 0) or an undecodable success payload.
//
// Message carries the backend's own error text. It is meant for logs and must
// not be shown to end users.
type BackendError struct {
	Op      string
	Origin  string
	Status  int
	Kind    Kind
	Message string
	Err     error
}

func (e *BackendError) Error() string {
	switch {
	case e.Status == 0:
		return fmt.Sprintf("%s %s: request failed: %v", e.Origin, e.Op, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s %s: status %d: %v", e.Origin, e.Op, e.Status, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s %s: %s (status %d): %s", e.Origin, e.Op, e.Kind, e.Status, e.Message)
	default:
		return fmt.Sprintf("%s %s: %s (status %d)", e.Origin, e.Op, e.Kind, e.Status)
	}
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Is lets callers match with errors.Is(err, ErrUnauthorized) and
// errors.Is(err, ErrUnavailable).
func (e *BackendError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Kind == KindUnauthorized
	case ErrUnavailable:
		return e.Status == 0
	}
	return false
}

func classifyStatus(status int) Kind {
	switch status {
	case 401, 403:
		return KindUnauthorized
	default:
		return KindGeneric
	}
}
