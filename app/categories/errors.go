package categories

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies failures the HTTP layer knows how to report.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Status is the HTTP status code reported for the kind.
func (k ErrorKind) Status() int {
	if k == KindNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Error is returned by the service for failures a client should see.
// Message is sent to the client verbatim; Err keeps the underlying cause for logs.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func notFound(id uint, cause error) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("Category not found with id: %d", id),
		Err:     cause,
	}
}

func internal(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: cause}
}
