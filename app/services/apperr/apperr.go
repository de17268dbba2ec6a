// Package apperr is the service-layer error taxonomy. Services return
// these; controllers map them onto HTTP statuses in one place and
// never branch on error strings.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindServer Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindAuth
	KindGateway
	KindSignature
)

type Error struct {
	Kind    Kind
	Message string
	// Fields carries per-field validation messages when KindValidation.
	Fields any
	cause  error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func Validation(message string, fields any) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

func Gateway(message string, cause error) *Error {
	return &Error{Kind: KindGateway, Message: message, cause: cause}
}

func Signature(message string) *Error {
	return &Error{Kind: KindSignature, Message: message}
}

func Server(message string, cause error) *Error {
	return &Error{Kind: KindServer, Message: message, cause: cause}
}

// From returns err as an *Error, wrapping unknown errors as a server
// fault.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Server("Internal server error", err)
}

// Status maps the error kind onto an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindSignature:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindAuth:
		return http.StatusUnauthorized
	case KindGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
