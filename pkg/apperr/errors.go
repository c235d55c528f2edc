// Package apperr holds the error taxonomy shared by the services and the HTTP layer.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the transport layer
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindUnauthenticated
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// Error is an application error carrying a kind, a stable code and a client-safe message.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Code so that errors built with a custom message still
// compare equal to the sentinel of the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithMessage returns a copy of e with a different message
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

var (
	ErrUnauthenticated    = &Error{Kind: KindUnauthenticated, Code: "Unauthenticated", Message: "authentication required"}
	ErrUnauthorized       = &Error{Kind: KindUnauthorized, Code: "Unauthorized", Message: "not allowed to modify this resource"}
	ErrNotFound           = &Error{Kind: KindNotFound, Code: "NotFound", Message: "resource not found"}
	ErrValidation         = &Error{Kind: KindValidation, Code: "Validation", Message: "invalid input"}
	ErrInvalidEmail       = &Error{Kind: KindValidation, Code: "InvalidEmail", Message: "invalid email"}
	ErrEmailTaken         = &Error{Kind: KindValidation, Code: "EmailTaken", Message: "email is already taken"}
	ErrPasswordMismatch   = &Error{Kind: KindValidation, Code: "PasswordMismatch", Message: "passwords do not match"}
	ErrInvalidCredentials = &Error{Kind: KindValidation, Code: "InvalidCredentials", Message: "invalid email or password"}
	ErrInternal           = &Error{Kind: KindInternal, Code: "Internal", Message: "internal server error"}
)

// Validation builds a validation error with a specific message
func Validation(msg string) *Error {
	return ErrValidation.WithMessage(msg)
}

// NotFound builds a not-found error naming the missing resource
func NotFound(resource string) *Error {
	return ErrNotFound.WithMessage(resource + " not found")
}

// Internal wraps an unexpected failure. The cause is kept for logging and never sent to clients.
func Internal(err error, msg string) *Error {
	return &Error{Kind: KindInternal, Code: ErrInternal.Code, Message: msg, Err: err}
}

// KindOf reports the kind of err. Errors outside the taxonomy are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps err onto its response status code
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthenticated, KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
