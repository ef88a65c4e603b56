package apperrors

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindForbidden
	KindUnauthorized
	KindInvalidCredentials
	KindForeignKeyViolation
	KindConflict
	KindValidation
	KindServiceUnavailable
)

// Error carries a kind that the HTTP layer maps to a status code, a message
// that is safe to show to clients, and the underlying cause if there is one.
type Error struct {
	Kind    Kind
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

// Is reports a match on kind, so errors.Is(err, ErrNotFound) holds for any
// not-found error regardless of its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrNotFound            = &Error{Kind: KindNotFound, Message: "not found"}
	ErrForbidden           = &Error{Kind: KindForbidden, Message: "forbidden"}
	ErrUnauthorized        = &Error{Kind: KindUnauthorized, Message: "unauthorized"}
	ErrInvalidCredentials  = &Error{Kind: KindInvalidCredentials, Message: "invalid credentials"}
	ErrForeignKeyViolation = &Error{Kind: KindForeignKeyViolation, Message: "foreign key violation"}
	ErrConflict            = &Error{Kind: KindConflict, Message: "conflict"}
	ErrValidation          = &Error{Kind: KindValidation, Message: "validation failed"}
	ErrServiceUnavailable  = &Error{Kind: KindServiceUnavailable, Message: "service unavailable"}
)

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func InvalidCredentials(message string) *Error {
	return &Error{Kind: KindInvalidCredentials, Message: message}
}

func ForeignKeyViolation(message string, err error) *Error {
	return &Error{Kind: KindForeignKeyViolation, Message: message, Err: err}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func ServiceUnavailable(message string, err error) *Error {
	return &Error{Kind: KindServiceUnavailable, Message: message, Err: err}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound, KindForeignKeyViolation:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindInvalidCredentials, KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func Code(err error) string {
	switch KindOf(err) {
	case KindNotFound:
		return "NOT_FOUND"
	case KindForbidden:
		return "FORBIDDEN"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindInvalidCredentials:
		return "INVALID_CREDENTIALS"
	case KindForeignKeyViolation:
		return "RELATED_NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	case KindValidation:
		return "VALIDATION_FAILED"
	case KindServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

// Message returns the client-facing message. Internal errors never leak their cause.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "Erro interno do servidor"
}
