// Package serrors defines the semantic error kinds shared by the services and
// the API. A kind decides the HTTP status an error is reported with and
// whether the failed operation is worth retrying.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a sentinel naming a category of failure.
type Kind interface {
	error
	// Status is the HTTP status the API answers with.
	Status() int
	// Temporary reports whether retrying later may succeed.
	Temporary() bool
}

type kind struct {
	name      string
	status    int
	temporary bool
}

func (k *kind) Error() string   { return k.name }
func (k *kind) Status() int     { return k.status }
func (k *kind) Temporary() bool { return k.temporary }

// NewKind declares a kind. Kinds compare by identity, so two calls with the
// same name yield distinct kinds.
func NewKind(name string, status int, temporary bool) Kind {
	return &kind{name: name, status: status, temporary: temporary}
}

//nolint:gochecknoglobals
var (
	ErrNotFound     = NewKind("NOT_FOUND", http.StatusNotFound, false)
	ErrUnauthorized = NewKind("UNAUTHORIZED", http.StatusUnauthorized, false)
	ErrForbidden    = NewKind("FORBIDDEN", http.StatusForbidden, false)
	ErrBadRequest   = NewKind("BAD_REQUEST", http.StatusBadRequest, false)
	ErrConflict     = NewKind("CONFLICT", http.StatusConflict, false)
	ErrInternal     = NewKind("INTERNAL", http.StatusInternalServerError, false)
	ErrTimeout      = NewKind("TIMEOUT", http.StatusGatewayTimeout, true)
	ErrUnavailable  = NewKind("UNAVAILABLE", http.StatusServiceUnavailable, true)
	ErrRateLimited  = NewKind("RATE_LIMITED", http.StatusTooManyRequests, true)
)

// Error attaches a kind and a client facing message to an optional cause.
// errors.Is and errors.As see both the kind and the cause.
type Error struct {
	kind  Kind
	cause error
	msg   string
}

// With returns an error of kind k with a formatted message.
func With(k Kind, format string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(format, args...)}
}

// Wrap is With plus a cause, which is appended to Error() but never to
// Message().
func Wrap(k Kind, cause error, format string, args ...any) *Error {
	return &Error{kind: k, cause: cause, msg: fmt.Sprintf(format, args...)}
}

// KindOnly returns a bare error of kind k.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	var s string
	switch {
	case e.msg != "" && e.cause != nil:
		s = e.msg + ": " + e.cause.Error()
	case e.msg != "":
		s = e.msg
	case e.cause != nil:
		s = e.cause.Error()
	case e.kind != nil:
		s = e.kind.Error()
	default:
		s = "unknown error"
	}

	return s
}

func (e *Error) Unwrap() []error {
	if e == nil {
		return nil
	}

	errs := make([]error, 0, 2)
	if e.kind != nil {
		errs = append(errs, e.kind)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}

	return errs
}

func (e *Error) Kind() Kind      { return e.kind }
func (e *Error) Message() string { return e.msg }
func (e *Error) Cause() error    { return e.cause }

// KindOf returns the kind of the outermost *Error in err's chain, falling back
// to a bare Kind in the chain. It is nil for errors without a kind.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) && e.kind != nil {
		return e.kind
	}

	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

// MessageOf returns the message of the outermost *Error in err's chain.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.msg
	}

	return ""
}

// StatusOf is the HTTP status for err: its kind's status, or 500.
func StatusOf(err error) int {
	if k := KindOf(err); k != nil {
		return k.Status()
	}

	return http.StatusInternalServerError
}

// IsTemporary reports whether err's kind is temporary.
func IsTemporary(err error) bool {
	k := KindOf(err)

	return k != nil && k.Temporary()
}
