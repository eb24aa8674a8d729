package apperr

import (
	"errors"
	"fmt"
)

// Kind จัดกลุ่ม error ตามผลลัพธ์ที่ client ต้องเห็น
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindUnauthenticated:
		return "UNAUTHENTICATED"
	case KindForbidden:
		return "FORBIDDEN"
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	default:
		return "INTERNAL"
	}
}

// Error is a classified application error. Code is a stable machine string,
// Message is safe to show to clients.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on Kind and Code so sentinel values work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

func New(kind Kind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

// Wrap keeps the sentinel identity of e and attaches a cause.
func (e *Error) Wrap(cause error) *Error {
	return &Error{Kind: e.Kind, Code: e.Code, Message: e.Message, Err: cause}
}

// WithMessage returns a copy of e with a more specific message.
func (e *Error) WithMessage(format string, args ...any) *Error {
	return &Error{Kind: e.Kind, Code: e.Code, Message: fmt.Sprintf(format, args...), Err: e.Err}
}

func NotFound(code, msg string) *Error   { return New(KindNotFound, code, msg) }
func Conflict(code, msg string) *Error   { return New(KindConflict, code, msg) }
func Validation(code, msg string) *Error { return New(KindValidation, code, msg) }
func Forbidden(code, msg string) *Error  { return New(KindForbidden, code, msg) }

var (
	ErrUnauthenticated = New(KindUnauthenticated, "UNAUTHENTICATED", "authentication required")
	ErrForbidden       = New(KindForbidden, "FORBIDDEN", "you do not have permission to perform this action")
	ErrInternal        = New(KindInternal, "INTERNAL", "internal server error")
)

// KindOf returns the kind of err, KindInternal when err is not classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// As extracts the classified error, or wraps err as internal.
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return ErrInternal.Wrap(err)
}
