package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Error is a coded error with an optional cause and metadata
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Meta    map[string]any `json:"meta,omitempty"`

	sentinel bool
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error carrying the same code. A sentinel target only
// matches a chain that wraps that sentinel.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) || other.sentinel {
		return false
	}
	return e.Code == other.Code
}

// WithMeta attaches a key to the error and returns it
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New returns an error with code and message
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Sentinel returns an error for a package to publish. Unlike New, two
// sentinels sharing a code do not match each other under Is.
func Sentinel(code Code, message string) *Error {
	return &Error{Code: code, Message: message, sentinel: true}
}

// Newf is New with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap annotates err with message. A coded cause keeps its code and a copy of
// its metadata; anything else becomes Internal. Wrap(nil) is nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	var coded *Error
	if errors.As(err, &coded) {
		return &Error{Code: coded.Code, Message: message, Cause: err, Meta: maps.Clone(coded.Meta)}
	}
	return &Error{Code: CodeInternal, Message: message, Cause: err}
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode annotates err and replaces its code
func WrapWithCode(err error, code Code, message string) *Error {
	wrapped := Wrap(err, message)
	if wrapped != nil {
		wrapped.Code = code
	}
	return wrapped
}

// WrapWithCodef is WrapWithCode with a formatted message
func WrapWithCodef(err error, code Code, format string, args ...any) *Error {
	return WrapWithCode(err, code, fmt.Sprintf(format, args...))
}

func NotFound(message string) *Error { return New(CodeNotFound, message) }

func NotFoundf(format string, args ...any) *Error { return Newf(CodeNotFound, format, args...) }

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func Internal(message string) *Error { return New(CodeInternal, message) }

func Internalf(format string, args ...any) *Error { return Newf(CodeInternal, format, args...) }

// ResourceExhausted reports a container without room
func ResourceExhausted(message string) *Error { return New(CodeResourceExhausted, message) }

// FailedPrecondition reports an operation that needs a dependency or state the
// caller has not provided
func FailedPrecondition(message string) *Error { return New(CodeFailedPrecondition, message) }

func OutOfRangef(format string, args ...any) *Error { return Newf(CodeOutOfRange, format, args...) }

// UnknownAttributeKindf reports a lookup on a kind a stats store holds no list for
func UnknownAttributeKindf(format string, args ...any) *Error {
	return Newf(CodeUnknownAttributeKind, format, args...)
}

// TemplateLoadf reports a template definition that could not be read or decoded
func TemplateLoadf(format string, args ...any) *Error {
	return Newf(CodeTemplateLoad, format, args...)
}

// TextureCompositef reports a template texture that could not be composited
func TextureCompositef(format string, args ...any) *Error {
	return Newf(CodeTextureComposite, format, args...)
}
