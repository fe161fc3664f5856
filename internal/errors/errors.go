package errors

import (
	"errors"
	"fmt"
	"strings"
)

const metaReasons = "reasons"

// Error represents a structured error with code, message, and metadata
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error carrying the same code
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// WithReasons appends human-readable reasons to the error metadata
func (e *Error) WithReasons(reasons ...string) *Error {
	existing := reasonsOf(e.Meta)
	merged := make([]string, 0, len(existing)+len(reasons))
	merged = append(merged, existing...)
	merged = append(merged, reasons...)
	return e.WithMeta(metaReasons, merged)
}

// Reasons returns the reasons attached to the error, if any
func (e *Error) Reasons() []string {
	return reasonsOf(e.Meta)
}

func reasonsOf(meta map[string]interface{}) []string {
	if meta == nil {
		return nil
	}
	switch v := meta[metaReasons].(type) {
	case []string:
		return v
	case []interface{}:
		// decoded from a status detail
		out := make([]string, 0, len(v))
		for _, r := range v {
			out = append(out, fmt.Sprint(r))
		}
		return out
	default:
		return nil
	}
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error, preserving its code if it's an Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Code:    existingErr.Code,
			Message: message,
			Cause:   err,
			Meta:    existingErr.Meta,
		}
	}

	return &Error{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	meta := make(map[string]interface{})
	if errors.As(err, &existingErr) && existingErr.Meta != nil {
		for k, v := range existingErr.Meta {
			meta[k] = v
		}
	}

	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
		Meta:    meta,
	}
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a not found error with formatted message
func NotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates an invalid argument error with formatted message
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf creates an already exists error with formatted message
func AlreadyExistsf(format string, args ...interface{}) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates an internal error with formatted message
func Internalf(format string, args ...interface{}) *Error {
	return Newf(CodeInternal, format, args...)
}

// FailedPreconditionf creates a failed precondition error with formatted message
func FailedPreconditionf(format string, args ...interface{}) *Error {
	return Newf(CodeFailedPrecondition, format, args...)
}

// Unavailable creates an unavailable error
func Unavailable(message string) *Error {
	return New(CodeUnavailable, message)
}

// InvalidTonnage creates a construction error for an illegal tonnage
func InvalidTonnage(tonnage int, reasons ...string) *Error {
	err := Newf(CodeInvalidTonnage, "invalid tonnage %d", tonnage).
		WithMeta("tonnage", tonnage)
	return err.WithReasons(reasons...)
}

// InvalidEngineRating creates a construction error for an illegal engine rating
func InvalidEngineRating(rating, walkMP, tonnage int, reasons ...string) *Error {
	err := Newf(CodeInvalidEngineRating,
		"engine rating %d (walk %d x %d tons) is not buildable", rating, walkMP, tonnage).
		WithMeta("rating", rating).
		WithMeta("walk_mp", walkMP).
		WithMeta("tonnage", tonnage)
	return err.WithReasons(reasons...)
}

// Summary renders the message followed by its reasons, one per clause
func Summary(err error) string {
	var customErr *Error
	if !errors.As(err, &customErr) {
		return err.Error()
	}
	reasons := customErr.Reasons()
	if len(reasons) == 0 {
		return customErr.Message
	}
	return customErr.Message + ": " + strings.Join(reasons, "; ")
}
