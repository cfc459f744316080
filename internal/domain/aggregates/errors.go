package aggregates

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrorCode standardizes aggregate failure semantics across domains.
type ErrorCode string

const (
	CodeValidation         ErrorCode = "validation"
	CodeNotFound           ErrorCode = "not_found"
	CodeConflict           ErrorCode = "conflict"
	CodeInvariantViolation ErrorCode = "invariant_violation"
	CodePreconditionFailed ErrorCode = "precondition_failed"
	CodeRetryable          ErrorCode = "retryable"
	CodeInternal           ErrorCode = "internal"
)

// Error is the canonical aggregate error wrapper.
// Field is set for validation failures that concern a single input field.
type Error struct {
	Code    ErrorCode
	Op      string
	Field   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	if e.Field != "" && msg != "" {
		msg = e.Field + ": " + msg
	}
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError builds an aggregate error with explicit code + operation.
func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// NewFieldError builds a validation error naming the offending input field.
func NewFieldError(op, field, message string) error {
	return &Error{
		Code:    CodeValidation,
		Op:      strings.TrimSpace(op),
		Field:   strings.TrimSpace(field),
		Message: strings.TrimSpace(message),
	}
}

// Wrap annotates an existing error with aggregate error semantics.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	return NewError(code, op, err.Error(), err)
}

// IsCode checks whether err (or wrapped err) carries the given aggregate code.
func IsCode(err error, code ErrorCode) bool {
	var aggErr *Error
	if !errors.As(err, &aggErr) {
		return false
	}
	return aggErr.Code == code
}

// CodeOf extracts the aggregate error code when available.
func CodeOf(err error) ErrorCode {
	var aggErr *Error
	if !errors.As(err, &aggErr) {
		return ""
	}
	return aggErr.Code
}

// FieldOf returns the input field of the first field-level error in the chain.
func FieldOf(err error) string {
	for err != nil {
		var aggErr *Error
		if !errors.As(err, &aggErr) {
			return ""
		}
		if aggErr.Field != "" {
			return aggErr.Field
		}
		err = aggErr.Cause
	}
	return ""
}

// RequireText rejects blank values and values longer than max characters.
func RequireText(op, field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return NewFieldError(op, field, field+" is required")
	}
	if max > 0 && utf8.RuneCountInString(value) > max {
		return NewFieldError(op, field, fmt.Sprintf("%s cannot exceed %d characters", field, max))
	}
	return nil
}
