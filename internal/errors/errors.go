package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

// Code classifies an error; match it with errors.Is(err, code).
type Code string

func (c Code) Error() string { return string(c) }

// Error pairs a Code with the underlying error (message and stack from pkg/errors).
type Error struct {
	Code Code
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err == nil {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(Code)
	if !ok {
		return false
	}
	return e.Code == t
}

func New(code Code, message string) error {
	return &Error{
		Code: code,
		Err:  errors.New(message),
	}
}

func Newf(code Code, format string, args ...any) error {
	return &Error{
		Code: code,
		Err:  errors.Errorf(format, args...),
	}
}

func PureNew(message string) error {
	return stderrors.New(message)
}

// Wrap returns nil when err is nil.
func Wrap(code Code, err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code: code,
		Err:  errors.Wrap(err, message),
	}
}

// Wrapf returns nil when err is nil.
func Wrapf(code Code, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code: code,
		Err:  errors.Wrapf(err, format, args...),
	}
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As[T error](err error) (T, bool) {
	var target T
	if stderrors.As(err, &target) {
		return target, true
	}
	return target, false
}

// CodeOf returns the outermost Code in the chain, or "" when none is attached.
func CodeOf(err error) Code {
	var coded *Error
	if stderrors.As(err, &coded) {
		return coded.Code
	}
	var code Code
	if stderrors.As(err, &code) {
		return code
	}
	return ""
}
