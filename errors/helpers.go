package errors

import (
	stderrors "errors"
)

// Basic error check functions from standard library
var (
	Is     = stderrors.Is
	As     = stderrors.As
	Unwrap = stderrors.Unwrap
)

// From finds the first MappedError in err's chain. Both MappedError and
// *MappedError values are recognised.
func From(err error) (MappedError, bool) {
	if err == nil {
		return MappedError{}, false
	}

	var mapped MappedError
	if stderrors.As(err, &mapped) {
		return mapped, true
	}

	var ptr *MappedError
	if stderrors.As(err, &ptr) && ptr != nil {
		return *ptr, true
	}

	return MappedError{}, false
}

// Ensure converts any error to a MappedError.
//
//   - nil input => nil output
//   - a MappedError in the chain => that value
//   - anything else => Parse(err.Error())
func Ensure(err error) *MappedError {
	if err == nil {
		return nil
	}

	if mapped, ok := From(err); ok {
		return &mapped
	}

	mapped := Parse(err.Error())

	return &mapped
}

// TypeOf returns the ErrorType of the first MappedError in err's chain, or
// UndefinedError when there is none.
func TypeOf(err error) ErrorType {
	if mapped, ok := From(err); ok {
		return mapped.errorType
	}

	return UndefinedError
}

// CodeOf returns the ErrorCode of the first MappedError in err's chain, or
// Unmapped when there is none.
func CodeOf(err error) ErrorCode {
	if mapped, ok := From(err); ok {
		return mapped.code
	}

	return Unmapped
}

func IsType(err error, errorType ErrorType) bool {
	mapped, ok := From(err)
	return ok && mapped.errorType == errorType
}

// HasCode reports whether err's MappedError carries code. "none" matches an
// Unmapped error.
func HasCode(err error, code string) bool {
	mapped, ok := From(err)
	return ok && mapped.code == Code(code)
}
