package errors

import "fmt"

// Canonical form keys, in rendering order.
const (
	codeKey      = "code"
	errorTypeKey = "error_type"
)

// MappedError is an immutable error value: a message, its ErrorType and an
// optional ErrorCode. Copies are independent; WithCode returns a new value.
type MappedError struct {
	msg       string
	errorType ErrorType
	code      ErrorCode
}

// New builds a MappedError and emits its log line through the package sink.
//
// An unexpected error (expected == false) is logged at error level, an
// expected one at warning level. When cause is non-nil its message is folded
// into the new one as
//
//	[Current error] "<msg>"; [Previous error] "<cause msg>"
//
// and only that flattened message is kept. The result is always Unmapped.
func New(msg string, expected bool, cause *MappedError, errorType ErrorType) MappedError {
	if cause != nil {
		msg = chainMessage(msg, cause.msg)
	}

	emit(expected, errorType, msg)

	return MappedError{
		msg:       msg,
		errorType: errorType,
		code:      DefaultCode(),
	}
}

func chainMessage(current, previous string) string {
	return fmt.Sprintf("[Current error] %q; [Previous error] %q", current, previous)
}

func emit(expected bool, errorType ErrorType, msg string) {
	sink := CurrentSink()

	defer func() {
		_ = recover()
	}()

	if !expected {
		sink.Emit(LevelError, fmt.Sprintf("Unexpected error: (%s)%s", errorType, msg))
		return
	}
	sink.Emit(LevelWarning, fmt.Sprintf("%q", msg))
}

// WithCode returns a copy of e carrying code. The reserved literal "none"
// clears the code instead.
func (e MappedError) WithCode(code string) MappedError {
	e.code = Code(code)
	return e
}

// Msg returns the bare message, without the canonical prefix.
func (e MappedError) Msg() string {
	return e.msg
}

func (e MappedError) ErrorType() ErrorType {
	return e.errorType
}

func (e MappedError) Code() ErrorCode {
	return e.code
}

// String renders the canonical form:
//
//	[code=<code|none>,error_type=<type>] <message>
func (e MappedError) String() string {
	return fmt.Sprintf("[%s=%s,%s=%s] %s", codeKey, e.code, errorTypeKey, e.errorType, e.msg)
}

// Error returns the canonical form.
func (e MappedError) Error() string {
	return e.String()
}
