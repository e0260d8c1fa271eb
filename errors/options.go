package errors

import "fmt"

// Option configures a MappedError built with E or one of the per-type
// helpers.
type Option func(*options)

type options struct {
	expected bool
	cause    *MappedError
	code     string
}

// Unexpected marks the error as unexpected, logging it at error level.
func Unexpected() Option {
	return func(o *options) { o.expected = false }
}

// WithCause folds cause's message into the new error.
func WithCause(cause MappedError) Option {
	return func(o *options) { o.cause = &cause }
}

// WithCode attaches a code after construction.
func WithCode(code string) Option {
	return func(o *options) { o.code = code }
}

// E builds a MappedError of the given type. Without options the error is
// expected, has no cause and is Unmapped.
func E(errorType ErrorType, msg string, opts ...Option) MappedError {
	o := options{expected: true, code: unmappedLiteral}
	for _, opt := range opts {
		opt(&o)
	}

	return New(msg, o.expected, o.cause, errorType).WithCode(o.code)
}

// Newf builds an expected MappedError with a formatted message.
func Newf(errorType ErrorType, format string, args ...any) MappedError {
	return New(fmt.Sprintf(format, args...), true, nil, errorType)
}

func Undefined(msg string, opts ...Option) MappedError {
	return E(UndefinedError, msg, opts...)
}

func Creation(msg string, opts ...Option) MappedError {
	return E(CreationError, msg, opts...)
}

func Updating(msg string, opts ...Option) MappedError {
	return E(UpdatingError, msg, opts...)
}

func Fetching(msg string, opts ...Option) MappedError {
	return E(FetchingError, msg, opts...)
}

func Deletion(msg string, opts ...Option) MappedError {
	return E(DeletionError, msg, opts...)
}

func UseCase(msg string, opts ...Option) MappedError {
	return E(UseCaseError, msg, opts...)
}

func Execution(msg string, opts ...Option) MappedError {
	return E(ExecutionError, msg, opts...)
}

func InvalidRepository(msg string, opts ...Option) MappedError {
	return E(InvalidRepositoryError, msg, opts...)
}

func InvalidArgument(msg string, opts ...Option) MappedError {
	return E(InvalidArgumentError, msg, opts...)
}
