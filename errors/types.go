package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorType classifies why an operation failed. The set is closed.
type ErrorType int

const (
	// UndefinedError is the default, unclassified type.
	UndefinedError ErrorType = iota

	// CRUD failures
	CreationError
	UpdatingError
	FetchingError
	DeletionError

	// UseCaseError is a business-rule violation.
	UseCaseError

	// ExecutionError is a runtime failure not tied to a specific action.
	ExecutionError

	// InvalidRepositoryError is a persistence-layer misconfiguration.
	InvalidRepositoryError

	// InvalidArgumentError means the caller supplied invalid input.
	InvalidArgumentError
)

// Canonical names are part of the wire format and must never change.
var errorTypeNames = [...]string{
	UndefinedError:         "undefined-error",
	CreationError:          "creation-error",
	UpdatingError:          "updating-error",
	FetchingError:          "fetching-error",
	DeletionError:          "deletion-error",
	UseCaseError:           "use-case-error",
	ExecutionError:         "execution-error",
	InvalidRepositoryError: "invalid-repository-error",
	InvalidArgumentError:   "invalid-argument-error",
}

var errorTypesByName = map[string]ErrorType{
	"undefined-error":          UndefinedError,
	"creation-error":           CreationError,
	"updating-error":           UpdatingError,
	"fetching-error":           FetchingError,
	"deletion-error":           DeletionError,
	"use-case-error":           UseCaseError,
	"execution-error":          ExecutionError,
	"invalid-repository-error": InvalidRepositoryError,
	"invalid-argument-error":   InvalidArgumentError,
}

// Record field names follow the camelCase form of the identifier.
var errorTypeFieldNames = [...]string{
	UndefinedError:         "undefinedError",
	CreationError:          "creationError",
	UpdatingError:          "updatingError",
	FetchingError:          "fetchingError",
	DeletionError:          "deletionError",
	UseCaseError:           "useCaseError",
	ExecutionError:         "executionError",
	InvalidRepositoryError: "invalidRepositoryError",
	InvalidArgumentError:   "invalidArgumentError",
}

var errorTypesByFieldName = map[string]ErrorType{
	"undefinedError":         UndefinedError,
	"creationError":          CreationError,
	"updatingError":          UpdatingError,
	"fetchingError":          FetchingError,
	"deletionError":          DeletionError,
	"useCaseError":           UseCaseError,
	"executionError":         ExecutionError,
	"invalidRepositoryError": InvalidRepositoryError,
	"invalidArgumentError":   InvalidArgumentError,
}

// ErrorTypes returns every variant in declaration order.
func ErrorTypes() []ErrorType {
	return []ErrorType{
		UndefinedError,
		CreationError,
		UpdatingError,
		FetchingError,
		DeletionError,
		UseCaseError,
		ExecutionError,
		InvalidRepositoryError,
		InvalidArgumentError,
	}
}

// IsValid reports whether t is one of the declared variants.
func (t ErrorType) IsValid() bool {
	return t >= UndefinedError && t <= InvalidArgumentError
}

// String returns the canonical name, e.g. "creation-error". Out-of-range
// values render as "undefined-error".
func (t ErrorType) String() string {
	if !t.IsValid() {
		return errorTypeNames[UndefinedError]
	}

	return errorTypeNames[t]
}

// ParseErrorType resolves a canonical name. Matching is exact and
// case-sensitive.
func ParseErrorType(s string) (ErrorType, error) {
	if t, ok := errorTypesByName[s]; ok {
		return t, nil
	}

	return UndefinedError, fmt.Errorf("%w: %q", ErrUnknownErrorType, s)
}

func (t ErrorType) fieldName() string {
	if !t.IsValid() {
		return errorTypeFieldNames[UndefinedError]
	}

	return errorTypeFieldNames[t]
}

func (t ErrorType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.fieldName())
}

func (t *ErrorType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownErrorType, data)
	}

	v, ok := errorTypesByFieldName[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownErrorType, name)
	}
	*t = v

	return nil
}

// MarshalYAML satisfies yaml.Marshaler.
func (t ErrorType) MarshalYAML() (interface{}, error) {
	return t.fieldName(), nil
}
