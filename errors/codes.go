package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
)

// Decoding failures. The core operations themselves never return these.
var (
	ErrUnknownErrorType = stderrors.New("unknown error type")
	ErrInvalidCode      = stderrors.New("invalid error code")
	ErrMissingField     = stderrors.New("missing field")
	ErrNotCanonical     = stderrors.New("text is not a canonical mapped error")
)

// unmappedLiteral is reserved: it always means "no code".
const unmappedLiteral = "none"

// unmappedMarker is the bare record form of Unmapped.
const unmappedMarker = "unmapped"

// ErrorCode is an optional application-defined identifier distinguishing
// errors within one ErrorType. The zero value is Unmapped.
type ErrorCode struct {
	value  string
	mapped bool
}

// Unmapped is the explicit "no code" value.
var Unmapped = ErrorCode{}

// DefaultCode returns Unmapped.
func DefaultCode() ErrorCode {
	return Unmapped
}

// Code returns a mapped code. The literal "none" is reserved and yields
// Unmapped, so a code whose value is "none" cannot be represented.
func Code(code string) ErrorCode {
	if code == unmappedLiteral {
		return Unmapped
	}

	return ErrorCode{value: code, mapped: true}
}

// Value returns the code string and whether one is set.
func (c ErrorCode) Value() (string, bool) {
	return c.value, c.mapped
}

func (c ErrorCode) IsMapped() bool {
	return c.mapped
}

// String returns the code, or "none" when unmapped.
func (c ErrorCode) String() string {
	if !c.mapped {
		return unmappedLiteral
	}

	return c.value
}

func (c ErrorCode) Equal(other ErrorCode) bool {
	return c == other
}

type codeRecord struct {
	Code string `json:"code" yaml:"code"`
}

// MarshalJSON writes {"code":"X"} for a mapped code and "unmapped" otherwise.
func (c ErrorCode) MarshalJSON() ([]byte, error) {
	if !c.mapped {
		return json.Marshal(unmappedMarker)
	}

	return json.Marshal(codeRecord{Code: c.value})
}

func (c *ErrorCode) UnmarshalJSON(data []byte) error {
	var marker string
	if err := json.Unmarshal(data, &marker); err == nil {
		if marker != unmappedMarker {
			return fmt.Errorf("%w: %q", ErrInvalidCode, marker)
		}
		*c = Unmapped

		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCode, data)
	}

	payload, ok := raw["code"]
	if !ok || len(raw) != 1 {
		return fmt.Errorf("%w: %s", ErrInvalidCode, data)
	}

	var value string
	if err := json.Unmarshal(payload, &value); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCode, data)
	}
	*c = Code(value)

	return nil
}

// MarshalYAML satisfies yaml.Marshaler with the same shapes as MarshalJSON.
func (c ErrorCode) MarshalYAML() (interface{}, error) {
	if !c.mapped {
		return unmappedMarker, nil
	}

	return codeRecord{Code: c.value}, nil
}
