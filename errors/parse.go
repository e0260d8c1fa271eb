package errors

import (
	"fmt"
	"regexp"
)

// The code token admits only alphanumerics and the type token only letters
// and hyphens. Anything else falls through to the unclassified path.
var canonicalPattern = regexp.MustCompile(`^\[code=([a-zA-Z0-9]+),error_type=([a-zA-Z-]+)\]\s(.+)$`)

// Parse is the inverse of MappedError.String. It never fails: an unknown
// type token yields UndefinedError, and text that does not match the
// canonical form becomes the message of an Unmapped UndefinedError.
//
// Like New, Parse emits a warning-level log line for the value it builds.
func Parse(text string) MappedError {
	m := canonicalPattern.FindStringSubmatch(text)
	if m == nil {
		return New(text, true, nil, UndefinedError)
	}

	errorType, err := ParseErrorType(m[2])
	if err != nil {
		errorType = UndefinedError
	}

	return New(m[3], true, nil, errorType).WithCode(m[1])
}

// ParseStrict is Parse without the fallbacks. It returns ErrNotCanonical
// when text does not match the canonical form and ErrUnknownErrorType when
// the type token is not a known name. No log line is emitted on failure.
func ParseStrict(text string) (MappedError, error) {
	m := canonicalPattern.FindStringSubmatch(text)
	if m == nil {
		return MappedError{}, fmt.Errorf("%w: %q", ErrNotCanonical, text)
	}

	errorType, err := ParseErrorType(m[2])
	if err != nil {
		return MappedError{}, err
	}

	return New(m[3], true, nil, errorType).WithCode(m[1]), nil
}

// IsCanonical reports whether text matches the canonical form.
func IsCanonical(text string) bool {
	return canonicalPattern.MatchString(text)
}
