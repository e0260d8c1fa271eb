package errors_test

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	mappederr "codeberg.org/mutker/mappederr/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCanonicalLiteral(t *testing.T) {
	msg := "[code=none,error_type=undefined-error] This is a test error"

	e := mappederr.Parse(msg)

	assert.Equal(t, msg, e.String())
	assert.Equal(t, "This is a test error", e.Msg())
	assert.Equal(t, mappederr.UndefinedError, e.ErrorType())
	assert.Equal(t, mappederr.Unmapped, e.Code())
}

func TestParseRoundTrip(t *testing.T) {
	codes := []string{"none", "AB12", "0", "E404", "lowercase"}
	messages := []string{
		"user not found",
		" leading space",
		"trailing space ",
		"brackets [a=b] and, commas",
		"[code=X1,error_type=creation-error] embedded",
		`quoted "text" and \ backslash`,
		"unicode: café ✓",
	}

	for _, errorType := range mappederr.ErrorTypes() {
		for _, code := range codes {
			for _, msg := range messages {
				original := mappederr.New(msg, true, nil, errorType).WithCode(code)

				parsed := mappederr.Parse(original.String())

				assert.Equal(t, original, parsed, "%s", original)
				assert.Equal(t, original.String(), parsed.String())
			}
		}
	}
}

func TestParseRoundTripChained(t *testing.T) {
	cause := mappederr.New("disk full", true, nil, mappederr.ExecutionError).WithCode("D1")
	original := mappederr.New("save failed", false, &cause, mappederr.CreationError).WithCode("C7")

	parsed := mappederr.Parse(original.String())

	assert.Equal(t, original.Msg(), parsed.Msg())
	assert.Equal(t, mappederr.CreationError, parsed.ErrorType())
	assert.Equal(t, mappederr.Code("C7"), parsed.Code())
}

func TestParseUnknownTypeFallsBack(t *testing.T) {
	e := mappederr.Parse("[code=AB12,error_type=totally-bogus] hi")

	assert.Equal(t, mappederr.UndefinedError, e.ErrorType())
	assert.Equal(t, mappederr.Code("AB12"), e.Code())
	assert.Equal(t, "hi", e.Msg())
}

func TestParseUppercaseTypeTokenMatchesButIsUnknown(t *testing.T) {
	e := mappederr.Parse("[code=AB,error_type=Creation-Error] x")

	assert.Equal(t, mappederr.UndefinedError, e.ErrorType())
	assert.Equal(t, mappederr.Code("AB"), e.Code())
	assert.Equal(t, "x", e.Msg())
}

func TestParseMalformedFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"plain text", "not a formatted error at all"},
		{"empty", ""},
		{"code with hyphen", "[code=A-B,error_type=creation-error] x"},
		{"type with underscore", "[code=AB,error_type=creation_error] x"},
		{"fields swapped", "[error_type=creation-error,code=AB] x"},
		{"missing space", "[code=AB,error_type=creation-error]x"},
		{"empty message", "[code=AB,error_type=creation-error] "},
		{"empty code", "[code=,error_type=creation-error] x"},
		{"multiline message", "[code=AB,error_type=creation-error] a\nb"},
		{"leading text", "oops [code=AB,error_type=creation-error] x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mappederr.Parse(tt.input)

			assert.Equal(t, mappederr.UndefinedError, e.ErrorType())
			assert.Equal(t, mappederr.Unmapped, e.Code())
			assert.Equal(t, tt.input, e.Msg())
			assert.False(t, mappederr.IsCanonical(tt.input))
		})
	}
}

func TestParseLogsWarning(t *testing.T) {
	rec := record(t)

	mappederr.Parse("[code=AB12,error_type=fetching-error] gone")

	entries := rec.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, mappederr.LevelWarning, entries[0].level)
	assert.Equal(t, `"gone"`, entries[0].text)
}

func TestParseStrict(t *testing.T) {
	e, err := mappederr.ParseStrict("[code=E1,error_type=deletion-error] gone")
	require.NoError(t, err)
	assert.Equal(t, mappederr.DeletionError, e.ErrorType())
	assert.Equal(t, mappederr.Code("E1"), e.Code())
	assert.Equal(t, "gone", e.Msg())

	_, err = mappederr.ParseStrict("[code=E1,error_type=totally-bogus] gone")
	assert.ErrorIs(t, err, mappederr.ErrUnknownErrorType)

	_, err = mappederr.ParseStrict("not a formatted error at all")
	assert.ErrorIs(t, err, mappederr.ErrNotCanonical)
}

func TestParseStrictFailureDoesNotLog(t *testing.T) {
	rec := record(t)

	_, err := mappederr.ParseStrict("nope")
	require.Error(t, err)

	assert.Empty(t, rec.Entries())
}

var fuzzCode = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

func FuzzParseRoundTrip(f *testing.F) {
	f.Add("This is a test error", "none", uint8(0))
	f.Add("user not found", "E404", uint8(3))
	f.Add(" [nested] ", "AB12", uint8(8))

	f.Fuzz(func(t *testing.T, msg, code string, n uint8) {
		if msg == "" || strings.Contains(msg, "\n") || !utf8.ValidString(msg) {
			t.Skip()
		}
		if !fuzzCode.MatchString(code) {
			t.Skip()
		}

		types := mappederr.ErrorTypes()
		errorType := types[int(n)%len(types)]
		original := mappederr.New(msg, true, nil, errorType).WithCode(code)

		parsed := mappederr.Parse(original.String())

		if parsed != original {
			t.Fatalf("round trip mismatch: %q => %q", original, parsed)
		}
	})
}
