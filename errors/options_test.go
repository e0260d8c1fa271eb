package errors_test

import (
	"testing"

	mappederr "codeberg.org/mutker/mappederr/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEDefaults(t *testing.T) {
	rec := record(t)

	e := mappederr.E(mappederr.UseCaseError, "quota exceeded")

	assert.Equal(t, "[code=none,error_type=use-case-error] quota exceeded", e.String())
	entries := rec.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, mappederr.LevelWarning, entries[0].level)
}

func TestEOptions(t *testing.T) {
	cause := mappederr.New("timeout", true, nil, mappederr.ExecutionError)
	rec := record(t)

	e := mappederr.E(
		mappederr.UpdatingError,
		"update failed",
		mappederr.Unexpected(),
		mappederr.WithCause(cause),
		mappederr.WithCode("U42"),
	)

	assert.Equal(t, mappederr.New("update failed", false, &cause, mappederr.UpdatingError).WithCode("U42"), e)
	assert.Equal(t, `[Current error] "update failed"; [Previous error] "timeout"`, e.Msg())

	entries := rec.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, mappederr.LevelError, entries[0].level)
}

func TestTypeHelpers(t *testing.T) {
	tests := []struct {
		build     func(string, ...mappederr.Option) mappederr.MappedError
		errorType mappederr.ErrorType
	}{
		{mappederr.Undefined, mappederr.UndefinedError},
		{mappederr.Creation, mappederr.CreationError},
		{mappederr.Updating, mappederr.UpdatingError},
		{mappederr.Fetching, mappederr.FetchingError},
		{mappederr.Deletion, mappederr.DeletionError},
		{mappederr.UseCase, mappederr.UseCaseError},
		{mappederr.Execution, mappederr.ExecutionError},
		{mappederr.InvalidRepository, mappederr.InvalidRepositoryError},
		{mappederr.InvalidArgument, mappederr.InvalidArgumentError},
	}

	for _, tt := range tests {
		t.Run(tt.errorType.String(), func(t *testing.T) {
			e := tt.build("msg", mappederr.WithCode("C1"))

			assert.Equal(t, tt.errorType, e.ErrorType())
			assert.Equal(t, mappederr.Code("C1"), e.Code())
			assert.Equal(t, "msg", e.Msg())
		})
	}
}

func TestNewf(t *testing.T) {
	e := mappederr.Newf(mappederr.FetchingError, "user %d not found", 42)

	assert.Equal(t, "user 42 not found", e.Msg())
	assert.Equal(t, mappederr.FetchingError, e.ErrorType())
	assert.Equal(t, mappederr.Unmapped, e.Code())
}
