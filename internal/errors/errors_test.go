package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storageError struct {
	Code string
}

func (e storageError) Error() string { return "storage: " + e.Code }

func TestWrap(t *testing.T) {
	t.Run("Success_KeepsCategory", func(t *testing.T) {
		err := Wrap(ErrNotFound, "post not found")

		require.Error(t, err)
		assert.Equal(t, "post not found: not found", err.Error())
		assert.True(t, Is(err, ErrNotFound))
		assert.False(t, Is(err, ErrConflict))
	})

	t.Run("Success_NilStaysNil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "context"))
	})
}

func TestWrapf(t *testing.T) {
	t.Run("Success_FormatsMessage", func(t *testing.T) {
		err := Wrapf(ErrInvalidInput, "field %s", "content")

		assert.Equal(t, "field content: invalid input", err.Error())
		assert.True(t, Is(err, ErrInvalidInput))
	})

	t.Run("Success_NilStaysNil", func(t *testing.T) {
		assert.NoError(t, Wrapf(nil, "field %s", "content"))
	})
}

func TestAs(t *testing.T) {
	err := Wrap(storageError{Code: "1062"}, "create user")

	var target storageError
	require.True(t, As(err, &target))
	assert.Equal(t, "1062", target.Code)
}

func TestJoin(t *testing.T) {
	first := errors.New("first")

	err := Join(first, nil, ErrConflict)

	assert.True(t, Is(err, first))
	assert.True(t, Is(err, ErrConflict))
	assert.NoError(t, Join(nil, nil))
}

func TestDefine(t *testing.T) {
	errPostNotFound := Define(ErrNotFound, "post not found")

	wrapped := Wrap(errPostNotFound, "edit post")

	assert.Equal(t, "post not found", errPostNotFound.Error())
	assert.True(t, Is(wrapped, ErrNotFound))
	assert.True(t, Is(wrapped, errPostNotFound))

	var domainErr *DomainError
	require.True(t, As(wrapped, &domainErr))
	assert.Equal(t, "post not found", domainErr.Message)
	assert.Equal(t, ErrNotFound, domainErr.Category)
}
