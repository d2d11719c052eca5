package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	plain := FromError(errors.New("boom"))
	assert.Equal(t, ErrInternal.Code, plain.Code)
	assert.Equal(t, http.StatusInternalServerError, plain.Status)

	wrapped := fmt.Errorf("lookup: %w", Clone(ErrNotFound, "scholarship not found"))
	typed := FromError(wrapped)
	assert.Equal(t, "scholarship not found", typed.Message)
	assert.Equal(t, http.StatusNotFound, typed.Status)
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("cache: %w", Clone(ErrCacheMiss, "listing not cached"))
	assert.True(t, Is(err, ErrCacheMiss))
	assert.False(t, Is(err, ErrNotFound))
	assert.False(t, Is(nil, ErrCacheMiss))
	assert.False(t, Is(errors.New("x"), ErrCacheMiss))
}

func TestWrapMessage(t *testing.T) {
	err := Wrap(errors.New("pq: duplicate key"), ErrConflict.Code, ErrConflict.Status, "email already registered")
	assert.Equal(t, "email already registered: pq: duplicate key", err.Error())
	assert.EqualError(t, errors.Unwrap(err), "pq: duplicate key")
}
