package goggles

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	storageCause := errors.New("disk full")
	generationCause := errors.New("connection refused")

	tests := []struct {
		name   string
		err    *Error
		kind   Kind
		status int
		check  func(error) bool
	}{
		{
			name:   "invalid media type",
			err:    NewInvalidMediaTypeError("text/plain"),
			kind:   KindInvalidMediaType,
			status: 400,
			check:  IsInvalidMediaType,
		},
		{
			name:   "not found",
			err:    NewNotFoundError("abc"),
			kind:   KindNotFound,
			status: 404,
			check:  IsNotFound,
		},
		{
			name:   "storage write",
			err:    NewStorageWriteError("could not save file", storageCause),
			kind:   KindStorageWrite,
			status: 500,
			check:  IsStorageWrite,
		},
		{
			name:   "generation",
			err:    NewGenerationError("generation request failed", generationCause),
			kind:   KindGeneration,
			status: 500,
			check:  IsGeneration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.status, tt.err.StatusCode())
			assert.Equal(t, tt.status, StatusCodeOf(tt.err))
			assert.True(t, tt.check(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	t.Run("message includes cause when present", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := NewStorageWriteError("could not save file", cause)
		assert.Equal(t, "could not save file: permission denied", err.Error())
	})

	t.Run("message stands alone without cause", func(t *testing.T) {
		err := NewNotFoundError("abc")
		assert.Equal(t, `image "abc" not found`, err.Error())
	})

	t.Run("invalid media type names the rejected type", func(t *testing.T) {
		err := NewInvalidMediaTypeError("text/plain")
		assert.Contains(t, err.Error(), "text/plain")
	})
}

func TestErrorUnwrapping(t *testing.T) {
	t.Run("Unwrap exposes the cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := NewGenerationError("generation request failed", cause)
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("classification survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("handling request: %w", NewNotFoundError("abc"))
		assert.True(t, IsNotFound(wrapped))
		assert.Equal(t, 404, StatusCodeOf(wrapped))
	})

	t.Run("unclassified errors report no status", func(t *testing.T) {
		assert.Equal(t, 0, StatusCodeOf(errors.New("plain")))
		assert.False(t, IsNotFound(errors.New("plain")))
	})
}
