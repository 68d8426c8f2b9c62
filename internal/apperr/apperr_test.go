package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	assert.Equal(t, "title: is required", Validation("title", "is required").Error())
	assert.Equal(t, "Wedding not found", NotFound("Wedding not found").Error())
	assert.Equal(t, "Task with id 7 not found", NotFound("Task with id %d not found", 7).Error())
	assert.Equal(t, "failed to insert guest: disk full", Store("insert guest", errors.New("disk full")).Error())
}

func TestKindOf(t *testing.T) {
	cause := errors.New("boom")
	wrapped := fmt.Errorf("handler: %w", Store("fetch tasks", cause))

	assert.Equal(t, KindStore, KindOf(wrapped))
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, Kind(""), KindOf(cause))
	assert.False(t, Is(nil, KindStore))

	assert.True(t, IsValidation(Validation("email", "bad")))
	assert.True(t, IsNotFound(fmt.Errorf("x: %w", NotFound("gone"))))
	assert.False(t, IsNotFound(Validation("", "bad")))
}

func TestFieldOf(t *testing.T) {
	assert.Equal(t, "plus_one", FieldOf(fmt.Errorf("decode: %w", Validation("plus_one", "is required"))))
	assert.Empty(t, FieldOf(NotFound("Wedding not found")))
	assert.Empty(t, FieldOf(errors.New("plain")))
}
