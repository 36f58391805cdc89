package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError(t *testing.T) {
	err := NewNotFoundError("Id %d not found", 42)

	assert.Equal(t, "Id 42 not found", err.Error())
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("lookup: %w", NewInvalidArgumentError("Contact admin"))

	assert.True(t, IsKind(err, KindInvalidArgument))
	assert.False(t, IsKind(err, KindNotFound))
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
}

func TestNewConflictError_Unwrap(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := NewConflictError("failed to save customer", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to save customer: duplicate key value violates unique constraint", err.Error())
	assert.True(t, IsKind(err, KindConflict))
}
