package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassification_SurvivesWrapping(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("post line item 1: %w", NewStoreError("create transaction", cause))

	assert.True(t, IsStore(err))
	assert.False(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "post line item 1: store: create transaction: connection reset", err.Error())
}

func TestNotFoundError_Message(t *testing.T) {
	err := NewNotFoundError("category", "P1")

	assert.True(t, IsNotFound(err))
	assert.Equal(t, `category "P1" not found`, err.Error())
}

func TestIsNotSupported(t *testing.T) {
	assert.True(t, IsNotSupported(fmt.Errorf("income posting: %w", ErrNotSupported)))
	assert.False(t, IsNotSupported(NewValidationError("x")))
}
