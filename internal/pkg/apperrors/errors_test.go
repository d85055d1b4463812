package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewValidationError(t *testing.T) {
	err := fmt.Errorf("create document: %w", NewValidationError("Please enter a document name."))

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, "Please enter a document name.", UserMessage(err))
}

func TestIs_MatchesAnyTarget(t *testing.T) {
	err := fmt.Errorf("%w: id 42", ErrStudentNotFound)

	assert.True(t, Is(err, ErrResourceNotFound, ErrDocumentNotFound, ErrStudentNotFound))
	assert.False(t, Is(err, ErrResourceNotFound, ErrDocumentNotFound))
}

func TestCustomError(t *testing.T) {
	err := NewCustomError(ErrConflict, "").WithCode("X").WithDetails(map[string]interface{}{"id": "1"})

	assert.Equal(t, "conflict", err.Error())
	assert.Equal(t, "X", err.Code)
	assert.Equal(t, "1", err.Details["id"])
	assert.Empty(t, UserMessage(errors.New("plain")))

	confirm := NewConfirmationError("Are you sure you want to delete this student?")
	assert.True(t, errors.Is(confirm, ErrConfirmationRequired))
	assert.Equal(t, "Are you sure you want to delete this student?", confirm.Error())
}
