package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yigit/intlportal/internal/pkg/apperrors"
)

func TestStringValidation(t *testing.T) {
	assert.False(t, NewStringValidation("   ").Validate())
	assert.True(t, NewStringValidation("").WithRequired(false).Validate())
	assert.True(t, NewStringValidation("4KA21").WithPattern(CompiledPatterns.ClassGroupCode).Validate())
	assert.False(t, NewStringValidation("KA21").WithPattern(CompiledPatterns.ClassGroupCode).Validate())
	assert.False(t, NewStringValidation("abcdef").WithMaxLength(3).Validate())
	assert.True(t, NewStringValidation("13:30").WithPattern(CompiledPatterns.ClockTime).Validate())
}

func TestFirstError_CarriesMessage(t *testing.T) {
	err := FirstError(
		NewStringValidation("Title").WithMessage("Title and message are required"),
		NewStringValidation("").WithMessage("Title and message are required"),
		NewStringValidation("").WithMessage("never reached"),
	)

	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Equal(t, "Title and message are required", apperrors.UserMessage(err))
	assert.NoError(t, FirstError(NewStringValidation("ok")))
}
