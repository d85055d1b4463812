package validation

import (
	"regexp"
	"strings"

	"github.com/yigit/intlportal/internal/pkg/apperrors"
)

// Validation rule patterns
var (
	// Class group codes look like 4KA21: year digit, program letters, section digits.
	ClassGroupCodePattern = `^[1-9][A-Z]{2,3}\d{2}$`

	// Clock times such as 08:00.
	ClockTimePattern = `^([01]\d|2[0-3]):[0-5]\d$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	ClassGroupCode *regexp.Regexp
	ClockTime      *regexp.Regexp
}{
	ClassGroupCode: regexp.MustCompile(ClassGroupCodePattern),
	ClockTime:      regexp.MustCompile(ClockTimePattern),
}

// StringValidation checks a single string value.
type StringValidation struct {
	Value    string
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
	Message  string
}

// NewStringValidation creates a required string validation. Surrounding
// whitespace does not count as content.
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    strings.TrimSpace(value),
		Required: true,
	}
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// WithMessage sets the message reported when validation fails.
func (v *StringValidation) WithMessage(message string) *StringValidation {
	v.Message = message
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return !v.Required
	}
	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}
	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}
	return true
}

// Err returns a validation error carrying the configured message, or nil.
func (v *StringValidation) Err() error {
	if v.Validate() {
		return nil
	}
	msg := v.Message
	if msg == "" {
		msg = "invalid value"
	}
	return apperrors.NewValidationError(msg)
}

// FirstError returns the first failing validation's error.
func FirstError(checks ...*StringValidation) error {
	for _, c := range checks {
		if err := c.Err(); err != nil {
			return err
		}
	}
	return nil
}
