package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Session errors
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenInvalid     = errors.New("invalid token")
	ErrSessionNotFound  = errors.New("session not found")
	ErrUnknownDemoRole  = errors.New("unknown demo role")
	ErrLoginInterrupted = errors.New("login interrupted")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// ErrConfirmationRequired is returned by destructive operations that
	// were not explicitly confirmed. Nothing is changed when it is returned.
	ErrConfirmationRequired = errors.New("confirmation required")

	// ErrScreenNotMounted is returned when screen-local state is requested
	// while the session has a different screen mounted.
	ErrScreenNotMounted = errors.New("screen not mounted")

	// ErrStorage marks a failure of the file or key-value store behind an
	// operation.
	ErrStorage = errors.New("storage failure")
)

// Upload errors
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
)

// Domain lookups
var (
	ErrStudentNotFound      = errors.New("student not found")
	ErrDocumentNotFound     = errors.New("document not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrClassGroupNotFound   = errors.New("class group not found")
	ErrSubjectNotFound      = errors.New("subject not found")
	ErrScheduleNotFound     = errors.New("class schedule not found")
	ErrGradeNotFound        = errors.New("grade not found")
	ErrExamTypeNotFound     = errors.New("exam type not found")
)

// NewValidationError returns a validation failure whose message is shown
// to the user as-is.
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewConfirmationError asks the caller to repeat the request with confirmation.
func NewConfirmationError(prompt string) error {
	return &CustomError{
		Err:       ErrConfirmationRequired,
		Message:   prompt,
		StatusMsg: "repeat the request with confirm=true to proceed",
	}
}

// Is reports whether err matches target or any of errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// UserMessage returns the user-facing message carried by a CustomError
// anywhere in err's chain, or "" if there is none.
func UserMessage(err error) string {
	var custom *CustomError
	if errors.As(err, &custom) {
		return custom.Message
	}
	return ""
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err       error
	Message   string
	StatusMsg string
	Code      string
	Details   map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
