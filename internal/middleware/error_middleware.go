package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
	"github.com/yigit/intlportal/internal/pkg/export"
	"github.com/yigit/intlportal/internal/pkg/logger"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetailFor(err)
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
	}
	c.JSON(status, dto.NewErrorResponse(detail))
}

// errorDetailFor maps an error chain to a status code and error detail. The
// message carried by a CustomError replaces the generic one.
func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	status, code, message := classify(err)
	if custom := apperrors.UserMessage(err); custom != "" && status != http.StatusInternalServerError {
		message = custom
	}

	detail := dto.NewErrorDetail(code, message)
	var ce *apperrors.CustomError
	if errors.As(err, &ce) && ce.StatusMsg != "" {
		detail = detail.WithDetails(ce.StatusMsg)
	}
	if status == http.StatusConflict || errors.Is(err, apperrors.ErrConfirmationRequired) {
		detail = detail.WithSeverity(dto.ErrorSeverityWarning)
	}
	return status, detail
}

func classify(err error) (int, dto.ErrorCode, string) {
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrStudentNotFound, apperrors.ErrDocumentNotFound, apperrors.ErrAnnouncementNotFound,
		apperrors.ErrClassGroupNotFound, apperrors.ErrSubjectNotFound, apperrors.ErrScheduleNotFound,
		apperrors.ErrGradeNotFound, apperrors.ErrExamTypeNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"
	case errors.Is(err, apperrors.ErrSessionNotFound):
		return http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "No active session"
	case errors.Is(err, apperrors.ErrUnknownDemoRole):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Unknown demo role"
	case errors.Is(err, apperrors.ErrConfirmationRequired):
		return http.StatusBadRequest, dto.ErrorCodeConfirmationRequired, "Confirmation required"
	case errors.Is(err, apperrors.ErrUnsupportedFileType):
		return http.StatusBadRequest, dto.ErrorCodeUnsupportedFile, "Unsupported file type"
	case errors.Is(err, apperrors.ErrFileTooLarge):
		return http.StatusBadRequest, dto.ErrorCodeFileTooLarge, "File too large"
	case errors.Is(err, export.ErrUnknownFormat):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Unsupported export format"
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"
	case errors.Is(err, apperrors.ErrScreenNotMounted):
		return http.StatusConflict, dto.ErrorCodeScreenNotMounted, "Screen not mounted"
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.ErrorCodeResourceConflict, "Conflict"
	case errors.Is(err, apperrors.ErrStorage):
		return http.StatusInternalServerError, dto.ErrorCodeStorageError, "Storage error"
	case errors.Is(err, apperrors.ErrLoginInterrupted):
		// The client went away; nobody reads this response.
		return 499, dto.ErrorCodeUnauthorized, "Login interrupted"
	default:
		return http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"
	}
}
