package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursehub/backend/internal/app/models/dto"
	"github.com/coursehub/backend/internal/pkg/apperrors"
	"github.com/coursehub/backend/internal/pkg/logger"
)

// HandleAPIError maps application errors onto HTTP responses.
// Controllers call it for any error that reaches them from a service.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	var details any
	message := ""
	if errors.As(err, &custom) {
		message = custom.Message
		details = custom.Details
	}

	switch {
	case errors.Is(err, apperrors.ErrCourseNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found", details)
	case errors.Is(err, apperrors.ErrInstructorNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Instructor not found", details)
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found", details)
	case errors.Is(err, apperrors.ErrCourseNameTaken):
		respondError(c, http.StatusConflict, dto.ErrorCodeConflict, "Course name already in use", details)
	case errors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusConflict, dto.ErrorCodeConflict, "Resource conflict", details)
	case errors.Is(err, apperrors.ErrInvalidID):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeInvalidID, "Invalid identifier", details)
	case errors.Is(err, apperrors.ErrValidationFailed):
		if message == "" {
			message = "Validation failed"
		}
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, message, details)
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalError, "Internal server error", nil)
	}
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string, details any) {
	detail := dto.NewErrorDetail(code, message)
	if details != nil {
		detail = detail.WithDetails(details)
	}
	c.JSON(status, dto.NewErrorResponse(detail))
}
