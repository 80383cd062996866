package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumnet/api/internal/app/models/dto"
	"github.com/alumnet/api/internal/pkg/apperrors"
	"github.com/alumnet/api/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the HTTP error taxonomy and writes
// the `{message}` envelope. Unrecognized errors are logged and reported as a
// generic 500 without internal detail.
func HandleAPIError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled API error")
		c.JSON(status, dto.NewMessageResponse("Internal server error"))
		return
	}

	c.JSON(status, dto.NewMessageResponse(err.Error()))
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidRequestStatus),
		errors.Is(err, apperrors.ErrInvalidApplicationStatus):
		return http.StatusBadRequest

	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenNotFound):
		return http.StatusUnauthorized

	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrStudentProfileNotFound),
		errors.Is(err, apperrors.ErrAlumniProfileNotFound),
		errors.Is(err, apperrors.ErrMentorNotFound),
		errors.Is(err, apperrors.ErrMentorProfileNotFound),
		errors.Is(err, apperrors.ErrRequestNotFound),
		errors.Is(err, apperrors.ErrJobNotFound),
		errors.Is(err, apperrors.ErrApplicationNotFound),
		errors.Is(err, apperrors.ErrEventNotFound),
		errors.Is(err, apperrors.ErrNotRegistered):
		return http.StatusNotFound

	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrRequestAlreadyExists),
		errors.Is(err, apperrors.ErrAlreadyApplied),
		errors.Is(err, apperrors.ErrAlreadyRegistered):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
