package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/signifi/platform/internal/app/models/dto"
	"github.com/signifi/platform/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to HTTP responses. Controllers call
// it for every service error so the status and error code mapping lives in
// one place.
func HandleAPIError(c *gin.Context, err error) {
	detail := errorDetailFor(err)

	// Validation errors carry the offending input field when known.
	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		if custom.Field != "" {
			detail.WithField(custom.Field)
		}
		if custom.Message != "" {
			detail.Message = custom.Message
		}
	}

	c.JSON(statusFor(err), dto.APIResponse{Error: detail})
}

func errorDetailFor(err error) *dto.ErrorDetail {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid email or password")
	case errors.Is(err, apperrors.ErrTokenExpired):
		return dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrNotAuthenticated):
		return dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrCourseNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found")
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found")
	case errors.Is(err, apperrors.ErrUserNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrPasswordMismatch):
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Passwords do not match")
	case errors.Is(err, apperrors.ErrUnknownSettingsField):
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unknown settings field")
	case errors.Is(err, apperrors.ErrInvalidEmail):
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid email format")
	case errors.Is(err, apperrors.ErrInvalidPassword):
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid password format")
	case errors.Is(err, apperrors.ErrValidationFailed):
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
	case errors.Is(err, apperrors.ErrStorageCorrupt):
		return dto.NewErrorDetail(dto.ErrorCodeStorageError, "Stored data is corrupt")
	default:
		return dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrNotAuthenticated):
		return 401
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return 403
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return 409
	case errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		return 404
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidEmail),
		errors.Is(err, apperrors.ErrInvalidPassword),
		errors.Is(err, apperrors.ErrPasswordMismatch),
		errors.Is(err, apperrors.ErrUnknownSettingsField):
		return 400
	default:
		return 500
	}
}
