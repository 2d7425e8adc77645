package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eren/campuscore/internal/app/models/dto"
	"github.com/eren/campuscore/internal/pkg/apperrors"
)

// errorDetailFor builds the response detail, carrying over any context details
// attached to a wrapping apperrors.CustomError.
func errorDetailFor(code dto.ErrorCode, err error) *dto.ErrorDetail {
	detail := dto.NewErrorDetail(code, err.Error())
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Details != nil {
		detail = detail.WithDetails(customErr.Details)
	}
	return detail
}

// HandleAPIError maps service errors to HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrTeacherNotFound,
		apperrors.ErrDepartmentNotFound,
		apperrors.ErrSubjectNotFound,
		apperrors.ErrFeeNotFound,
		apperrors.ErrNoticeNotFound):
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Error: errorDetailFor(dto.ErrorCodeResourceNotFound, err),
		})
	case apperrors.Is(err, apperrors.ErrConflict,
		apperrors.ErrDepartmentAlreadyExists,
		apperrors.ErrSubjectAlreadyExists,
		apperrors.ErrAttendanceAlreadyExists,
		apperrors.ErrResultAlreadyExists):
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: errorDetailFor(dto.ErrorCodeResourceAlreadyExists, err),
		})
	case errors.Is(err, apperrors.ErrFeeAlreadyPaid):
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeFeeAlreadyPaid, err.Error()),
		})
	case errors.Is(err, apperrors.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: errorDetailFor(dto.ErrorCodeInvalidReference, err),
		})
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: errorDetailFor(dto.ErrorCodeValidationFailed, err),
		})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		})
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})
	default:
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}

// StatusCodeForError returns the HTTP status HandleAPIError would respond with
func StatusCodeForError(err error) int {
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrTeacherNotFound,
		apperrors.ErrDepartmentNotFound,
		apperrors.ErrSubjectNotFound,
		apperrors.ErrFeeNotFound,
		apperrors.ErrNoticeNotFound):
		return http.StatusNotFound
	case apperrors.Is(err, apperrors.ErrConflict,
		apperrors.ErrDepartmentAlreadyExists,
		apperrors.ErrSubjectAlreadyExists,
		apperrors.ErrAttendanceAlreadyExists,
		apperrors.ErrResultAlreadyExists,
		apperrors.ErrFeeAlreadyPaid):
		return http.StatusConflict
	case apperrors.Is(err, apperrors.ErrInvalidReference, apperrors.ErrValidationFailed):
		return http.StatusBadRequest
	case apperrors.Is(err, apperrors.ErrInvalidCredentials,
		apperrors.ErrTokenExpired,
		apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
