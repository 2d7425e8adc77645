package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eren/campuscore/internal/app/models/dto"
	"github.com/eren/campuscore/internal/pkg/apperrors"
)

func TestStatusCodeForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"fee not found", apperrors.ErrFeeNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperrors.ErrNoticeNotFound), http.StatusNotFound},
		{"duplicate subject", apperrors.ErrSubjectAlreadyExists, http.StatusConflict},
		{"duplicate attendance", apperrors.ErrAttendanceAlreadyExists, http.StatusConflict},
		{"fee already paid", apperrors.ErrFeeAlreadyPaid, http.StatusConflict},
		{"invalid reference", apperrors.ErrInvalidReference, http.StatusBadRequest},
		{"validation failed", fmt.Errorf("%w: marks", apperrors.ErrValidationFailed), http.StatusBadRequest},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusCodeForError(tc.err))
		})
	}
}

func TestHandleAPIError_CarriesCustomErrorDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	err := apperrors.NewCustomError(apperrors.ErrInvalidReference, "student 7 or subject 3 does not resolve").
		WithDetails(map[string]interface{}{"studentId": int64(7), "subjectId": int64(3)})
	HandleAPIError(c, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeInvalidReference, resp.Error.Code)

	details, ok := resp.Error.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(7), details["studentId"])
	assert.Equal(t, float64(3), details["subjectId"])
}
