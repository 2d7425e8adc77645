package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eren/campuscore/internal/app/models/dto"
)

// parseIDParam reads a numeric path parameter and writes a 400 response when
// it is not a valid ID. The second return value reports success.
func parseIDParam(ctx *gin.Context, param, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(param), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+label)
		errorDetail = errorDetail.WithDetails(label + " must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
