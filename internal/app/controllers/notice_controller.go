package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eren/campuscore/internal/app/models"
	"github.com/eren/campuscore/internal/app/models/dto"
	"github.com/eren/campuscore/internal/app/services"
	"github.com/eren/campuscore/internal/middleware"
)

// NoticeController handles notice board operations
type NoticeController struct {
	noticeService *services.NoticeService
}

// NewNoticeController creates a new NoticeController
func NewNoticeController(noticeService *services.NoticeService) *NoticeController {
	return &NoticeController{
		noticeService: noticeService,
	}
}

// CreateNotice posts a new notice
// @Summary Create a notice
// @Description Posts a notice to the board. An omitted date defaults to today.
// @Tags notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNoticeRequest true "Notice information"
// @Success 201 {object} dto.APIResponse{data=models.Notice} "Notice created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notices [post]
func (c *NoticeController) CreateNotice(ctx *gin.Context) {
	var req dto.CreateNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid notice data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	notice := &models.Notice{
		Title:    req.Title,
		Content:  req.Content,
		Priority: models.NoticePriority(req.Priority),
	}

	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date")
			errorDetail = errorDetail.WithDetails("Date must use the YYYY-MM-DD format")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		notice.Date = date
	}

	created, err := c.noticeService.Create(ctx, notice)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      created,
		Timestamp: time.Now(),
	})
}

// GetAllNotices retrieves every notice, newest first
// @Summary Get all notices
// @Description Retrieves all notices ordered by date descending
// @Tags notices
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Notice} "Notices retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notices [get]
func (c *NoticeController) GetAllNotices(ctx *gin.Context) {
	notices, err := c.noticeService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      notices,
		Timestamp: time.Now(),
	})
}

// DeleteNotice removes a notice
// @Summary Delete a notice
// @Description Deletes a notice from the board
// @Tags notices
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notice ID"
// @Success 204 "Notice deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid notice ID"
// @Failure 404 {object} dto.ErrorResponse "Notice not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notices/{id} [delete]
func (c *NoticeController) DeleteNotice(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "notice ID")
	if !ok {
		return
	}

	if err := c.noticeService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}
