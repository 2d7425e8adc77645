package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eren/campuscore/internal/app/models/dto"
	"github.com/eren/campuscore/internal/app/services"
	"github.com/eren/campuscore/internal/middleware"
)

// SubjectController handles subject catalog operations
type SubjectController struct {
	subjectService *services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService *services.SubjectService) *SubjectController {
	return &SubjectController{
		subjectService: subjectService,
	}
}

// CreateSubject adds a subject to the catalog
// @Summary Create a new subject
// @Description Adds a subject, resolving or creating its department by name
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSubjectRequest true "Subject information"
// @Success 201 {object} dto.APIResponse{data=models.Subject} "Subject created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Subject already exists in the department"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid subject data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	subject, err := c.subjectService.Create(ctx, req.Department, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      subject,
		Timestamp: time.Now(),
	})
}

// GetAllSubjects retrieves subjects, optionally filtered by department
// @Summary Get all subjects
// @Description Retrieves all subjects; pass a department query parameter to filter
// @Tags subjects
// @Produce json
// @Param department query string false "Filter by department name"
// @Success 200 {object} dto.APIResponse{data=[]models.Subject} "Subjects retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects [get]
func (c *SubjectController) GetAllSubjects(ctx *gin.Context) {
	department := ctx.Query("department")

	var err error
	var subjects interface{}
	if department != "" {
		subjects, err = c.subjectService.ListByDepartment(ctx, department)
	} else {
		subjects, err = c.subjectService.ListAll(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      subjects,
		Timestamp: time.Now(),
	})
}

// DeleteSubject removes a subject together with its dependent results
// @Summary Delete a subject
// @Description Deletes a subject and every result recorded against it
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 204 "Subject deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid subject ID"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/{id} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid subject ID")
		errorDetail = errorDetail.WithDetails("Subject ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.subjectService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}
