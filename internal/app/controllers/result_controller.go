package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eren/campuscore/internal/app/models/dto"
	"github.com/eren/campuscore/internal/app/services"
	"github.com/eren/campuscore/internal/middleware"
)

// ResultController handles result ledger operations
type ResultController struct {
	resultService *services.ResultService
}

// NewResultController creates a new ResultController
func NewResultController(resultService *services.ResultService) *ResultController {
	return &ResultController{
		resultService: resultService,
	}
}

// SaveResult records marks for a student in a subject
// @Summary Save a result
// @Description Upserts the marks for a (student, subject) pair. A second save for the same pair overwrites the marks.
// @Tags results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveResultRequest true "Result information"
// @Success 200 {object} dto.APIResponse{data=models.Result} "Result saved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown student/subject"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results [post]
func (c *ResultController) SaveResult(ctx *gin.Context) {
	var req dto.SaveResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid result data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.resultService.Upsert(ctx, req.StudentID, req.SubjectID, req.Marks)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// GetResultsByStudent retrieves all results for one student
// @Summary Get results by student
// @Description Retrieves every result recorded for the given student
// @Tags results
// @Produce json
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Result} "Results retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results/student/{studentId} [get]
func (c *ResultController) GetResultsByStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId", "student ID")
	if !ok {
		return
	}

	results, err := c.resultService.GetByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      results,
		Timestamp: time.Now(),
	})
}

// GetResultsByDepartment retrieves all results for subjects of a department
// @Summary Get results by department
// @Description Retrieves every result recorded against subjects of the named department
// @Tags results
// @Produce json
// @Param name path string true "Department name"
// @Success 200 {object} dto.APIResponse{data=[]models.Result} "Results retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results/department/{name} [get]
func (c *ResultController) GetResultsByDepartment(ctx *gin.Context) {
	name := ctx.Param("name")

	results, err := c.resultService.GetByDepartment(ctx, name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      results,
		Timestamp: time.Now(),
	})
}
