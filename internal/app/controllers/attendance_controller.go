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

// AttendanceController handles attendance ledger operations
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// SaveAttendance records attendance for a class on one date
// @Summary Save attendance for a date
// @Description Upserts attendance statuses keyed by student ID for a single date. Existing rows are updated, missing rows are created, unknown students are skipped.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveAttendanceRequest true "Date and per-student statuses"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Attendance saved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [post]
func (c *AttendanceController) SaveAttendance(ctx *gin.Context) {
	var req dto.SaveAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid attendance data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date")
		errorDetail = errorDetail.WithDetails("Date must use the YYYY-MM-DD format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	statuses := make(map[int64]models.AttendanceStatus, len(req.Statuses))
	for studentID, status := range req.Statuses {
		statuses[studentID] = models.AttendanceStatus(status)
	}

	if err := c.attendanceService.UpsertBatch(ctx, date, statuses); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Attendance saved"},
		Timestamp: time.Now(),
	})
}

// GetAttendanceByDate retrieves all attendance rows for one date
// @Summary Get attendance by date
// @Description Retrieves every attendance record for the given date
// @Tags attendance
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]models.Attendance} "Attendance retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [get]
func (c *AttendanceController) GetAttendanceByDate(ctx *gin.Context) {
	date, err := time.Parse("2006-01-02", ctx.Query("date"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date")
		errorDetail = errorDetail.WithDetails("Date must use the YYYY-MM-DD format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	records, err := c.attendanceService.GetByDate(ctx, date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      records,
		Timestamp: time.Now(),
	})
}

// GetAttendanceByStudent retrieves a student's attendance history
// @Summary Get attendance by student
// @Description Retrieves every attendance record for one student
// @Tags attendance
// @Produce json
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Attendance} "Attendance retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/student/{studentId} [get]
func (c *AttendanceController) GetAttendanceByStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId", "student ID")
	if !ok {
		return
	}

	records, err := c.attendanceService.GetByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      records,
		Timestamp: time.Now(),
	})
}
