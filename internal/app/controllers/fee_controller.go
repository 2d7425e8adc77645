package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eren/campuscore/internal/app/models/dto"
	"github.com/eren/campuscore/internal/app/services"
	"github.com/eren/campuscore/internal/middleware"
)

// FeeController handles fee ledger operations
type FeeController struct {
	feeService *services.FeeService
}

// NewFeeController creates a new FeeController
func NewFeeController(feeService *services.FeeService) *FeeController {
	return &FeeController{
		feeService: feeService,
	}
}

// GetAllFees retrieves the full fee ledger
// @Summary Get all fees
// @Description Retrieves every fee across all students
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Fee} "Fees retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees [get]
func (c *FeeController) GetAllFees(ctx *gin.Context) {
	fees, err := c.feeService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      fees,
		Timestamp: time.Now(),
	})
}

// GetFeesByStudent retrieves a student's fees, seeding a default fee when none exist
// @Summary Get fees by student
// @Description Retrieves every fee for the given student. A student with no fees gets a pending tuition fee created on first read.
// @Tags fees
// @Produce json
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Fee} "Fees retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees/student/{studentId} [get]
func (c *FeeController) GetFeesByStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId", "student ID")
	if !ok {
		return
	}

	fees, err := c.feeService.ListByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      fees,
		Timestamp: time.Now(),
	})
}

// PayFee marks a pending fee as paid
// @Summary Pay a fee
// @Description Transitions a pending fee to paid, stamping the payment date and a transaction reference
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Success 200 {object} dto.APIResponse{data=models.Fee} "Fee paid successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid fee ID"
// @Failure 404 {object} dto.ErrorResponse "Fee not found"
// @Failure 409 {object} dto.ErrorResponse "Fee already paid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees/{id}/pay [post]
func (c *FeeController) PayFee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "fee ID")
	if !ok {
		return
	}

	fee, err := c.feeService.Pay(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      fee,
		Timestamp: time.Now(),
	})
}
