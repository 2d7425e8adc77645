package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eren/campuscore/internal/app/models/dto"
	"github.com/eren/campuscore/internal/app/services"
	"github.com/eren/campuscore/internal/middleware"
)

// DepartmentController handles department directory operations
type DepartmentController struct {
	departmentService *services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService *services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// GetAllDepartments retrieves all departments
// @Summary Get all departments
// @Description Retrieves the full department directory
// @Tags departments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Department} "Departments retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments [get]
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      departments,
		Timestamp: time.Now(),
	})
}

// GetDepartmentByName retrieves a department by its unique name
// @Summary Get department by name
// @Description Retrieves a specific department by its name
// @Tags departments
// @Produce json
// @Param name path string true "Department name"
// @Success 200 {object} dto.APIResponse{data=models.Department} "Department retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments/{name} [get]
func (c *DepartmentController) GetDepartmentByName(ctx *gin.Context) {
	name := ctx.Param("name")

	department, err := c.departmentService.FindByName(ctx, name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      department,
		Timestamp: time.Now(),
	})
}
