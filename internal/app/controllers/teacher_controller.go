package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eren/campuscore/internal/app/models/dto"
	"github.com/eren/campuscore/internal/app/services"
	"github.com/eren/campuscore/internal/middleware"
	"github.com/eren/campuscore/internal/pkg/auth"
)

// TeacherController handles teacher registry operations
type TeacherController struct {
	teacherService *services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService *services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// CreateTeacher registers a new teacher
// @Summary Create a new teacher
// @Description Registers a teacher, resolving or creating the department by name. An omitted password gets a default credential.
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTeacherRequest true "Teacher information"
// @Success 201 {object} dto.APIResponse{data=models.Teacher} "Teacher created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	password := req.Password
	if password == "" {
		password = services.DefaultCredential
	}
	hashed, err := auth.HashPassword(password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	teacher, err := c.teacherService.Create(ctx, services.CreateTeacherInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       hashed,
		Designation:    req.Designation,
		DepartmentName: req.Department,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      teacher,
		Timestamp: time.Now(),
	})
}

// GetAllTeachers retrieves all teachers
// @Summary Get all teachers
// @Description Retrieves the full teacher registry
// @Tags teachers
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Teacher} "Teachers retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [get]
func (c *TeacherController) GetAllTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      teachers,
		Timestamp: time.Now(),
	})
}

// GetTeacherByID retrieves a teacher by ID
// @Summary Get teacher by ID
// @Description Retrieves a specific teacher by their ID
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=models.Teacher} "Teacher retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacherByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "teacher ID")
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      teacher,
		Timestamp: time.Now(),
	})
}

// UpdateTeacher applies a partial update to a teacher
// @Summary Update a teacher
// @Description Updates the supplied fields only; omitted fields are preserved
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Param request body dto.UpdateTeacherRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Teacher} "Teacher updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [put]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "teacher ID")
	if !ok {
		return
	}

	var req dto.UpdateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	patch := services.UpdateTeacherPatch{
		Name:           req.Name,
		Email:          req.Email,
		Designation:    req.Designation,
		DepartmentName: req.Department,
	}

	if req.Password != nil && *req.Password != "" {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		patch.Password = &hashed
	}

	teacher, err := c.teacherService.Update(ctx, id, patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      teacher,
		Timestamp: time.Now(),
	})
}

// DeleteTeacher removes a teacher
// @Summary Delete a teacher
// @Description Deletes a teacher from the registry
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Success 204 "Teacher deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "teacher ID")
	if !ok {
		return
	}

	if err := c.teacherService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}
