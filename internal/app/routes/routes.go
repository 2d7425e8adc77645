package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eren/campuscore/internal/app/controllers"
	"github.com/eren/campuscore/internal/app/models/dto"
	"github.com/eren/campuscore/internal/app/services"
	"github.com/eren/campuscore/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	departmentController *controllers.DepartmentController,
	subjectController *controllers.SubjectController,
	studentController *controllers.StudentController,
	teacherController *controllers.TeacherController,
	attendanceController *controllers.AttendanceController,
	resultController *controllers.ResultController,
	feeController *controllers.FeeController,
	noticeController *controllers.NoticeController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	departments := v1.Group("/departments")
	{
		departments.GET("", departmentController.GetAllDepartments)
		departments.GET("/:name", departmentController.GetDepartmentByName)
	}

	notices := v1.Group("/notices")
	{
		notices.GET("", noticeController.GetAllNotices)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		subjects := authenticated.Group("/subjects")
		{
			subjects.GET("", subjectController.GetAllSubjects)

			subjectsAdminProtected := subjects.Group("")
			subjectsAdminProtected.Use(authMiddleware.RoleRequired(services.RoleAdmin, services.RoleTeacher))
			{
				subjectsAdminProtected.POST("", subjectController.CreateSubject)
				subjectsAdminProtected.DELETE("/:id", subjectController.DeleteSubject)
			}
		}

		students := authenticated.Group("/students")
		{
			students.GET("", studentController.GetAllStudents)
			students.GET("/:id", studentController.GetStudentByID)

			studentsAdminProtected := students.Group("")
			studentsAdminProtected.Use(authMiddleware.RoleRequired(services.RoleAdmin))
			{
				studentsAdminProtected.POST("", studentController.CreateStudent)
				studentsAdminProtected.PUT("/:id", studentController.UpdateStudent)
				studentsAdminProtected.PUT("/:id/cgpa", studentController.UpdateStudentCGPA)
				studentsAdminProtected.DELETE("/:id", studentController.DeleteStudent)
			}
		}

		teachers := authenticated.Group("/teachers")
		{
			teachers.GET("", teacherController.GetAllTeachers)
			teachers.GET("/:id", teacherController.GetTeacherByID)

			teachersAdminProtected := teachers.Group("")
			teachersAdminProtected.Use(authMiddleware.RoleRequired(services.RoleAdmin))
			{
				teachersAdminProtected.POST("", teacherController.CreateTeacher)
				teachersAdminProtected.PUT("/:id", teacherController.UpdateTeacher)
				teachersAdminProtected.DELETE("/:id", teacherController.DeleteTeacher)
			}
		}

		attendance := authenticated.Group("/attendance")
		{
			attendance.GET("", attendanceController.GetAttendanceByDate)
			attendance.GET("/student/:studentId", attendanceController.GetAttendanceByStudent)

			attendanceTeacherProtected := attendance.Group("")
			attendanceTeacherProtected.Use(authMiddleware.RoleRequired(services.RoleAdmin, services.RoleTeacher))
			{
				attendanceTeacherProtected.POST("", attendanceController.SaveAttendance)
			}
		}

		results := authenticated.Group("/results")
		{
			results.GET("/student/:studentId", resultController.GetResultsByStudent)
			results.GET("/department/:name", resultController.GetResultsByDepartment)

			resultsTeacherProtected := results.Group("")
			resultsTeacherProtected.Use(authMiddleware.RoleRequired(services.RoleAdmin, services.RoleTeacher))
			{
				resultsTeacherProtected.POST("", resultController.SaveResult)
			}
		}

		fees := authenticated.Group("/fees")
		{
			fees.GET("/student/:studentId", feeController.GetFeesByStudent)
			fees.POST("/:id/pay", feeController.PayFee)

			feesAdminProtected := fees.Group("")
			feesAdminProtected.Use(authMiddleware.RoleRequired(services.RoleAdmin))
			{
				feesAdminProtected.GET("", feeController.GetAllFees)
			}
		}

		noticesProtected := authenticated.Group("/notices")
		noticesProtected.Use(authMiddleware.RoleRequired(services.RoleAdmin, services.RoleTeacher))
		{
			noticesProtected.POST("", noticeController.CreateNotice)
			noticesProtected.DELETE("/:id", noticeController.DeleteNotice)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
