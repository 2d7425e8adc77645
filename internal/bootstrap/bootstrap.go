package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/eren/campuscore/internal/app/controllers"
	appMigrations "github.com/eren/campuscore/internal/app/migrations"
	appRepos "github.com/eren/campuscore/internal/app/repositories"
	appRoutes "github.com/eren/campuscore/internal/app/routes"
	appServices "github.com/eren/campuscore/internal/app/services"
	"github.com/eren/campuscore/internal/config"
	"github.com/eren/campuscore/internal/db"
	appMiddleware "github.com/eren/campuscore/internal/middleware"
	pkgAuth "github.com/eren/campuscore/internal/pkg/auth"
	"github.com/eren/campuscore/internal/pkg/helpers"
	"github.com/eren/campuscore/internal/pkg/logger"
	"github.com/eren/campuscore/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	DepartmentService *appServices.DepartmentService
	SubjectService    *appServices.SubjectService
	StudentService    *appServices.StudentService
	TeacherService    *appServices.TeacherService
	AttendanceService *appServices.AttendanceService
	ResultService     *appServices.ResultService
	FeeService        *appServices.FeeService
	NoticeService     *appServices.NoticeService
	AuthService       *appServices.AuthService

	AuthController       *appControllers.AuthController
	DepartmentController *appControllers.DepartmentController
	SubjectController    *appControllers.SubjectController
	StudentController    *appControllers.StudentController
	TeacherController    *appControllers.TeacherController
	AttendanceController *appControllers.AttendanceController
	ResultController     *appControllers.ResultController
	FeeController        *appControllers.FeeController
	NoticeController     *appControllers.NoticeController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log but keep starting; missing seed rows are not fatal
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	cascade := appServices.NewCascadeCoordinator(deps.Repos.ResultRepository, deps.Repos.AttendanceRepository)

	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository)
	deps.SubjectService = appServices.NewSubjectService(deps.Repos.SubjectRepository, deps.DepartmentService, cascade, database)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.DepartmentService, cascade, database)
	deps.TeacherService = appServices.NewTeacherService(deps.Repos.TeacherRepository, deps.DepartmentService, database)
	deps.AttendanceService = appServices.NewAttendanceService(deps.Repos.AttendanceRepository, deps.Repos.StudentRepository, database)
	deps.ResultService = appServices.NewResultService(deps.Repos.ResultRepository, deps.Repos.StudentRepository, deps.Repos.SubjectRepository, database)
	deps.FeeService = appServices.NewFeeService(deps.Repos.FeeRepository, deps.Repos.StudentRepository, database)
	deps.NoticeService = appServices.NewNoticeService(deps.Repos.NoticeRepository)

	adminHash, err := pkgAuth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin credential: %w", err)
	}
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.StudentRepository,
		deps.Repos.TeacherRepository,
		deps.JWTService,
		appServices.AdminAccount{Email: cfg.Admin.Email, PasswordHash: adminHash},
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.SubjectController = appControllers.NewSubjectController(deps.SubjectService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.TeacherController = appControllers.NewTeacherController(deps.TeacherService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)
	deps.ResultController = appControllers.NewResultController(deps.ResultService)
	deps.FeeController = appControllers.NewFeeController(deps.FeeService)
	deps.NoticeController = appControllers.NewNoticeController(deps.NoticeService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.DepartmentController,
		deps.SubjectController,
		deps.StudentController,
		deps.TeacherController,
		deps.AttendanceController,
		deps.ResultController,
		deps.FeeController,
		deps.NoticeController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
