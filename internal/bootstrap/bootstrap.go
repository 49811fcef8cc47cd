package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/owlconnect/owlconnect/internal/app/controllers"
	appMigrations "github.com/owlconnect/owlconnect/internal/app/migrations"
	appRepos "github.com/owlconnect/owlconnect/internal/app/repositories"
	appRoutes "github.com/owlconnect/owlconnect/internal/app/routes"
	appServices "github.com/owlconnect/owlconnect/internal/app/services"
	"github.com/owlconnect/owlconnect/internal/config"
	"github.com/owlconnect/owlconnect/internal/db"
	appMiddleware "github.com/owlconnect/owlconnect/internal/middleware"
	pkgAuth "github.com/owlconnect/owlconnect/internal/pkg/auth"
	"github.com/owlconnect/owlconnect/internal/pkg/grid"
	"github.com/owlconnect/owlconnect/internal/pkg/logger"
	"github.com/owlconnect/owlconnect/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	AttendeeService      appServices.AttendeeService
	DepartmentService    appServices.DepartmentService
	AuthController       *appControllers.AuthController
	AttendeeController   *appControllers.AttendeeController
	DepartmentController *appControllers.DepartmentController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	if cfg.Database.SeedDemoData {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := seed.CreateDemoData(ctx, database, deps.Repos, lgr); err != nil {
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	pager := grid.NewPager(cfg.Grid.PageSize)

	deps.AuthService = appServices.NewAuthService(cfg.Admin.Secret, deps.JWTService, lgr)
	deps.AttendeeService = appServices.NewAttendeeService(
		database,
		deps.Repos.AttendeeRepository,
		deps.Repos.DepartmentRepository,
		pager,
		lgr,
	)
	deps.DepartmentService = appServices.NewDepartmentService(database, deps.Repos.DepartmentRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.AttendeeController = appControllers.NewAttendeeController(deps.AttendeeService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)

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

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AttendeeController,
		deps.DepartmentController,
		deps.AuthMiddleware,
	)

	return router
}
