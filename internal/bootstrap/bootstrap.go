package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/alumnet/api/internal/app/controllers"
	"github.com/alumnet/api/internal/app/migrations"
	"github.com/alumnet/api/internal/app/repositories"
	"github.com/alumnet/api/internal/app/routes"
	"github.com/alumnet/api/internal/app/services"
	"github.com/alumnet/api/internal/cache"
	"github.com/alumnet/api/internal/config"
	"github.com/alumnet/api/internal/db"
	"github.com/alumnet/api/internal/middleware"
	pkgAuth "github.com/alumnet/api/internal/pkg/auth"
	"github.com/alumnet/api/internal/pkg/helpers"
	"github.com/alumnet/api/internal/pkg/logger"
	"github.com/alumnet/api/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                *repositories.Repositories
	Services             *services.Services
	Cache                cache.Store
	JWTService           *pkgAuth.JWTService
	AuthMiddleware       *middleware.AuthMiddleware
	AuthController       *controllers.AuthController
	StudentController    *controllers.StudentController
	AlumniController     *controllers.AlumniController
	MentorshipController *controllers.MentorshipController
	JobController        *controllers.JobController
	EventController      *controllers.EventController
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds demo data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	dbPool, err := db.Connect(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := migrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, the cache store, services,
// middleware and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = repositories.NewRepositories(dbPool)

	deps.Cache = cache.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = services.NewServices(deps.Repos, deps.JWTService, deps.Cache)

	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = controllers.NewAuthController(deps.Services.AuthService, lgr)
	deps.StudentController = controllers.NewStudentController(deps.Services.StudentService, lgr)
	deps.AlumniController = controllers.NewAlumniController(deps.Services.AlumniService, lgr)
	deps.MentorshipController = controllers.NewMentorshipController(deps.Services.MentorshipService, lgr)
	deps.JobController = controllers.NewJobController(deps.Services.JobService, lgr)
	deps.EventController = controllers.NewEventController(deps.Services.EventService, lgr)

	return deps, nil
}

// SetupRouter creates the gin engine and registers all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	routes.SetupRouter(
		router,
		deps.AuthController,
		deps.StudentController,
		deps.AlumniController,
		deps.MentorshipController,
		deps.JobController,
		deps.EventController,
		deps.AuthMiddleware,
	)

	lgr.Info().Msg("Router configured")
	return router
}
