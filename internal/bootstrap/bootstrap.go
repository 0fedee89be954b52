// Package bootstrap wires configuration, storage, services and the HTTP
// router together.
package bootstrap

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/signifi/platform/internal/app/auth"
	appControllers "github.com/signifi/platform/internal/app/controllers"
	appRepos "github.com/signifi/platform/internal/app/repositories"
	appRoutes "github.com/signifi/platform/internal/app/routes"
	appServices "github.com/signifi/platform/internal/app/services"
	"github.com/signifi/platform/internal/config"
	"github.com/signifi/platform/internal/kvstore"
	appMiddleware "github.com/signifi/platform/internal/middleware"
	pkgAuth "github.com/signifi/platform/internal/pkg/auth"
	"github.com/signifi/platform/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          *appServices.AuthService
	CourseService        *appServices.CourseService
	EnrollmentService    *appServices.EnrollmentService
	StudentService       *appServices.StudentService
	ProfileService       *appServices.ProfileService
	SettingsService      *appServices.SettingsService
	AuthController       *appControllers.AuthController
	CourseController     *appControllers.CourseController
	EnrollmentController *appControllers.EnrollmentController
	StudentController    *appControllers.StudentController
	ProfileController    *appControllers.ProfileController
	SettingsController   *appControllers.SettingsController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	TokenService         *pkgAuth.TokenService
	NavigationPolicy     *appAuth.NavigationPolicy
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A .env file is optional; environment variables win over the YAML file
	// either way.
	_ = godotenv.Load()

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

// SetupStore opens the configured key-value storage backend.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (kvstore.Store, error) {
	lgr.Info().Str("backend", cfg.Storage.Backend).Msg("Opening storage backend...")

	switch cfg.Storage.Backend {
	case "memory":
		return kvstore.NewMemoryStore(), nil
	case "redis":
		opts := kvstore.DefaultRedisOptions()
		opts.URL = cfg.Storage.RedisURL
		store, err := kvstore.NewRedisStore(opts)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to Redis")
			return nil, err
		}
		return store, nil
	case "postgres":
		store, err := kvstore.NewPostgresStore(context.Background(), cfg.Storage.PostgresDSN)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to Postgres")
			return nil, err
		}
		return store, nil
	default:
		store, err := kvstore.NewFileStore(cfg.Storage.Path)
		if err != nil {
			lgr.Error().Err(err).Str("path", cfg.Storage.Path).Msg("Failed to open file storage")
			return nil, err
		}
		return store, nil
	}
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, store kvstore.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(store)

	expiration, err := cfg.SessionExpiration()
	if err != nil {
		return nil, err
	}
	deps.TokenService = pkgAuth.NewTokenService(pkgAuth.TokenConfig{
		SecretKey:  cfg.Session.Secret,
		Expiration: expiration,
		Issuer:     cfg.Session.Issuer,
	})

	deps.NavigationPolicy = appAuth.NewNavigationPolicy(cfg.Auth.DebugBypass)
	if cfg.Auth.DebugBypass {
		lgr.Warn().Msg("Navigation debug bypass is enabled; page access rules are not enforced")
	}

	// Services
	deps.AuthService = appServices.NewAuthService(deps.Repos.Users, deps.TokenService, lgr)
	deps.CourseService = appServices.NewCourseService(deps.Repos.Courses, deps.Repos.Enrollments, lgr)
	deps.EnrollmentService = appServices.NewEnrollmentService(deps.Repos.Courses, deps.Repos.Enrollments, lgr)
	deps.StudentService = appServices.NewStudentService(deps.Repos.Students, lgr)
	deps.ProfileService = appServices.NewProfileService(deps.Repos.Profile, lgr)
	deps.SettingsService = appServices.NewSettingsService(deps.Repos.Settings, deps.Repos.Users, lgr)

	// Controllers
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.NavigationPolicy, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, lgr)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, lgr)
	deps.ProfileController = appControllers.NewProfileController(deps.ProfileService, lgr)
	deps.SettingsController = appControllers.NewSettingsController(deps.SettingsService, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.TokenService)

	return deps, nil
}

// SetupRouter creates the gin engine and registers all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.CourseController,
		deps.EnrollmentController,
		deps.StudentController,
		deps.ProfileController,
		deps.SettingsController,
		deps.AuthMiddleware,
	)

	lgr.Info().Msg("Router configured")
	return router
}
