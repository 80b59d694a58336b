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

	appControllers "github.com/hooplannedthis/api/internal/app/controllers"
	appMigrations "github.com/hooplannedthis/api/internal/app/migrations"
	appRepos "github.com/hooplannedthis/api/internal/app/repositories"
	appRoutes "github.com/hooplannedthis/api/internal/app/routes"
	appServices "github.com/hooplannedthis/api/internal/app/services"
	"github.com/hooplannedthis/api/internal/config"
	"github.com/hooplannedthis/api/internal/db"
	appMiddleware "github.com/hooplannedthis/api/internal/middleware"
	pkgAuth "github.com/hooplannedthis/api/internal/pkg/auth"
	"github.com/hooplannedthis/api/internal/pkg/filestorage"
	"github.com/hooplannedthis/api/internal/pkg/helpers"
	"github.com/hooplannedthis/api/internal/pkg/logger"
	"github.com/hooplannedthis/api/internal/pkg/metrics"
	"github.com/hooplannedthis/api/internal/pkg/websocket"
)

// uploadsPath is the URL path the local object store is served under
const uploadsPath = "/uploads"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Hub            *websocket.Hub
	ChangeHandler  *websocket.Handler
	Metrics        *metrics.Metrics
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads .env and configuration, then initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	if err := config.LoadDotEnv(); err != nil {
		logger.Warn().Err(err).Msg("Failed to load .env file")
	}

	configPath := filepath.Join("configs", "config.yaml")
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	format := strings.ToLower(cfg.Logging.Format)
	prettyLog := format == "text" || format == "console"

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
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, logger.Component("migrator"))
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	baseURL := cfg.Storage.PublicBaseURL
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Server.Port + uploadsPath
	}
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.Path, baseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Hub = websocket.NewHub(logger.Component("websocket"))
	deps.ChangeHandler = websocket.NewHandler(deps.Hub, cfg.Server.AllowedOrigins, logger.Component("websocket"))

	deps.Metrics = metrics.New()
	deps.Metrics.RegisterGauge("websocket_clients", "Connected change stream clients.", func() float64 {
		return float64(deps.Hub.ClientsCount())
	})

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		AdminSecret:   cfg.JWT.Secret,
		AdminTokenExp: helpers.ParseDuration(cfg.JWT.AdminTokenExpiration, time.Hour),
		TokenIssuer:   cfg.JWT.Issuer,
		MemberSecret:  cfg.JWT.MemberSecret,
	})

	deps.Services = appServices.NewServices(
		deps.Repos,
		deps.FileStorage,
		websocket.NewNotifier(deps.Hub),
		deps.JWTService,
		appServices.Config{
			Bucket:            cfg.Storage.Bucket,
			FallbackImage:     cfg.Storage.FallbackImage,
			AdminPasswordHash: cfg.Admin.PasswordHash,
		},
		logger.Component("services"),
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	svc := deps.Services
	deps.Controllers = appRoutes.Controllers{
		Auth:      appControllers.NewAuthController(svc.AdminService, database, logger.Component("auth")),
		Advisor:   appControllers.NewAdvisorController(svc.AdvisorService),
		Council:   appControllers.NewCouncilController(svc.CouncilService, svc.CommitteeService),
		Committee: appControllers.NewCommitteeController(svc.AssignmentService),
		Role:      appControllers.NewRoleController(svc.RoleBoardService),
		Event:     appControllers.NewEventController(svc.EventService),
		Profile:   appControllers.NewProfileController(svc.ProfileService),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.Server.MaxUploadMB << 20
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestLogger(logger.Component("http")),
		appMiddleware.CORS(cfg.Server.AllowedOrigins),
		deps.Metrics.Middleware(),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, appRoutes.Options{
		AuthMiddleware: deps.AuthMiddleware,
		Metrics:        deps.Metrics,
		ChangeHandler:  deps.ChangeHandler,
		UploadsDir:     cfg.Storage.Path,
		UploadsPath:    uploadsPath,
	})

	return router, nil
}
