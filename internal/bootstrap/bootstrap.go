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

	appControllers "github.com/alumnet/backend/internal/app/controllers"
	appMigrations "github.com/alumnet/backend/internal/app/migrations"
	appRepos "github.com/alumnet/backend/internal/app/repositories"
	appRoutes "github.com/alumnet/backend/internal/app/routes"
	appServices "github.com/alumnet/backend/internal/app/services"
	"github.com/alumnet/backend/internal/config"
	"github.com/alumnet/backend/internal/db"
	appMiddleware "github.com/alumnet/backend/internal/middleware"
	pkgAuth "github.com/alumnet/backend/internal/pkg/auth"
	"github.com/alumnet/backend/internal/pkg/email"
	"github.com/alumnet/backend/internal/pkg/filestorage"
	"github.com/alumnet/backend/internal/pkg/helpers"
	"github.com/alumnet/backend/internal/pkg/logger"
	"github.com/alumnet/backend/internal/pkg/payment"
	"github.com/alumnet/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services       *appServices.Services
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	FileStorage    filestorage.FileStorage
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// CONFIG_PATH overrides the default configs/config.yaml.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = filepath.Join("configs", "config.yaml")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  strings.EqualFold(cfg.Logging.Format, "text"),
		Service: "alumnet-api",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default administrator.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
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

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	admin := seed.AdminAccount{Email: cfg.Admin.Email, Password: cfg.Admin.Password, Name: cfg.Admin.Name}
	if err := seed.CreateDefaultAdmin(ctx, appRepos.NewUserRepository(database.Pool), admin, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default admin, proceeding anyway...")
	}

	return database, nil
}

// NewFileStorage builds the upload sink selected by storage.driver
func NewFileStorage(ctx context.Context, cfg *config.Config) (filestorage.FileStorage, error) {
	switch strings.ToLower(cfg.Storage.Driver) {
	case "s3":
		return filestorage.NewS3Storage(ctx, filestorage.S3Config{
			Bucket:          cfg.Storage.S3Bucket,
			Region:          cfg.Storage.S3Region,
			Endpoint:        cfg.Storage.S3Endpoint,
			AccessKeyID:     cfg.Storage.S3AccessKey,
			SecretAccessKey: cfg.Storage.S3SecretKey,
			Prefix:          cfg.Storage.S3Prefix,
			PublicBaseURL:   cfg.Storage.PublicBaseURL,
			PublicRead:      cfg.Storage.S3PublicRead,
		})
	default:
		return filestorage.NewLocalStorage(cfg.Storage.LocalPath, cfg.UploadsBaseURL())
	}
}

// BuildDependencies initializes repositories, adapters, services and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	var err error
	deps.FileStorage, err = NewFileStorage(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Str("driver", cfg.Storage.Driver).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.Expiration, 7*24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	emailService := email.NewEmailService(email.SMTPConfig{
		Host:      cfg.Email.Host,
		Port:      cfg.Email.Port,
		Username:  cfg.Email.Username,
		Password:  cfg.Email.Password,
		FromName:  cfg.Email.FromName,
		FromEmail: cfg.Email.FromEmail,
		UseTLS:    cfg.Email.UseTLS,
		LoginURL:  cfg.Email.LoginURL,
	}, lgr.With().Str("component", "email").Logger())

	retry := helpers.DefaultRetryPolicy
	if cfg.Payment.MaxRetries >= 0 {
		retry.MaxRetries = uint64(cfg.Payment.MaxRetries)
	}
	gateway := payment.NewPaystackClient(payment.PaystackConfig{
		SecretKey: cfg.Payment.SecretKey,
		BaseURL:   cfg.Payment.BaseURL,
		Timeout:   helpers.ParseDuration(cfg.Payment.Timeout, 15*time.Second),
		Retry:     retry,
	}, nil, lgr.With().Str("component", "payment").Logger())

	deps.Services = &appServices.Services{
		Auth: appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr),
		User: appServices.NewUserService(
			deps.Repos.UserRepository,
			deps.FileStorage,
			emailService,
			helpers.ParseDuration(cfg.Email.Timeout, 10*time.Second),
			lgr,
		),
		Event:       appServices.NewEventService(deps.Repos.EventRepository),
		News:        appServices.NewNewsService(deps.Repos.NewsRepository),
		Forum:       appServices.NewForumService(deps.Repos.ForumRepository),
		Gallery:     appServices.NewGalleryService(deps.Repos.GalleryRepository, deps.FileStorage),
		BoardMinute: appServices.NewBoardMinuteService(deps.Repos.BoardMinuteRepository, deps.FileStorage),
		Donation: appServices.NewDonationService(
			deps.Repos.DonationRepository,
			deps.Repos.UserRepository,
			gateway,
			cfg.Payment.CallbackURL,
			lgr,
		),
	}

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)
	deps.Controllers = NewControllers(deps.Services, database, lgr)

	return deps, nil
}

// NewControllers builds every controller from the services; db may be nil
func NewControllers(svc *appServices.Services, database appControllers.Pinger, lgr zerolog.Logger) appRoutes.Controllers {
	return appRoutes.Controllers{
		Auth:        appControllers.NewAuthController(svc.Auth, lgr),
		User:        appControllers.NewUserController(svc.User, lgr),
		Event:       appControllers.NewEventController(svc.Event, lgr),
		News:        appControllers.NewNewsController(svc.News, lgr),
		Forum:       appControllers.NewForumController(svc.Forum, lgr),
		Gallery:     appControllers.NewGalleryController(svc.Gallery, lgr),
		BoardMinute: appControllers.NewBoardMinuteController(svc.BoardMinute, lgr),
		Donation:    appControllers.NewDonationController(svc.Donation, lgr),
		Health:      appControllers.NewHealthController(database, lgr),
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.Server.MaxUploadMB << 20
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.Recovery(),
		appMiddleware.RequestLogger(),
		appMiddleware.CORS(cfg.Server.AllowedOrigin),
		appMiddleware.BodyLimit(cfg.Server.MaxUploadMB<<20),
	)

	if local, ok := deps.FileStorage.(*filestorage.LocalStorage); ok {
		router.Static("/uploads", local.BasePath())
		lgr.Info().Str("path", local.BasePath()).Msg("Static file serving configured for uploads directory")
	}

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
