package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/kartavya/website/internal/app/controllers"
	appMigrations "github.com/kartavya/website/internal/app/migrations"
	appRepos "github.com/kartavya/website/internal/app/repositories"
	appRoutes "github.com/kartavya/website/internal/app/routes"
	appServices "github.com/kartavya/website/internal/app/services"
	"github.com/kartavya/website/internal/config"
	"github.com/kartavya/website/internal/db"
	"github.com/kartavya/website/internal/jobs"
	appMiddleware "github.com/kartavya/website/internal/middleware"
	"github.com/kartavya/website/internal/pkg/email"
	"github.com/kartavya/website/internal/pkg/helpers"
	"github.com/kartavya/website/internal/pkg/logger"
	"github.com/kartavya/website/internal/pkg/metrics"
	"github.com/kartavya/website/internal/pkg/ogimage"
	"github.com/kartavya/website/internal/pkg/validation"
	"github.com/kartavya/website/internal/web/components"
	schema "github.com/kartavya/website/migrations"
)

// Store is what the application needs from the database: the repository
// query surface plus a reachability check. *pgxpool.Pool satisfies it.
type Store interface {
	appRepos.DBTX
	appControllers.Pinger
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos              *appRepos.Repositories
	Metrics            *metrics.Metrics
	Notifier           email.Notifier
	SectionService     appServices.SectionService
	ApplicationService appServices.ApplicationService
	EventStatusService *appServices.EventStatusService
	RateLimiter        *appMiddleware.RateLimiter
	Handlers           appRoutes.Handlers
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database, nil
}

// RunMigrations applies the embedded schema migrations.
func RunMigrations(ctx context.Context, database appMigrations.DB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	applied, err := appMigrations.NewMigrator(database, lgr).Migrate(ctx, schema.Files)
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Int("applied", applied).Msg("Database migrations successfully applied.")
	return nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, store Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(store)
	deps.Metrics = metrics.New()

	deps.Notifier = email.NewSMTPNotifier(email.SMTPConfig{
		Host:        cfg.SMTP.Host,
		Port:        cfg.SMTP.Port,
		Username:    cfg.SMTP.Username,
		Password:    cfg.SMTP.Password,
		FromName:    cfg.SMTP.FromName,
		FromEmail:   cfg.SMTP.FromEmail,
		UseTLS:      cfg.SMTP.UseTLS,
		NotifyEmail: cfg.Application.NotifyEmail,
		SiteName:    cfg.Site.Name,
	}, lgr)

	deps.SectionService = appServices.NewSectionService(deps.Repos.ContentRepository, deps.Metrics, lgr)
	deps.ApplicationService = appServices.NewApplicationService(deps.Repos.ApplicationRepository, deps.Notifier, deps.Metrics, lgr)
	deps.EventStatusService = appServices.NewEventStatusService(
		deps.Repos.EventRepository,
		helpers.ParseDuration(cfg.Jobs.OngoingWindow, 4*time.Hour),
		deps.Metrics,
		lgr,
	)

	deps.RateLimiter = appMiddleware.NewRateLimiter(cfg.Application.RateLimitPerMinute, cfg.Application.RateLimitBurst)

	site := components.SiteInfo{
		Name:         cfg.Site.Name,
		Tagline:      cfg.Site.Tagline,
		Domain:       cfg.Site.Domain,
		BaseURL:      strings.TrimRight(cfg.Server.BaseURL, "/"),
		ContactEmail: cfg.Site.ContactEmail,
		ContactPhone: cfg.Site.ContactPhone,
		Location:     cfg.Site.ContactLocation,
		Year:         time.Now().Year(),
	}

	deps.Handlers = appRoutes.Handlers{
		Page: appControllers.NewPageController(deps.SectionService, deps.ApplicationService, appControllers.PageConfig{
			Site:        site,
			Progressive: cfg.Site.ProgressiveSections,
			RevertAfter: helpers.ParseDuration(cfg.Application.RevertAfter, 5*time.Second),
		}, lgr),
		Content:     appControllers.NewContentController(deps.SectionService),
		Application: appControllers.NewApplicationController(deps.ApplicationService),
		OGImage: appControllers.NewOGImageController(
			ogimage.Renderer{Domain: cfg.Site.Domain}.Render,
			cfg.OGImage.CacheMaxAge,
			deps.Metrics,
			lgr,
		),
		Health: appControllers.NewHealthController(store),
	}

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
	validation.RegisterWithGin()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.Metrics(deps.Metrics),
	)

	appRoutes.SetupRouter(router, deps.Handlers, deps.RateLimiter, deps.Metrics)
	return router
}

// SetupScheduler registers the background jobs. The scheduler is returned
// stopped.
func SetupScheduler(ctx context.Context, cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*jobs.Scheduler, error) {
	scheduler := jobs.NewScheduler(lgr)
	job := jobs.NewEventStatusJob(deps.EventStatusService, cfg.Jobs.EventStatusSchedule, lgr)
	if err := scheduler.Register(ctx, jobs.EventStatusJobName, job); err != nil {
		return nil, err
	}
	return scheduler, nil
}
