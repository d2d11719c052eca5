package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Rhea-16/scholarLink/api/swagger"
	"github.com/Rhea-16/scholarLink/internal/catalog"
	"github.com/Rhea-16/scholarLink/internal/handler"
	internalmiddleware "github.com/Rhea-16/scholarLink/internal/middleware"
	"github.com/Rhea-16/scholarLink/internal/models"
	"github.com/Rhea-16/scholarLink/internal/repository"
	"github.com/Rhea-16/scholarLink/internal/scheduler"
	"github.com/Rhea-16/scholarLink/internal/service"
	"github.com/Rhea-16/scholarLink/pkg/cache"
	"github.com/Rhea-16/scholarLink/pkg/config"
	"github.com/Rhea-16/scholarLink/pkg/database"
	"github.com/Rhea-16/scholarLink/pkg/jobs"
	"github.com/Rhea-16/scholarLink/pkg/logger"
	corsmiddleware "github.com/Rhea-16/scholarLink/pkg/middleware/cors"
	reqidmiddleware "github.com/Rhea-16/scholarLink/pkg/middleware/requestid"
)

// @title ScholarLink API
// @version 1.0.0
// @description Scholarship discovery, eligibility matching and application tracking
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type handlers struct {
	auth         *handler.AuthHandler
	profile      *handler.ProfileHandler
	scholarships *handler.ScholarshipHandler
	saved        *handler.SavedHandler
	dashboard    *handler.DashboardHandler
	metrics      *handler.MetricsHandler
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("database unavailable", "error", err)
	}
	defer db.Close() //nolint:errcheck

	redisClient, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, caching disabled", zap.Error(err))
		redisClient = nil
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	userRepo := repository.NewUserRepository(db)
	scholarshipRepo := repository.NewScholarshipRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	trackingRepo := repository.NewTrackingRepository(db)

	var cacheRepo service.CacheRepository
	if redisClient != nil {
		cacheRepo = repository.NewCacheRepository(redisClient, logr)
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Catalog.CacheTTL, logr, redisClient != nil)

	source, err := catalog.NewSource(cfg.Catalog, scholarshipRepo)
	if err != nil {
		logr.Sugar().Fatalw("catalog source misconfigured", "error", err)
	}
	loader := catalog.NewLoader(source, cacheSvc, metricsSvc, cfg.Catalog.CacheTTL, logr)
	if size, err := loader.Refresh(ctx); err != nil {
		logr.Warn("initial catalog load failed", zap.String("source", source.Name()), zap.Error(err))
	} else {
		logr.Info("catalog loaded", zap.String("source", source.Name()), zap.Int("scholarships", size))
	}

	authSvc := service.NewAuthService(userRepo, profileRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             "scholarlink",
	})
	profileSvc := service.NewProfileService(profileRepo, validate, logr)
	scholarshipSvc := service.NewScholarshipService(service.ScholarshipServiceParams{
		Catalog:   loader,
		Repo:      scholarshipRepo,
		Overlay:   trackingRepo,
		Profiles:  profileSvc,
		Audit:     userRepo,
		Cache:     cacheSvc,
		Metrics:   metricsSvc,
		Validator: validate,
		Logger:    logr,
		Config: service.ScholarshipServiceConfig{
			DefaultPageSize: cfg.Listing.PageSize,
			MaxPageSize:     cfg.Listing.MaxPageSize,
			Writable:        cfg.Catalog.Source == config.CatalogSourcePostgres,
			ExportEnabled:   cfg.Exports.Enabled,
		},
	})
	trackingSvc := service.NewTrackingService(trackingRepo, loader, validate, logr)
	dashboardSvc := service.NewDashboardService(scholarshipSvc, trackingRepo, logr)

	var (
		reminderQueue *jobs.Queue
		sweeper       *service.ReminderService
	)
	if cfg.Reminders.Enabled {
		sweeper = service.NewReminderService(trackingRepo, metricsSvc, logr)
		reminderQueue = jobs.NewQueue("reminders", sweeper.Handle, jobs.QueueConfig{
			Workers:    cfg.Reminders.Workers,
			MaxRetries: cfg.Reminders.Retries,
			RetryDelay: 5 * time.Second,
			Logger:     logr,
			DeadLetter: sweeper.DeadLetter,
		})
		sweeper.UseQueue(reminderQueue)
		reminderQueue.Start(ctx)
	}

	sched := scheduler.New(scheduler.Params{
		Catalog:  loader,
		Listings: cacheSvc,
		Sweeper:  reminderSweeper(sweeper),
		Logger:   logr,
		Config: scheduler.Config{
			CatalogRefreshSpec: cfg.Catalog.RefreshSpec,
			ReminderSweepSpec:  cfg.Reminders.SweepSpec,
		},
	})
	if err := sched.Start(ctx); err != nil {
		logr.Sugar().Fatalw("scheduler failed to start", "error", err)
	}

	checks := map[string]handler.Pinger{"postgres": db}
	if redisClient != nil {
		checks["redis"] = redisPinger(redisClient)
	}

	h := handlers{
		auth:         handler.NewAuthHandler(authSvc),
		profile:      handler.NewProfileHandler(profileSvc),
		scholarships: handler.NewScholarshipHandler(scholarshipSvc),
		saved:        handler.NewSavedHandler(trackingSvc),
		dashboard:    handler.NewDashboardHandler(dashboardSvc),
		metrics:      handler.NewMetricsHandler(metricsSvc, checks, loader.LoadedAt),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))
	r.Use(internalmiddleware.WithResponseMeta())

	r.GET("/health", h.metrics.Health)
	r.GET("/ready", h.metrics.Ready)
	r.GET("/metrics", h.metrics.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	registerRoutes(r.Group(cfg.APIPrefix), h, authSvc, userRepo)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "catalog_source", source.Name())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Warn("http shutdown incomplete", zap.Error(err))
	}
	sched.Stop()
	if reminderQueue != nil {
		reminderQueue.Stop()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
}

func registerRoutes(api *gin.RouterGroup, h handlers, tokens internalmiddleware.TokenValidator, audit internalmiddleware.AuditWriter) {
	requireAuth := internalmiddleware.JWT(tokens)
	optionalAuth := internalmiddleware.OptionalJWT(tokens)

	auth := api.Group("/auth")
	auth.POST("/signup", h.auth.Signup)
	auth.POST("/login", h.auth.Login)
	auth.POST("/refresh", h.auth.Refresh)
	auth.POST("/logout", requireAuth, h.auth.Logout)
	auth.POST("/change-password", requireAuth, h.auth.ChangePassword)
	auth.GET("/me", requireAuth, h.auth.Me)
	api.GET("/users/me", requireAuth, h.auth.Me)

	profile := api.Group("/profile", requireAuth)
	profile.POST("/register", internalmiddleware.Audit(audit, models.AuditActionProfileRegister, "profile"), h.profile.Register)
	profile.GET("/me", h.profile.Get)
	profile.PUT("/me", internalmiddleware.Audit(audit, models.AuditActionProfileUpdate, "profile"), h.profile.Update)

	scholarships := api.Group("/scholarships")
	scholarships.GET("", optionalAuth, h.scholarships.List)
	scholarships.GET("/eligible", requireAuth, h.scholarships.Eligible)
	scholarships.GET("/export", optionalAuth, h.scholarships.Export)
	scholarships.GET("/:id", optionalAuth, h.scholarships.Get)

	saved := api.Group("/saved", requireAuth)
	saved.GET("", h.saved.List)
	saved.POST("/:id", h.saved.Save)
	saved.DELETE("/:id", h.saved.Unsave)
	saved.PATCH("/:id", h.saved.Update)
	saved.POST("/:id/reminders", h.saved.AddReminder)
	saved.PATCH("/:id/reminders/:reminderId", h.saved.ToggleReminder)
	saved.DELETE("/:id/reminders/:reminderId", h.saved.DeleteReminder)

	api.GET("/dashboard", requireAuth, h.dashboard.Stats)

	admin := api.Group("/admin", requireAuth, internalmiddleware.RequireRoles(models.RoleAdmin))
	admin.POST("/scholarships", h.scholarships.Create)
	admin.PUT("/scholarships/:id", h.scholarships.Update)
	admin.DELETE("/scholarships/:id", h.scholarships.Delete)
	admin.GET("/metrics", h.metrics.Snapshot)
}

// reminderSweeper keeps a disabled sweeper out of the scheduler as a true nil.
func reminderSweeper(svc *service.ReminderService) interface {
	Sweep(ctx context.Context) (int, error)
} {
	if svc == nil {
		return nil
	}
	return svc
}

func redisPinger(client *redis.Client) handler.PingFunc {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
