package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"ecotrack_backend/internal/config"
	"ecotrack_backend/internal/controller"
	"ecotrack_backend/internal/middleware"
	"ecotrack_backend/internal/repository"
	"ecotrack_backend/internal/service"
	"ecotrack_backend/pkg/configwatcher"
	"ecotrack_backend/pkg/database"
	"ecotrack_backend/pkg/logger"
	"ecotrack_backend/pkg/monitoring"
	"ecotrack_backend/pkg/security"
	"ecotrack_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const serviceName = "ecotrack"

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	scheduler       *Scheduler
	rateLimiter     *security.RateLimiter
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	ecoPoint *repository.EcoPointRepository
	badge    *repository.BadgeRepository
	tip      *repository.TipRepository
	stats    *repository.StatsRepository
}

type services struct {
	auth      *service.AuthService
	user      *service.UserService
	badge     *service.BadgeService
	ledger    *service.LedgerService
	tip       *service.TipService
	dashboard *service.DashboardService
	stats     *service.StatsService
}

type controllers struct {
	auth      *controller.AuthController
	task      *controller.TaskController
	badge     *controller.BadgeController
	dashboard *controller.DashboardController
	tip       *controller.TipController
	community *controller.CommunityController
	admin     *controller.AdminController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		ecoPoint: repository.NewEcoPointRepository(db),
		badge:    repository.NewBadgeRepository(db),
		tip:      repository.NewTipRepository(db),
		stats:    repository.NewStatsRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}
	loc := cfg.Ledger.Location()

	var (
		locker service.UserLocker
		cache  service.StatsCache
	)
	if rdb != nil {
		locker = repository.NewRedisUserLocker(rdb, cfg.Ledger.LockTTL)
		cache = repository.NewRedisStatsCache(rdb)
	}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.badge = service.NewBadgeService(repos.badge, loc)
	s.ledger = service.NewLedgerService(repos.ecoPoint, s.badge, locker, loc)
	s.tip = service.NewTipService(repos.tip)
	s.dashboard = service.NewDashboardService(s.user, s.ledger, s.badge, s.tip)
	s.stats = service.NewStatsService(repos.stats, cache, s.ledger)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth, s.user),
		task:      controller.NewTaskController(s.ledger),
		badge:     controller.NewBadgeController(s.badge, s.ledger),
		dashboard: controller.NewDashboardController(s.dashboard),
		tip:       controller.NewTipController(s.tip),
		community: controller.NewCommunityController(s.stats),
		admin:     controller.NewAdminController(s.stats, s.user),
		health:    controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	a.rateLimiter = security.NewRateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
	a.rateLimiter.StartCleanup()
	router.Use(a.rateLimiter.Middleware())

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
	router.Use(middleware.ConfigMiddleware(cfg))
}

// registerReloaders wires hot-reloadable settings to the running components.
func (a *App) registerReloaders() {
	a.RegisterConfigCallback(func(newCfg *config.Config) {
		a.rateLimiter.Update(newCfg.RateLimit.MaxRequests, time.Duration(newCfg.RateLimit.WindowMinutes)*time.Minute)
		logger.L().Info("Rate limit updated",
			zap.Int("max_requests", newCfg.RateLimit.MaxRequests),
			zap.Int("window_minutes", newCfg.RateLimit.WindowMinutes))
	})
	a.RegisterConfigCallback(func(newCfg *config.Config) {
		loc := newCfg.Ledger.Location()
		a.services.ledger.SetLocation(loc)
		logger.L().Info("Ledger timezone updated", zap.String("timezone", loc.String()))
	})
}

func (a *App) startBackgroundTasks(ctx context.Context) {
	a.scheduler = NewScheduler(a.services.stats, a.Config.Scheduler.StatsRefreshSpec, a.Config.Ledger.Location())
	if err := a.scheduler.Start(ctx); err != nil {
		logger.L().Error("Failed to start scheduler", zap.Error(err))
		a.scheduler = nil
	}

	go func() {
		configFile := filepath.Join("configs", "config.yaml")
		err := configwatcher.WatchConfig(ctx, configFile, func(newCfg *config.Config) {
			for _, cb := range a.configCallbacks {
				cb(newCfg)
			}
		})
		if err != nil {
			logger.L().Warn("Config watcher not running", zap.Error(err))
		}
	}()
}

// NewApp connects storage, migrates when asked to and assembles the router.
func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.L().Info("Logger initialized successfully")

	if err := middleware.RegisterValidators(); err != nil {
		return nil, err
	}

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.L().Error("Failed to initialize database", zap.Error(err))
		return nil, err
	}

	if cfg.ForceMigrate || cfg.Server.Mode != gin.ReleaseMode {
		if err := database.Migrate(db); err != nil {
			logger.L().Error("Database migration failed", zap.Error(err))
			return nil, err
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}
	if cfg.MigrateOnly {
		return app, nil
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.L().Error("Failed to initialize redis", zap.Error(err))
		return nil, err
	}
	app.Redis = rdb

	repos := app.initRepositories(db)
	app.services = app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(app.services, db, rdb)

	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(serviceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.L().Error("Failed to initialize tracing", zap.Error(err))
		} else {
			app.tracer = tp
		}
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)
	app.registerReloaders()

	return app, nil
}

func (a *App) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.startBackgroundTasks(ctx)

	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.L().Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("listen", zap.Error(err))
		}
	}()

	// wait for an interrupt, then give in-flight requests 5 seconds
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.L().Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L().Error("Server forced to shutdown", zap.Error(err))
	}

	cancel()
	a.Close()
	logger.L().Info("Server exiting")
}

// Close releases background workers and connections.
func (a *App) Close() {
	if a.scheduler != nil {
		a.scheduler.Stop()
	}
	if a.rateLimiter != nil {
		a.rateLimiter.Stop()
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(context.Background()); err != nil {
			logger.L().Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
