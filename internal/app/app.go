package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/javier223222/soft-skills-practice-api/internal/config"
	"github.com/javier223222/soft-skills-practice-api/internal/controller"
	"github.com/javier223222/soft-skills-practice-api/internal/repository"
	"github.com/javier223222/soft-skills-practice-api/internal/service"
	"github.com/javier223222/soft-skills-practice-api/pkg/database"
	"github.com/javier223222/soft-skills-practice-api/pkg/logger"
	"github.com/javier223222/soft-skills-practice-api/pkg/monitoring"
	"github.com/javier223222/soft-skills-practice-api/pkg/security"
	"github.com/javier223222/soft-skills-practice-api/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	skill       *repository.SoftSkillRepository
	scenario    *repository.ScenarioRepository
	practice    *repository.PracticeRepository
	feedback    *repository.FeedbackRepository
	progress    *repository.ProgressRepository
	trackingLog *repository.TrackingLogRepository
}

type services struct {
	scoring   *service.ScoringService
	feedback  *service.FeedbackClient
	events    *service.EventService
	progress  *service.ProgressService
	practice  *service.PracticeService
	softSkill *service.SoftSkillService
}

type controllers struct {
	health    *controller.HealthController
	softSkill *controller.SoftSkillController
	practice  *controller.PracticeController
	progress  *controller.ProgressController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		skill:       repository.NewSoftSkillRepository(db),
		scenario:    repository.NewScenarioRepository(db),
		practice:    repository.NewPracticeRepository(db),
		feedback:    repository.NewFeedbackRepository(db),
		progress:    repository.NewProgressRepository(db),
		trackingLog: repository.NewTrackingLogRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.scoring = service.NewScoringService(nil)
	s.feedback = service.NewFeedbackClient(cfg.Feedback)
	s.events = service.NewEventService(cfg.EventBus)
	s.progress = service.NewProgressService(repos.progress, repos.skill, repos.feedback, db)
	s.practice = service.NewPracticeService(
		repos.practice,
		repos.skill,
		repos.scenario,
		repos.feedback,
		repos.trackingLog,
		s.scoring,
		s.feedback,
		s.events,
		s.progress,
		db,
	)
	s.softSkill = service.NewSoftSkillService(repos.skill, repos.scenario, repos.progress, rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		health:    controller.NewHealthController(db),
		softSkill: controller.NewSoftSkillController(s.softSkill),
		practice:  controller.NewPracticeController(s.practice),
		progress:  controller.NewProgressController(s.progress),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS())
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// Redis is optional: without it the catalog is served from the database.
	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Warn("Redis unavailable, catalog cache disabled", zap.Error(err))
			rdb = nil
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	if cfg.MigrateOnly {
		return app
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("soft-skills-practice", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
