package app

import (
	"context"
	"errors"
	"fmt"
	"mimir_backend/internal/config"
	"mimir_backend/internal/controller"
	"mimir_backend/internal/generator"
	"mimir_backend/internal/llm"
	"mimir_backend/internal/repository"
	"mimir_backend/internal/service"
	"mimir_backend/pkg/database"
	"mimir_backend/pkg/logger"
	"mimir_backend/pkg/monitoring"
	"mimir_backend/pkg/security"
	"mimir_backend/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	Provider llm.Provider

	tracer          *sdktrace.TracerProvider
	stopBackground  context.CancelFunc
	mu              sync.Mutex
	configCallbacks []func(*config.Config)
}

// Dependencies 外部资源，测试中可直接注入 sqlite 与 mock 提供方
type Dependencies struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Provider llm.Provider
	Storage  *service.StorageService
	// GeneratorOptions 覆盖默认重试策略等
	GeneratorOptions []generator.Option
}

type repositories struct {
	bootcamp *repository.BootcampRepository
	lesson   *repository.LessonRepository
	activity *repository.ActivityRepository
}

type services struct {
	guard    *service.ProgressionGuard
	bootcamp *service.BootcampService
	lesson   *service.LessonService
	activity *service.ActivityService
}

type controllers struct {
	syllabus *controller.SyllabusController
	lesson   *controller.LessonController
	activity *controller.ActivityController
	bootcamp *controller.BootcampController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置热更新入口，仅转发给已注册的回调
func (a *App) ApplyConfig(cfg *config.Config) {
	a.mu.Lock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		bootcamp: repository.NewBootcampRepository(db),
		lesson:   repository.NewLessonRepository(db),
		activity: repository.NewActivityRepository(db),
	}
}

func (a *App) initServices(repos *repositories, deps Dependencies) *services {
	s := &services{}

	opts := append([]generator.Option{generator.WithLogger(logger.Log)}, deps.GeneratorOptions...)
	gen := generator.New(deps.Provider, opts...)
	lock := service.NewGenerationLock(deps.Redis, a.Config.Redis.LockTTL())
	storage := deps.Storage
	if storage == nil {
		storage = &service.StorageService{}
	}

	s.guard = service.NewProgressionGuard(repos.bootcamp, repos.lesson, repos.activity)
	s.bootcamp = service.NewBootcampService(repos.bootcamp, repos.lesson, s.guard, gen, storage)
	s.lesson = service.NewLessonService(repos.lesson, s.guard, gen, lock, storage)
	s.activity = service.NewActivityService(repos.activity, s.guard, gen, lock)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		syllabus: controller.NewSyllabusController(s.bootcamp),
		lesson:   controller.NewLessonController(s.lesson),
		activity: controller.NewActivityController(s.activity),
		bootcamp: controller.NewBootcampController(s.bootcamp),
		health:   controller.NewHealthController(a.DB, a.Redis),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if cfg.RateLimit.MaxRequests > 0 && window > 0 {
		// 限流清理协程随 Close 退出
		ctx, cancel := context.WithCancel(context.Background())
		a.stopBackground = cancel
		router.Use(security.RateLimiter(ctx, cfg.RateLimit.MaxRequests, window))
	}

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// New 用已准备好的依赖组装路由
func New(cfg *config.Config, deps Dependencies) *App {
	app := &App{
		Config:   cfg,
		DB:       deps.DB,
		Redis:    deps.Redis,
		Provider: deps.Provider,
	}

	repos := app.initRepositories(deps.DB)
	services := app.initServices(repos, deps)
	controllers := app.initControllers(services)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.SetLevel(newCfg)
		logger.Log.Info("Config reloaded", zap.String("level", logger.Level().String()))
	})

	return app
}

// NewApp 按配置连接数据库、Redis、存储和大模型
func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.ForceMigrate || cfg.Server.Mode != gin.ReleaseMode)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("initialize redis: %w", err)
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db, Redis: rdb}, nil
	}

	storage, err := service.NewStorageService(&cfg.Storage)
	if err != nil {
		return nil, err
	}

	provider, err := llm.NewProvider(context.Background(), cfg.AI, logger.Log)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("LLM provider ready",
		zap.String("provider", cfg.AI.Provider),
		zap.String("model", provider.ModelID()))

	app := New(cfg, Dependencies{
		DB:       db,
		Redis:    rdb,
		Provider: provider,
		Storage:  storage,
	})

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("mimir", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return nil, fmt.Errorf("initialize tracing: %w", err)
		}
		app.tracer = tp
	}

	return app, nil
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
		// 不设置 WriteTimeout，生成请求含重试可能持续数分钟
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置10秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close(ctx)
	logger.Log.Info("Server exiting")
}

// Close 停止后台协程并释放追踪、Redis 与数据库连接
func (a *App) Close(ctx context.Context) {
	if a.stopBackground != nil {
		a.stopBackground()
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
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
