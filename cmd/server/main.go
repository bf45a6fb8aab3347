package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"cs2analytics/internal/config"
	cronrunner "cs2analytics/internal/cron"
	"cs2analytics/internal/handler"
	"cs2analytics/internal/logger"
	"cs2analytics/internal/paas"
	"cs2analytics/internal/predictor"
	memoryrepository "cs2analytics/internal/repository/memory"
	"cs2analytics/internal/service"
	"cs2analytics/internal/stream"

	_ "cs2analytics/docs"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfgPath := os.Getenv("CS2_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("CS2_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	strategy, err := predictor.ParseStrategy(cfg.Analysis.Strategy)
	if err != nil {
		logger.Fatal("invalid analysis strategy", zap.Error(err))
	}

	store := memoryrepository.New()
	seedService := &service.SeedService{Repo: store, Logger: logger}
	if err := seedService.Seed(context.Background()); err != nil {
		logger.Fatal("seed catalog failed", zap.Error(err))
	}

	var hub *stream.Hub
	var publisher service.EventPublisher
	if cfg.Stream.Enabled {
		hub = stream.NewHub(cfg.Stream.Buffer, logger)
		publisher = hub
	}

	rng := predictor.NewRand(cfg.Analysis.Seed)
	lifecycleService := &service.LifecycleService{
		Repo:      store,
		Config:    cfg.Lifecycle,
		Publisher: publisher,
		Logger:    logger,
	}
	refreshService := &service.RefreshService{
		Repo:        store,
		Rand:        rng,
		Tournaments: cfg.Refresh.Tournaments,
		Count:       cfg.Refresh.Count,
		Lifecycle:   lifecycleService,
		Publisher:   publisher,
		Logger:      logger,
	}
	analysisService := &service.AnalysisService{
		Repo:      store,
		Predictor: predictor.New(strategy, rng, cfg.App.BackendName),
		Logger:    logger,
	}
	queryService := &service.CatalogQueryService{Repo: store}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(handler.CORS())
	engine.Use(handler.RequestLogger(logger))

	paasClient := initPaaSClient(cfg.PaaS, logger)
	engine.Use(paas.InjectClientMiddleware(paasClient))
	engine.Use(paas.WriteAuditMiddleware(paasClient, logger))

	healthHandler := &handler.HealthHandler{
		Backend: cfg.App.BackendName,
		Version: cfg.App.Version,
		Ready:   seedService,
	}
	healthHandler.Register(engine)
	paas.RegisterDocs(engine)

	catalogHandler := &handler.CatalogHandler{
		Query:   queryService,
		Refresh: refreshService,
		Backend: cfg.App.BackendName,
		Logger:  logger,
	}
	catalogHandler.Register(engine)
	analysisHandler := &handler.AnalysisHandler{
		Service: analysisService,
		Backend: cfg.App.BackendName,
		Logger:  logger,
	}
	analysisHandler.Register(engine)
	streamHandler := &handler.StreamHandler{
		Hub:          hub,
		Query:        queryService,
		WriteTimeout: cfg.Stream.WriteTimeout,
		Logger:       logger,
	}
	streamHandler.Register(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	baseCtx := ctx
	if paasClient != nil {
		baseCtx = paas.WithClient(ctx, paasClient)
	}

	cronRunner := cronrunner.New(logger, baseCtx)
	if cfg.Cron.Enabled {
		if cfg.Lifecycle.Enabled {
			if _, err := cronRunner.Add("lifecycle", cfg.Cron.Lifecycle, func(ctx context.Context) {
				if _, err := lifecycleService.Sweep(ctx, time.Now().UTC()); err != nil {
					logger.Warn("lifecycle sweep failed", zap.Error(err))
				}
			}); err != nil {
				logger.Fatal("invalid lifecycle cron spec", zap.Error(err))
			}
		}
		if _, err := cronRunner.Add("auto_refresh", cfg.Cron.AutoRefresh, func(ctx context.Context) {
			res, err := refreshService.Refresh(ctx)
			if err != nil {
				logger.Warn("auto refresh failed", zap.Error(err))
				return
			}
			paas.LogBestEffort(ctx, "cs2_auto_refresh", "info", map[string]any{
				"new_matches":   res.NewMatches,
				"total_matches": res.TotalMatches,
			})
		}); err != nil {
			logger.Fatal("invalid auto refresh cron spec", zap.Error(err))
		}
		cronRunner.Start()
		defer cronRunner.Stop()
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("http server starting",
			zap.String("addr", cfg.Server.HTTPAddr),
			zap.String("backend", cfg.App.BackendName),
			zap.String("strategy", string(strategy)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	timeout := cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func initPaaSClient(cfg config.PaaSConfig, logger *zap.Logger) *paas.Client {
	p := paas.NewClient(cfg)
	if p == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := p.Login(ctx); err != nil {
		logger.Warn("paas login failed; audit logs will retry on demand", zap.Error(err))
	} else {
		logger.Info("paas client ready", zap.String("base_url", p.BaseURL))
	}
	return p
}
