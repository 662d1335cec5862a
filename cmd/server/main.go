package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	catalogapp "github.com/retailops/backend/internal/application/catalog"
	ledgerapp "github.com/retailops/backend/internal/application/ledger"
	networkapp "github.com/retailops/backend/internal/application/network"
	planningapp "github.com/retailops/backend/internal/application/planning"
	productionapp "github.com/retailops/backend/internal/application/production"
	reportapp "github.com/retailops/backend/internal/application/report"
	"github.com/retailops/backend/internal/infrastructure/cache"
	"github.com/retailops/backend/internal/infrastructure/config"
	"github.com/retailops/backend/internal/infrastructure/event"
	"github.com/retailops/backend/internal/infrastructure/logger"
	"github.com/retailops/backend/internal/infrastructure/persistence"
	"github.com/retailops/backend/internal/infrastructure/printing"
	"github.com/retailops/backend/internal/infrastructure/scheduler"
	"github.com/retailops/backend/internal/infrastructure/storage"
	"github.com/retailops/backend/internal/infrastructure/telemetry"
	"github.com/retailops/backend/internal/interfaces/http/handler"
	"github.com/retailops/backend/internal/interfaces/http/middleware"
	"github.com/retailops/backend/internal/interfaces/http/router"

	_ "github.com/retailops/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			RetailOps Backend API
//	@version		1.0
//	@description	Retail operations dashboard backend: sales network, movement ledger, production batches, revenue plans and reports.

//	@contact.name	API Support
//	@contact.url	https://github.com/retailops/backend

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api

func main() {
	// Amounts and quantities go over the wire as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: cfg.Log.TimeFormat,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting RetailOps Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Telemetry providers. Disabled configs yield no-op providers, so the
	// rest of the wiring never branches on telemetry being on.
	ctx := context.Background()

	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer shutdownWithTimeout(tracerProvider.Shutdown, log, "tracer provider")

	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer shutdownWithTimeout(meterProvider.Shutdown, log, "meter provider")

	loggerProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	defer shutdownWithTimeout(loggerProvider.Shutdown, log, "logger provider")

	if loggerProvider.IsEnabled() {
		bridgeLevel, parseErr := zapcore.ParseLevel(cfg.Log.Level)
		if parseErr != nil {
			bridgeLevel = zapcore.InfoLevel
		}
		log = loggerProvider.BridgedLogger(log, bridgeLevel)
		log.Info("Log export to collector enabled")
	}

	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:           cfg.Profiling.Enabled,
		ServerAddress:     cfg.Profiling.ServerAddress,
		ApplicationName:   cfg.App.Name,
		ProfileCPU:        true,
		ProfileAllocSpace: true,
		ProfileInuseSpace: true,
		ProfileGoroutines: true,
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	defer func() {
		if err := profiler.Stop(); err != nil {
			log.Error("Error stopping profiler", zap.Error(err))
		}
	}()

	if profiler.IsEnabled() && tracerProvider.IsEnabled() {
		if err := tracerProvider.EnableSpanProfiles(); err != nil {
			log.Warn("Failed to enable span profiles", zap.Error(err))
		}
	}

	// Database with a GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully", zap.String("driver", cfg.Database.Driver))

	if cfg.Telemetry.Enabled {
		dbTracingConfig := telemetry.DefaultDBTracingConfig()
		dbTracingConfig.Enabled = true
		dbTracingConfig.DBSystem = cfg.Database.Driver
		dbTracing := telemetry.NewDBTracingPlugin(dbTracingConfig, log)
		if err := dbTracing.Register(db.DB); err != nil {
			log.Warn("Failed to register database tracing", zap.Error(err))
		}
	}

	// Repositories
	districtRepo := persistence.NewGormDistrictRepository(db.DB)
	storeRepo := persistence.NewGormStoreRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	movementRepo := persistence.NewGormMovementRepository(db.DB)
	paymentRepo := persistence.NewGormStorePaymentRepository(db.DB)
	batchRepo := persistence.NewGormBatchRepository(db.DB)
	planRepo := persistence.NewGormRevenuePlanRepository(db.DB)
	snapshotRepo := persistence.NewGormSnapshotRepository(db.DB)

	// Application services
	districtService := networkapp.NewDistrictService(districtRepo, storeRepo)
	storeService := networkapp.NewStoreService(storeRepo, districtRepo)
	productService := catalogapp.NewProductService(productRepo)
	movementService := ledgerapp.NewMovementService(
		movementRepo, batchRepo, districtRepo, storeRepo, productRepo,
		cfg.Movements.ProductionCap,
	)
	paymentService := ledgerapp.NewPaymentService(paymentRepo, storeRepo, districtRepo)
	batchService := productionapp.NewBatchService(batchRepo, productRepo)
	planService := planningapp.NewPlanService(planRepo, districtRepo)

	// Report cache: Redis when available, otherwise per-process memory
	var (
		reportCache reportapp.Cache
		redisClient *redis.Client
	)
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisReportCache(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		reportCache = redisCache
		redisClient = redisCache.GetClient()
		log.Info("Report cache using Redis", zap.String("addr", cfg.Redis.Addr()))
	} else {
		reportCache = cache.NewInMemoryReportCache()
		log.Info("Report cache using in-process memory")
	}

	reportService := reportapp.NewService(
		movementRepo, paymentRepo, batchRepo, planRepo,
		districtRepo, storeRepo, productRepo,
		reportCache, cfg.Reports.CacheTTL, log,
	)

	// PDF export for the debt report
	if cfg.Printing.Enabled {
		pdfRenderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
			DefaultTimeout: cfg.Printing.Timeout,
			ExecPath:       cfg.Printing.ChromePath,
			NoSandbox:      true,
			Logger:         log,
		})
		if err != nil {
			log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
		}
		debtRenderer := printing.NewDebtReportRenderer(pdfRenderer)
		defer func() {
			if err := debtRenderer.Close(); err != nil {
				log.Error("Error closing PDF renderer", zap.Error(err))
			}
		}()
		reportService.SetPDFRenderer(debtRenderer)
		log.Info("PDF export enabled")
	}

	// Event bus: ledger writes invalidate cached reports and feed metrics
	eventBus := event.NewInMemoryEventBus(log)

	invalidator := reportapp.NewCacheInvalidator(reportCache, log)
	eventBus.Subscribe(invalidator)

	if meterProvider.IsEnabled() {
		ledgerMetrics, err := telemetry.NewLedgerMetrics(meterProvider, log)
		if err != nil {
			log.Warn("Failed to initialize ledger metrics", zap.Error(err))
		} else {
			eventBus.Subscribe(ledgerMetrics)
		}
	}

	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	districtService.SetEventPublisher(eventBus)
	storeService.SetEventPublisher(eventBus)
	productService.SetEventPublisher(eventBus)
	movementService.SetEventPublisher(eventBus)
	paymentService.SetEventPublisher(eventBus)
	batchService.SetEventPublisher(eventBus)
	planService.SetEventPublisher(eventBus)

	// Daily report snapshots, optionally archived to object storage
	if cfg.Reports.SnapshotEnabled {
		warmer := reportapp.NewSnapshotWarmer(reportService, snapshotRepo, log)

		var archiver *storage.SnapshotArchiver
		if cfg.Storage.S3Enabled {
			objectStore, err := storage.NewS3Store(&cfg.Storage, storage.WithLogger(log))
			if err != nil {
				log.Fatal("Failed to initialize object storage", zap.Error(err))
			}
			if err := objectStore.EnsureBucket(ctx); err != nil {
				log.Fatal("Failed to ensure storage bucket", zap.Error(err))
			}
			archiver = storage.NewSnapshotArchiver(objectStore, snapshotRepo, cfg.Storage.Prefix, log)
			log.Info("Snapshot archiving enabled", zap.String("bucket", cfg.Storage.Bucket))
		}

		executor := scheduler.NewSnapshotExecutor(warmer, archiver, log)
		snapshotScheduler := scheduler.NewScheduler(scheduler.SchedulerConfig{
			Enabled:           true,
			MaxConcurrentJobs: cfg.Reports.SnapshotWorkers,
			JobTimeout:        cfg.Reports.SnapshotTimeout,
			RetryAttempts:     cfg.Reports.SnapshotRetries,
			RetryDelay:        cfg.Reports.SnapshotRetryGap,
		}, executor, log)
		if err := snapshotScheduler.Start(ctx); err != nil {
			log.Fatal("Failed to start snapshot scheduler", zap.Error(err))
		}
		defer func() {
			if err := snapshotScheduler.Stop(context.Background()); err != nil {
				log.Error("Error stopping snapshot scheduler", zap.Error(err))
			}
		}()

		triggerConfig := scheduler.DefaultCronTriggerConfig()
		if cfg.Reports.SnapshotCron != "" {
			hour, minute, err := scheduler.ParseCronSchedule(cfg.Reports.SnapshotCron)
			if err != nil {
				log.Fatal("Invalid snapshot cron expression",
					zap.String("cron", cfg.Reports.SnapshotCron), zap.Error(err))
			}
			triggerConfig.DailyHour = hour
			triggerConfig.DailyMinute = minute
		}
		trigger := scheduler.NewCronTrigger(triggerConfig, snapshotScheduler, log)
		if err := trigger.Start(ctx); err != nil {
			log.Fatal("Failed to start snapshot trigger", zap.Error(err))
		}
		defer func() {
			if err := trigger.Stop(context.Background()); err != nil {
				log.Error("Error stopping snapshot trigger", zap.Error(err))
			}
		}()
		log.Info("Daily report snapshots scheduled",
			zap.Int("hour", triggerConfig.DailyHour),
			zap.Int("minute", triggerConfig.DailyMinute),
		)
	}

	// HTTP handlers
	districtHandler := handler.NewDistrictHandler(districtService)
	storeHandler := handler.NewStoreHandler(storeService)
	productHandler := handler.NewProductHandler(productService)
	movementHandler := handler.NewMovementHandler(movementService)
	storePaymentHandler := handler.NewStorePaymentHandler(paymentService)
	productionBatchHandler := handler.NewProductionBatchHandler(batchService)
	revenuePlanHandler := handler.NewRevenuePlanHandler(planService)
	reportHandler := handler.NewReportHandler(reportService)
	systemHandler := handler.NewSystemHandler()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	if cfg.Telemetry.Enabled {
		engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     true,
		}))
		engine.Use(middleware.SpanErrorMarker())
	}
	engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
		MeterProvider: meterProvider,
		Enabled:       meterProvider.IsEnabled(),
	}))

	engine.GET("/health", healthHandler(db, redisClient))
	engine.GET("/ready", readyHandler(db))

	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:    cfg.Swagger.Enabled,
			AllowedIPs: cfg.Swagger.AllowedIPs,
		}),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	router.NewRouter(engine).
		Register(districtHandler).
		Register(storeHandler).
		Register(productHandler).
		Register(movementHandler).
		Register(storePaymentHandler).
		Register(productionBatchHandler).
		Register(revenuePlanHandler).
		Register(reportHandler).
		Register(systemHandler).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// shutdownWithTimeout runs a provider shutdown with a bounded context so a
// hung collector cannot stall process exit.
func shutdownWithTimeout(shutdown func(context.Context) error, log *zap.Logger, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Error("Error shutting down "+name, zap.Error(err))
	}
}

// healthHandler reports liveness plus database and redis reachability.
// The redis client is nil when the report cache runs in-process.
func healthHandler(db *persistence.Database, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		status := http.StatusOK
		body := gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		}
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			status = http.StatusServiceUnavailable
			body["status"] = "unhealthy"
			body["database"] = "error"
		}
		if rdb != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := rdb.Ping(ctx).Err(); err != nil {
				reqLog.Warn("Redis health check failed", zap.Error(err))
				status = http.StatusServiceUnavailable
				body["status"] = "unhealthy"
				body["redis"] = "error"
			} else {
				body["redis"] = "ok"
			}
		}
		c.JSON(status, body)
	}
}

// readyHandler gates traffic on the database only: a redis outage degrades
// report latency but the API still serves.
func readyHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
