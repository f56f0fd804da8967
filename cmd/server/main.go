package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/maheshrc27/brandlab-api/configs"
	"github.com/maheshrc27/brandlab-api/internal/api"
	"github.com/maheshrc27/brandlab-api/internal/api/handlers"
	"github.com/maheshrc27/brandlab-api/internal/api/middleware"
	"github.com/maheshrc27/brandlab-api/internal/cache"
	"github.com/maheshrc27/brandlab-api/internal/inflight"
	job "github.com/maheshrc27/brandlab-api/internal/jobs"
	"github.com/maheshrc27/brandlab-api/internal/queue"
	"github.com/maheshrc27/brandlab-api/internal/realtime"
	"github.com/maheshrc27/brandlab-api/internal/repository"
	"github.com/maheshrc27/brandlab-api/internal/service"
	"github.com/maheshrc27/brandlab-api/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		zl.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := db.PingContext(ctx); err != nil {
		zl.Fatal("Database is unreachable", zap.Error(err))
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURI)
	if err != nil {
		zl.Fatal("Invalid REDIS_URI", zap.Error(err))
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		zl.Fatal("Redis is unreachable", zap.Error(err))
	}

	redisConn, err := asynq.ParseRedisURI(cfg.RedisURI)
	if err != nil {
		zl.Fatal("Invalid REDIS_URI for task queue", zap.Error(err))
	}
	taskClient := asynq.NewClient(redisConn)
	defer taskClient.Close()

	storage, err := service.NewS3Storage(ctx, cfg.Storage, zl)
	if err != nil {
		zl.Fatal("Failed to configure object storage", zap.Error(err))
	}

	queryCache := cache.NewQueryCache(rdb, cfg.CacheTTL, zl)
	hub := realtime.NewHub(64)
	deleting := inflight.NewSet()

	listener, err := realtime.NewListener(cfg.PostgresURI, hub, zl)
	if err != nil {
		zl.Fatal("Failed to start change listener", zap.Error(err))
	}
	go listener.Run(ctx)
	go realtime.ForwardInvalidations(ctx, hub, queryCache, zl)

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	lookupRepo := repository.NewLookupRepository(db)
	clientRepo := repository.NewClientRepository(db)
	relevanceRepo := repository.NewRelevanceScoreRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	videoRepo := repository.NewVideoRepository(db)

	userService := service.NewUserService(userRepo, zl)
	authService := service.NewAuthService(service.AuthConfig{
		SecretKey:     cfg.SecretKey,
		SessionTTL:    cfg.SessionTTL,
		AllowedDomain: cfg.Google.AllowedDomain,
	}, userService, userRepo, sessionRepo, service.NewGoogleProvider(cfg.Google), hub, zl)
	lookupService := service.NewLookupService(lookupRepo, queryCache, zl)
	clientService := service.NewClientService(clientRepo, relevanceRepo, campaignRepo, storage, taskClient, queryCache, deleting, zl)
	relevanceService := service.NewRelevanceService(clientRepo, relevanceRepo, queryCache, zl)
	campaignService := service.NewCampaignService(campaignRepo, queryCache, deleting, zl)
	videoService := service.NewVideoService(videoRepo, storage, taskClient, queryCache, deleting, zl)

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    cfg.UploadMaxBytes + 1024*1024,
		Immutable:    true,
		ErrorHandler: handlers.ErrorHandler(zl),
	})

	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))
	app.Use(middleware.Metrics())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authMiddleware := middleware.NewAuthMiddleware(*cfg, authService)
	api.RegisterRoutes(app, api.Handlers{
		Auth:      handlers.NewAuthHandler(*cfg, authService, hub, zl),
		User:      handlers.NewUserHandler(userService),
		Lookup:    handlers.NewLookupHandler(lookupService),
		Client:    handlers.NewClientHandler(clientService, cfg.UploadMaxBytes),
		Relevance: handlers.NewRelevanceHandler(relevanceService),
		Campaign:  handlers.NewCampaignHandler(campaignService),
		Video:     handlers.NewVideoHandler(videoService, cfg.UploadMaxBytes),
		Realtime:  handlers.NewRealtimeHandler(hub, zl),
	}, authMiddleware)

	// cron jobs
	cleanupJob := job.NewSessionCleanupJob(sessionRepo, zl)
	c := cron.New()
	if err := c.AddFunc(job.SessionCleanupSchedule, cleanupJob.PurgeSessions); err != nil {
		zl.Fatal("Failed to schedule session cleanup", zap.Error(err))
	}
	c.Start()

	// queue
	worker := queue.NewQueue(storage, zl)
	taskServer := asynq.NewServer(redisConn, asynq.Config{
		Concurrency: 10,
		Queues:      map[string]int{queue.QueueDefault: 1},
		Logger:      zl.Sugar(),
	})
	mux := asynq.NewServeMux()
	worker.Register(mux)

	go func() {
		zl.Info("Starting the task server")
		if err := taskServer.Run(mux); err != nil {
			zl.Fatal("Could not start task server", zap.Error(err))
		}
	}()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			zl.Fatal("Failed to start server", zap.Error(err))
		}
	}()
	zl.Info("Server is running", zap.String("port", cfg.Port))

	gracefulShutdown(zl, func() {
		cancel()
		hub.Close()
		if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
			zl.Error("Failed to shut down server", zap.Error(err))
		}
		taskServer.Shutdown()
		c.Stop()
		closeDB(zl, db)
	})
}

func closeDB(zl *zap.Logger, db *sql.DB) {
	if err := db.Close(); err != nil {
		zl.Error("Failed to close database", zap.Error(err))
		return
	}
	zl.Info("Database connection closed")
}

func gracefulShutdown(zl *zap.Logger, shutdown func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	zl.Info("Shutting down server")
	shutdown()
	zl.Info("Server shutdown complete")
}
