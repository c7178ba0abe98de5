package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"interview-ai/internal/adapter"
	"interview-ai/internal/adapter/provider"
	"interview-ai/internal/cache"
	"interview-ai/internal/config"
	"interview-ai/internal/database"
	"interview-ai/internal/domain"
	"interview-ai/internal/handler"
	"interview-ai/internal/logger"
	"interview-ai/internal/middleware"
	"interview-ai/internal/pipeline"
	"interview-ai/internal/repository"
	"interview-ai/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	// A missing provider is not fatal, the pipeline serves fallback content
	gateway, err := provider.NewFromConfig(ctx, cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM provider", zap.Error(err))
	}
	contentPipeline := pipeline.New(pipeline.Config{Gateway: gateway})
	appLogger.Info("Content pipeline initialized", zap.String("provider", contentPipeline.ProviderName()))

	// Connect to database
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	interviewRepository := repository.NewSQLXInterviewRepository(db)

	// Leaderboard is optional
	var leaderboard domain.Leaderboard
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		leaderboard = adapter.NewRedisLeaderboardAdapter(redisClient)
		appLogger.Info("Redis leaderboard initialized")
	} else {
		appLogger.Warn("Redis address not configured, leaderboard disabled")
	}

	authService, err := service.NewAuthService(cfg.Auth)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	interviewService := service.NewInterviewService(interviewRepository, contentPipeline, leaderboard)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.WriteTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	handler.RegisterRoutes(app, handler.RouteDeps{
		Interviews:   interviewService,
		Auth:         authService,
		ProviderName: contentPipeline.ProviderName(),
	})

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
