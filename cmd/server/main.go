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

	"clubhub/internal/authz"
	"clubhub/internal/cache"
	"clubhub/internal/config"
	"clubhub/internal/database"
	"clubhub/internal/handler"
	"clubhub/internal/logger"
	"clubhub/internal/middleware"
	"clubhub/internal/queue"
	"clubhub/internal/repository"
	"clubhub/internal/router"
	"clubhub/internal/service"
	"clubhub/internal/session"
	"clubhub/internal/storage"
	"clubhub/internal/validator"
	"clubhub/pkg/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           ClubHub API
// @version         1.0
// @description     A REST API for student clubs and their events built with Gin, MongoDB, and Redis.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}. Browsers use the session cookie instead.

func main() {
	// Load configuration
	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel, cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	zl.Info("configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase, zl)
	defer mongoDB.Close()

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	if _, err := database.EnsureIndexes(startupCtx, mongoDB.Database); err != nil {
		zl.Fatal("failed to ensure indexes", zap.Error(err))
	}

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI, zl)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL, zl)
	if err := s3Client.EnsureBucket(startupCtx); err != nil {
		zl.Warn("club image bucket unavailable", zap.String("bucket", cfg.S3Bucket), zap.Error(err))
	}

	// Sessions: signed cookie ids backed by Redis, or bearer tokens
	jwtManager := auth.NewJWTManager(cfg.AccessTokenSecret, cfg.AccessTokenExpiry)
	sessionStore := session.NewRedisStore(redisCache, cfg.SessionTTL, cfg.SessionSecure, []byte(cfg.SessionSecret))
	sessionManager := session.NewManager(sessionStore, jwtManager, zl)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	clubRepo := repository.NewClubRepository(mongoDB.Database)
	eventRepo := repository.NewEventRepository(mongoDB.Database)
	roleRepo := repository.NewClubRoleRepository(mongoDB.Database)

	// Authorization
	authorizer := authz.NewLocalAuthorizer(clubRepo, roleRepo)
	gate := service.NewAdminGate(authorizer)

	// Orphaned club images are deleted in the background
	cleanupQueue := queue.NewMemoryQueue(100)
	cleanupProcessor := queue.NewProcessor(cleanupQueue, s3Client, zl, 2)

	// Service layer
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo, redisCache)
	clubService := service.NewClubService(service.ClubServiceConfig{
		ClubRepo:       clubRepo,
		RoleRepo:       roleRepo,
		EventRepo:      eventRepo,
		Storage:        s3Client,
		ImageCleaner:   cleanupQueue,
		Gate:           gate,
		ImageURLExpiry: cfg.ImageURLExpiry,
		Logger:         zl,
	})
	eventService := service.NewEventService(clubRepo, eventRepo, gate)
	membershipService := service.NewMembershipService(clubRepo, roleRepo, gate)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService, sessionManager)
	userHandler := handler.NewUserHandler(userService)
	clubHandler := handler.NewClubHandler(clubService)
	eventHandler := handler.NewEventHandler(eventService)
	membershipHandler := handler.NewMembershipHandler(membershipService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:       authHandler,
		UserHandler:       userHandler,
		ClubHandler:       clubHandler,
		EventHandler:      eventHandler,
		MembershipHandler: membershipHandler,
		Sessions:          sessionManager,
		AuthRateLimiter:   middleware.NewIPRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst),
		Logger:            zl,
	})

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	cleanupProcessor.Start(context.Background())

	// Start server in goroutine
	go func() {
		zl.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	zl.Info("shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	zl.Info("shutting down HTTP server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("HTTP server shutdown error", zap.Error(err))
	}

	// Drains queued deletes before the storage client goes away
	cleanupProcessor.Stop()

	zl.Info("server shutdown complete")
}
