//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"clubhub/internal/authz"
	"clubhub/internal/cache"
	"clubhub/internal/handler"
	"clubhub/internal/middleware"
	"clubhub/internal/queue"
	"clubhub/internal/repository"
	"clubhub/internal/router"
	"clubhub/internal/service"
	"clubhub/internal/session"
	"clubhub/internal/storage"
	"clubhub/pkg/auth"
	"clubhub/test/api/testdb"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// TestAccessTokenSecret is the JWT secret used in tests.
	TestAccessTokenSecret = "test-secret-key-for-api-tests"
	// TestAccessTokenExpiry is the access token expiry time used in tests.
	TestAccessTokenExpiry = 15 * time.Minute
	// TestSessionSecret signs session cookies in tests.
	TestSessionSecret = "test-session-secret-for-api-tests"
	// TestSessionTTL is how long session values live in Redis in tests.
	TestSessionTTL = time.Hour
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
	// TestAuthRateLimit is high enough that only the rate limit tests hit it.
	TestAuthRateLimit = 1000
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo  repository.UserRepository
	ClubRepo  repository.ClubRepository
	EventRepo repository.EventRepository
	RoleRepo  repository.ClubRoleRepository

	// Auth
	JWTManager *auth.JWTManager
	Sessions   *session.Manager

	cleanup  *queue.Processor
	handlers router.Config
	logger   *zap.Logger
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	log := zap.NewNop()

	// Create cache (uses real Redis)
	redisCache := cache.NewRedis(redisContainer.URI, log)

	// Create storage (uses real MinIO)
	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false, // useSSL
		log,
	)
	if err := s3Client.EnsureBucket(ctx); err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		_ = minioContainer.Cleanup(ctx)
		return nil, err
	}

	// Sessions
	jwtManager := auth.NewJWTManager(TestAccessTokenSecret, TestAccessTokenExpiry)
	sessionStore := session.NewRedisStore(redisCache, TestSessionTTL, false, []byte(TestSessionSecret))
	sessionManager := session.NewManager(sessionStore, jwtManager, log)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	clubRepo := repository.NewClubRepository(mongoDB.Database)
	eventRepo := repository.NewEventRepository(mongoDB.Database)
	roleRepo := repository.NewClubRoleRepository(mongoDB.Database)

	// Authorization
	gate := service.NewAdminGate(authz.NewLocalAuthorizer(clubRepo, roleRepo))

	// Background image cleanup
	cleanupQueue := queue.NewMemoryQueue(100)
	cleanupProcessor := queue.NewProcessor(cleanupQueue, s3Client, log, 1)
	cleanupProcessor.Start(context.Background())

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
		ImageURLExpiry: 15 * time.Minute,
		Logger:         log,
	})
	eventService := service.NewEventService(clubRepo, eventRepo, gate)
	membershipService := service.NewMembershipService(clubRepo, roleRepo, gate)

	ts := &TestServer{
		MongoDB:    mongoDB,
		Redis:      redisContainer,
		MinIO:      minioContainer,
		UserRepo:   userRepo,
		ClubRepo:   clubRepo,
		EventRepo:  eventRepo,
		RoleRepo:   roleRepo,
		JWTManager: jwtManager,
		Sessions:   sessionManager,
		cleanup:    cleanupProcessor,
		handlers: router.Config{
			AuthHandler:       handler.NewAuthHandler(authService, sessionManager),
			UserHandler:       handler.NewUserHandler(userService),
			ClubHandler:       handler.NewClubHandler(clubService),
			EventHandler:      handler.NewEventHandler(eventService),
			MembershipHandler: handler.NewMembershipHandler(membershipService),
			Sessions:          sessionManager,
		},
		logger: log,
	}
	ts.Router = ts.newRouter(TestAuthRateLimit)

	return ts, nil
}

func (ts *TestServer) newRouter(authRateLimit int) *gin.Engine {
	cfg := ts.handlers
	cfg.AuthRateLimiter = middleware.NewIPRateLimiter(authRateLimit, authRateLimit)
	cfg.Logger = ts.logger
	return router.Setup(&cfg)
}

// RouterWithAuthRateLimit builds a router sharing this server's dependencies
// but allowing only perMinute register/login requests per client.
func (ts *TestServer) RouterWithAuthRateLimit(perMinute int) *gin.Engine {
	return ts.newRouter(perMinute)
}

// Cleanup stops background work and terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.cleanup != nil {
		ts.cleanup.Stop()
	}
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
