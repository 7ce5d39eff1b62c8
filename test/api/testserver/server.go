//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"lda-portal/internal/cache"
	"lda-portal/internal/database"
	"lda-portal/internal/handler"
	"lda-portal/internal/metrics"
	"lda-portal/internal/middleware"
	"lda-portal/internal/queue"
	"lda-portal/internal/repository"
	"lda-portal/internal/router"
	"lda-portal/internal/service"
	"lda-portal/internal/storage"
	"lda-portal/pkg/auth"
	"lda-portal/test/api/testdb"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// TestAccessTokenSecret is the JWT secret used in tests.
	TestAccessTokenSecret = "test-secret-key-for-api-tests"
	// TestAccessTokenExpiry is the access token expiry time used in tests.
	TestAccessTokenExpiry = 15 * time.Minute
	// TestResetTokenExpiry is how long password reset tokens live in tests.
	TestResetTokenExpiry = 10 * time.Minute
	// TestPresignExpiry is the lifetime of pre-signed URLs in tests.
	TestPresignExpiry = 5 * time.Minute
	// TestForgotPasswordRate is the per-minute limit on reset endpoints.
	TestForgotPasswordRate = 1000
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
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
	UserRepo     repository.UserRepository
	LDARepo      repository.LDARepository
	FunderRepo   repository.FunderRepository
	FundRepo     repository.FundRepository
	DocumentRepo repository.DocumentRepository
	MediaRepo    repository.MediaRepository
	ContactRepo  repository.ContactRepository

	// Services (for direct service access in tests)
	AuthService service.AuthServicer

	// Notifier captures issued password reset tokens.
	Notifier *CapturingNotifier

	// File deletion
	Storage               *storage.S3Client
	FileDeletionQueue     *queue.MemoryQueue
	FileDeletionProcessor *queue.Processor
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)
	metrics.Register()

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

	if err := database.EnsureIndexes(ctx, mongoDB.Database); err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		_ = minioContainer.Cleanup(ctx)
		return nil, err
	}

	// Create cache (uses real Redis)
	redisCache := cache.NewRedisFromClient(redisContainer.Client)

	// Create storage (uses real MinIO)
	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false, // useSSL
	)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	ldaRepo := repository.NewLDARepository(mongoDB.Database)
	funderRepo := repository.NewFunderRepository(mongoDB.Database)
	fundRepo := repository.NewFundRepository(mongoDB.Database)
	documentRepo := repository.NewDocumentRepository(mongoDB.Database)
	mediaRepo := repository.NewMediaRepository(mongoDB.Database)
	contactRepo := repository.NewContactRepository(mongoDB.Database)

	// File deletion queue and processor
	deletionQueue := queue.NewMemoryQueue(100)
	deletionProcessor := queue.NewProcessor(deletionQueue, s3Client, 2)
	files := service.NewFiles(s3Client, deletionQueue, TestPresignExpiry)

	// Service layer
	notifier := &CapturingNotifier{}
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:      userRepo,
		ResetStore:    cache.NewResetTokenStore(redisCache),
		JWTManager:    auth.NewJWTManager(TestAccessTokenSecret, TestAccessTokenExpiry),
		ResetTokens:   auth.NewResetTokenGenerator(),
		Notifier:      notifier,
		ResetTokenTTL: TestResetTokenExpiry,
	})
	accountService := service.NewAccountService(userRepo)
	userService := service.NewUserService(userRepo, ldaRepo)
	ldaService := service.NewLDAService(service.LDAServiceConfig{
		LDARepo:      ldaRepo,
		FundRepo:     fundRepo,
		UserRepo:     userRepo,
		ContactRepo:  contactRepo,
		DocumentRepo: documentRepo,
		MediaRepo:    mediaRepo,
		Files:        files,
	})
	funderService := service.NewFunderService(funderRepo, fundRepo, documentRepo, mediaRepo, files)
	fundService := service.NewFundService(service.FundServiceConfig{
		FundRepo:     fundRepo,
		FunderRepo:   funderRepo,
		LDARepo:      ldaRepo,
		DocumentRepo: documentRepo,
		MediaRepo:    mediaRepo,
		Files:        files,
	})
	documentService := service.NewDocumentService(documentRepo, ldaRepo, fundRepo, funderRepo, files)
	mediaService := service.NewMediaService(mediaRepo, ldaRepo, fundRepo, funderRepo, files)
	contactService := service.NewContactService(contactRepo, ldaRepo)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:     handler.NewAuthHandler(authService),
		AccountHandler:  handler.NewAccountHandler(accountService),
		UserHandler:     handler.NewUserHandler(userService),
		LDAHandler:      handler.NewLDAHandler(ldaService),
		FunderHandler:   handler.NewFunderHandler(funderService),
		FundHandler:     handler.NewFundHandler(fundService),
		DocumentHandler: handler.NewDocumentHandler(documentService),
		MediaHandler:    handler.NewMediaHandler(mediaService),
		ContactHandler:  handler.NewContactHandler(contactService),
		Authenticator:   authService,
		ResetLimiter:    middleware.NewIPRateLimiter(TestForgotPasswordRate),
		Logger:          zerolog.Nop(),
	})

	deletionProcessor.Start(ctx)

	return &TestServer{
		Router:                r,
		MongoDB:               mongoDB,
		Redis:                 redisContainer,
		MinIO:                 minioContainer,
		UserRepo:              userRepo,
		LDARepo:               ldaRepo,
		FunderRepo:            funderRepo,
		FundRepo:              fundRepo,
		DocumentRepo:          documentRepo,
		MediaRepo:             mediaRepo,
		ContactRepo:           contactRepo,
		AuthService:           authService,
		Notifier:              notifier,
		Storage:               s3Client,
		FileDeletionQueue:     deletionQueue,
		FileDeletionProcessor: deletionProcessor,
	}, nil
}

// Cleanup stops the deletion workers and terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.FileDeletionProcessor != nil {
		ts.FileDeletionProcessor.Stop()
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
