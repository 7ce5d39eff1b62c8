package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lda-portal/internal/cache"
	"lda-portal/internal/config"
	"lda-portal/internal/database"
	"lda-portal/internal/handler"
	"lda-portal/internal/metrics"
	"lda-portal/internal/middleware"
	"lda-portal/internal/queue"
	"lda-portal/internal/repository"
	"lda-portal/internal/router"
	"lda-portal/internal/service"
	"lda-portal/internal/storage"
	"lda-portal/internal/validator"
	"lda-portal/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title           LDA Portal API
// @version         1.0
// @description     Grants portal for local development agencies: LDAs, funders, funds, documents, media and contacts behind role and relationship based access control.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogger(cfg)
	log.Info().Msg("configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()
	metrics.Register()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.AccessTokenSecret, cfg.AccessTokenExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	ldaRepo := repository.NewLDARepository(mongoDB.Database)
	funderRepo := repository.NewFunderRepository(mongoDB.Database)
	fundRepo := repository.NewFundRepository(mongoDB.Database)
	documentRepo := repository.NewDocumentRepository(mongoDB.Database)
	mediaRepo := repository.NewMediaRepository(mongoDB.Database)
	contactRepo := repository.NewContactRepository(mongoDB.Database)

	// File deletion queue and processor
	deletionQueue := queue.NewMemoryQueue(cfg.FileDeletionQueueSize)
	deletionProcessor := queue.NewProcessor(deletionQueue, s3Client, cfg.FileDeletionWorkers)
	files := service.NewFiles(s3Client, deletionQueue, cfg.S3PresignExpiry)

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:      userRepo,
		ResetStore:    cache.NewResetTokenStore(redisCache),
		JWTManager:    jwtManager,
		ResetTokens:   auth.NewResetTokenGenerator(),
		Notifier:      service.LogNotifier{},
		ResetTokenTTL: cfg.ResetTokenExpiry,
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
		ResetLimiter:    middleware.NewIPRateLimiter(cfg.ForgotPasswordRate),
		Logger:          log.Logger,
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(log.Logger.WithContext(context.Background()))
	defer cancel()

	// Start file deletion processor
	deletionProcessor.Start(ctx)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Info().Msg("shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first so no new deletions are queued
	log.Info().Msg("shutting down HTTP server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// Drain queued deletions, then release the workers' context
	log.Info().Int("pending", deletionQueue.Len()).Msg("draining file deletion queue")
	deletionProcessor.Stop()
	cancel()

	log.Info().Msg("server shutdown complete")
}

// setupLogger configures the global zerolog logger. Debug mode writes
// human-readable console output; other modes write JSON.
func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if cfg.GinMode == gin.DebugMode {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Str("service", "lda-portal").Logger()
	}

	// Code holding a context without a request logger still logs somewhere.
	zerolog.DefaultContextLogger = &log.Logger
}
