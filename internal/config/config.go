package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string

	MongoURI      string
	MongoDatabase string
	RedisURI      string

	AccessTokenSecret string
	AccessTokenExpiry time.Duration
	ResetTokenExpiry  time.Duration

	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string
	S3Bucket        string
	S3UseSSL        bool
	S3PresignExpiry time.Duration

	FileDeletionWorkers   int
	FileDeletionQueueSize int

	// ForgotPasswordRate is the number of forgot-password requests a single
	// client IP may make per minute.
	ForgotPasswordRate int
}

// Load reads configuration from .env file and environment variables. Every
// missing or malformed variable is reported in the returned error.
func Load() (*Config, error) {
	// .env is optional; variables may be set directly
	_ = godotenv.Load()

	var l loader
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		MongoURI:      l.required("MONGO_URI"),
		MongoDatabase: l.required("MONGO_DATABASE"),
		RedisURI:      getEnv("REDIS_URI", "localhost:6379"),

		AccessTokenSecret: l.required("ACCESS_TOKEN_SECRET"),
		AccessTokenExpiry: l.duration("ACCESS_TOKEN_EXPIRY", "15m"),
		ResetTokenExpiry:  l.duration("RESET_TOKEN_EXPIRY", "1h"),

		S3Endpoint:      getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey:     getEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey:     getEnv("S3_SECRET_KEY", "minioadmin"),
		S3Bucket:        getEnv("S3_BUCKET", "lda-files"),
		S3UseSSL:        getEnv("S3_USE_SSL", "false") == "true",
		S3PresignExpiry: l.duration("S3_PRESIGN_EXPIRY", "15m"),

		FileDeletionWorkers:   l.positiveInt("FILE_DELETION_WORKERS", "2"),
		FileDeletionQueueSize: l.positiveInt("FILE_DELETION_QUEUE_SIZE", "100"),

		ForgotPasswordRate: l.positiveInt("FORGOT_PASSWORD_RATE", "5"),
	}

	if err := errors.Join(l.errs...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// getEnv reads an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// loader collects every configuration problem instead of stopping at the first.
type loader struct {
	errs []error
}

func (l *loader) required(key string) string {
	value := os.Getenv(key)
	if value == "" {
		l.errs = append(l.errs, fmt.Errorf("%s is not set", key))
	}
	return value
}

func (l *loader) duration(key, defaultValue string) time.Duration {
	d, err := parseDuration(getEnv(key, defaultValue))
	if err != nil {
		l.errs = append(l.errs, fmt.Errorf("%s: %w", key, err))
	}
	return d
}

func (l *loader) positiveInt(key, defaultValue string) int {
	n, err := parseInt(getEnv(key, defaultValue))
	if err != nil {
		l.errs = append(l.errs, fmt.Errorf("%s: %w", key, err))
	}
	return n
}

func parseDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return d, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid positive integer %q", s)
	}
	return n, nil
}
