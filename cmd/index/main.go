package main

import (
	"context"
	"os"
	"time"

	"lda-portal/internal/config"
	"lda-portal/internal/database"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log.Info().Msg("creating indexes")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ctx = log.Logger.WithContext(ctx)

	if err := database.EnsureIndexes(ctx, mongoDB.Database); err != nil {
		log.Error().Err(err).Msg("index creation failed")
		mongoDB.Close()
		os.Exit(1)
	}

	log.Info().Msg("indexes created")
}
