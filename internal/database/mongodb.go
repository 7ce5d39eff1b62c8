// Package database provides the MongoDB connection.
package database

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	UsersCollection     = "users"
	LDAsCollection      = "ldas"
	FundersCollection   = "funders"
	FundsCollection     = "funds"
	DocumentsCollection = "documents"
	MediaCollection     = "media"
	ContactsCollection  = "contacts"
)

// MongoDB holds the database connection
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDB connects and pings, exiting the process on failure.
func NewMongoDB(uri, dbName string) *MongoDB {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal().Err(err).Msg("failed to ping MongoDB")
	}

	log.Info().Str("database", dbName).Msg("connected to MongoDB")

	return &MongoDB{
		Client:   client,
		Database: client.Database(dbName),
	}
}

// Ping reports whether the server is reachable.
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, nil)
}

// Close disconnects from MongoDB
func (m *MongoDB) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.Client.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("error disconnecting from MongoDB")
		return
	}
	log.Info().Msg("disconnected from MongoDB")
}

// Collection returns a collection from the database
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.Database.Collection(name)
}
