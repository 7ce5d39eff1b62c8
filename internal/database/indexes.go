package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type indexDef struct {
	collection string
	keys       bson.D
	unique     bool
}

var indexes = []indexDef{
	{UsersCollection, bson.D{{Key: "email", Value: 1}}, true},
	{UsersCollection, bson.D{{Key: "ldaIds", Value: 1}}, false},
	{UsersCollection, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, false},

	{LDAsCollection, bson.D{{Key: "fundIds", Value: 1}}, false},
	{LDAsCollection, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, false},

	{FundsCollection, bson.D{{Key: "funderId", Value: 1}}, false},

	{DocumentsCollection, bson.D{{Key: "ldaId", Value: 1}, {Key: "createdAt", Value: -1}}, false},
	{DocumentsCollection, bson.D{{Key: "fundId", Value: 1}, {Key: "createdAt", Value: -1}}, false},
	{DocumentsCollection, bson.D{{Key: "funderId", Value: 1}, {Key: "createdAt", Value: -1}}, false},

	{MediaCollection, bson.D{{Key: "ldaId", Value: 1}, {Key: "createdAt", Value: -1}}, false},
	{MediaCollection, bson.D{{Key: "fundId", Value: 1}}, false},
	{MediaCollection, bson.D{{Key: "funderId", Value: 1}}, false},

	{ContactsCollection, bson.D{{Key: "ldaIds", Value: 1}, {Key: "createdAt", Value: -1}}, false},
}

// EnsureIndexes creates every index the repositories rely on. Existing
// indexes with the same definition are left alone. The unique email index
// backs duplicate detection on user create and update.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	logger := zerolog.Ctx(ctx)

	for _, idx := range indexes {
		model := mongo.IndexModel{Keys: idx.keys}
		if idx.unique {
			model.Options = options.Index().SetUnique(true)
		}

		name, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, model)
		if err != nil {
			return fmt.Errorf("creating index on %s: %w", idx.collection, err)
		}
		logger.Info().Str("collection", idx.collection).Str("index", name).Msg("index ready")
	}
	return nil
}
