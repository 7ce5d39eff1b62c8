// Package repository provides MongoDB data access for the application.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

// findPage runs a paginated query sorted newest first and returns the page
// plus the total match count. page is 1-based.
func findPage[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, page, limit int) ([]T, int, error) {
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * limit
	opts := options.Find().
		SetSort(newestFirst).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	return items, int(total), nil
}

// findOne decodes the single document matching filter, mapping a miss to
// notFound.
func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, notFound error, opts ...*options.FindOneOptions) (*T, error) {
	var out T
	if err := coll.FindOne(ctx, filter, opts...).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound
		}
		return nil, err
	}
	return &out, nil
}

// updateOne applies $set and returns the updated document.
func updateOne[T any](ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, set bson.M, notFound error) (*T, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out T
	err := coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound
		}
		return nil, err
	}
	return &out, nil
}

// deleteOne removes the document with id, mapping a miss to notFound.
func deleteOne(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, notFound error) error {
	result, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return notFound
	}
	return nil
}

// countIDs returns how many of ids exist in coll.
func countIDs(ctx context.Context, coll *mongo.Collection, ids []primitive.ObjectID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := coll.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return int(n), err
}

// orEmpty keeps array fields as [] rather than null in storage.
func orEmpty(ids []primitive.ObjectID) []primitive.ObjectID {
	if ids == nil {
		return []primitive.ObjectID{}
	}
	return ids
}
