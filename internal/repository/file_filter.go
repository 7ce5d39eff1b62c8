package repository

import (
	"context"
	"errors"
	"time"

	"lda-portal/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// scopeProjection loads just the fields of a models.FileScope.
var scopeProjection = bson.M{
	"_id":         1,
	"ldaId":       1,
	"fundId":      1,
	"funderId":    1,
	"uploadedBy":  1,
	"createdById": 1,
}

func fileFilterQuery(f models.FileFilter) bson.M {
	query := bson.M{}
	if f.LDAID != nil {
		query["ldaId"] = *f.LDAID
	}
	if f.FundID != nil {
		query["fundId"] = *f.FundID
	}
	if f.FunderID != nil {
		query["funderId"] = *f.FunderID
	}
	return query
}

// setFileLink moves a file to exactly one owner, clearing the other links.
func setFileLink(set, unset bson.M, ldaID, fundID, funderID *primitive.ObjectID) {
	links := []struct {
		field string
		id    *primitive.ObjectID
	}{
		{"ldaId", ldaID},
		{"fundId", fundID},
		{"funderId", funderID},
	}

	for _, l := range links {
		if l.id != nil {
			set[l.field] = *l.id
		} else {
			unset[l.field] = ""
		}
	}
}

// applyUpdate runs $set and, when non-empty, $unset on id.
func applyUpdate[T any](ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, set, unset bson.M, notFound error) (*T, error) {
	if len(unset) == 0 {
		return updateOne[T](ctx, coll, id, set, notFound)
	}

	set["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out T
	err := coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set, "$unset": unset}, opts).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound
		}
		return nil, err
	}
	return &out, nil
}

// deleteFiles removes every row matching query and returns their storage
// keys so the caller can queue the objects for deletion. Only rows seen by
// the lookup are removed, so a row inserted meanwhile keeps its object.
func deleteFiles(ctx context.Context, coll *mongo.Collection, query bson.M) ([]string, error) {
	rows, err := findFileRows(ctx, coll, query)
	if err != nil {
		return nil, err
	}
	return removeFileRows(ctx, coll, rows)
}

type fileRow struct {
	ID      primitive.ObjectID `bson:"_id"`
	FileKey string             `bson:"fileKey"`
}

func findFileRows(ctx context.Context, coll *mongo.Collection, query bson.M) ([]fileRow, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1, "fileKey": 1})

	cursor, err := coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []fileRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func removeFileRows(ctx context.Context, coll *mongo.Collection, rows []fileRow) ([]string, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]primitive.ObjectID, len(rows))
	keys := make([]string, 0, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
		if row.FileKey != "" {
			keys = append(keys, row.FileKey)
		}
	}

	if _, err := coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
		return nil, err
	}
	return keys, nil
}

// deleteFile removes one row and returns its storage key.
func deleteFile(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, notFound error) (string, error) {
	opts := options.FindOneAndDelete().SetProjection(bson.M{"fileKey": 1})

	var row struct {
		FileKey string `bson:"fileKey"`
	}
	if err := coll.FindOneAndDelete(ctx, bson.M{"_id": id}, opts).Decode(&row); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", notFound
		}
		return "", err
	}
	return row.FileKey, nil
}

// findScope loads the authorization projection of a file row.
func findScope(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, notFound error) (*models.FileScope, error) {
	opts := options.FindOne().SetProjection(scopeProjection)
	return findOne[models.FileScope](ctx, coll, bson.M{"_id": id}, notFound, opts)
}
