package repository

import (
	"context"
	"time"

	"lda-portal/internal/database"
	apperrors "lda-portal/internal/errors"
	"lda-portal/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MediaRepository defines the interface for media data operations.
type MediaRepository interface {
	Create(ctx context.Context, item *models.Media) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Media, error)
	// FindScope loads only the fields an authorization decision reads.
	FindScope(ctx context.Context, id primitive.ObjectID) (*models.FileScope, error)
	List(ctx context.Context, filter models.FileFilter, page, limit int) ([]models.Media, int, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.MediaUpdate) (*models.Media, error)
	// Delete removes the row and returns its file key.
	Delete(ctx context.Context, id primitive.ObjectID) (string, error)
	// DeleteByFilter removes every media item of an owner and returns their
	// file keys.
	DeleteByFilter(ctx context.Context, filter models.FileFilter) ([]string, error)
}

type mediaRepository struct {
	collection *mongo.Collection
}

// NewMediaRepository creates a new MediaRepository.
func NewMediaRepository(db *mongo.Database) MediaRepository {
	return &mediaRepository{
		collection: db.Collection(database.MediaCollection),
	}
}

func (r *mediaRepository) Create(ctx context.Context, item *models.Media) error {
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return err
	}

	item.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mediaRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Media, error) {
	return findOne[models.Media](ctx, r.collection, bson.M{"_id": id}, apperrors.ErrMediaNotFound)
}

func (r *mediaRepository) FindScope(ctx context.Context, id primitive.ObjectID) (*models.FileScope, error) {
	return findScope(ctx, r.collection, id, apperrors.ErrMediaNotFound)
}

func (r *mediaRepository) List(ctx context.Context, filter models.FileFilter, page, limit int) ([]models.Media, int, error) {
	return findPage[models.Media](ctx, r.collection, fileFilterQuery(filter), page, limit)
}

// Update applies the non-nil fields of update. Moving an item to an LDA
// detaches it from any fund or funder.
func (r *mediaRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.MediaUpdate) (*models.Media, error) {
	set := bson.M{"updatedAt": time.Now()}
	unset := bson.M{}

	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.LDAID != nil {
		setFileLink(set, unset, update.LDAID, nil, nil)
	}

	return applyUpdate[models.Media](ctx, r.collection, id, set, unset, apperrors.ErrMediaNotFound)
}

func (r *mediaRepository) Delete(ctx context.Context, id primitive.ObjectID) (string, error) {
	return deleteFile(ctx, r.collection, id, apperrors.ErrMediaNotFound)
}

func (r *mediaRepository) DeleteByFilter(ctx context.Context, filter models.FileFilter) ([]string, error) {
	query := fileFilterQuery(filter)
	if len(query) == 0 {
		return nil, apperrors.ErrLinkRequired
	}
	return deleteFiles(ctx, r.collection, query)
}
