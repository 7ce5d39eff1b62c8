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

// FunderRepository defines the interface for funder data operations.
type FunderRepository interface {
	Create(ctx context.Context, funder *models.Funder) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Funder, error)
	List(ctx context.Context, page, limit int) ([]models.Funder, int, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateFunderRequest) (*models.Funder, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type funderRepository struct {
	collection *mongo.Collection
}

// NewFunderRepository creates a new FunderRepository.
func NewFunderRepository(db *mongo.Database) FunderRepository {
	return &funderRepository{
		collection: db.Collection(database.FundersCollection),
	}
}

func (r *funderRepository) Create(ctx context.Context, funder *models.Funder) error {
	now := time.Now()
	funder.CreatedAt = now
	funder.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, funder)
	if err != nil {
		return err
	}

	funder.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *funderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Funder, error) {
	return findOne[models.Funder](ctx, r.collection, bson.M{"_id": id}, apperrors.ErrFunderNotFound)
}

func (r *funderRepository) List(ctx context.Context, page, limit int) ([]models.Funder, int, error) {
	return findPage[models.Funder](ctx, r.collection, bson.M{}, page, limit)
}

func (r *funderRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateFunderRequest) (*models.Funder, error) {
	set := bson.M{"updatedAt": time.Now()}

	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.ContactEmail != nil {
		set["contactEmail"] = *update.ContactEmail
	}
	if update.Website != nil {
		set["website"] = *update.Website
	}

	return updateOne[models.Funder](ctx, r.collection, id, set, apperrors.ErrFunderNotFound)
}

func (r *funderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, r.collection, id, apperrors.ErrFunderNotFound)
}
