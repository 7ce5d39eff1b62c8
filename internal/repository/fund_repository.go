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

// FundRepository defines the interface for fund data operations.
type FundRepository interface {
	Create(ctx context.Context, fund *models.Fund) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Fund, error)
	List(ctx context.Context, page, limit int) ([]models.Fund, int, error)
	// FindByLDA returns a page of the funds an LDA is linked to.
	FindByLDA(ctx context.Context, lda *models.LDA, page, limit int) ([]models.Fund, int, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateFundRequest) (*models.Fund, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountByFunder(ctx context.Context, funderID primitive.ObjectID) (int, error)
	// ExistAll reports whether every id names a fund.
	ExistAll(ctx context.Context, ids []primitive.ObjectID) (bool, error)
}

type fundRepository struct {
	collection *mongo.Collection
}

// NewFundRepository creates a new FundRepository.
func NewFundRepository(db *mongo.Database) FundRepository {
	return &fundRepository{
		collection: db.Collection(database.FundsCollection),
	}
}

func (r *fundRepository) Create(ctx context.Context, fund *models.Fund) error {
	now := time.Now()
	fund.CreatedAt = now
	fund.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, fund)
	if err != nil {
		return err
	}

	fund.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *fundRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Fund, error) {
	return findOne[models.Fund](ctx, r.collection, bson.M{"_id": id}, apperrors.ErrFundNotFound)
}

func (r *fundRepository) List(ctx context.Context, page, limit int) ([]models.Fund, int, error) {
	return findPage[models.Fund](ctx, r.collection, bson.M{}, page, limit)
}

func (r *fundRepository) FindByLDA(ctx context.Context, lda *models.LDA, page, limit int) ([]models.Fund, int, error) {
	filter := bson.M{"_id": bson.M{"$in": orEmpty(lda.FundIDs)}}
	return findPage[models.Fund](ctx, r.collection, filter, page, limit)
}

func (r *fundRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateFundRequest) (*models.Fund, error) {
	set := bson.M{"updatedAt": time.Now()}

	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Amount != nil {
		set["amount"] = *update.Amount
	}
	if update.Currency != nil {
		set["currency"] = *update.Currency
	}

	return updateOne[models.Fund](ctx, r.collection, id, set, apperrors.ErrFundNotFound)
}

func (r *fundRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, r.collection, id, apperrors.ErrFundNotFound)
}

func (r *fundRepository) CountByFunder(ctx context.Context, funderID primitive.ObjectID) (int, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"funderId": funderID})
	return int(n), err
}

func (r *fundRepository) ExistAll(ctx context.Context, ids []primitive.ObjectID) (bool, error) {
	n, err := countIDs(ctx, r.collection, ids)
	if err != nil {
		return false, err
	}
	return n == len(ids), nil
}
