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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LDARepository defines the interface for LDA data operations.
type LDARepository interface {
	Create(ctx context.Context, lda *models.LDA) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.LDA, error)
	// List returns a page of LDAs. When all is false only ids are listed.
	List(ctx context.Context, ids []primitive.ObjectID, all bool, page, limit int) ([]models.LDA, int, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateLDARequest) (*models.LDA, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// ExistAll reports whether every id names an LDA.
	ExistAll(ctx context.Context, ids []primitive.ObjectID) (bool, error)
	// FindIDsByFund returns the LDAs a fund is linked to.
	FindIDsByFund(ctx context.Context, fundID primitive.ObjectID) ([]primitive.ObjectID, error)
	// RemoveFund unlinks fundID from every LDA.
	RemoveFund(ctx context.Context, fundID primitive.ObjectID) error
}

type ldaRepository struct {
	collection *mongo.Collection
}

// NewLDARepository creates a new LDARepository.
func NewLDARepository(db *mongo.Database) LDARepository {
	return &ldaRepository{
		collection: db.Collection(database.LDAsCollection),
	}
}

func (r *ldaRepository) Create(ctx context.Context, lda *models.LDA) error {
	now := time.Now()
	lda.CreatedAt = now
	lda.UpdatedAt = now
	lda.FundIDs = orEmpty(lda.FundIDs)
	if lda.Staff == nil {
		lda.Staff = []models.StaffMember{}
	}

	result, err := r.collection.InsertOne(ctx, lda)
	if err != nil {
		return err
	}

	lda.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ldaRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.LDA, error) {
	return findOne[models.LDA](ctx, r.collection, bson.M{"_id": id}, apperrors.ErrLDANotFound)
}

func (r *ldaRepository) List(ctx context.Context, ids []primitive.ObjectID, all bool, page, limit int) ([]models.LDA, int, error) {
	filter := bson.M{}
	if !all {
		filter["_id"] = bson.M{"$in": orEmpty(ids)}
	}
	return findPage[models.LDA](ctx, r.collection, filter, page, limit)
}

func (r *ldaRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateLDARequest) (*models.LDA, error) {
	set := bson.M{"updatedAt": time.Now()}

	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.RegistrationNumber != nil {
		set["registrationNumber"] = *update.RegistrationNumber
	}
	if update.Province != nil {
		set["province"] = *update.Province
	}
	if update.FundIDs != nil {
		set["fundIds"] = orEmpty(update.FundIDs.IDs())
	}
	if update.Operations != nil {
		set["operations"] = update.Operations
	}
	if update.Staff != nil {
		staff := *update.Staff
		if staff == nil {
			staff = []models.StaffMember{}
		}
		set["staff"] = staff
	}

	return updateOne[models.LDA](ctx, r.collection, id, set, apperrors.ErrLDANotFound)
}

func (r *ldaRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, r.collection, id, apperrors.ErrLDANotFound)
}

func (r *ldaRepository) ExistAll(ctx context.Context, ids []primitive.ObjectID) (bool, error) {
	n, err := countIDs(ctx, r.collection, ids)
	if err != nil {
		return false, err
	}
	return n == len(ids), nil
}

func (r *ldaRepository) FindIDsByFund(ctx context.Context, fundID primitive.ObjectID) ([]primitive.ObjectID, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})

	cursor, err := r.collection.Find(ctx, bson.M{"fundIds": fundID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

func (r *ldaRepository) RemoveFund(ctx context.Context, fundID primitive.ObjectID) error {
	_, err := r.collection.UpdateMany(ctx,
		bson.M{"fundIds": fundID},
		bson.M{"$pull": bson.M{"fundIds": fundID}, "$set": bson.M{"updatedAt": time.Now()}},
	)
	return err
}
