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

//go:generate mockgen -destination=mocks/mock_repositories.go -package=mocks lda-portal/internal/repository UserRepository,LDARepository,FunderRepository,FundRepository,DocumentRepository,MediaRepository,ContactRepository

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, filter models.UserFilter, page, limit int) ([]models.User, int, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// RemoveLDA drops ldaID from every user's LDA scope.
	RemoveLDA(ctx context.Context, ldaID primitive.ObjectID) error
}

type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection(database.UsersCollection),
	}
}

// Create inserts a user. Emails are unique.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	existing, _ := r.FindByEmail(ctx, user.Email)
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.LDAIDs = orEmpty(user.LDAIDs)

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrUserAlreadyExists
		}
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return findOne[models.User](ctx, r.collection, bson.M{"_id": id}, apperrors.ErrUserNotFound)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](ctx, r.collection, bson.M{"email": email}, apperrors.ErrUserNotFound)
}

// List returns a page of users, optionally restricted to some roles.
func (r *userRepository) List(ctx context.Context, filter models.UserFilter, page, limit int) ([]models.User, int, error) {
	query := bson.M{}
	if len(filter.Roles) > 0 {
		query["role"] = bson.M{"$in": filter.Roles}
	}
	return findPage[models.User](ctx, r.collection, query, page, limit)
}

// Update applies the non-nil fields of update.
func (r *userRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UserUpdate) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now()}

	if update.Email != nil {
		existing, _ := r.FindByEmail(ctx, *update.Email)
		if existing != nil && existing.ID != id {
			return nil, apperrors.ErrUserAlreadyExists
		}
		set["email"] = *update.Email
	}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Password != nil {
		set["password"] = *update.Password
	}
	if update.Role != nil {
		set["role"] = *update.Role
	}
	if update.Approved != nil {
		set["approved"] = *update.Approved
	}
	if update.SetLDAIDs {
		set["ldaIds"] = orEmpty(update.LDAIDs)
	}

	user, err := updateOne[models.User](ctx, r.collection, id, set, apperrors.ErrUserNotFound)
	if mongo.IsDuplicateKeyError(err) {
		return nil, apperrors.ErrUserAlreadyExists
	}
	return user, err
}

func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, r.collection, id, apperrors.ErrUserNotFound)
}

func (r *userRepository) RemoveLDA(ctx context.Context, ldaID primitive.ObjectID) error {
	_, err := r.collection.UpdateMany(ctx,
		bson.M{"ldaIds": ldaID},
		bson.M{"$pull": bson.M{"ldaIds": ldaID}, "$set": bson.M{"updatedAt": time.Now()}},
	)
	return err
}
