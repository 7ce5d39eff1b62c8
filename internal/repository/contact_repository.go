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

// ContactRepository defines the interface for contact data operations.
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error)
	// FindLDAIDs loads only a contact's linked LDAs.
	FindLDAIDs(ctx context.Context, id primitive.ObjectID) ([]primitive.ObjectID, error)
	// ListByLDA returns a page of contacts linked to ldaID.
	ListByLDA(ctx context.Context, ldaID primitive.ObjectID, page, limit int) ([]models.Contact, int, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateContactRequest) (*models.Contact, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// RemoveLDA unlinks ldaID from every contact.
	RemoveLDA(ctx context.Context, ldaID primitive.ObjectID) error
}

type contactRepository struct {
	collection *mongo.Collection
}

// NewContactRepository creates a new ContactRepository.
func NewContactRepository(db *mongo.Database) ContactRepository {
	return &contactRepository{
		collection: db.Collection(database.ContactsCollection),
	}
}

func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	now := time.Now()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	contact.LDAIDs = orEmpty(contact.LDAIDs)

	result, err := r.collection.InsertOne(ctx, contact)
	if err != nil {
		return err
	}

	contact.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *contactRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	return findOne[models.Contact](ctx, r.collection, bson.M{"_id": id}, apperrors.ErrContactNotFound)
}

func (r *contactRepository) FindLDAIDs(ctx context.Context, id primitive.ObjectID) ([]primitive.ObjectID, error) {
	opts := options.FindOne().SetProjection(bson.M{"ldaIds": 1})

	contact, err := findOne[models.Contact](ctx, r.collection, bson.M{"_id": id}, apperrors.ErrContactNotFound, opts)
	if err != nil {
		return nil, err
	}
	return contact.LDAIDs, nil
}

func (r *contactRepository) ListByLDA(ctx context.Context, ldaID primitive.ObjectID, page, limit int) ([]models.Contact, int, error) {
	return findPage[models.Contact](ctx, r.collection, bson.M{"ldaIds": ldaID}, page, limit)
}

func (r *contactRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateContactRequest) (*models.Contact, error) {
	set := bson.M{"updatedAt": time.Now()}

	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if update.Position != nil {
		set["position"] = *update.Position
	}
	if update.LDAIDs != nil {
		set["ldaIds"] = orEmpty(update.LDAIDs.IDs())
	}

	return updateOne[models.Contact](ctx, r.collection, id, set, apperrors.ErrContactNotFound)
}

func (r *contactRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, r.collection, id, apperrors.ErrContactNotFound)
}

func (r *contactRepository) RemoveLDA(ctx context.Context, ldaID primitive.ObjectID) error {
	_, err := r.collection.UpdateMany(ctx,
		bson.M{"ldaIds": ldaID},
		bson.M{"$pull": bson.M{"ldaIds": ldaID}, "$set": bson.M{"updatedAt": time.Now()}},
	)
	return err
}
