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

// DocumentRepository defines the interface for document data operations.
type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Document, error)
	// FindScope loads only the fields an authorization decision reads.
	FindScope(ctx context.Context, id primitive.ObjectID) (*models.FileScope, error)
	List(ctx context.Context, filter models.FileFilter, page, limit int) ([]models.Document, int, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.DocumentUpdate) (*models.Document, error)
	// Delete removes the row and returns its file key.
	Delete(ctx context.Context, id primitive.ObjectID) (string, error)
	// DeleteByFilter removes every document of an owner and returns their
	// file keys.
	DeleteByFilter(ctx context.Context, filter models.FileFilter) ([]string, error)
}

type documentRepository struct {
	collection *mongo.Collection
}

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(db *mongo.Database) DocumentRepository {
	return &documentRepository{
		collection: db.Collection(database.DocumentsCollection),
	}
}

func (r *documentRepository) Create(ctx context.Context, doc *models.Document) error {
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return err
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *documentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Document, error) {
	return findOne[models.Document](ctx, r.collection, bson.M{"_id": id}, apperrors.ErrDocumentNotFound)
}

func (r *documentRepository) FindScope(ctx context.Context, id primitive.ObjectID) (*models.FileScope, error) {
	return findScope(ctx, r.collection, id, apperrors.ErrDocumentNotFound)
}

func (r *documentRepository) List(ctx context.Context, filter models.FileFilter, page, limit int) ([]models.Document, int, error) {
	return findPage[models.Document](ctx, r.collection, fileFilterQuery(filter), page, limit)
}

// Update applies the non-nil fields of update. Setting any link field moves
// the document to that owner alone.
func (r *documentRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.DocumentUpdate) (*models.Document, error) {
	set := bson.M{"updatedAt": time.Now()}
	unset := bson.M{}

	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.UploadedBy != nil {
		set["uploadedBy"] = *update.UploadedBy
	}
	if update.ValidFrom != nil {
		set["validFrom"] = *update.ValidFrom
	}
	if update.ValidUntil != nil {
		set["validUntil"] = *update.ValidUntil
	}
	if update.LDAID != nil || update.FundID != nil || update.FunderID != nil {
		setFileLink(set, unset, update.LDAID, update.FundID, update.FunderID)
	}

	return applyUpdate[models.Document](ctx, r.collection, id, set, unset, apperrors.ErrDocumentNotFound)
}

func (r *documentRepository) Delete(ctx context.Context, id primitive.ObjectID) (string, error) {
	return deleteFile(ctx, r.collection, id, apperrors.ErrDocumentNotFound)
}

func (r *documentRepository) DeleteByFilter(ctx context.Context, filter models.FileFilter) ([]string, error) {
	query := fileFilterQuery(filter)
	if len(query) == 0 {
		return nil, apperrors.ErrLinkRequired
	}
	return deleteFiles(ctx, r.collection, query)
}
