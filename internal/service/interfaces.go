// Package service contains business logic for the application. Methods that
// act on a stored resource load it, ask authz, and only then mutate.
package service

import (
	"context"

	"lda-portal/internal/authz"
	"lda-portal/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req *models.RegisterRequest) error
	ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error
	// Authenticate resolves an access token to the actor behind it.
	Authenticate(ctx context.Context, token string) (*authz.Actor, error)
}

// AccountServicer defines the interface for self-service account operations.
type AccountServicer interface {
	Get(ctx context.Context, actor *authz.Actor) (*models.User, error)
	Update(ctx context.Context, actor *authz.Actor, req *models.UpdateAccountRequest) (*models.User, error)
	ChangePassword(ctx context.Context, actor *authz.Actor, req *models.ChangePasswordRequest) error
}

// UserServicer defines the interface for account management.
type UserServicer interface {
	List(ctx context.Context, actor *authz.Actor, page, limit int) (*models.UserListResponse, error)
	Get(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.User, error)
	Create(ctx context.Context, actor *authz.Actor, req *models.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error
}

// LDAServicer defines the interface for LDA operations.
type LDAServicer interface {
	List(ctx context.Context, actor *authz.Actor, page, limit int) (*models.LDAListResponse, error)
	Get(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.LDA, error)
	Create(ctx context.Context, actor *authz.Actor, req *models.CreateLDARequest) (*models.LDA, error)
	Update(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateLDARequest) (*models.LDA, error)
	Delete(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error
}

// FunderServicer defines the interface for funder operations.
type FunderServicer interface {
	List(ctx context.Context, actor *authz.Actor, page, limit int) (*models.FunderListResponse, error)
	Get(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.Funder, error)
	Create(ctx context.Context, actor *authz.Actor, req *models.CreateFunderRequest) (*models.Funder, error)
	Update(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateFunderRequest) (*models.Funder, error)
	Delete(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error
}

// FundServicer defines the interface for fund operations.
type FundServicer interface {
	// List returns funds, narrowed to one LDA's funds when ldaID is set.
	List(ctx context.Context, actor *authz.Actor, ldaID *primitive.ObjectID, page, limit int) (*models.FundListResponse, error)
	Get(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, ldaID *primitive.ObjectID) (*models.Fund, error)
	Create(ctx context.Context, actor *authz.Actor, req *models.CreateFundRequest) (*models.Fund, error)
	Update(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateFundRequest) (*models.Fund, error)
	Delete(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error
}

// DocumentServicer defines the interface for document operations.
type DocumentServicer interface {
	List(ctx context.Context, actor *authz.Actor, filter models.FileFilter, page, limit int) (*models.DocumentListResponse, error)
	Get(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.Document, error)
	Create(ctx context.Context, actor *authz.Actor, req *models.CreateDocumentRequest) (*models.CreateDocumentResponse, error)
	Update(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateDocumentRequest) (*models.Document, error)
	Delete(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error
}

// MediaServicer defines the interface for media operations.
type MediaServicer interface {
	ListByLDA(ctx context.Context, actor *authz.Actor, ldaID primitive.ObjectID, page, limit int) (*models.MediaListResponse, error)
	Get(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.Media, error)
	Create(ctx context.Context, actor *authz.Actor, req *models.CreateMediaRequest) (*models.CreateMediaResponse, error)
	Update(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateMediaRequest) (*models.Media, error)
	Delete(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error
}

// ContactServicer defines the interface for contact operations.
type ContactServicer interface {
	ListByLDA(ctx context.Context, actor *authz.Actor, ldaID primitive.ObjectID, page, limit int) (*models.ContactListResponse, error)
	Get(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.Contact, error)
	Create(ctx context.Context, actor *authz.Actor, req *models.CreateContactRequest) (*models.Contact, error)
	Update(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateContactRequest) (*models.Contact, error)
	Delete(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer     = (*AuthService)(nil)
	_ AccountServicer  = (*AccountService)(nil)
	_ UserServicer     = (*UserService)(nil)
	_ LDAServicer      = (*LDAService)(nil)
	_ FunderServicer   = (*FunderService)(nil)
	_ FundServicer     = (*FundService)(nil)
	_ DocumentServicer = (*DocumentService)(nil)
	_ MediaServicer    = (*MediaService)(nil)
	_ ContactServicer  = (*ContactService)(nil)
)
