// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"lda-portal/internal/authz"
	"lda-portal/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	LoginFunc          func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	RegisterFunc       func(ctx context.Context, req *models.RegisterRequest) error
	ForgotPasswordFunc func(ctx context.Context, req *models.ForgotPasswordRequest) error
	ResetPasswordFunc  func(ctx context.Context, req *models.ResetPasswordRequest) error
	AuthenticateFunc   func(ctx context.Context, token string) (*authz.Actor, error)
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, req)
	}
	return nil
}

func (m *MockAuthService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, req)
	}
	return nil
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*authz.Actor, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, token)
	}
	return nil, nil
}

// MockAccountService is a mock implementation of AccountServicer.
type MockAccountService struct {
	GetFunc            func(ctx context.Context, actor *authz.Actor) (*models.User, error)
	UpdateFunc         func(ctx context.Context, actor *authz.Actor, req *models.UpdateAccountRequest) (*models.User, error)
	ChangePasswordFunc func(ctx context.Context, actor *authz.Actor, req *models.ChangePasswordRequest) error
}

func (m *MockAccountService) Get(ctx context.Context, actor *authz.Actor) (*models.User, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, actor)
	}
	return nil, nil
}

func (m *MockAccountService) Update(ctx context.Context, actor *authz.Actor, req *models.UpdateAccountRequest) (*models.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actor, req)
	}
	return nil, nil
}

func (m *MockAccountService) ChangePassword(ctx context.Context, actor *authz.Actor, req *models.ChangePasswordRequest) error {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, actor, req)
	}
	return nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	ListFunc   func(ctx context.Context, actor *authz.Actor, page, limit int) (*models.UserListResponse, error)
	GetFunc    func(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.User, error)
	CreateFunc func(ctx context.Context, actor *authz.Actor, req *models.CreateUserRequest) (*models.User, error)
	UpdateFunc func(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	DeleteFunc func(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error
}

func (m *MockUserService) List(ctx context.Context, actor *authz.Actor, page, limit int) (*models.UserListResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, actor, page, limit)
	}
	return nil, nil
}

func (m *MockUserService) Get(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.User, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, actor, id)
	}
	return nil, nil
}

func (m *MockUserService) Create(ctx context.Context, actor *authz.Actor, req *models.CreateUserRequest) (*models.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor, req)
	}
	return nil, nil
}

func (m *MockUserService) Update(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actor, id, req)
	}
	return nil, nil
}

func (m *MockUserService) Delete(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actor, id)
	}
	return nil
}

// MockLDAService is a mock implementation of LDAServicer.
type MockLDAService struct {
	ListFunc   func(ctx context.Context, actor *authz.Actor, page, limit int) (*models.LDAListResponse, error)
	GetFunc    func(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.LDA, error)
	CreateFunc func(ctx context.Context, actor *authz.Actor, req *models.CreateLDARequest) (*models.LDA, error)
	UpdateFunc func(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateLDARequest) (*models.LDA, error)
	DeleteFunc func(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error
}

func (m *MockLDAService) List(ctx context.Context, actor *authz.Actor, page, limit int) (*models.LDAListResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, actor, page, limit)
	}
	return nil, nil
}

func (m *MockLDAService) Get(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.LDA, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, actor, id)
	}
	return nil, nil
}

func (m *MockLDAService) Create(ctx context.Context, actor *authz.Actor, req *models.CreateLDARequest) (*models.LDA, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor, req)
	}
	return nil, nil
}

func (m *MockLDAService) Update(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateLDARequest) (*models.LDA, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actor, id, req)
	}
	return nil, nil
}

func (m *MockLDAService) Delete(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actor, id)
	}
	return nil
}

// MockFunderService is a mock implementation of FunderServicer.
type MockFunderService struct {
	ListFunc   func(ctx context.Context, actor *authz.Actor, page, limit int) (*models.FunderListResponse, error)
	GetFunc    func(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.Funder, error)
	CreateFunc func(ctx context.Context, actor *authz.Actor, req *models.CreateFunderRequest) (*models.Funder, error)
	UpdateFunc func(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateFunderRequest) (*models.Funder, error)
	DeleteFunc func(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error
}

func (m *MockFunderService) List(ctx context.Context, actor *authz.Actor, page, limit int) (*models.FunderListResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, actor, page, limit)
	}
	return nil, nil
}

func (m *MockFunderService) Get(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.Funder, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, actor, id)
	}
	return nil, nil
}

func (m *MockFunderService) Create(ctx context.Context, actor *authz.Actor, req *models.CreateFunderRequest) (*models.Funder, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor, req)
	}
	return nil, nil
}

func (m *MockFunderService) Update(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateFunderRequest) (*models.Funder, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actor, id, req)
	}
	return nil, nil
}

func (m *MockFunderService) Delete(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actor, id)
	}
	return nil
}

// MockFundService is a mock implementation of FundServicer.
type MockFundService struct {
	ListFunc   func(ctx context.Context, actor *authz.Actor, ldaID *primitive.ObjectID, page, limit int) (*models.FundListResponse, error)
	GetFunc    func(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, ldaID *primitive.ObjectID) (*models.Fund, error)
	CreateFunc func(ctx context.Context, actor *authz.Actor, req *models.CreateFundRequest) (*models.Fund, error)
	UpdateFunc func(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateFundRequest) (*models.Fund, error)
	DeleteFunc func(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error
}

func (m *MockFundService) List(ctx context.Context, actor *authz.Actor, ldaID *primitive.ObjectID, page, limit int) (*models.FundListResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, actor, ldaID, page, limit)
	}
	return nil, nil
}

func (m *MockFundService) Get(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, ldaID *primitive.ObjectID) (*models.Fund, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, actor, id, ldaID)
	}
	return nil, nil
}

func (m *MockFundService) Create(ctx context.Context, actor *authz.Actor, req *models.CreateFundRequest) (*models.Fund, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor, req)
	}
	return nil, nil
}

func (m *MockFundService) Update(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateFundRequest) (*models.Fund, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actor, id, req)
	}
	return nil, nil
}

func (m *MockFundService) Delete(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actor, id)
	}
	return nil
}

// MockDocumentService is a mock implementation of DocumentServicer.
type MockDocumentService struct {
	ListFunc   func(ctx context.Context, actor *authz.Actor, filter models.FileFilter, page, limit int) (*models.DocumentListResponse, error)
	GetFunc    func(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.Document, error)
	CreateFunc func(ctx context.Context, actor *authz.Actor, req *models.CreateDocumentRequest) (*models.CreateDocumentResponse, error)
	UpdateFunc func(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateDocumentRequest) (*models.Document, error)
	DeleteFunc func(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error
}

func (m *MockDocumentService) List(ctx context.Context, actor *authz.Actor, filter models.FileFilter, page, limit int) (*models.DocumentListResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, actor, filter, page, limit)
	}
	return nil, nil
}

func (m *MockDocumentService) Get(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.Document, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, actor, id)
	}
	return nil, nil
}

func (m *MockDocumentService) Create(ctx context.Context, actor *authz.Actor, req *models.CreateDocumentRequest) (*models.CreateDocumentResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor, req)
	}
	return nil, nil
}

func (m *MockDocumentService) Update(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateDocumentRequest) (*models.Document, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actor, id, req)
	}
	return nil, nil
}

func (m *MockDocumentService) Delete(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actor, id)
	}
	return nil
}

// MockMediaService is a mock implementation of MediaServicer.
type MockMediaService struct {
	ListByLDAFunc func(ctx context.Context, actor *authz.Actor, ldaID primitive.ObjectID, page, limit int) (*models.MediaListResponse, error)
	GetFunc       func(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.Media, error)
	CreateFunc    func(ctx context.Context, actor *authz.Actor, req *models.CreateMediaRequest) (*models.CreateMediaResponse, error)
	UpdateFunc    func(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateMediaRequest) (*models.Media, error)
	DeleteFunc    func(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error
}

func (m *MockMediaService) ListByLDA(ctx context.Context, actor *authz.Actor, ldaID primitive.ObjectID, page, limit int) (*models.MediaListResponse, error) {
	if m.ListByLDAFunc != nil {
		return m.ListByLDAFunc(ctx, actor, ldaID, page, limit)
	}
	return nil, nil
}

func (m *MockMediaService) Get(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.Media, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, actor, id)
	}
	return nil, nil
}

func (m *MockMediaService) Create(ctx context.Context, actor *authz.Actor, req *models.CreateMediaRequest) (*models.CreateMediaResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor, req)
	}
	return nil, nil
}

func (m *MockMediaService) Update(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateMediaRequest) (*models.Media, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actor, id, req)
	}
	return nil, nil
}

func (m *MockMediaService) Delete(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actor, id)
	}
	return nil
}

// MockContactService is a mock implementation of ContactServicer.
type MockContactService struct {
	ListByLDAFunc func(ctx context.Context, actor *authz.Actor, ldaID primitive.ObjectID, page, limit int) (*models.ContactListResponse, error)
	GetFunc       func(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.Contact, error)
	CreateFunc    func(ctx context.Context, actor *authz.Actor, req *models.CreateContactRequest) (*models.Contact, error)
	UpdateFunc    func(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateContactRequest) (*models.Contact, error)
	DeleteFunc    func(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error
}

func (m *MockContactService) ListByLDA(ctx context.Context, actor *authz.Actor, ldaID primitive.ObjectID, page, limit int) (*models.ContactListResponse, error) {
	if m.ListByLDAFunc != nil {
		return m.ListByLDAFunc(ctx, actor, ldaID, page, limit)
	}
	return nil, nil
}

func (m *MockContactService) Get(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.Contact, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, actor, id)
	}
	return nil, nil
}

func (m *MockContactService) Create(ctx context.Context, actor *authz.Actor, req *models.CreateContactRequest) (*models.Contact, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor, req)
	}
	return nil, nil
}

func (m *MockContactService) Update(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateContactRequest) (*models.Contact, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actor, id, req)
	}
	return nil, nil
}

func (m *MockContactService) Delete(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actor, id)
	}
	return nil
}
