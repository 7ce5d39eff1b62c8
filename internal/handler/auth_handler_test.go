package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "lda-portal/internal/errors"
	"lda-portal/internal/models"
	"lda-portal/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewAuthHandler(t *testing.T) {
	mockService := &mocks.MockAuthService{}
	handler := NewAuthHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name: "accepted",
			body: models.RegisterRequest{Email: "new@example.com", Password: "password123", Name: "New User"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.RegisterFunc = func(ctx context.Context, req *models.RegisterRequest) error {
					assert.Equal(t, "new@example.com", req.Email)
					return nil
				}
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "short password",
			body:           models.RegisterRequest{Email: "new@example.com", Password: "short", Name: "New User"},
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json",
			body:           "{not json",
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			body: models.RegisterRequest{Email: "taken@example.com", Password: "password123", Name: "Taken"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.RegisterFunc = func(ctx context.Context, req *models.RegisterRequest) error {
					return apperrors.ErrUserAlreadyExists
				}
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockAuthService{}
			tt.mockSetup(mockService)
			handler := NewAuthHandler(mockService)

			w := serve(t, nil, http.MethodPost, "/auth/register", "/auth/register", tt.body, handler.Register)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	userID := primitive.NewObjectID()

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockAuthService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful login",
			body: models.LoginRequest{Email: "user@example.com", Password: "password123"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.LoginFunc = func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
					return &models.AuthResponse{
						AccessToken: "access-token",
						ExpiresIn:   900,
						User:        models.User{ID: userID, Email: req.Email, Role: models.RoleUser, Approved: true},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				data := decodeBody(t, w)["data"].(map[string]interface{})
				assert.Equal(t, "access-token", data["accessToken"])
				user := data["user"].(map[string]interface{})
				assert.NotContains(t, user, "password")
			},
		},
		{
			name:           "invalid email",
			body:           models.LoginRequest{Email: "not-an-email", Password: "password123"},
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "wrong password",
			body: models.LoginRequest{Email: "user@example.com", Password: "wrong"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.LoginFunc = func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
					return nil, apperrors.ErrInvalidCredentials
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "awaiting approval",
			body: models.LoginRequest{Email: "pending@example.com", Password: "password123"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.LoginFunc = func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
					return nil, apperrors.ErrAccountNotApproved
				}
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockAuthService{}
			tt.mockSetup(mockService)
			handler := NewAuthHandler(mockService)

			w := serve(t, nil, http.MethodPost, "/auth/login", "/auth/login", tt.body, handler.Login)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		serviceErr     error
		expectedStatus int
	}{
		{"known email", models.ForgotPasswordRequest{Email: "user@example.com"}, nil, http.StatusAccepted},
		{"service failure is not revealed", models.ForgotPasswordRequest{Email: "user@example.com"}, errors.New("redis down"), http.StatusAccepted},
		{"invalid email", models.ForgotPasswordRequest{Email: "nope"}, nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockAuthService{
				ForgotPasswordFunc: func(ctx context.Context, req *models.ForgotPasswordRequest) error {
					return tt.serviceErr
				},
			}
			handler := NewAuthHandler(mockService)

			w := serve(t, nil, http.MethodPost, "/auth/forgot-password", "/auth/forgot-password", tt.body, handler.ForgotPassword)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if w.Code == http.StatusAccepted {
				data := decodeBody(t, w)["data"].(map[string]interface{})
				assert.Equal(t, resetRequestedMessage, data["message"])
			}
		})
	}
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		serviceErr     error
		expectedStatus int
	}{
		{"reset", models.ResetPasswordRequest{Token: "pr_abc", NewPassword: "newpassword1"}, nil, http.StatusNoContent},
		{"expired token", models.ResetPasswordRequest{Token: "pr_old", NewPassword: "newpassword1"}, apperrors.ErrInvalidResetToken, http.StatusBadRequest},
		{"missing token", models.ResetPasswordRequest{NewPassword: "newpassword1"}, nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockAuthService{
				ResetPasswordFunc: func(ctx context.Context, req *models.ResetPasswordRequest) error {
					return tt.serviceErr
				},
			}
			handler := NewAuthHandler(mockService)

			w := serve(t, nil, http.MethodPost, "/auth/reset-password", "/auth/reset-password", tt.body, handler.ResetPassword)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
