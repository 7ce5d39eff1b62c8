package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"lda-portal/internal/cache"
	cachemocks "lda-portal/internal/cache/mocks"
	apperrors "lda-portal/internal/errors"
	"lda-portal/internal/models"
	repomocks "lda-portal/internal/repository/mocks"
	"lda-portal/pkg/auth"
	authmocks "lda-portal/pkg/auth/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type authMocks struct {
	users  *repomocks.MockUserRepository
	store  *cachemocks.MockResetTokenStore
	jwt    *authmocks.MockTokenManager
	tokens *authmocks.MockResetTokenGenerator
	sent   []string
}

func (m *authMocks) SendPasswordReset(_ context.Context, _ *models.User, token string) error {
	m.sent = append(m.sent, token)
	return nil
}

func newAuthService(ctrl *gomock.Controller) (*AuthService, *authMocks) {
	m := &authMocks{
		users:  repomocks.NewMockUserRepository(ctrl),
		store:  cachemocks.NewMockResetTokenStore(ctrl),
		jwt:    authmocks.NewMockTokenManager(ctrl),
		tokens: authmocks.NewMockResetTokenGenerator(ctrl),
	}
	svc := NewAuthService(AuthServiceConfig{
		UserRepo:      m.users,
		ResetStore:    m.store,
		JWTManager:    m.jwt,
		ResetTokens:   m.tokens,
		Notifier:      m,
		ResetTokenTTL: time.Hour,
	})
	return svc, m
}

func storedUser(t *testing.T, password string, approved bool) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "user@example.com",
		Password: hash,
		Role:     models.RoleUser,
		Approved: approved,
	}
}

func TestAuthService_Login(t *testing.T) {
	req := &models.LoginRequest{Email: "User@Example.com ", Password: "password123"}

	t.Run("returns token for approved user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newAuthService(ctrl)
		user := storedUser(t, "password123", true)

		m.users.EXPECT().FindByEmail(gomock.Any(), "user@example.com").Return(user, nil)
		m.jwt.EXPECT().GenerateToken(user.ID.Hex()).Return("access-token", nil)
		m.jwt.EXPECT().Expiry().Return(15 * time.Minute)

		resp, err := svc.Login(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "access-token", resp.AccessToken)
		assert.Equal(t, 900, resp.ExpiresIn)
		assert.Equal(t, user.ID, resp.User.ID)
	})

	t.Run("unknown email is invalid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newAuthService(ctrl)

		m.users.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUserNotFound)

		_, err := svc.Login(context.Background(), req)

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("wrong password on unapproved account does not reveal approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newAuthService(ctrl)

		m.users.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(storedUser(t, "other-password", false), nil)

		_, err := svc.Login(context.Background(), req)

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unapproved account with right password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newAuthService(ctrl)

		m.users.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(storedUser(t, "password123", false), nil)

		_, err := svc.Login(context.Background(), req)

		assert.ErrorIs(t, err, apperrors.ErrAccountNotApproved)
	})

	t.Run("storage failure is not masked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newAuthService(ctrl)
		boom := errors.New("connection refused")

		m.users.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := svc.Login(context.Background(), req)

		assert.ErrorIs(t, err, boom)
	})
}

func TestAuthService_Register(t *testing.T) {
	req := &models.RegisterRequest{Email: "New@Example.com", Password: "password123", Name: "New User"}

	t.Run("creates unapproved lda user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newAuthService(ctrl)

		m.users.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *models.User) error {
				assert.Equal(t, "new@example.com", user.Email)
				assert.Equal(t, models.RoleUser, user.Role)
				assert.False(t, user.Approved)
				assert.NotEqual(t, req.Password, user.Password)
				return nil
			})

		assert.NoError(t, svc.Register(context.Background(), req))
	})

	t.Run("existing email reports success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newAuthService(ctrl)

		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperrors.ErrUserAlreadyExists)

		assert.NoError(t, svc.Register(context.Background(), req))
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	req := &models.ForgotPasswordRequest{Email: "user@example.com"}

	t.Run("unknown email stores nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newAuthService(ctrl)

		m.users.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUserNotFound)
		m.store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		assert.NoError(t, svc.ForgotPassword(context.Background(), req))
		assert.Empty(t, m.sent)
	})

	t.Run("known email stores hash and sends token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newAuthService(ctrl)
		user := storedUser(t, "password123", true)

		m.users.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
		m.tokens.EXPECT().Generate().Return("pr_token", "hash", nil)
		m.store.EXPECT().
			Save(gomock.Any(), "hash", gomock.Any(), time.Hour).
			DoAndReturn(func(_ context.Context, _ string, data *cache.ResetTokenData, _ time.Duration) error {
				assert.Equal(t, user.ID.Hex(), data.UserID)
				return nil
			})

		assert.NoError(t, svc.ForgotPassword(context.Background(), req))
		assert.Equal(t, []string{"pr_token"}, m.sent)
	})

	t.Run("store failure still reports success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newAuthService(ctrl)

		m.users.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(storedUser(t, "password123", true), nil)
		m.tokens.EXPECT().Generate().Return("pr_token", "hash", nil)
		m.store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		assert.NoError(t, svc.ForgotPassword(context.Background(), req))
		assert.Empty(t, m.sent)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	req := &models.ResetPasswordRequest{Token: "pr_token", NewPassword: "newpassword1"}

	t.Run("malformed token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newAuthService(ctrl)

		m.tokens.EXPECT().Validate("pr_token").Return(auth.ErrMalformedResetToken)

		assert.ErrorIs(t, svc.ResetPassword(context.Background(), req), apperrors.ErrInvalidResetToken)
	})

	t.Run("unknown or used token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newAuthService(ctrl)

		m.tokens.EXPECT().Validate(gomock.Any()).Return(nil)
		m.tokens.EXPECT().Hash("pr_token").Return("hash")
		m.store.EXPECT().Consume(gomock.Any(), "hash").Return(nil, nil)
		m.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		assert.ErrorIs(t, svc.ResetPassword(context.Background(), req), apperrors.ErrInvalidResetToken)
	})

	t.Run("sets new password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newAuthService(ctrl)
		userID := primitive.NewObjectID()

		m.tokens.EXPECT().Validate(gomock.Any()).Return(nil)
		m.tokens.EXPECT().Hash(gomock.Any()).Return("hash")
		m.store.EXPECT().Consume(gomock.Any(), "hash").Return(&cache.ResetTokenData{UserID: userID.Hex()}, nil)
		m.users.EXPECT().
			Update(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ primitive.ObjectID, update *models.UserUpdate) (*models.User, error) {
				require.NotNil(t, update.Password)
				assert.NoError(t, auth.CheckPassword("newpassword1", *update.Password))
				assert.Nil(t, update.Role)
				return &models.User{ID: userID}, nil
			})

		assert.NoError(t, svc.ResetPassword(context.Background(), req))
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	t.Run("builds actor from fresh user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newAuthService(ctrl)
		lda := primitive.NewObjectID()
		user := &models.User{ID: primitive.NewObjectID(), Role: models.RoleUser, Approved: true, LDAIDs: []primitive.ObjectID{lda}}

		m.jwt.EXPECT().ValidateToken("tok").Return(&auth.Claims{UserID: user.ID.Hex()}, nil)
		m.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)

		actor, err := svc.Authenticate(context.Background(), "tok")

		require.NoError(t, err)
		assert.Equal(t, user.ID, actor.ID)
		assert.Equal(t, models.RoleUser, actor.Role)
		assert.Equal(t, []primitive.ObjectID{lda}, actor.LDAIDs)
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newAuthService(ctrl)

		m.jwt.EXPECT().ValidateToken("tok").Return(nil, errors.New("token is expired"))

		_, err := svc.Authenticate(context.Background(), "tok")

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("deleted user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newAuthService(ctrl)
		id := primitive.NewObjectID()

		m.jwt.EXPECT().ValidateToken("tok").Return(&auth.Claims{UserID: id.Hex()}, nil)
		m.users.EXPECT().FindByID(gomock.Any(), id).Return(nil, apperrors.ErrUserNotFound)

		_, err := svc.Authenticate(context.Background(), "tok")

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("approval revoked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newAuthService(ctrl)
		user := &models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}

		m.jwt.EXPECT().ValidateToken("tok").Return(&auth.Claims{UserID: user.ID.Hex()}, nil)
		m.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)

		_, err := svc.Authenticate(context.Background(), "tok")

		assert.ErrorIs(t, err, apperrors.ErrAccountNotApproved)
	})
}
