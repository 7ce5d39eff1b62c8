package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lda-portal/internal/authz"
	"lda-portal/internal/cache"
	apperrors "lda-portal/internal/errors"
	"lda-portal/internal/models"
	"lda-portal/internal/repository"
	"lda-portal/pkg/auth"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResetNotifier delivers a password reset token to the account owner.
type ResetNotifier interface {
	SendPasswordReset(ctx context.Context, user *models.User, token string) error
}

// LogNotifier writes reset tokens to the debug log in place of mail delivery.
type LogNotifier struct{}

// SendPasswordReset implements ResetNotifier.
func (LogNotifier) SendPasswordReset(ctx context.Context, user *models.User, token string) error {
	zerolog.Ctx(ctx).Debug().
		Str("userId", user.ID.Hex()).
		Str("resetToken", token).
		Msg("password reset issued")
	return nil
}

// AuthService handles authentication business logic.
type AuthService struct {
	userRepo    repository.UserRepository
	resetStore  cache.ResetTokenStore
	jwtManager  auth.TokenManager
	resetTokens auth.ResetTokenGenerator
	notifier    ResetNotifier
	resetTTL    time.Duration
}

// AuthServiceConfig holds configuration for AuthService.
type AuthServiceConfig struct {
	UserRepo      repository.UserRepository
	ResetStore    cache.ResetTokenStore
	JWTManager    auth.TokenManager
	ResetTokens   auth.ResetTokenGenerator
	Notifier      ResetNotifier
	ResetTokenTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &AuthService{
		userRepo:    cfg.UserRepo,
		resetStore:  cfg.ResetStore,
		jwtManager:  cfg.JWTManager,
		resetTokens: cfg.ResetTokens,
		notifier:    notifier,
		resetTTL:    cfg.ResetTokenTTL,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login authenticates a user and returns an access token. Approval is only
// reported once the password has matched.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("finding user: %w", err)
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.Approved {
		return nil, apperrors.ErrAccountNotApproved
	}

	accessToken, err := s.jwtManager.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &models.AuthResponse{
		AccessToken: accessToken,
		ExpiresIn:   int(s.jwtManager.Expiry().Seconds()),
		User:        *user,
	}, nil
}

// Register creates an LDA user awaiting approval. An existing email is not
// reported, so the caller cannot tell which accounts exist.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) error {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		Email:    normalizeEmail(req.Email),
		Password: hashedPassword,
		Name:     req.Name,
		Role:     models.RoleUser,
		Approved: false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			zerolog.Ctx(ctx).Debug().Msg("registration for existing email ignored")
			return nil
		}
		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

// ForgotPassword issues a reset token when the email belongs to an account.
// It reports success either way; failures are logged, not returned.
func (s *AuthService) ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) error {
	logger := zerolog.Ctx(ctx)

	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Error().Err(err).Msg("password reset lookup failed")
		}
		return nil
	}

	token, hash, err := s.resetTokens.Generate()
	if err != nil {
		logger.Error().Err(err).Msg("generating reset token failed")
		return nil
	}

	data := &cache.ResetTokenData{
		UserID:    user.ID.Hex(),
		CreatedAt: time.Now(),
	}
	if err := s.resetStore.Save(ctx, hash, data, s.resetTTL); err != nil {
		logger.Error().Err(err).Msg("storing reset token failed")
		return nil
	}

	if err := s.notifier.SendPasswordReset(ctx, user, token); err != nil {
		logger.Error().Err(err).Msg("sending reset token failed")
	}
	return nil
}

// ResetPassword consumes a reset token and sets a new password.
func (s *AuthService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	if err := s.resetTokens.Validate(req.Token); err != nil {
		return apperrors.ErrInvalidResetToken
	}

	data, err := s.resetStore.Consume(ctx, s.resetTokens.Hash(req.Token))
	if err != nil {
		return fmt.Errorf("consuming reset token: %w", err)
	}
	if data == nil {
		return apperrors.ErrInvalidResetToken
	}

	userID, err := primitive.ObjectIDFromHex(data.UserID)
	if err != nil {
		return apperrors.ErrInvalidResetToken
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if _, err := s.userRepo.Update(ctx, userID, &models.UserUpdate{Password: &hashedPassword}); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return fmt.Errorf("updating password: %w", err)
	}

	return nil
}

// Authenticate validates an access token and loads the account fresh, so
// role and scope changes apply to the next request.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*authz.Actor, error) {
	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}

	if !user.Approved {
		return nil, apperrors.ErrAccountNotApproved
	}

	return authz.NewActor(user), nil
}
