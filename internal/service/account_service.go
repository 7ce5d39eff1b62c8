package service

import (
	"context"
	"fmt"

	"lda-portal/internal/authz"
	apperrors "lda-portal/internal/errors"
	"lda-portal/internal/models"
	"lda-portal/internal/repository"
	"lda-portal/pkg/auth"
)

// AccountService handles a user's own profile.
type AccountService struct {
	userRepo repository.UserRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(userRepo repository.UserRepository) *AccountService {
	return &AccountService{userRepo: userRepo}
}

func (s *AccountService) load(ctx context.Context, actor *authz.Actor) (*models.User, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	user, err := s.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if err := authz.Enforce(ctx, actor, authz.ActionAccountEdit, authz.Resource{TargetID: user.ID}); err != nil {
		return nil, err
	}
	return user, nil
}

// Get returns the caller's own account.
func (s *AccountService) Get(ctx context.Context, actor *authz.Actor) (*models.User, error) {
	return s.load(ctx, actor)
}

// Update changes the caller's name or email. Role, approval and LDA scope
// cannot be changed here.
func (s *AccountService) Update(ctx context.Context, actor *authz.Actor, req *models.UpdateAccountRequest) (*models.User, error) {
	user, err := s.load(ctx, actor)
	if err != nil {
		return nil, err
	}

	update := &models.UserUpdate{Name: req.Name}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		update.Email = &email
	}

	updated, err := s.userRepo.Update(ctx, user.ID, update)
	if err != nil {
		return nil, fmt.Errorf("updating account: %w", err)
	}
	return updated, nil
}

// ChangePassword replaces the caller's password after checking the current one.
func (s *AccountService) ChangePassword(ctx context.Context, actor *authz.Actor, req *models.ChangePasswordRequest) error {
	user, err := s.load(ctx, actor)
	if err != nil {
		return err
	}

	if err := auth.CheckPassword(req.CurrentPassword, user.Password); err != nil {
		return apperrors.ErrInvalidCredentials
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if _, err := s.userRepo.Update(ctx, user.ID, &models.UserUpdate{Password: &hashedPassword}); err != nil {
		return fmt.Errorf("updating password: %w", err)
	}
	return nil
}
