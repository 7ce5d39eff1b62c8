package service

import (
	"context"
	"fmt"

	"lda-portal/internal/authz"
	apperrors "lda-portal/internal/errors"
	"lda-portal/internal/models"
	"lda-portal/internal/repository"
	"lda-portal/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService handles account management by administrators.
type UserService struct {
	repo  repository.UserRepository
	links linkResolver
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, ldaRepo repository.LDARepository) *UserService {
	return &UserService{
		repo:  repo,
		links: linkResolver{ldas: ldaRepo},
	}
}

// List returns the accounts the actor may manage.
func (s *UserService) List(ctx context.Context, actor *authz.Actor, page, limit int) (*models.UserListResponse, error) {
	if err := authz.Enforce(ctx, actor, authz.ActionUserList, authz.Resource{}); err != nil {
		return nil, err
	}

	page, limit = normalizePage(page, limit)
	filter := models.UserFilter{Roles: authz.UserListScope(actor)}

	users, total, err := s.repo.List(ctx, filter, page, limit)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return &models.UserListResponse{
		Items:      users,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// Get returns one account.
func (s *UserService) Get(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Enforce(ctx, actor, authz.ActionUserView, authz.Resource{TargetRole: user.Role}); err != nil {
		return nil, err
	}
	return user, nil
}

// Create adds an account with the requested role.
func (s *UserService) Create(ctx context.Context, actor *authz.Actor, req *models.CreateUserRequest) (*models.User, error) {
	role := req.Role
	if err := authz.Enforce(ctx, actor, authz.ActionUserCreate, authz.Resource{NewRole: &role}); err != nil {
		return nil, err
	}

	ldaIDs, err := scopedLDAIDs(role, req.LDAIDs.IDs())
	if err != nil {
		return nil, err
	}
	if err := s.links.verifyLDAs(ctx, ldaIDs...); err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    normalizeEmail(req.Email),
		Password: hashedPassword,
		Name:     req.Name,
		Role:     role,
		Approved: req.Approved,
		LDAIDs:   ldaIDs,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

// Update changes another account. Role changes are checked against the role
// being granted as well as the role held now.
func (s *UserService) Update(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := authz.Resource{TargetRole: user.Role, NewRole: req.Role}
	if err := authz.Enforce(ctx, actor, authz.ActionUserEdit, res); err != nil {
		return nil, err
	}

	update := &models.UserUpdate{
		Name:     req.Name,
		Role:     req.Role,
		Approved: req.Approved,
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		update.Email = &email
	}

	role := user.Role
	if req.Role != nil {
		role = *req.Role
	}
	switch {
	case req.LDAIDs != nil:
		ids, err := scopedLDAIDs(role, req.LDAIDs.IDs())
		if err != nil {
			return nil, err
		}
		if err := s.links.verifyLDAs(ctx, ids...); err != nil {
			return nil, err
		}
		update.LDAIDs = ids
		update.SetLDAIDs = true
	case role != models.RoleUser:
		update.LDAIDs = []primitive.ObjectID{}
		update.SetLDAIDs = true
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return updated, nil
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := authz.Enforce(ctx, actor, authz.ActionUserDelete, authz.Resource{TargetRole: user.Role}); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}

// scopedLDAIDs returns the LDA links an account with role may hold. Only
// USER accounts carry LDA scope; staff accounts always store an empty list.
func scopedLDAIDs(role models.Role, ids []primitive.ObjectID) ([]primitive.ObjectID, error) {
	if role == models.RoleUser {
		return ids, nil
	}
	if len(ids) > 0 {
		return nil, apperrors.ErrStaffLDAScope
	}
	return []primitive.ObjectID{}, nil
}
