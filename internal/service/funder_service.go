package service

import (
	"context"
	"fmt"

	"lda-portal/internal/authz"
	apperrors "lda-portal/internal/errors"
	"lda-portal/internal/models"
	"lda-portal/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FunderService handles business logic for funder operations.
type FunderService struct {
	repo      repository.FunderRepository
	fundRepo  repository.FundRepository
	docRepo   repository.DocumentRepository
	mediaRepo repository.MediaRepository
	files     *Files
}

// NewFunderService creates a new FunderService.
func NewFunderService(
	repo repository.FunderRepository,
	fundRepo repository.FundRepository,
	docRepo repository.DocumentRepository,
	mediaRepo repository.MediaRepository,
	files *Files,
) *FunderService {
	return &FunderService{
		repo:      repo,
		fundRepo:  fundRepo,
		docRepo:   docRepo,
		mediaRepo: mediaRepo,
		files:     files,
	}
}

// List returns funders.
func (s *FunderService) List(ctx context.Context, actor *authz.Actor, page, limit int) (*models.FunderListResponse, error) {
	if err := authz.Enforce(ctx, actor, authz.ActionFunderView, authz.Resource{}); err != nil {
		return nil, err
	}

	page, limit = normalizePage(page, limit)

	funders, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("listing funders: %w", err)
	}

	return &models.FunderListResponse{
		Items:      funders,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// Get returns one funder.
func (s *FunderService) Get(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.Funder, error) {
	funder, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Enforce(ctx, actor, authz.ActionFunderView, authz.Resource{}); err != nil {
		return nil, err
	}
	return funder, nil
}

// Create adds a funder.
func (s *FunderService) Create(ctx context.Context, actor *authz.Actor, req *models.CreateFunderRequest) (*models.Funder, error) {
	if err := authz.Enforce(ctx, actor, authz.ActionFunderManage, authz.Resource{}); err != nil {
		return nil, err
	}

	funder := &models.Funder{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		Website:      req.Website,
	}

	if err := s.repo.Create(ctx, funder); err != nil {
		return nil, fmt.Errorf("creating funder: %w", err)
	}
	return funder, nil
}

// Update edits a funder.
func (s *FunderService) Update(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateFunderRequest) (*models.Funder, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	if err := authz.Enforce(ctx, actor, authz.ActionFunderManage, authz.Resource{}); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("updating funder: %w", err)
	}
	return updated, nil
}

// Delete removes a funder and its files. A funder with funds cannot be
// deleted.
func (s *FunderService) Delete(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := authz.Enforce(ctx, actor, authz.ActionFunderManage, authz.Resource{}); err != nil {
		return err
	}

	n, err := s.fundRepo.CountByFunder(ctx, id)
	if err != nil {
		return fmt.Errorf("counting funds: %w", err)
	}
	if n > 0 {
		return apperrors.ErrFunderHasFunds
	}

	filter := models.FileFilter{FunderID: &id}
	if err := deleteOwnedFiles(ctx, s.files, s.docRepo, s.mediaRepo, filter, "funder"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting funder: %w", err)
	}
	return nil
}
