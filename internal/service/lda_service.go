package service

import (
	"context"
	"fmt"

	"lda-portal/internal/authz"
	"lda-portal/internal/models"
	"lda-portal/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LDAService handles business logic for LDA operations.
type LDAService struct {
	repo        repository.LDARepository
	fundRepo    repository.FundRepository
	userRepo    repository.UserRepository
	contactRepo repository.ContactRepository
	docRepo     repository.DocumentRepository
	mediaRepo   repository.MediaRepository
	files       *Files
}

// LDAServiceConfig holds the dependencies of LDAService.
type LDAServiceConfig struct {
	LDARepo      repository.LDARepository
	FundRepo     repository.FundRepository
	UserRepo     repository.UserRepository
	ContactRepo  repository.ContactRepository
	DocumentRepo repository.DocumentRepository
	MediaRepo    repository.MediaRepository
	Files        *Files
}

// NewLDAService creates a new LDAService.
func NewLDAService(cfg LDAServiceConfig) *LDAService {
	return &LDAService{
		repo:        cfg.LDARepo,
		fundRepo:    cfg.FundRepo,
		userRepo:    cfg.UserRepo,
		contactRepo: cfg.ContactRepo,
		docRepo:     cfg.DocumentRepo,
		mediaRepo:   cfg.MediaRepo,
		files:       cfg.Files,
	}
}

// List returns the LDAs visible to the actor.
func (s *LDAService) List(ctx context.Context, actor *authz.Actor, page, limit int) (*models.LDAListResponse, error) {
	if err := authz.Enforce(ctx, actor, authz.ActionLDAList, authz.Resource{}); err != nil {
		return nil, err
	}

	page, limit = normalizePage(page, limit)
	ids, all := authz.LDAListScope(actor)

	ldas, total, err := s.repo.List(ctx, ids, all, page, limit)
	if err != nil {
		return nil, fmt.Errorf("listing ldas: %w", err)
	}

	return &models.LDAListResponse{
		Items:      ldas,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// Get returns one LDA.
func (s *LDAService) Get(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.LDA, error) {
	lda, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Enforce(ctx, actor, authz.ActionLDAView, authz.LDA(lda.ID)); err != nil {
		return nil, err
	}
	return lda, nil
}

// Create adds an LDA.
func (s *LDAService) Create(ctx context.Context, actor *authz.Actor, req *models.CreateLDARequest) (*models.LDA, error) {
	if err := authz.Enforce(ctx, actor, authz.ActionLDACreate, authz.Resource{}); err != nil {
		return nil, err
	}

	fundIDs := req.FundIDs.IDs()
	if err := s.verifyFunds(ctx, fundIDs); err != nil {
		return nil, err
	}

	lda := &models.LDA{
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		Province:           req.Province,
		FundIDs:            fundIDs,
		Operations:         req.Operations,
		Staff:              req.Staff,
	}

	if err := s.repo.Create(ctx, lda); err != nil {
		return nil, fmt.Errorf("creating lda: %w", err)
	}
	return lda, nil
}

// Update edits an LDA. Changing its fund links is a fund management action.
func (s *LDAService) Update(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateLDARequest) (*models.LDA, error) {
	lda, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Enforce(ctx, actor, authz.ActionLDAManage, authz.LDA(lda.ID)); err != nil {
		return nil, err
	}

	if req.FundIDs != nil {
		if err := authz.Enforce(ctx, actor, authz.ActionFundManage, authz.Resource{}); err != nil {
			return nil, err
		}
		if err := s.verifyFunds(ctx, req.FundIDs.IDs()); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("updating lda: %w", err)
	}
	return updated, nil
}

// Delete removes an LDA along with its files, and unlinks it from users and
// contacts.
func (s *LDAService) Delete(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error {
	lda, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := authz.Enforce(ctx, actor, authz.ActionLDADelete, authz.LDA(lda.ID)); err != nil {
		return err
	}

	if err := s.userRepo.RemoveLDA(ctx, id); err != nil {
		return fmt.Errorf("unlinking users: %w", err)
	}
	if err := s.contactRepo.RemoveLDA(ctx, id); err != nil {
		return fmt.Errorf("unlinking contacts: %w", err)
	}

	filter := models.FileFilter{LDAID: &id}
	if err := deleteOwnedFiles(ctx, s.files, s.docRepo, s.mediaRepo, filter, "lda"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting lda: %w", err)
	}
	return nil
}

func (s *LDAService) verifyFunds(ctx context.Context, ids []primitive.ObjectID) error {
	return verifyFundIDs(ctx, s.fundRepo, ids)
}
