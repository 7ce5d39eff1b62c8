package service

import (
	"context"
	"errors"
	"fmt"

	"lda-portal/internal/authz"
	apperrors "lda-portal/internal/errors"
	"lda-portal/internal/models"
	"lda-portal/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FundService handles business logic for fund operations.
type FundService struct {
	repo       repository.FundRepository
	funderRepo repository.FunderRepository
	ldaRepo    repository.LDARepository
	docRepo    repository.DocumentRepository
	mediaRepo  repository.MediaRepository
	files      *Files
}

// FundServiceConfig holds the dependencies of FundService.
type FundServiceConfig struct {
	FundRepo     repository.FundRepository
	FunderRepo   repository.FunderRepository
	LDARepo      repository.LDARepository
	DocumentRepo repository.DocumentRepository
	MediaRepo    repository.MediaRepository
	Files        *Files
}

// NewFundService creates a new FundService.
func NewFundService(cfg FundServiceConfig) *FundService {
	return &FundService{
		repo:       cfg.FundRepo,
		funderRepo: cfg.FunderRepo,
		ldaRepo:    cfg.LDARepo,
		docRepo:    cfg.DocumentRepo,
		mediaRepo:  cfg.MediaRepo,
		files:      cfg.Files,
	}
}

// List returns funds. Callers below admin must name an LDA they can view and
// see only that LDA's funds.
func (s *FundService) List(ctx context.Context, actor *authz.Actor, ldaID *primitive.ObjectID, page, limit int) (*models.FundListResponse, error) {
	var lda *models.LDA
	if ldaID != nil {
		var err error
		if lda, err = s.ldaRepo.FindByID(ctx, *ldaID); err != nil {
			return nil, err
		}
	}

	if err := authz.Enforce(ctx, actor, authz.ActionFundList, authz.Resource{LDAID: ldaID}); err != nil {
		return nil, err
	}

	page, limit = normalizePage(page, limit)

	var (
		funds []models.Fund
		total int
		err   error
	)
	if lda != nil {
		funds, total, err = s.repo.FindByLDA(ctx, lda, page, limit)
	} else {
		funds, total, err = s.repo.List(ctx, page, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("listing funds: %w", err)
	}

	return &models.FundListResponse{
		Items:      funds,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// Get returns one fund. ldaID is the LDA filter non-admin callers view it
// through.
func (s *FundService) Get(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, ldaID *primitive.ObjectID) (*models.Fund, error) {
	fund, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	linked, err := s.ldaRepo.FindIDsByFund(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading fund ldas: %w", err)
	}

	res := authz.Resource{LDAID: ldaID, LDAIDs: linked}
	if err := authz.Enforce(ctx, actor, authz.ActionFundView, res); err != nil {
		return nil, err
	}
	return fund, nil
}

// Create adds a fund under an existing funder.
func (s *FundService) Create(ctx context.Context, actor *authz.Actor, req *models.CreateFundRequest) (*models.Fund, error) {
	if err := authz.Enforce(ctx, actor, authz.ActionFundManage, authz.Resource{}); err != nil {
		return nil, err
	}

	funderID, err := primitive.ObjectIDFromHex(req.FunderID)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}
	if _, err := s.funderRepo.FindByID(ctx, funderID); err != nil {
		if errors.Is(err, apperrors.ErrFunderNotFound) {
			return nil, apperrors.ErrUnknownFunder
		}
		return nil, fmt.Errorf("checking funder: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = "ZAR"
	}

	fund := &models.Fund{
		FunderID:    funderID,
		Name:        req.Name,
		Description: req.Description,
		Amount:      req.Amount,
		Currency:    currency,
	}

	if err := s.repo.Create(ctx, fund); err != nil {
		return nil, fmt.Errorf("creating fund: %w", err)
	}
	return fund, nil
}

// Update edits a fund.
func (s *FundService) Update(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateFundRequest) (*models.Fund, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	if err := authz.Enforce(ctx, actor, authz.ActionFundManage, authz.Resource{}); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("updating fund: %w", err)
	}
	return updated, nil
}

// Delete removes a fund and its files, and unlinks it from LDAs.
func (s *FundService) Delete(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := authz.Enforce(ctx, actor, authz.ActionFundManage, authz.Resource{}); err != nil {
		return err
	}

	if err := s.ldaRepo.RemoveFund(ctx, id); err != nil {
		return fmt.Errorf("unlinking ldas: %w", err)
	}

	filter := models.FileFilter{FundID: &id}
	if err := deleteOwnedFiles(ctx, s.files, s.docRepo, s.mediaRepo, filter, "fund"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting fund: %w", err)
	}
	return nil
}
