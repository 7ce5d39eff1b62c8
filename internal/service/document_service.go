package service

import (
	"context"
	"fmt"
	"time"

	"lda-portal/internal/authz"
	apperrors "lda-portal/internal/errors"
	"lda-portal/internal/models"
	"lda-portal/internal/repository"
	"lda-portal/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentService handles business logic for document operations.
type DocumentService struct {
	repo  repository.DocumentRepository
	links linkResolver
	files *Files
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(
	repo repository.DocumentRepository,
	ldaRepo repository.LDARepository,
	fundRepo repository.FundRepository,
	funderRepo repository.FunderRepository,
	files *Files,
) *DocumentService {
	return &DocumentService{
		repo:  repo,
		links: linkResolver{ldas: ldaRepo, funds: fundRepo, funders: funderRepo},
		files: files,
	}
}

// List returns the documents of one LDA, fund or funder. Fund and funder
// documents are visible to staff only.
func (s *DocumentService) List(ctx context.Context, actor *authz.Actor, filter models.FileFilter, page, limit int) (*models.DocumentListResponse, error) {
	if err := loadFileOwner(ctx, s.links, filter); err != nil {
		return nil, err
	}

	res := authz.Resource{File: models.FileScope{LDAID: filter.LDAID}}
	if err := authz.Enforce(ctx, actor, authz.ActionDocumentView, res); err != nil {
		return nil, err
	}

	page, limit = normalizePage(page, limit)

	docs, total, err := s.repo.List(ctx, filter, page, limit)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	for i := range docs {
		docs[i].FileURL = s.files.downloadURL(ctx, docs[i].FileKey)
	}

	return &models.DocumentListResponse{
		Items:      docs,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// Get returns one document with a download URL.
func (s *DocumentService) Get(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.Document, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Enforce(ctx, actor, authz.ActionDocumentView, authz.Resource{File: doc.Scope()}); err != nil {
		return nil, err
	}

	doc.FileURL = s.files.downloadURL(ctx, doc.FileKey)
	return doc, nil
}

// Create registers a document and returns a URL to upload its file to.
func (s *DocumentService) Create(ctx context.Context, actor *authz.Actor, req *models.CreateDocumentRequest) (*models.CreateDocumentResponse, error) {
	link, err := parseLink(req.LDAID, req.FundID, req.FunderID)
	if err != nil {
		return nil, err
	}
	if link.IsEmpty() {
		return nil, apperrors.ErrLinkRequired
	}

	res := authz.Resource{Link: link, UploadedBy: req.UploadedBy}
	if err := authz.Enforce(ctx, actor, authz.ActionDocumentCreate, res); err != nil {
		return nil, err
	}

	if err := checkValidity(req.ValidFrom, req.ValidUntil); err != nil {
		return nil, err
	}
	if err := s.links.verify(ctx, link); err != nil {
		return nil, err
	}

	id := primitive.NewObjectID()
	key := storage.ObjectKey("documents", id.Hex(), req.FileName)

	uploadURL, err := s.files.uploadURL(ctx, key, req.ContentType)
	if err != nil {
		return nil, fmt.Errorf("presigning upload: %w", err)
	}

	doc := &models.Document{
		ID:          id,
		Title:       req.Title,
		LDAID:       link.LDAID,
		FundID:      link.FundID,
		FunderID:    link.FunderID,
		UploadedBy:  req.UploadedBy,
		FileKey:     key,
		ContentType: req.ContentType,
		FileSize:    req.FileSize,
		ValidFrom:   req.ValidFrom,
		ValidUntil:  req.ValidUntil,
		CreatedByID: actor.ID,
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}

	return &models.CreateDocumentResponse{
		Document:  *doc,
		UploadURL: uploadURL,
	}, nil
}

// Update edits a document. The check covers both the document as stored and
// the link and tag it will have afterwards.
func (s *DocumentService) Update(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateDocumentRequest) (*models.Document, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	current := doc.Scope()

	relink := req.LDAID != nil || req.FundID != nil || req.FunderID != nil
	next := authz.LinkOf(current)
	if relink {
		if next, err = parseLink(req.LDAID, req.FundID, req.FunderID); err != nil {
			return nil, err
		}
		if next.IsEmpty() {
			return nil, apperrors.ErrLinkRequired
		}
	}

	tag := current.UploadedBy
	if req.UploadedBy != nil {
		tag = *req.UploadedBy
	}

	res := authz.Resource{File: current, Link: next, UploadedBy: tag}
	if err := authz.Enforce(ctx, actor, authz.ActionDocumentEdit, res); err != nil {
		return nil, err
	}

	from, until := doc.ValidFrom, doc.ValidUntil
	if req.ValidFrom != nil {
		from = req.ValidFrom
	}
	if req.ValidUntil != nil {
		until = req.ValidUntil
	}
	if err := checkValidity(from, until); err != nil {
		return nil, err
	}

	update := &models.DocumentUpdate{
		Title:      req.Title,
		UploadedBy: req.UploadedBy,
		ValidFrom:  req.ValidFrom,
		ValidUntil: req.ValidUntil,
	}
	if relink {
		if err := s.links.verify(ctx, next); err != nil {
			return nil, err
		}
		update.LDAID, update.FundID, update.FunderID = next.LDAID, next.FundID, next.FunderID
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("updating document: %w", err)
	}

	updated.FileURL = s.files.downloadURL(ctx, updated.FileKey)
	return updated, nil
}

// Delete removes a document and queues its file for deletion.
func (s *DocumentService) Delete(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error {
	scope, err := s.repo.FindScope(ctx, id)
	if err != nil {
		return err
	}

	if err := authz.Enforce(ctx, actor, authz.ActionDocumentDelete, authz.Resource{File: *scope}); err != nil {
		return err
	}

	key, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}

	s.files.enqueueDeletion(ctx, "document", key)
	return nil
}

func checkValidity(from, until *time.Time) error {
	if from != nil && until != nil && !until.After(*from) {
		return apperrors.ErrInvalidValidity
	}
	return nil
}

// loadFileOwner checks that the single owner named by filter exists.
func loadFileOwner(ctx context.Context, links linkResolver, filter models.FileFilter) error {
	set := 0
	for _, id := range []*primitive.ObjectID{filter.LDAID, filter.FundID, filter.FunderID} {
		if id != nil {
			set++
		}
	}
	if set != 1 {
		return apperrors.ErrLinkRequired
	}

	switch {
	case filter.LDAID != nil:
		_, err := links.ldas.FindByID(ctx, *filter.LDAID)
		return err
	case filter.FundID != nil:
		_, err := links.funds.FindByID(ctx, *filter.FundID)
		return err
	default:
		_, err := links.funders.FindByID(ctx, *filter.FunderID)
		return err
	}
}
