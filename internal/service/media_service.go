package service

import (
	"context"
	"fmt"

	"lda-portal/internal/authz"
	apperrors "lda-portal/internal/errors"
	"lda-portal/internal/models"
	"lda-portal/internal/repository"
	"lda-portal/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaService handles business logic for media operations.
type MediaService struct {
	repo  repository.MediaRepository
	links linkResolver
	files *Files
}

// NewMediaService creates a new MediaService.
func NewMediaService(
	repo repository.MediaRepository,
	ldaRepo repository.LDARepository,
	fundRepo repository.FundRepository,
	funderRepo repository.FunderRepository,
	files *Files,
) *MediaService {
	return &MediaService{
		repo:  repo,
		links: linkResolver{ldas: ldaRepo, funds: fundRepo, funders: funderRepo},
		files: files,
	}
}

// ListByLDA returns the media of one LDA.
func (s *MediaService) ListByLDA(ctx context.Context, actor *authz.Actor, ldaID primitive.ObjectID, page, limit int) (*models.MediaListResponse, error) {
	filter := models.FileFilter{LDAID: &ldaID}
	if err := loadFileOwner(ctx, s.links, filter); err != nil {
		return nil, err
	}

	res := authz.Resource{File: models.FileScope{LDAID: &ldaID}}
	if err := authz.Enforce(ctx, actor, authz.ActionMediaView, res); err != nil {
		return nil, err
	}

	page, limit = normalizePage(page, limit)

	items, total, err := s.repo.List(ctx, filter, page, limit)
	if err != nil {
		return nil, fmt.Errorf("listing media: %w", err)
	}

	for i := range items {
		items[i].FileURL = s.files.downloadURL(ctx, items[i].FileKey)
	}

	return &models.MediaListResponse{
		Items:      items,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// Get returns one media item with a download URL.
func (s *MediaService) Get(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.Media, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Enforce(ctx, actor, authz.ActionMediaView, authz.Resource{File: item.Scope()}); err != nil {
		return nil, err
	}

	item.FileURL = s.files.downloadURL(ctx, item.FileKey)
	return item, nil
}

// Create registers a media item and returns a URL to upload its file to.
func (s *MediaService) Create(ctx context.Context, actor *authz.Actor, req *models.CreateMediaRequest) (*models.CreateMediaResponse, error) {
	link, err := parseLink(req.LDAID, req.FundID, req.FunderID)
	if err != nil {
		return nil, err
	}
	if link.IsEmpty() {
		return nil, apperrors.ErrLinkRequired
	}

	res := authz.Resource{Link: link, UploadedBy: req.UploadedBy}
	if err := authz.Enforce(ctx, actor, authz.ActionMediaCreate, res); err != nil {
		return nil, err
	}

	if err := s.links.verify(ctx, link); err != nil {
		return nil, err
	}

	id := primitive.NewObjectID()
	key := storage.ObjectKey("media", id.Hex(), req.FileName)

	uploadURL, err := s.files.uploadURL(ctx, key, req.ContentType)
	if err != nil {
		return nil, fmt.Errorf("presigning upload: %w", err)
	}

	item := &models.Media{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		LDAID:       link.LDAID,
		FundID:      link.FundID,
		FunderID:    link.FunderID,
		UploadedBy:  req.UploadedBy,
		FileKey:     key,
		ContentType: req.ContentType,
		FileSize:    req.FileSize,
		CreatedByID: actor.ID,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("creating media: %w", err)
	}

	return &models.CreateMediaResponse{
		Media:     *item,
		UploadURL: uploadURL,
	}, nil
}

// Update edits a media item. Only its creator or a super user may.
func (s *MediaService) Update(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateMediaRequest) (*models.Media, error) {
	scope, err := s.repo.FindScope(ctx, id)
	if err != nil {
		return nil, err
	}

	newLDAID, err := parseOptionalID(req.LDAID)
	if err != nil {
		return nil, err
	}

	res := authz.Resource{File: *scope, Link: authz.Link{LDAID: newLDAID}}
	if err := authz.Enforce(ctx, actor, authz.ActionMediaEdit, res); err != nil {
		return nil, err
	}

	if newLDAID != nil {
		if err := s.links.verifyLDAs(ctx, *newLDAID); err != nil {
			return nil, err
		}
	}

	update := &models.MediaUpdate{
		Title:       req.Title,
		Description: req.Description,
		LDAID:       newLDAID,
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("updating media: %w", err)
	}

	updated.FileURL = s.files.downloadURL(ctx, updated.FileKey)
	return updated, nil
}

// Delete removes a media item and queues its file for deletion.
func (s *MediaService) Delete(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error {
	scope, err := s.repo.FindScope(ctx, id)
	if err != nil {
		return err
	}

	if err := authz.Enforce(ctx, actor, authz.ActionMediaDelete, authz.Resource{File: *scope}); err != nil {
		return err
	}

	key, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting media: %w", err)
	}

	s.files.enqueueDeletion(ctx, "media", key)
	return nil
}
