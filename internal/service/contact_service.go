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

// ContactService handles business logic for contact operations.
type ContactService struct {
	repo    repository.ContactRepository
	ldaRepo repository.LDARepository
	links   linkResolver
}

// NewContactService creates a new ContactService.
func NewContactService(repo repository.ContactRepository, ldaRepo repository.LDARepository) *ContactService {
	return &ContactService{
		repo:    repo,
		ldaRepo: ldaRepo,
		links:   linkResolver{ldas: ldaRepo},
	}
}

// ListByLDA returns the contacts linked to one LDA.
func (s *ContactService) ListByLDA(ctx context.Context, actor *authz.Actor, ldaID primitive.ObjectID, page, limit int) (*models.ContactListResponse, error) {
	if _, err := s.ldaRepo.FindByID(ctx, ldaID); err != nil {
		return nil, err
	}

	if err := authz.Enforce(ctx, actor, authz.ActionLDAView, authz.LDA(ldaID)); err != nil {
		return nil, err
	}

	page, limit = normalizePage(page, limit)

	contacts, total, err := s.repo.ListByLDA(ctx, ldaID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}

	return &models.ContactListResponse{
		Items:      contacts,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// Get returns one contact.
func (s *ContactService) Get(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) (*models.Contact, error) {
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Enforce(ctx, actor, authz.ActionContactView, authz.Resource{LDAIDs: contact.LDAIDs}); err != nil {
		return nil, err
	}
	return contact, nil
}

// Create adds a contact. The caller must have access to every LDA it is
// linked to.
func (s *ContactService) Create(ctx context.Context, actor *authz.Actor, req *models.CreateContactRequest) (*models.Contact, error) {
	ldaIDs := req.LDAIDs.IDs()
	if len(ldaIDs) == 0 {
		return nil, apperrors.ErrContactLDARequired
	}

	if err := authz.Enforce(ctx, actor, authz.ActionContactCreate, authz.Resource{LDAIDs: ldaIDs}); err != nil {
		return nil, err
	}

	if err := s.links.verifyLDAs(ctx, ldaIDs...); err != nil {
		return nil, err
	}

	contact := &models.Contact{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Position: req.Position,
		LDAIDs:   ldaIDs,
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("creating contact: %w", err)
	}
	return contact, nil
}

// Update edits a contact. LDAs newly linked to it are checked like a create.
func (s *ContactService) Update(ctx context.Context, actor *authz.Actor, id primitive.ObjectID, req *models.UpdateContactRequest) (*models.Contact, error) {
	current, err := s.repo.FindLDAIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Enforce(ctx, actor, authz.ActionContactEdit, authz.Resource{LDAIDs: current}); err != nil {
		return nil, err
	}

	if req.LDAIDs != nil {
		next := req.LDAIDs.IDs()
		if len(next) == 0 {
			return nil, apperrors.ErrContactLDARequired
		}
		if added := newIDs(current, next); len(added) > 0 {
			if err := authz.Enforce(ctx, actor, authz.ActionContactCreate, authz.Resource{LDAIDs: added}); err != nil {
				return nil, err
			}
			if err := s.links.verifyLDAs(ctx, added...); err != nil {
				return nil, err
			}
		}
	}

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("updating contact: %w", err)
	}
	return updated, nil
}

// Delete removes a contact.
func (s *ContactService) Delete(ctx context.Context, actor *authz.Actor, id primitive.ObjectID) error {
	current, err := s.repo.FindLDAIDs(ctx, id)
	if err != nil {
		return err
	}

	if err := authz.Enforce(ctx, actor, authz.ActionContactDelete, authz.Resource{LDAIDs: current}); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting contact: %w", err)
	}
	return nil
}

// newIDs returns the ids in next that are not in current.
func newIDs(current, next []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(current))
	for _, id := range current {
		seen[id] = struct{}{}
	}

	var added []primitive.ObjectID
	for _, id := range next {
		if _, ok := seen[id]; !ok {
			added = append(added, id)
		}
	}
	return added
}
