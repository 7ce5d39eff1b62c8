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

// parseLink turns the link fields of a file request into an authz.Link.
func parseLink(ldaID, fundID, funderID *string) (authz.Link, error) {
	var (
		link authz.Link
		err  error
	)
	if link.LDAID, err = parseOptionalID(ldaID); err != nil {
		return authz.Link{}, err
	}
	if link.FundID, err = parseOptionalID(fundID); err != nil {
		return authz.Link{}, err
	}
	if link.FunderID, err = parseOptionalID(funderID); err != nil {
		return authz.Link{}, err
	}
	return link, nil
}

// linkResolver checks that the rows a file is being linked to exist.
type linkResolver struct {
	ldas    repository.LDARepository
	funds   repository.FundRepository
	funders repository.FunderRepository
}

func (r linkResolver) verify(ctx context.Context, link authz.Link) error {
	if link.LDAID != nil {
		if err := r.verifyLDAs(ctx, *link.LDAID); err != nil {
			return err
		}
	}
	if link.FundID != nil {
		if err := verifyFundIDs(ctx, r.funds, []primitive.ObjectID{*link.FundID}); err != nil {
			return err
		}
	}
	if link.FunderID != nil {
		if _, err := r.funders.FindByID(ctx, *link.FunderID); err != nil {
			if errors.Is(err, apperrors.ErrFunderNotFound) {
				return apperrors.ErrUnknownFunder
			}
			return fmt.Errorf("checking funder: %w", err)
		}
	}
	return nil
}

func (r linkResolver) verifyLDAs(ctx context.Context, ids ...primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	ok, err := r.ldas.ExistAll(ctx, ids)
	if err != nil {
		return fmt.Errorf("checking ldas: %w", err)
	}
	if !ok {
		return apperrors.ErrUnknownLDA
	}
	return nil
}

func verifyFundIDs(ctx context.Context, funds repository.FundRepository, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	ok, err := funds.ExistAll(ctx, ids)
	if err != nil {
		return fmt.Errorf("checking funds: %w", err)
	}
	if !ok {
		return apperrors.ErrUnknownFund
	}
	return nil
}

// deleteOwnedFiles removes every document and media row of one owner and
// queues their objects.
func deleteOwnedFiles(ctx context.Context, files *Files, docs repository.DocumentRepository, media repository.MediaRepository, filter models.FileFilter, source string) error {
	docKeys, err := docs.DeleteByFilter(ctx, filter)
	if err != nil {
		return fmt.Errorf("deleting %s documents: %w", source, err)
	}
	files.enqueueDeletion(ctx, source, docKeys...)

	mediaKeys, err := media.DeleteByFilter(ctx, filter)
	if err != nil {
		return fmt.Errorf("deleting %s media: %w", source, err)
	}
	files.enqueueDeletion(ctx, source, mediaKeys...)
	return nil
}
