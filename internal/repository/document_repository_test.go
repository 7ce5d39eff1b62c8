package repository

import (
	"context"
	"testing"
	"time"

	"lda-portal/internal/database"
	apperrors "lda-portal/internal/errors"
	"lda-portal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDocumentRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewDocumentRepository(tdb.Database)
	ctx := context.Background()

	lda := primitive.NewObjectID()
	fund := primitive.NewObjectID()
	creator := primitive.NewObjectID()

	doc := &models.Document{
		Title:       "Audited financials",
		LDAID:       &lda,
		UploadedBy:  models.UploadedByLDA,
		FileKey:     "documents/a/report.pdf",
		ContentType: "application/pdf",
		FileSize:    1024,
		CreatedByID: creator,
	}
	require.NoError(t, repo.Create(ctx, doc))

	fundDoc := &models.Document{
		Title:       "Fund terms",
		FundID:      &fund,
		UploadedBy:  models.UploadedBySCAT,
		FileKey:     "documents/b/terms.pdf",
		CreatedByID: creator,
	}
	require.NoError(t, repo.Create(ctx, fundDoc))

	t.Run("find scope", func(t *testing.T) {
		scope, err := repo.FindScope(ctx, doc.ID)

		require.NoError(t, err)
		assert.Equal(t, doc.Scope(), *scope)
	})

	t.Run("find scope of missing document", func(t *testing.T) {
		_, err := repo.FindScope(ctx, primitive.NewObjectID())

		assert.Equal(t, apperrors.ErrDocumentNotFound, err)
	})

	t.Run("list by owner", func(t *testing.T) {
		docs, total, err := repo.List(ctx, models.FileFilter{LDAID: &lda}, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, doc.ID, docs[0].ID)
		assert.Equal(t, doc.FileKey, docs[0].FileKey)
	})

	t.Run("update moves the document to a single owner", func(t *testing.T) {
		title := "Moved"
		until := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Millisecond)

		updated, err := repo.Update(ctx, doc.ID, &models.DocumentUpdate{
			Title:      &title,
			FundID:     &fund,
			ValidUntil: &until,
		})

		require.NoError(t, err)
		assert.Equal(t, title, updated.Title)
		assert.Nil(t, updated.LDAID)
		require.NotNil(t, updated.FundID)
		assert.Equal(t, fund, *updated.FundID)
		require.NotNil(t, updated.ValidUntil)
		assert.True(t, until.Equal(*updated.ValidUntil))
	})

	t.Run("update without link keeps owner", func(t *testing.T) {
		title := "Renamed"

		updated, err := repo.Update(ctx, fundDoc.ID, &models.DocumentUpdate{Title: &title})

		require.NoError(t, err)
		require.NotNil(t, updated.FundID)
		assert.Equal(t, fund, *updated.FundID)
	})

	t.Run("delete by owner returns file keys", func(t *testing.T) {
		keys, err := repo.DeleteByFilter(ctx, models.FileFilter{FundID: &fund})

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"documents/a/report.pdf", "documents/b/terms.pdf"}, keys)

		_, total, err := repo.List(ctx, models.FileFilter{FundID: &fund}, 1, 10)
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("delete returns the file key", func(t *testing.T) {
		other := &models.Document{Title: "Minutes", LDAID: &lda, UploadedBy: models.UploadedByLDA, FileKey: "documents/c/minutes.pdf"}
		require.NoError(t, repo.Create(ctx, other))

		key, err := repo.Delete(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, "documents/c/minutes.pdf", key)

		_, err = repo.Delete(ctx, other.ID)
		assert.Equal(t, apperrors.ErrDocumentNotFound, err)
	})

	t.Run("delete by empty filter is refused", func(t *testing.T) {
		_, err := repo.DeleteByFilter(ctx, models.FileFilter{})

		assert.Equal(t, apperrors.ErrLinkRequired, err)
	})

	t.Run("delete by owner leaves rows added after the lookup", func(t *testing.T) {
		owner := primitive.NewObjectID()
		early := &models.Document{Title: "Early", LDAID: &owner, UploadedBy: models.UploadedByLDA, FileKey: "documents/d/early.pdf"}
		require.NoError(t, repo.Create(ctx, early))

		coll := tdb.Database.Collection(database.DocumentsCollection)
		query := fileFilterQuery(models.FileFilter{LDAID: &owner})

		rows, err := findFileRows(ctx, coll, query)
		require.NoError(t, err)
		require.Len(t, rows, 1)

		late := &models.Document{Title: "Late", LDAID: &owner, UploadedBy: models.UploadedByLDA, FileKey: "documents/d/late.pdf"}
		require.NoError(t, repo.Create(ctx, late))

		keys, err := removeFileRows(ctx, coll, rows)
		require.NoError(t, err)
		assert.Equal(t, []string{"documents/d/early.pdf"}, keys)

		_, err = repo.FindScope(ctx, early.ID)
		assert.Equal(t, apperrors.ErrDocumentNotFound, err)
		_, err = repo.FindScope(ctx, late.ID)
		assert.NoError(t, err)
	})
}
