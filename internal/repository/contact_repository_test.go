package repository

import (
	"context"
	"testing"

	apperrors "lda-portal/internal/errors"
	"lda-portal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestContactRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewContactRepository(tdb.Database)
	ctx := context.Background()

	a1 := primitive.NewObjectID()
	a2 := primitive.NewObjectID()

	contact := &models.Contact{Name: "Nomsa Dlamini", LDAIDs: []primitive.ObjectID{a1, a2}}
	require.NoError(t, repo.Create(ctx, contact))

	t.Run("find lda ids", func(t *testing.T) {
		ids, err := repo.FindLDAIDs(ctx, contact.ID)

		require.NoError(t, err)
		assert.Equal(t, []primitive.ObjectID{a1, a2}, ids)
	})

	t.Run("list by lda", func(t *testing.T) {
		contacts, total, err := repo.ListByLDA(ctx, a2, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, contact.ID, contacts[0].ID)
	})

	t.Run("update replaces lda links", func(t *testing.T) {
		ids := models.IDList{a1}

		updated, err := repo.Update(ctx, contact.ID, &models.UpdateContactRequest{LDAIDs: &ids})

		require.NoError(t, err)
		assert.Equal(t, []primitive.ObjectID{a1}, updated.LDAIDs)
		assert.Equal(t, "Nomsa Dlamini", updated.Name)
	})

	t.Run("remove lda", func(t *testing.T) {
		require.NoError(t, repo.RemoveLDA(ctx, a1))

		ids, err := repo.FindLDAIDs(ctx, contact.ID)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, contact.ID))

		_, err := repo.FindLDAIDs(ctx, contact.ID)
		assert.Equal(t, apperrors.ErrContactNotFound, err)
	})
}
