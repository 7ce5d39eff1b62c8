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

func TestLDARepository(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewLDARepository(tdb.Database)
	ctx := context.Background()

	fund := primitive.NewObjectID()
	a := &models.LDA{Name: "Ikhwezi", FundIDs: []primitive.ObjectID{fund}}
	b := &models.LDA{Name: "Masakhane"}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	t.Run("create fills empty arrays", func(t *testing.T) {
		found, err := repo.FindByID(ctx, b.ID)

		require.NoError(t, err)
		assert.NotNil(t, found.FundIDs)
		assert.NotNil(t, found.Staff)
	})

	t.Run("list all", func(t *testing.T) {
		ldas, total, err := repo.List(ctx, nil, true, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, ldas, 2)
	})

	t.Run("list restricted to ids", func(t *testing.T) {
		ldas, total, err := repo.List(ctx, []primitive.ObjectID{a.ID}, false, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, a.ID, ldas[0].ID)
	})

	t.Run("list with no ids is empty", func(t *testing.T) {
		ldas, total, err := repo.List(ctx, nil, false, 1, 10)

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, ldas)
	})

	t.Run("exist all", func(t *testing.T) {
		ok, err := repo.ExistAll(ctx, []primitive.ObjectID{a.ID, b.ID})
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.ExistAll(ctx, []primitive.ObjectID{a.ID, primitive.NewObjectID()})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("update", func(t *testing.T) {
		name := "Ikhwezi Trust"
		staff := []models.StaffMember{{Name: "Sipho Ndlovu"}}

		updated, err := repo.Update(ctx, a.ID, &models.UpdateLDARequest{Name: &name, Staff: &staff})

		require.NoError(t, err)
		assert.Equal(t, name, updated.Name)
		assert.Equal(t, staff, updated.Staff)
		assert.Equal(t, []primitive.ObjectID{fund}, updated.FundIDs)
	})

	t.Run("fund links", func(t *testing.T) {
		ids, err := repo.FindIDsByFund(ctx, fund)
		require.NoError(t, err)
		assert.Equal(t, []primitive.ObjectID{a.ID}, ids)

		require.NoError(t, repo.RemoveFund(ctx, fund))

		ids, err = repo.FindIDsByFund(ctx, fund)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, b.ID))

		_, err := repo.FindByID(ctx, b.ID)
		assert.Equal(t, apperrors.ErrLDANotFound, err)
		assert.Equal(t, apperrors.ErrLDANotFound, repo.Delete(ctx, b.ID))
	})
}
