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

func TestFunderAndFundRepositories(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	funders := NewFunderRepository(tdb.Database)
	funds := NewFundRepository(tdb.Database)
	ctx := context.Background()

	funder := &models.Funder{Name: "Sundry Charitable Trust"}
	require.NoError(t, funders.Create(ctx, funder))

	f1 := &models.Fund{FunderID: funder.ID, Name: "Rural Enterprise", Amount: 100, Currency: "ZAR"}
	f2 := &models.Fund{FunderID: funder.ID, Name: "Youth Skills", Amount: 200, Currency: "ZAR"}
	require.NoError(t, funds.Create(ctx, f1))
	require.NoError(t, funds.Create(ctx, f2))

	t.Run("count by funder", func(t *testing.T) {
		n, err := funds.CountByFunder(ctx, funder.ID)

		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("find by lda", func(t *testing.T) {
		lda := &models.LDA{FundIDs: []primitive.ObjectID{f2.ID}}

		items, total, err := funds.FindByLDA(ctx, lda, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, f2.ID, items[0].ID)
	})

	t.Run("find by lda without funds", func(t *testing.T) {
		items, total, err := funds.FindByLDA(ctx, &models.LDA{}, 1, 10)

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, items)
	})

	t.Run("exist all", func(t *testing.T) {
		ok, err := funds.ExistAll(ctx, []primitive.ObjectID{f1.ID, f2.ID})
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = funds.ExistAll(ctx, []primitive.ObjectID{primitive.NewObjectID()})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("update fund", func(t *testing.T) {
		amount := int64(500)

		updated, err := funds.Update(ctx, f1.ID, &models.UpdateFundRequest{Amount: &amount})

		require.NoError(t, err)
		assert.Equal(t, amount, updated.Amount)
		assert.Equal(t, "Rural Enterprise", updated.Name)
	})

	t.Run("update funder", func(t *testing.T) {
		site := "https://example.org"

		updated, err := funders.Update(ctx, funder.ID, &models.UpdateFunderRequest{Website: &site})

		require.NoError(t, err)
		assert.Equal(t, site, updated.Website)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, funds.Delete(ctx, f1.ID))
		assert.Equal(t, apperrors.ErrFundNotFound, funds.Delete(ctx, f1.ID))

		list, total, err := funders.List(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, list, 1)

		require.NoError(t, funders.Delete(ctx, funder.ID))
		_, err = funders.FindByID(ctx, funder.ID)
		assert.Equal(t, apperrors.ErrFunderNotFound, err)
	})
}
