package service

import (
	"context"
	"testing"

	apperrors "lda-portal/internal/errors"
	"lda-portal/internal/models"
	"lda-portal/internal/queue"
	repomocks "lda-portal/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type fundingMocks struct {
	funders *repomocks.MockFunderRepository
	funds   *repomocks.MockFundRepository
	ldas    *repomocks.MockLDARepository
	docs    *repomocks.MockDocumentRepository
	media   *repomocks.MockMediaRepository
	fileMocks
}

func newFundingMocks(ctrl *gomock.Controller) fundingMocks {
	return fundingMocks{
		funders:   repomocks.NewMockFunderRepository(ctrl),
		funds:     repomocks.NewMockFundRepository(ctrl),
		ldas:      repomocks.NewMockLDARepository(ctrl),
		docs:      repomocks.NewMockDocumentRepository(ctrl),
		media:     repomocks.NewMockMediaRepository(ctrl),
		fileMocks: newFileMocks(ctrl),
	}
}

func (m fundingMocks) funderService() *FunderService {
	return NewFunderService(m.funders, m.funds, m.docs, m.media, m.files)
}

func (m fundingMocks) fundService() *FundService {
	return NewFundService(FundServiceConfig{
		FundRepo:     m.funds,
		FunderRepo:   m.funders,
		LDARepo:      m.ldas,
		DocumentRepo: m.docs,
		MediaRepo:    m.media,
		Files:        m.files,
	})
}

func TestFunderService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newFundingMocks(ctrl)
	svc := m.funderService()

	m.funders.EXPECT().List(gomock.Any(), 1, 10).Return([]models.Funder{{Name: "Trust"}}, 1, nil)

	resp, err := svc.List(context.Background(), admin(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)

	_, err = svc.List(context.Background(), officer(), 1, 10)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestFunderService_Delete(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("funder with funds is kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newFundingMocks(ctrl)

		m.funders.EXPECT().FindByID(gomock.Any(), id).Return(&models.Funder{ID: id}, nil)
		m.funds.EXPECT().CountByFunder(gomock.Any(), id).Return(2, nil)
		m.funders.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		err := m.funderService().Delete(context.Background(), admin(), id)

		assert.ErrorIs(t, err, apperrors.ErrFunderHasFunds)
	})

	t.Run("officer is denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newFundingMocks(ctrl)

		m.funders.EXPECT().FindByID(gomock.Any(), id).Return(&models.Funder{ID: id}, nil)
		m.funds.EXPECT().CountByFunder(gomock.Any(), gomock.Any()).Times(0)

		err := m.funderService().Delete(context.Background(), officer(), id)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("deletes funder and its files", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newFundingMocks(ctrl)
		filter := models.FileFilter{FunderID: &id}

		m.funders.EXPECT().FindByID(gomock.Any(), id).Return(&models.Funder{ID: id}, nil)
		m.funds.EXPECT().CountByFunder(gomock.Any(), id).Return(0, nil)
		m.docs.EXPECT().DeleteByFilter(gomock.Any(), filter).Return([]string{"documents/x/agreement.pdf"}, nil)
		m.media.EXPECT().DeleteByFilter(gomock.Any(), filter).Return(nil, nil)
		m.queue.EXPECT().Enqueue(queue.FileDeletionJob{Key: "documents/x/agreement.pdf", Source: "funder"}).Return(nil)
		m.funders.EXPECT().Delete(gomock.Any(), id).Return(nil)

		assert.NoError(t, m.funderService().Delete(context.Background(), superUser(), id))
	})
}

func TestFundService_List(t *testing.T) {
	lda := &models.LDA{ID: primitive.NewObjectID()}

	t.Run("officer must filter by lda", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newFundingMocks(ctrl)

		m.funds.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := m.fundService().List(context.Background(), officer(), nil, 1, 10)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("officer lists funds of an lda", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newFundingMocks(ctrl)

		m.ldas.EXPECT().FindByID(gomock.Any(), lda.ID).Return(lda, nil)
		m.funds.EXPECT().FindByLDA(gomock.Any(), lda, 1, 10).Return([]models.Fund{{Name: "Rural"}}, 1, nil)

		resp, err := m.fundService().List(context.Background(), officer(), &lda.ID, 1, 10)

		require.NoError(t, err)
		assert.Len(t, resp.Items, 1)
	})

	t.Run("lda user outside scope is denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newFundingMocks(ctrl)

		m.ldas.EXPECT().FindByID(gomock.Any(), lda.ID).Return(lda, nil)
		m.funds.EXPECT().FindByLDA(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := m.fundService().List(context.Background(), actorWith(models.RoleUser, primitive.NewObjectID()), &lda.ID, 1, 10)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("unknown lda filter is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newFundingMocks(ctrl)
		id := primitive.NewObjectID()

		m.ldas.EXPECT().FindByID(gomock.Any(), id).Return(nil, apperrors.ErrLDANotFound)

		_, err := m.fundService().List(context.Background(), admin(), &id, 1, 10)

		assert.ErrorIs(t, err, apperrors.ErrLDANotFound)
	})

	t.Run("admin lists all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newFundingMocks(ctrl)

		m.funds.EXPECT().List(gomock.Any(), 1, defaultPageLimit).Return(nil, 0, nil)

		_, err := m.fundService().List(context.Background(), admin(), nil, 0, 0)

		require.NoError(t, err)
	})
}

func TestFundService_Get(t *testing.T) {
	fund := &models.Fund{ID: primitive.NewObjectID()}
	linked := primitive.NewObjectID()

	ctrl := gomock.NewController(t)
	m := newFundingMocks(ctrl)
	svc := m.fundService()

	m.funds.EXPECT().FindByID(gomock.Any(), fund.ID).Return(fund, nil).Times(2)
	m.ldas.EXPECT().FindIDsByFund(gomock.Any(), fund.ID).Return([]primitive.ObjectID{linked}, nil).Times(2)

	actor := actorWith(models.RoleUser, linked)
	_, err := svc.Get(context.Background(), actor, fund.ID, &linked)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), actor, fund.ID, nil)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestFundService_Create(t *testing.T) {
	funderID := primitive.NewObjectID()

	t.Run("unknown funder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newFundingMocks(ctrl)

		m.funders.EXPECT().FindByID(gomock.Any(), funderID).Return(nil, apperrors.ErrFunderNotFound)
		m.funds.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := m.fundService().Create(context.Background(), admin(), &models.CreateFundRequest{
			FunderID: funderID.Hex(), Name: "Rural",
		})

		assert.ErrorIs(t, err, apperrors.ErrUnknownFunder)
	})

	t.Run("defaults currency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newFundingMocks(ctrl)

		m.funders.EXPECT().FindByID(gomock.Any(), funderID).Return(&models.Funder{ID: funderID}, nil)
		m.funds.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		fund, err := m.fundService().Create(context.Background(), admin(), &models.CreateFundRequest{
			FunderID: funderID.Hex(), Name: "Rural", Amount: 2500000,
		})

		require.NoError(t, err)
		assert.Equal(t, "ZAR", fund.Currency)
		assert.Equal(t, funderID, fund.FunderID)
	})

	t.Run("lda user denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newFundingMocks(ctrl)

		m.funders.EXPECT().FindByID(gomock.Any(), gomock.Any()).Times(0)

		_, err := m.fundService().Create(context.Background(), actorWith(models.RoleUser), &models.CreateFundRequest{
			FunderID: funderID.Hex(), Name: "Rural",
		})

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestFundService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newFundingMocks(ctrl)
	id := primitive.NewObjectID()
	filter := models.FileFilter{FundID: &id}

	gomock.InOrder(
		m.funds.EXPECT().FindByID(gomock.Any(), id).Return(&models.Fund{ID: id}, nil),
		m.ldas.EXPECT().RemoveFund(gomock.Any(), id).Return(nil),
		m.docs.EXPECT().DeleteByFilter(gomock.Any(), filter).Return(nil, nil),
		m.media.EXPECT().DeleteByFilter(gomock.Any(), filter).Return([]string{"media/y/site.jpg"}, nil),
		m.queue.EXPECT().Enqueue(queue.FileDeletionJob{Key: "media/y/site.jpg", Source: "fund"}).Return(nil),
		m.funds.EXPECT().Delete(gomock.Any(), id).Return(nil),
	)

	assert.NoError(t, m.fundService().Delete(context.Background(), admin(), id))
}
