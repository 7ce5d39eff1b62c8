package service

import (
	"context"
	"testing"

	apperrors "lda-portal/internal/errors"
	"lda-portal/internal/models"
	repomocks "lda-portal/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestAccountService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := repomocks.NewMockUserRepository(ctrl)
	svc := NewAccountService(users)

	actor := actorWith(models.RoleUser)
	user := &models.User{ID: actor.ID, Role: models.RoleUser, Approved: true}

	users.EXPECT().FindByID(gomock.Any(), actor.ID).Return(user, nil)
	users.EXPECT().
		Update(gomock.Any(), actor.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, u *models.UserUpdate) (*models.User, error) {
			assert.Equal(t, "me@example.com", *u.Email)
			assert.Nil(t, u.Role)
			assert.Nil(t, u.Approved)
			assert.False(t, u.SetLDAIDs)
			return user, nil
		})

	_, err := svc.Update(context.Background(), actor, &models.UpdateAccountRequest{Email: strPtr(" Me@Example.com")})

	require.NoError(t, err)
}

func TestAccountService_ChangePassword(t *testing.T) {
	actor := actorWith(models.RoleAdmin)

	t.Run("wrong current password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := repomocks.NewMockUserRepository(ctrl)
		svc := NewAccountService(users)
		user := storedUser(t, "password123", true)
		user.ID = actor.ID

		users.EXPECT().FindByID(gomock.Any(), actor.ID).Return(user, nil)
		users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := svc.ChangePassword(context.Background(), actor, &models.ChangePasswordRequest{
			CurrentPassword: "nope", NewPassword: "newpassword1",
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("changes password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := repomocks.NewMockUserRepository(ctrl)
		svc := NewAccountService(users)
		user := storedUser(t, "password123", true)
		user.ID = actor.ID

		users.EXPECT().FindByID(gomock.Any(), actor.ID).Return(user, nil)
		users.EXPECT().Update(gomock.Any(), actor.ID, gomock.Any()).Return(user, nil)

		err := svc.ChangePassword(context.Background(), actor, &models.ChangePasswordRequest{
			CurrentPassword: "password123", NewPassword: "newpassword1",
		})

		assert.NoError(t, err)
	})
}

func TestAccountService_RequiresActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewAccountService(repomocks.NewMockUserRepository(ctrl))

	_, err := svc.Get(context.Background(), nil)

	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}
