package service

import (
	"context"
	"testing"

	"lda-portal/internal/authz"
	apperrors "lda-portal/internal/errors"
	"lda-portal/internal/models"
	repomocks "lda-portal/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func newUserService(ctrl *gomock.Controller) (*UserService, *repomocks.MockUserRepository, *repomocks.MockLDARepository) {
	users := repomocks.NewMockUserRepository(ctrl)
	ldas := repomocks.NewMockLDARepository(ctrl)
	return NewUserService(users, ldas), users, ldas
}

func TestUserService_List(t *testing.T) {
	t.Run("admin listing is limited to officers and lda users", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, _ := newUserService(ctrl)

		users.EXPECT().
			List(gomock.Any(), models.UserFilter{Roles: []models.Role{models.RoleProgrammeOfficer, models.RoleUser}}, 1, defaultPageLimit).
			Return([]models.User{{Role: models.RoleUser}}, 1, nil)

		resp, err := svc.List(context.Background(), admin(), 0, 0)

		require.NoError(t, err)
		assert.Len(t, resp.Items, 1)
		assert.Equal(t, 1, resp.Pagination.TotalPages)
	})

	t.Run("super user lists everyone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, _ := newUserService(ctrl)

		users.EXPECT().List(gomock.Any(), models.UserFilter{}, 1, 10).Return(nil, 0, nil)

		_, err := svc.List(context.Background(), superUser(), 1, 10)

		require.NoError(t, err)
	})

	t.Run("officer denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _ := newUserService(ctrl)

		_, err := svc.List(context.Background(), officer(), 1, 10)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("no actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _ := newUserService(ctrl)

		_, err := svc.List(context.Background(), nil, 1, 10)

		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})
}

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newUserService(ctrl)

	superID := primitive.NewObjectID()
	missingID := primitive.NewObjectID()
	users.EXPECT().FindByID(gomock.Any(), superID).Return(&models.User{ID: superID, Role: models.RoleSuperUser}, nil)
	users.EXPECT().FindByID(gomock.Any(), missingID).Return(nil, apperrors.ErrUserNotFound)

	_, err := svc.Get(context.Background(), admin(), superID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.Get(context.Background(), admin(), missingID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_Create(t *testing.T) {
	t.Run("admin cannot create admins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, _ := newUserService(ctrl)

		users.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Create(context.Background(), admin(), &models.CreateUserRequest{
			Email: "a@example.com", Password: "password123", Name: "Admin", Role: models.RoleAdmin,
		})

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("unknown lda is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, ldas := newUserService(ctrl)
		lda := primitive.NewObjectID()

		ldas.EXPECT().ExistAll(gomock.Any(), []primitive.ObjectID{lda}).Return(false, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Create(context.Background(), admin(), &models.CreateUserRequest{
			Email: "u@example.com", Password: "password123", Name: "User", Role: models.RoleUser,
			LDAIDs: models.IDList{lda},
		})

		assert.ErrorIs(t, err, apperrors.ErrUnknownLDA)
	})

	t.Run("admin creates scoped lda user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, ldas := newUserService(ctrl)
		lda := primitive.NewObjectID()

		ldas.EXPECT().ExistAll(gomock.Any(), gomock.Any()).Return(true, nil)
		users.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.User) error {
				assert.Equal(t, "u@example.com", u.Email)
				assert.Equal(t, []primitive.ObjectID{lda}, u.LDAIDs)
				assert.True(t, u.Approved)
				return nil
			})

		_, err := svc.Create(context.Background(), admin(), &models.CreateUserRequest{
			Email: "U@example.com", Password: "password123", Name: "User", Role: models.RoleUser,
			Approved: true, LDAIDs: models.IDList{lda},
		})

		require.NoError(t, err)
	})

	t.Run("staff account cannot carry lda ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, ldas := newUserService(ctrl)

		ldas.EXPECT().ExistAll(gomock.Any(), gomock.Any()).Times(0)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Create(context.Background(), superUser(), &models.CreateUserRequest{
			Email: "po@example.com", Password: "password123", Name: "Officer", Role: models.RoleProgrammeOfficer,
			LDAIDs: models.IDList{primitive.NewObjectID()},
		})

		assert.ErrorIs(t, err, apperrors.ErrStaffLDAScope)
	})

	t.Run("staff account is stored with empty lda ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, _ := newUserService(ctrl)

		users.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.User) error {
				assert.NotNil(t, u.LDAIDs)
				assert.Empty(t, u.LDAIDs)
				return nil
			})

		_, err := svc.Create(context.Background(), superUser(), &models.CreateUserRequest{
			Email: "po@example.com", Password: "password123", Name: "Officer", Role: models.RoleProgrammeOfficer,
		})

		require.NoError(t, err)
	})
}

// memUser keeps one user in memory and applies updates to it the way the
// repository does.
type memUser struct {
	user models.User
}

func (s *memUser) expect(users *repomocks.MockUserRepository) {
	users.EXPECT().FindByID(gomock.Any(), s.user.ID).DoAndReturn(
		func(context.Context, primitive.ObjectID) (*models.User, error) {
			u := s.user
			return &u, nil
		}).AnyTimes()
	users.EXPECT().Update(gomock.Any(), s.user.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ primitive.ObjectID, update *models.UserUpdate) (*models.User, error) {
			if update.Role != nil {
				s.user.Role = *update.Role
			}
			if update.SetLDAIDs {
				s.user.LDAIDs = update.LDAIDs
			}
			u := s.user
			return &u, nil
		}).AnyTimes()
}

func TestUserService_UpdateRoleChangeClearsLDAScope(t *testing.T) {
	lda := primitive.NewObjectID()

	t.Run("promotion to staff drops lda ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, _ := newUserService(ctrl)
		stored := &memUser{user: models.User{
			ID: primitive.NewObjectID(), Role: models.RoleUser, Approved: true, LDAIDs: []primitive.ObjectID{lda},
		}}
		stored.expect(users)

		officerRole := models.RoleProgrammeOfficer
		_, err := svc.Update(context.Background(), superUser(), stored.user.ID, &models.UpdateUserRequest{Role: &officerRole})
		require.NoError(t, err)
		assert.Empty(t, stored.user.LDAIDs)

		userRole := models.RoleUser
		_, err = svc.Update(context.Background(), superUser(), stored.user.ID, &models.UpdateUserRequest{Role: &userRole})
		require.NoError(t, err)

		assert.Empty(t, stored.user.LDAIDs)
		assert.False(t, authz.CanViewLDA(authz.NewActor(&stored.user), lda))
	})

	t.Run("staff update with lda ids is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, ldas := newUserService(ctrl)
		stored := &memUser{user: models.User{ID: primitive.NewObjectID(), Role: models.RoleProgrammeOfficer}}
		stored.expect(users)
		ldas.EXPECT().ExistAll(gomock.Any(), gomock.Any()).Times(0)

		ids := models.IDList{lda}
		_, err := svc.Update(context.Background(), superUser(), stored.user.ID, &models.UpdateUserRequest{LDAIDs: &ids})

		assert.ErrorIs(t, err, apperrors.ErrStaffLDAScope)
		assert.Empty(t, stored.user.LDAIDs)
	})

	t.Run("demotion may grant lda ids in the same request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, ldas := newUserService(ctrl)
		stored := &memUser{user: models.User{ID: primitive.NewObjectID(), Role: models.RoleProgrammeOfficer}}
		stored.expect(users)
		ldas.EXPECT().ExistAll(gomock.Any(), []primitive.ObjectID{lda}).Return(true, nil)

		userRole := models.RoleUser
		ids := models.IDList{lda}
		_, err := svc.Update(context.Background(), superUser(), stored.user.ID, &models.UpdateUserRequest{Role: &userRole, LDAIDs: &ids})

		require.NoError(t, err)
		assert.Equal(t, []primitive.ObjectID{lda}, stored.user.LDAIDs)
	})
}

func TestUserService_Update(t *testing.T) {
	target := &models.User{ID: primitive.NewObjectID(), Role: models.RoleUser}

	t.Run("admin cannot promote to admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, _ := newUserService(ctrl)
		role := models.RoleAdmin

		users.EXPECT().FindByID(gomock.Any(), target.ID).Return(target, nil)
		users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Update(context.Background(), admin(), target.ID, &models.UpdateUserRequest{Role: &role})

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("admin rescopes lda user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, ldas := newUserService(ctrl)
		ids := models.IDList{}

		users.EXPECT().FindByID(gomock.Any(), target.ID).Return(target, nil)
		users.EXPECT().
			Update(gomock.Any(), target.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ primitive.ObjectID, u *models.UserUpdate) (*models.User, error) {
				assert.True(t, u.SetLDAIDs)
				assert.Empty(t, u.LDAIDs)
				return target, nil
			})
		ldas.EXPECT().ExistAll(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Update(context.Background(), admin(), target.ID, &models.UpdateUserRequest{LDAIDs: &ids})

		require.NoError(t, err)
	})

	t.Run("missing user is not found before authorization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, _ := newUserService(ctrl)

		users.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUserNotFound)

		_, err := svc.Update(context.Background(), officer(), primitive.NewObjectID(), &models.UpdateUserRequest{})

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newUserService(ctrl)
	other := &models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}
	lda := &models.User{ID: primitive.NewObjectID(), Role: models.RoleUser}

	users.EXPECT().FindByID(gomock.Any(), other.ID).Return(other, nil)
	users.EXPECT().FindByID(gomock.Any(), lda.ID).Return(lda, nil)
	users.EXPECT().Delete(gomock.Any(), lda.ID).Return(nil)

	assert.ErrorIs(t, svc.Delete(context.Background(), admin(), other.ID), apperrors.ErrForbidden)
	assert.NoError(t, svc.Delete(context.Background(), admin(), lda.ID))
}
