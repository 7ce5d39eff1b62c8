package authz

import (
	"testing"

	"lda-portal/internal/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRolePredicates(t *testing.T) {
	tests := []struct {
		name    string
		actor   *Actor
		super   bool
		admin   bool
		po      bool
		ldaUser bool
		staff   bool
	}{
		{"super user", newActor(models.RoleSuperUser), true, false, false, false, true},
		{"admin", newActor(models.RoleAdmin), false, true, false, false, true},
		{"programme officer", newActor(models.RoleProgrammeOfficer), false, false, true, false, true},
		{"lda user", newActor(models.RoleUser), false, false, false, true, false},
		{"unknown role", newActor("AUDITOR"), false, false, false, false, false},
		{"empty role", newActor(""), false, false, false, false, false},
		{"nil actor", nil, false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.super, IsSuperUser(tt.actor))
			assert.Equal(t, tt.admin, IsAdmin(tt.actor))
			assert.Equal(t, tt.po, IsProgrammeOfficer(tt.actor))
			assert.Equal(t, tt.ldaUser, IsLDAUser(tt.actor))
			assert.Equal(t, tt.staff, IsStaff(tt.actor))
		})
	}
}

func TestNewActor(t *testing.T) {
	ldaID := primitive.NewObjectID()

	t.Run("nil user gives nil actor", func(t *testing.T) {
		assert.Nil(t, NewActor(nil))
	})

	t.Run("lda user keeps scope", func(t *testing.T) {
		u := &models.User{ID: primitive.NewObjectID(), Role: models.RoleUser, LDAIDs: []primitive.ObjectID{ldaID}}

		a := NewActor(u)

		assert.Equal(t, u.ID, a.ID)
		assert.Equal(t, models.RoleUser, a.Role)
		assert.Equal(t, []primitive.ObjectID{ldaID}, a.LDAIDs)
	})

	t.Run("scope is copied, not shared", func(t *testing.T) {
		u := &models.User{ID: primitive.NewObjectID(), Role: models.RoleUser, LDAIDs: []primitive.ObjectID{ldaID}}

		a := NewActor(u)
		u.LDAIDs[0] = primitive.NewObjectID()

		assert.Equal(t, ldaID, a.LDAIDs[0])
	})

	t.Run("staff scope is dropped", func(t *testing.T) {
		for _, role := range staffRoles {
			u := &models.User{ID: primitive.NewObjectID(), Role: role, LDAIDs: []primitive.ObjectID{ldaID}}

			a := NewActor(u)

			assert.Empty(t, a.LDAIDs, role)
		}
	})
}
