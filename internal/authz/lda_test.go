package authz

import (
	"testing"

	"lda-portal/internal/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCanViewLDA(t *testing.T) {
	own := primitive.NewObjectID()
	other := primitive.NewObjectID()

	t.Run("staff see every lda", func(t *testing.T) {
		for _, role := range staffRoles {
			a := newActor(role)
			for i := 0; i < 5; i++ {
				assert.True(t, CanViewLDA(a, primitive.NewObjectID()), role)
			}
		}
	})

	t.Run("lda user sees only scoped ldas", func(t *testing.T) {
		a := newActor(models.RoleUser, own)

		assert.True(t, CanViewLDA(a, own))
		assert.False(t, CanViewLDA(a, other))
	})

	t.Run("lda user with empty scope sees nothing", func(t *testing.T) {
		a := newActor(models.RoleUser)

		assert.False(t, CanViewLDA(a, own))
		assert.False(t, CanViewLDA(a, other))
		assert.False(t, CanViewLDA(a, primitive.NilObjectID))
	})

	t.Run("staff scope field is ignored", func(t *testing.T) {
		a := &Actor{ID: primitive.NewObjectID(), Role: "AUDITOR", LDAIDs: []primitive.ObjectID{own}}

		assert.False(t, CanViewLDA(a, own))
	})

	t.Run("nil actor", func(t *testing.T) {
		assert.False(t, CanViewLDA(nil, own))
	})
}

func TestCanManageLDA_MatchesCanViewLDA(t *testing.T) {
	ldaA := primitive.NewObjectID()
	ldaB := primitive.NewObjectID()
	ldaC := primitive.NewObjectID()

	actors := []*Actor{
		nil,
		newActor(models.RoleSuperUser),
		newActor(models.RoleAdmin),
		newActor(models.RoleProgrammeOfficer),
		newActor(models.RoleUser),
		newActor(models.RoleUser, ldaA),
		newActor(models.RoleUser, ldaA, ldaB),
		newActor("UNKNOWN", ldaA),
	}

	for _, a := range actors {
		for _, id := range []primitive.ObjectID{ldaA, ldaB, ldaC, primitive.NilObjectID} {
			assert.Equal(t, CanViewLDA(a, id), CanManageLDA(a, id))
		}
	}
}

func TestCanCreateAndDeleteLDA(t *testing.T) {
	tests := []struct {
		role     models.Role
		expected bool
	}{
		{models.RoleSuperUser, true},
		{models.RoleAdmin, false},
		{models.RoleProgrammeOfficer, false},
		{models.RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			a := newActor(tt.role, primitive.NewObjectID())

			assert.Equal(t, tt.expected, CanCreateLDA(a))
			assert.Equal(t, tt.expected, CanDeleteLDA(a))
		})
	}

	t.Run("nil actor", func(t *testing.T) {
		assert.False(t, CanCreateLDA(nil))
		assert.False(t, CanDeleteLDA(nil))
	})
}

func TestLDAListScope(t *testing.T) {
	ldaID := primitive.NewObjectID()

	t.Run("staff list everything", func(t *testing.T) {
		for _, role := range staffRoles {
			ids, all := LDAListScope(newActor(role))
			assert.True(t, all)
			assert.Nil(t, ids)
		}
	})

	t.Run("lda user is limited to scope", func(t *testing.T) {
		ids, all := LDAListScope(newActor(models.RoleUser, ldaID))

		assert.False(t, all)
		assert.Equal(t, []primitive.ObjectID{ldaID}, ids)
	})

	t.Run("nil actor lists nothing", func(t *testing.T) {
		ids, all := LDAListScope(nil)

		assert.False(t, all)
		assert.Empty(t, ids)
		assert.False(t, CanListLDAs(nil))
	})
}
