package authz

import (
	"testing"

	"lda-portal/internal/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCanViewContact(t *testing.T) {
	a1 := primitive.NewObjectID()
	a2 := primitive.NewObjectID()
	a3 := primitive.NewObjectID()

	t.Run("any shared lda grants view", func(t *testing.T) {
		actor := newActor(models.RoleUser, a1)

		assert.True(t, CanViewContact(actor, []primitive.ObjectID{a1, a2}))
		assert.True(t, CanViewContact(actor, []primitive.ObjectID{a2, a1}))
	})

	t.Run("no shared lda denies view", func(t *testing.T) {
		actor := newActor(models.RoleUser, a3)

		assert.False(t, CanViewContact(actor, []primitive.ObjectID{a1, a2}))
	})

	t.Run("contact without ldas is hidden from lda users", func(t *testing.T) {
		assert.False(t, CanViewContact(newActor(models.RoleUser, a1), nil))
	})

	t.Run("staff see every contact", func(t *testing.T) {
		for _, role := range staffRoles {
			assert.True(t, CanViewContact(newActor(role), []primitive.ObjectID{a1}), role)
			assert.True(t, CanViewContact(newActor(role), nil), role)
		}
	})

	t.Run("nil actor", func(t *testing.T) {
		assert.False(t, CanViewContact(nil, []primitive.ObjectID{a1}))
	})
}

func TestCanEditContact(t *testing.T) {
	a1 := primitive.NewObjectID()
	a2 := primitive.NewObjectID()

	tests := []struct {
		name     string
		actor    *Actor
		ldaIDs   []primitive.ObjectID
		expected bool
	}{
		{"super user", newActor(models.RoleSuperUser), []primitive.ObjectID{a1}, true},
		{"super user on unlinked contact", newActor(models.RoleSuperUser), nil, true},
		{"lda user with overlap", newActor(models.RoleUser, a2), []primitive.ObjectID{a1, a2}, true},
		{"lda user without overlap", newActor(models.RoleUser, a2), []primitive.ObjectID{a1}, false},
		{"admin has no lda scope of its own", newActor(models.RoleAdmin), []primitive.ObjectID{a1}, false},
		{"programme officer has no lda scope of its own", newActor(models.RoleProgrammeOfficer), []primitive.ObjectID{a1}, false},
		{"nil actor", nil, []primitive.ObjectID{a1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanEditContact(tt.actor, tt.ldaIDs))
			assert.Equal(t, tt.expected, CanDeleteContact(tt.actor, tt.ldaIDs))
		})
	}
}

func TestCanCreateContact(t *testing.T) {
	a1 := primitive.NewObjectID()
	a2 := primitive.NewObjectID()

	t.Run("requires every target lda", func(t *testing.T) {
		actor := newActor(models.RoleUser, a1)

		assert.True(t, CanCreateContact(actor, []primitive.ObjectID{a1}))
		assert.False(t, CanCreateContact(actor, []primitive.ObjectID{a1, a2}))
	})

	t.Run("requires at least one target", func(t *testing.T) {
		for _, role := range allRoles {
			assert.False(t, CanCreateContact(newActor(role, a1), nil), role)
			assert.False(t, CanCreateContact(newActor(role, a1), []primitive.ObjectID{}), role)
		}
	})

	t.Run("super user bypasses target check", func(t *testing.T) {
		assert.True(t, CanCreateContact(newActor(models.RoleSuperUser), []primitive.ObjectID{a1, a2}))
	})

	t.Run("staff pass through lda view", func(t *testing.T) {
		assert.True(t, CanCreateContact(newActor(models.RoleAdmin), []primitive.ObjectID{a1, a2}))
		assert.True(t, CanCreateContact(newActor(models.RoleProgrammeOfficer), []primitive.ObjectID{a1, a2}))
	})

	t.Run("nil actor", func(t *testing.T) {
		assert.False(t, CanCreateContact(nil, []primitive.ObjectID{a1}))
	})
}

// The same actor and LDA set must yield view=true and create=false: view is
// an OR over shared LDAs, create an AND over every target.
func TestContactViewAndCreateUseDifferentPolicies(t *testing.T) {
	a1 := primitive.NewObjectID()
	a2 := primitive.NewObjectID()
	actor := newActor(models.RoleUser, a1)
	ldas := []primitive.ObjectID{a1, a2}

	assert.True(t, CanViewContact(actor, ldas))
	assert.True(t, CanEditContact(actor, ldas))
	assert.False(t, CanCreateContact(actor, ldas))
}
