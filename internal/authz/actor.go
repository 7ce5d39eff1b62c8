package authz

import (
	"lda-portal/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Actor is the authenticated principal making a request. It is built once per
// request from freshly loaded account data and never mutated afterwards.
// A nil *Actor is an unauthenticated caller and fails every check.
type Actor struct {
	ID     primitive.ObjectID
	Role   models.Role
	LDAIDs []primitive.ObjectID
}

// NewActor builds an Actor from a stored user. LDA scope is only carried for
// LDA users; staff roles derive their reach from the role itself.
func NewActor(u *models.User) *Actor {
	if u == nil {
		return nil
	}

	a := &Actor{ID: u.ID, Role: u.Role}
	if u.Role == models.RoleUser && len(u.LDAIDs) > 0 {
		a.LDAIDs = make([]primitive.ObjectID, len(u.LDAIDs))
		copy(a.LDAIDs, u.LDAIDs)
	}
	return a
}

// scopedLDAIDs returns the LDA ids an actor is explicitly scoped to. It is
// empty for every role but RoleUser, whatever the LDAIDs field holds.
func (a *Actor) scopedLDAIDs() []primitive.ObjectID {
	if !IsLDAUser(a) {
		return nil
	}
	return a.LDAIDs
}

func (a *Actor) hasLDA(id primitive.ObjectID) bool {
	return containsID(a.scopedLDAIDs(), id)
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
