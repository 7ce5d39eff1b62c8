package authz

import (
	"lda-portal/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var allRoles = []models.Role{
	models.RoleSuperUser,
	models.RoleAdmin,
	models.RoleProgrammeOfficer,
	models.RoleUser,
}

var staffRoles = []models.Role{
	models.RoleSuperUser,
	models.RoleAdmin,
	models.RoleProgrammeOfficer,
}

func newActor(role models.Role, ldaIDs ...primitive.ObjectID) *Actor {
	return &Actor{ID: primitive.NewObjectID(), Role: role, LDAIDs: ldaIDs}
}

func idPtr(id primitive.ObjectID) *primitive.ObjectID {
	return &id
}

func rolePtr(r models.Role) *models.Role {
	return &r
}
