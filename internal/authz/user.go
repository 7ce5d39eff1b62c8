package authz

import (
	"lda-portal/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CanManageUsers is the coarse gate for the user-management endpoints.
func CanManageUsers(a *Actor) bool {
	return isSuperOrAdmin(a)
}

// adminManageable are the roles an admin may touch or hand out.
func adminManageable(r models.Role) bool {
	return r == models.RoleProgrammeOfficer || r == models.RoleUser
}

// CanManageUserAccount reports whether a may view or change an account that
// currently holds targetRole. Admins are limited to programme officers and LDA
// users even though they pass CanManageUsers.
func CanManageUserAccount(a *Actor, targetRole models.Role) bool {
	switch {
	case IsSuperUser(a):
		return true
	case IsAdmin(a):
		return adminManageable(targetRole)
	default:
		return false
	}
}

// CanAssignRole reports whether a may give an account the role r.
func CanAssignRole(a *Actor, r models.Role) bool {
	if !r.Valid() {
		return false
	}
	switch {
	case IsSuperUser(a):
		return true
	case IsAdmin(a):
		return adminManageable(r)
	default:
		return false
	}
}

// CanCreateUser reports whether a may create an account with role r.
func CanCreateUser(a *Actor, r models.Role) bool {
	return CanManageUsers(a) && CanAssignRole(a, r)
}

// CanUpdateUser reports whether a may update an account holding targetRole,
// optionally changing it to newRole.
func CanUpdateUser(a *Actor, targetRole models.Role, newRole *models.Role) bool {
	if !CanManageUsers(a) || !CanManageUserAccount(a, targetRole) {
		return false
	}
	return newRole == nil || CanAssignRole(a, *newRole)
}

// CanDeleteUser reports whether a may delete an account holding targetRole.
func CanDeleteUser(a *Actor, targetRole models.Role) bool {
	return CanManageUsers(a) && CanManageUserAccount(a, targetRole)
}

// UserListScope returns the roles a user listing must be restricted to; nil
// means every role.
func UserListScope(a *Actor) []models.Role {
	if IsAdmin(a) {
		return []models.Role{models.RoleProgrammeOfficer, models.RoleUser}
	}
	return nil
}

// CanEditOwnAccount is the self-service entry point: an actor may read and
// edit their own profile. It is separate from the user-management checks and
// never grants role, approval or scope changes.
func CanEditOwnAccount(a *Actor, accountID primitive.ObjectID) bool {
	return a != nil && !accountID.IsZero() && a.ID == accountID
}
