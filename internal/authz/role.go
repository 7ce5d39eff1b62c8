package authz

import "lda-portal/internal/models"

// IsSuperUser reports whether a is a super user.
func IsSuperUser(a *Actor) bool {
	return a != nil && a.Role == models.RoleSuperUser
}

// IsAdmin reports whether a is an admin. Super users are not admins.
func IsAdmin(a *Actor) bool {
	return a != nil && a.Role == models.RoleAdmin
}

// IsProgrammeOfficer reports whether a is a programme officer.
func IsProgrammeOfficer(a *Actor) bool {
	return a != nil && a.Role == models.RoleProgrammeOfficer
}

// IsLDAUser reports whether a is an LDA user.
func IsLDAUser(a *Actor) bool {
	return a != nil && a.Role == models.RoleUser
}

// IsStaff reports whether a holds one of the cross-LDA staff roles.
func IsStaff(a *Actor) bool {
	return IsSuperUser(a) || IsAdmin(a) || IsProgrammeOfficer(a)
}

func isSuperOrAdmin(a *Actor) bool {
	return IsSuperUser(a) || IsAdmin(a)
}
