package authz

import "go.mongodb.org/mongo-driver/bson/primitive"

// CanViewLDA reports whether a may see the LDA and its sub-resources.
// Staff see every LDA; LDA users see only the LDAs they are scoped to.
func CanViewLDA(a *Actor, ldaID primitive.ObjectID) bool {
	switch {
	case IsStaff(a):
		return true
	case IsLDAUser(a):
		return a.hasLDA(ldaID)
	default:
		return false
	}
}

// CanManageLDA reports whether a may change the LDA and its sub-resources.
// Its table currently matches CanViewLDA; it is kept separate so the two can
// diverge without touching callers.
func CanManageLDA(a *Actor, ldaID primitive.ObjectID) bool {
	switch {
	case IsStaff(a):
		return true
	case IsLDAUser(a):
		return a.hasLDA(ldaID)
	default:
		return false
	}
}

// CanCreateLDA reports whether a may create LDAs.
func CanCreateLDA(a *Actor) bool {
	return IsSuperUser(a)
}

// CanDeleteLDA reports whether a may delete LDAs.
func CanDeleteLDA(a *Actor) bool {
	return IsSuperUser(a)
}

// CanListLDAs reports whether a may list LDAs at all. The listing itself is
// narrowed by LDAListScope.
func CanListLDAs(a *Actor) bool {
	return IsStaff(a) || IsLDAUser(a)
}

// LDAListScope returns the LDA ids a listing must be restricted to. all is
// true for staff, who see every LDA.
func LDAListScope(a *Actor) (ids []primitive.ObjectID, all bool) {
	if IsStaff(a) {
		return nil, true
	}
	return a.scopedLDAIDs(), false
}
