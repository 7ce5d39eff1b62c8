package authz

import "go.mongodb.org/mongo-driver/bson/primitive"

// CanViewContact reports whether a may see a contact linked to contactLDAIDs.
// Staff see all contacts; LDA users need any one shared LDA.
func CanViewContact(a *Actor, contactLDAIDs []primitive.ObjectID) bool {
	if IsStaff(a) {
		return true
	}
	return IsLDAUser(a) && sharesAnyLDA(a, contactLDAIDs)
}

// CanEditContact reports whether a may edit a contact. Super users always
// may; anyone else needs an overlap between their own LDA scope and the
// contact's LDAs.
func CanEditContact(a *Actor, contactLDAIDs []primitive.ObjectID) bool {
	if IsSuperUser(a) {
		return true
	}
	return sharesAnyLDA(a, contactLDAIDs)
}

// CanDeleteContact follows the edit rule.
func CanDeleteContact(a *Actor, contactLDAIDs []primitive.ObjectID) bool {
	return CanEditContact(a, contactLDAIDs)
}

// CanCreateContact reports whether a may create a contact linked to every LDA
// in targetLDAIDs. At least one target is required, and non-super users need
// access to all of them. This is an AND, unlike the OR used for viewing.
func CanCreateContact(a *Actor, targetLDAIDs []primitive.ObjectID) bool {
	if a == nil || len(targetLDAIDs) == 0 {
		return false
	}
	if IsSuperUser(a) {
		return true
	}
	return canAccessEveryLDA(a, targetLDAIDs)
}

// sharesAnyLDA is the OR policy: one LDA in common is enough.
func sharesAnyLDA(a *Actor, ldaIDs []primitive.ObjectID) bool {
	if a == nil {
		return false
	}
	for _, id := range ldaIDs {
		if a.hasLDA(id) {
			return true
		}
	}
	return false
}

// canAccessEveryLDA is the AND policy: every LDA must pass CanViewLDA.
func canAccessEveryLDA(a *Actor, ldaIDs []primitive.ObjectID) bool {
	for _, id := range ldaIDs {
		if !CanViewLDA(a, id) {
			return false
		}
	}
	return true
}
