package authz

import "go.mongodb.org/mongo-driver/bson/primitive"

// CanViewFunders reports whether a may see funders.
func CanViewFunders(a *Actor) bool {
	return isSuperOrAdmin(a)
}

// CanManageFunder reports whether a may create, edit or delete funders.
func CanManageFunder(a *Actor) bool {
	return isSuperOrAdmin(a)
}

// CanManageFund reports whether a may create, edit or delete funds.
func CanManageFund(a *Actor) bool {
	return isSuperOrAdmin(a)
}

// CanListFunds reports whether a may list funds. Programme officers and LDA
// users must scope the listing to an LDA they can view; a missing filter is a
// denial, not an empty result.
func CanListFunds(a *Actor, ldaFilter *primitive.ObjectID) bool {
	if isSuperOrAdmin(a) {
		return true
	}
	if !IsProgrammeOfficer(a) && !IsLDAUser(a) {
		return false
	}
	return ldaFilter != nil && CanViewLDA(a, *ldaFilter)
}

// CanViewFund reports whether a may see a single fund. fundLDAIDs are the
// LDAs the fund is linked to. Non-admin callers need a filter that passes
// CanListFunds and names one of those LDAs.
func CanViewFund(a *Actor, fundLDAIDs []primitive.ObjectID, ldaFilter *primitive.ObjectID) bool {
	if isSuperOrAdmin(a) {
		return true
	}
	if !CanListFunds(a, ldaFilter) {
		return false
	}
	return containsID(fundLDAIDs, *ldaFilter)
}
