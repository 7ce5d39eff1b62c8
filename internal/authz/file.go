package authz

import (
	"lda-portal/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Link is the scope a document or media item is (or will be) attached to.
// Storage tolerates several links at once; checks look at the LDA first.
type Link struct {
	LDAID    *primitive.ObjectID
	FundID   *primitive.ObjectID
	FunderID *primitive.ObjectID
}

// LinkOf returns the link recorded on a stored file.
func LinkOf(s models.FileScope) Link {
	return Link{LDAID: s.LDAID, FundID: s.FundID, FunderID: s.FunderID}
}

// IsEmpty reports whether l names no scope at all.
func (l Link) IsEmpty() bool {
	return l.LDAID == nil && l.FundID == nil && l.FunderID == nil
}

func (l Link) hasFundingLink() bool {
	return l.FundID != nil || l.FunderID != nil
}

// CanAssignUploadedBy reports whether a may set tag on a file linked to
// ldaID. Funder and Fund tags are reserved to super users, SCAT to staff, and
// LDA to anyone who can view the target LDA.
func CanAssignUploadedBy(a *Actor, tag models.UploadedBy, ldaID *primitive.ObjectID) bool {
	switch tag {
	case models.UploadedByFunder, models.UploadedByFund:
		return IsSuperUser(a)
	case models.UploadedBySCAT:
		return IsStaff(a)
	case models.UploadedByLDA:
		return ldaID != nil && CanViewLDA(a, *ldaID)
	default:
		return false
	}
}

// CanViewDocument reports whether a may see a document owned by ldaID.
// Files with no owning LDA belong to a fund or funder and are staff-only.
func CanViewDocument(a *Actor, ldaID *primitive.ObjectID) bool {
	if IsStaff(a) {
		return true
	}
	if !IsLDAUser(a) || ldaID == nil {
		return false
	}
	return a.hasLDA(*ldaID)
}

// CanCreateDocument reports whether a may create a document with the given
// link and tag. LDA users may only attach to an LDA in their scope.
func CanCreateDocument(a *Actor, link Link, tag models.UploadedBy) bool {
	if a == nil {
		return false
	}
	if IsLDAUser(a) {
		if link.LDAID == nil || link.hasFundingLink() {
			return false
		}
		if !CanViewLDA(a, *link.LDAID) {
			return false
		}
	}
	return CanAssignUploadedBy(a, tag, link.LDAID)
}

// CanEditDocument reports whether a may save a document currently scoped as
// current with the resulting link and tag. Super users may edit anything;
// everyone else must be able to view the document as it is now and to assign
// the tag being written.
func CanEditDocument(a *Actor, current models.FileScope, next Link, tag models.UploadedBy) bool {
	if IsSuperUser(a) {
		return true
	}
	if !CanViewDocument(a, current.LDAID) {
		return false
	}
	if IsLDAUser(a) && next.hasFundingLink() {
		return false
	}
	return CanAssignUploadedBy(a, tag, next.LDAID)
}

// CanDeleteDocument reports whether a may delete a document. It is the edit
// rule applied to the document as stored, so LDA users may delete the
// LDA-tagged documents of their own LDAs and nothing else.
func CanDeleteDocument(a *Actor, current models.FileScope) bool {
	return CanEditDocument(a, current, LinkOf(current), current.UploadedBy)
}

// CanViewMedia reports whether a may see a media item owned by ldaID.
func CanViewMedia(a *Actor, ldaID *primitive.ObjectID) bool {
	return CanViewDocument(a, ldaID)
}

// CanCreateMedia reports whether a may create a media item with the given
// link and tag.
func CanCreateMedia(a *Actor, link Link, tag models.UploadedBy) bool {
	return CanCreateDocument(a, link, tag)
}

// CanEditMedia reports whether a may edit a media item. Only its creator or
// a super user may, regardless of LDA scope. Moving the item to another LDA
// additionally requires view access to the new LDA.
func CanEditMedia(a *Actor, current models.FileScope, newLDAID *primitive.ObjectID) bool {
	if IsSuperUser(a) {
		return true
	}
	if a == nil || current.CreatedByID.IsZero() || a.ID != current.CreatedByID {
		return false
	}
	if newLDAID != nil && (current.LDAID == nil || *newLDAID != *current.LDAID) {
		return CanViewLDA(a, *newLDAID)
	}
	return true
}

// CanDeleteMedia reports whether a may delete a media item. Deleting also
// removes the stored file, so it is reserved to super users.
func CanDeleteMedia(a *Actor) bool {
	return IsSuperUser(a)
}
