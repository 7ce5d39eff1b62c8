// Package authz is the role- and relationship-based authorization engine.
// Every check is a pure function of an Actor and a small projection of the
// resource being acted on; nothing here reads storage or blocks.
package authz

import (
	"lda-portal/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Action names an operation a route handler wants to perform.
type Action string

// Action constants define the authorization actions.
const (
	ActionLDAList   Action = "lda:list"
	ActionLDAView   Action = "lda:view"
	ActionLDAManage Action = "lda:manage"
	ActionLDACreate Action = "lda:create"
	ActionLDADelete Action = "lda:delete"

	ActionFunderView   Action = "funder:view"
	ActionFunderManage Action = "funder:manage"
	ActionFundList     Action = "fund:list"
	ActionFundView     Action = "fund:view"
	ActionFundManage   Action = "fund:manage"

	ActionDocumentView   Action = "document:view"
	ActionDocumentCreate Action = "document:create"
	ActionDocumentEdit   Action = "document:edit"
	ActionDocumentDelete Action = "document:delete"

	ActionMediaView   Action = "media:view"
	ActionMediaCreate Action = "media:create"
	ActionMediaEdit   Action = "media:edit"
	ActionMediaDelete Action = "media:delete"

	ActionContactView   Action = "contact:view"
	ActionContactCreate Action = "contact:create"
	ActionContactEdit   Action = "contact:edit"
	ActionContactDelete Action = "contact:delete"

	ActionUserList   Action = "user:list"
	ActionUserView   Action = "user:view"
	ActionUserCreate Action = "user:create"
	ActionUserEdit   Action = "user:edit"
	ActionUserDelete Action = "user:delete"

	ActionAccountEdit Action = "account:edit"
)

// Resource is the minimal context a decision needs. Each action reads only
// the fields it documents; the rest stay zero.
type Resource struct {
	// LDAID is the LDA acted on (lda:*), or the LDA filter for fund:list and
	// fund:view.
	LDAID *primitive.ObjectID

	// LDAIDs are a contact's linked LDAs, the targets of contact:create, or
	// the LDAs a fund is linked to for fund:view.
	LDAIDs []primitive.ObjectID

	// File is the stored scope of a document or media item.
	File models.FileScope

	// Link and UploadedBy describe what a create or edit is about to write.
	Link       Link
	UploadedBy models.UploadedBy

	// TargetID and TargetRole identify the account acted on; NewRole is the
	// role a create or edit is about to write.
	TargetID   primitive.ObjectID
	TargetRole models.Role
	NewRole    *models.Role
}

// Decide reports whether actor may perform action on res. Unknown actions
// and nil actors are denied.
func Decide(actor *Actor, action Action, res Resource) bool {
	if actor == nil {
		return false
	}

	switch action {
	case ActionLDAList:
		return CanListLDAs(actor)
	case ActionLDAView:
		return res.LDAID != nil && CanViewLDA(actor, *res.LDAID)
	case ActionLDAManage:
		return res.LDAID != nil && CanManageLDA(actor, *res.LDAID)
	case ActionLDACreate:
		return CanCreateLDA(actor)
	case ActionLDADelete:
		return CanDeleteLDA(actor)

	case ActionFunderView:
		return CanViewFunders(actor)
	case ActionFunderManage:
		return CanManageFunder(actor)
	case ActionFundList:
		return CanListFunds(actor, res.LDAID)
	case ActionFundView:
		return CanViewFund(actor, res.LDAIDs, res.LDAID)
	case ActionFundManage:
		return CanManageFund(actor)

	case ActionDocumentView:
		return CanViewDocument(actor, res.File.LDAID)
	case ActionDocumentCreate:
		return CanCreateDocument(actor, res.Link, res.UploadedBy)
	case ActionDocumentEdit:
		return CanEditDocument(actor, res.File, res.Link, res.UploadedBy)
	case ActionDocumentDelete:
		return CanDeleteDocument(actor, res.File)

	case ActionMediaView:
		return CanViewMedia(actor, res.File.LDAID)
	case ActionMediaCreate:
		return CanCreateMedia(actor, res.Link, res.UploadedBy)
	case ActionMediaEdit:
		return CanEditMedia(actor, res.File, res.Link.LDAID)
	case ActionMediaDelete:
		return CanDeleteMedia(actor)

	case ActionContactView:
		return CanViewContact(actor, res.LDAIDs)
	case ActionContactCreate:
		return CanCreateContact(actor, res.LDAIDs)
	case ActionContactEdit:
		return CanEditContact(actor, res.LDAIDs)
	case ActionContactDelete:
		return CanDeleteContact(actor, res.LDAIDs)

	case ActionUserList:
		return CanManageUsers(actor)
	case ActionUserView:
		return CanManageUsers(actor) && CanManageUserAccount(actor, res.TargetRole)
	case ActionUserCreate:
		return res.NewRole != nil && CanCreateUser(actor, *res.NewRole)
	case ActionUserEdit:
		return CanUpdateUser(actor, res.TargetRole, res.NewRole)
	case ActionUserDelete:
		return CanDeleteUser(actor, res.TargetRole)

	case ActionAccountEdit:
		return CanEditOwnAccount(actor, res.TargetID)
	}

	return false
}

// LDA returns a Resource naming a single LDA.
func LDA(id primitive.ObjectID) Resource {
	return Resource{LDAID: &id}
}
