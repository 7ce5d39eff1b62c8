package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UploadedBy classifies who a document or media item was provided by.
type UploadedBy string

const (
	UploadedByLDA    UploadedBy = "LDA"
	UploadedBySCAT   UploadedBy = "SCAT"
	UploadedByFunder UploadedBy = "Funder"
	UploadedByFund   UploadedBy = "Fund"
)

// Valid reports whether u is one of the known tags.
func (u UploadedBy) Valid() bool {
	switch u {
	case UploadedByLDA, UploadedBySCAT, UploadedByFunder, UploadedByFund:
		return true
	}
	return false
}

// FileScope is the minimal projection of a document or media row needed for
// an authorization decision. A nil LDAID means the row belongs to a fund or
// funder rather than an LDA.
type FileScope struct {
	ID          primitive.ObjectID  `bson:"_id"`
	LDAID       *primitive.ObjectID `bson:"ldaId,omitempty"`
	FundID      *primitive.ObjectID `bson:"fundId,omitempty"`
	FunderID    *primitive.ObjectID `bson:"funderId,omitempty"`
	UploadedBy  UploadedBy          `bson:"uploadedBy"`
	CreatedByID primitive.ObjectID  `bson:"createdById"`
}

// Document is a file attached to an LDA, a fund or a funder.
type Document struct {
	ID          primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Title       string              `json:"title" bson:"title" example:"Audited financials 2023"`
	LDAID       *primitive.ObjectID `json:"ldaId,omitempty" bson:"ldaId,omitempty"`
	FundID      *primitive.ObjectID `json:"fundId,omitempty" bson:"fundId,omitempty"`
	FunderID    *primitive.ObjectID `json:"funderId,omitempty" bson:"funderId,omitempty"`
	UploadedBy  UploadedBy          `json:"uploadedBy" bson:"uploadedBy" example:"LDA"`
	FileKey     string              `json:"-" bson:"fileKey"`
	FileURL     string              `json:"fileUrl,omitempty" bson:"-"` // pre-signed, not stored
	ContentType string              `json:"contentType" bson:"contentType" example:"application/pdf"`
	FileSize    int64               `json:"fileSize" bson:"fileSize" example:"204800"`
	ValidFrom   *time.Time          `json:"validFrom,omitempty" bson:"validFrom,omitempty"`
	ValidUntil  *time.Time          `json:"validUntil,omitempty" bson:"validUntil,omitempty"`
	CreatedByID primitive.ObjectID  `json:"createdById" bson:"createdById"`
	CreatedAt   time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// Scope returns the authorization projection of d.
func (d *Document) Scope() FileScope {
	return FileScope{
		ID:          d.ID,
		LDAID:       d.LDAID,
		FundID:      d.FundID,
		FunderID:    d.FunderID,
		UploadedBy:  d.UploadedBy,
		CreatedByID: d.CreatedByID,
	}
}

// CreateDocumentRequest is the payload for registering a document upload.
type CreateDocumentRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=200" example:"Audited financials 2023"`
	LDAID       *string    `json:"ldaId" binding:"omitempty,objectid" example:"507f1f77bcf86cd799439011"`
	FundID      *string    `json:"fundId" binding:"omitempty,objectid"`
	FunderID    *string    `json:"funderId" binding:"omitempty,objectid"`
	UploadedBy  UploadedBy `json:"uploadedBy" binding:"required,uploadedby" example:"LDA"`
	FileName    string     `json:"fileName" binding:"omitempty,max=255" example:"financials-2023.pdf"`
	ContentType string     `json:"contentType" binding:"required,max=100" example:"application/pdf"`
	FileSize    int64      `json:"fileSize" binding:"required,gt=0,max=52428800" example:"204800"` // max 50MB
	ValidFrom   *time.Time `json:"validFrom"`
	ValidUntil  *time.Time `json:"validUntil"`
}

// UpdateDocumentRequest is the payload for editing document metadata.
type UpdateDocumentRequest struct {
	Title      *string     `json:"title" binding:"omitempty,min=1,max=200"`
	LDAID      *string     `json:"ldaId" binding:"omitempty,objectid"`
	FundID     *string     `json:"fundId" binding:"omitempty,objectid"`
	FunderID   *string     `json:"funderId" binding:"omitempty,objectid"`
	UploadedBy *UploadedBy `json:"uploadedBy" binding:"omitempty,uploadedby"`
	ValidFrom  *time.Time  `json:"validFrom"`
	ValidUntil *time.Time  `json:"validUntil"`
}

// DocumentUpdate is the storage-level change set for a document.
type DocumentUpdate struct {
	Title      *string
	LDAID      *primitive.ObjectID
	FundID     *primitive.ObjectID
	FunderID   *primitive.ObjectID
	UploadedBy *UploadedBy
	ValidFrom  *time.Time
	ValidUntil *time.Time
}

// CreateDocumentResponse carries the new document and where to upload it.
type CreateDocumentResponse struct {
	Document  Document `json:"document"`
	UploadURL string   `json:"uploadUrl" example:"https://s3.example.com/bucket/documents/...?X-Amz-Algorithm=..."`
}

// FileFilter selects documents or media by their owning scope. Exactly one
// field is set.
type FileFilter struct {
	LDAID    *primitive.ObjectID
	FundID   *primitive.ObjectID
	FunderID *primitive.ObjectID
}

// DocumentListResponse is the response for listing documents.
type DocumentListResponse struct {
	Items      []Document `json:"items"`
	Pagination Pagination `json:"pagination"`
}
