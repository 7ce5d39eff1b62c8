package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Media is a photo or video attached to an LDA, a fund or a funder.
type Media struct {
	ID          primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Title       string              `json:"title" bson:"title" example:"Site visit, March"`
	Description string              `json:"description" bson:"description"`
	LDAID       *primitive.ObjectID `json:"ldaId,omitempty" bson:"ldaId,omitempty"`
	FundID      *primitive.ObjectID `json:"fundId,omitempty" bson:"fundId,omitempty"`
	FunderID    *primitive.ObjectID `json:"funderId,omitempty" bson:"funderId,omitempty"`
	UploadedBy  UploadedBy          `json:"uploadedBy" bson:"uploadedBy" example:"LDA"`
	FileKey     string              `json:"-" bson:"fileKey"`
	FileURL     string              `json:"fileUrl,omitempty" bson:"-"`
	ContentType string              `json:"contentType" bson:"contentType" example:"image/jpeg"`
	FileSize    int64               `json:"fileSize" bson:"fileSize" example:"1048576"`
	CreatedByID primitive.ObjectID  `json:"createdById" bson:"createdById"`
	CreatedAt   time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// Scope returns the authorization projection of m.
func (m *Media) Scope() FileScope {
	return FileScope{
		ID:          m.ID,
		LDAID:       m.LDAID,
		FundID:      m.FundID,
		FunderID:    m.FunderID,
		UploadedBy:  m.UploadedBy,
		CreatedByID: m.CreatedByID,
	}
}

// CreateMediaRequest is the payload for registering a media upload.
type CreateMediaRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=200" example:"Site visit, March"`
	Description string     `json:"description" binding:"omitempty,max=2000"`
	LDAID       *string    `json:"ldaId" binding:"omitempty,objectid"`
	FundID      *string    `json:"fundId" binding:"omitempty,objectid"`
	FunderID    *string    `json:"funderId" binding:"omitempty,objectid"`
	UploadedBy  UploadedBy `json:"uploadedBy" binding:"required,uploadedby" example:"LDA"`
	FileName    string     `json:"fileName" binding:"omitempty,max=255" example:"site-visit.jpg"`
	ContentType string     `json:"contentType" binding:"required,startswith=image/|startswith=video/" example:"image/jpeg"`
	FileSize    int64      `json:"fileSize" binding:"required,gt=0,max=209715200" example:"1048576"` // max 200MB
}

// UpdateMediaRequest is the payload for editing media metadata.
type UpdateMediaRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	LDAID       *string `json:"ldaId" binding:"omitempty,objectid"`
}

// MediaUpdate is the storage-level change set for a media item.
type MediaUpdate struct {
	Title       *string
	Description *string
	LDAID       *primitive.ObjectID
}

// CreateMediaResponse carries the new media item and where to upload it.
type CreateMediaResponse struct {
	Media     Media  `json:"media"`
	UploadURL string `json:"uploadUrl"`
}

// MediaListResponse is the response for listing media.
type MediaListResponse struct {
	Items      []Media    `json:"items"`
	Pagination Pagination `json:"pagination"`
}
