package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LDA is a Local Development Agency, the tenant most access is scoped to.
type LDA struct {
	ID                 primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name               string               `json:"name" bson:"name" example:"Ikhwezi Development Trust"`
	RegistrationNumber string               `json:"registrationNumber" bson:"registrationNumber" example:"NPO-123-456"`
	Province           string               `json:"province" bson:"province" example:"Eastern Cape"`
	FundIDs            []primitive.ObjectID `json:"fundIds" bson:"fundIds"`
	Operations         *LDAOperations       `json:"operations,omitempty" bson:"operations,omitempty"`
	Staff              []StaffMember        `json:"staff" bson:"staff"`
	CreatedAt          time.Time            `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt          time.Time            `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// LDAOperations is an LDA's operations record.
type LDAOperations struct {
	Vision         string   `json:"vision" bson:"vision" example:"Thriving rural villages"`
	Mission        string   `json:"mission" bson:"mission"`
	Values         string   `json:"values" bson:"values"`
	OperatingAreas []string `json:"operatingAreas" bson:"operatingAreas" example:"Mthatha,Lusikisiki"`
}

// StaffMember is a person employed by an LDA.
type StaffMember struct {
	Name     string `json:"name" bson:"name" binding:"required,min=2" example:"Sipho Ndlovu"`
	Position string `json:"position" bson:"position" example:"Programme Manager"`
	Email    string `json:"email" bson:"email" binding:"omitempty,email" example:"sipho@example.org"`
	Phone    string `json:"phone" bson:"phone" example:"+27 82 000 0000"`
}

// CreateLDARequest is the payload for creating an LDA.
type CreateLDARequest struct {
	Name               string         `json:"name" binding:"required,min=2,max=200" example:"Ikhwezi Development Trust"`
	RegistrationNumber string         `json:"registrationNumber" binding:"omitempty,max=50" example:"NPO-123-456"`
	Province           string         `json:"province" binding:"omitempty,max=100" example:"Eastern Cape"`
	FundIDs            IDList         `json:"fundIds" swaggertype:"array,string"`
	Operations         *LDAOperations `json:"operations"`
	Staff              []StaffMember  `json:"staff" binding:"omitempty,max=100,dive"`
}

// UpdateLDARequest is the payload for updating an LDA.
type UpdateLDARequest struct {
	Name               *string        `json:"name" binding:"omitempty,min=2,max=200" example:"Ikhwezi Development Trust"`
	RegistrationNumber *string        `json:"registrationNumber" binding:"omitempty,max=50" example:"NPO-123-456"`
	Province           *string        `json:"province" binding:"omitempty,max=100" example:"Eastern Cape"`
	FundIDs            *IDList        `json:"fundIds" swaggertype:"array,string"`
	Operations         *LDAOperations `json:"operations"`
	Staff              *[]StaffMember `json:"staff" binding:"omitempty,max=100,dive"`
}

// LDAListResponse is the response for listing LDAs.
type LDAListResponse struct {
	Items      []LDA      `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// Pagination contains pagination metadata.
type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"20"`
	TotalItems int `json:"totalItems" example:"42"`
	TotalPages int `json:"totalPages" example:"3"`
}

// NewPagination computes page metadata for total items.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = total / limit
		if total%limit > 0 {
			totalPages++
		}
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
