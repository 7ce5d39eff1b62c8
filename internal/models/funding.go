package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Funder is an organisation that finances one or more funds.
type Funder struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name         string             `json:"name" bson:"name" example:"Sundry Charitable Trust"`
	ContactEmail string             `json:"contactEmail" bson:"contactEmail" example:"grants@example.org"`
	Website      string             `json:"website" bson:"website" example:"https://example.org"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Fund is a pot of money a funder makes available to LDAs.
type Fund struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439012"`
	FunderID    primitive.ObjectID `json:"funderId" bson:"funderId" example:"507f1f77bcf86cd799439011"`
	Name        string             `json:"name" bson:"name" example:"Rural Enterprise Fund 2024"`
	Description string             `json:"description" bson:"description"`
	Amount      int64              `json:"amount" bson:"amount" example:"2500000"` // minor units
	Currency    string             `json:"currency" bson:"currency" example:"ZAR"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateFunderRequest is the payload for creating a funder.
type CreateFunderRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=200" example:"Sundry Charitable Trust"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email" example:"grants@example.org"`
	Website      string `json:"website" binding:"omitempty,url" example:"https://example.org"`
}

// UpdateFunderRequest is the payload for updating a funder.
type UpdateFunderRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=2,max=200"`
	ContactEmail *string `json:"contactEmail" binding:"omitempty,email"`
	Website      *string `json:"website" binding:"omitempty,url"`
}

// CreateFundRequest is the payload for creating a fund.
type CreateFundRequest struct {
	FunderID    string `json:"funderId" binding:"required,objectid" example:"507f1f77bcf86cd799439011"`
	Name        string `json:"name" binding:"required,min=2,max=200" example:"Rural Enterprise Fund 2024"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Amount      int64  `json:"amount" binding:"gte=0" example:"2500000"`
	Currency    string `json:"currency" binding:"omitempty,len=3,uppercase" example:"ZAR"`
}

// UpdateFundRequest is the payload for updating a fund.
type UpdateFundRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Amount      *int64  `json:"amount" binding:"omitempty,gte=0"`
	Currency    *string `json:"currency" binding:"omitempty,len=3,uppercase"`
}

// FunderListResponse is the response for listing funders.
type FunderListResponse struct {
	Items      []Funder   `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// FundListResponse is the response for listing funds.
type FundListResponse struct {
	Items      []Fund     `json:"items"`
	Pagination Pagination `json:"pagination"`
}
