package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact is a person linked to one or more LDAs.
type Contact struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name      string               `json:"name" bson:"name" example:"Nomsa Dlamini"`
	Email     string               `json:"email" bson:"email" example:"nomsa@example.org"`
	Phone     string               `json:"phone" bson:"phone" example:"+27 82 000 0000"`
	Position  string               `json:"position" bson:"position" example:"Chairperson"`
	LDAIDs    []primitive.ObjectID `json:"ldaIds" bson:"ldaIds"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// CreateContactRequest is the payload for creating a contact.
type CreateContactRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=200" example:"Nomsa Dlamini"`
	Email    string `json:"email" binding:"omitempty,email" example:"nomsa@example.org"`
	Phone    string `json:"phone" binding:"omitempty,max=50"`
	Position string `json:"position" binding:"omitempty,max=100"`
	LDAIDs   IDList `json:"ldaIds" swaggertype:"array,string"`
}

// UpdateContactRequest is the payload for updating a contact.
type UpdateContactRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=200"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone" binding:"omitempty,max=50"`
	Position *string `json:"position" binding:"omitempty,max=100"`
	LDAIDs   *IDList `json:"ldaIds" swaggertype:"array,string"`
}

// ContactListResponse is the response for listing contacts.
type ContactListResponse struct {
	Items      []Contact  `json:"items"`
	Pagination Pagination `json:"pagination"`
}
