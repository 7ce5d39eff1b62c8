// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a user's system-wide role.
type Role string

// Role constants. Staff roles see every LDA; RoleUser is scoped by LDAIDs.
const (
	RoleSuperUser        Role = "SUPER_USER"
	RoleAdmin            Role = "ADMIN"
	RoleProgrammeOfficer Role = "PROGRAMME_OFFICER"
	RoleUser             Role = "USER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperUser, RoleAdmin, RoleProgrammeOfficer, RoleUser:
		return true
	}
	return false
}

// User represents a user account.
type User struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Email     string               `json:"email" bson:"email" example:"user@example.com"`
	Password  string               `json:"-" bson:"password"` // "-" = never include in JSON response
	Name      string               `json:"name" bson:"name" example:"Thandi Mokoena"`
	Role      Role                 `json:"role" bson:"role" example:"USER"`
	Approved  bool                 `json:"approved" bson:"approved" example:"true"`
	LDAIDs    []primitive.ObjectID `json:"ldaIds" bson:"ldaIds"` // empty unless Role is RoleUser
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time            `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// CreateUserRequest is the payload for an administrator creating an account.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"secret123"`
	Name     string `json:"name" binding:"required,min=2" example:"Thandi Mokoena"`
	Role     Role   `json:"role" binding:"required,role" example:"USER"`
	Approved bool   `json:"approved" example:"true"`
	LDAIDs   IDList `json:"ldaIds" swaggertype:"array,string"`
}

// UpdateUserRequest is the payload for an administrator updating an account.
type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email" example:"newemail@example.com"`
	Name     *string `json:"name" binding:"omitempty,min=2" example:"Jane Doe"`
	Role     *Role   `json:"role" binding:"omitempty,role" example:"PROGRAMME_OFFICER"`
	Approved *bool   `json:"approved" example:"true"`
	LDAIDs   *IDList `json:"ldaIds" swaggertype:"array,string"`
}

// UpdateAccountRequest is the payload for a user editing their own profile.
// It deliberately has no role, approval or LDA fields.
type UpdateAccountRequest struct {
	Email *string `json:"email" binding:"omitempty,email" example:"me@example.com"`
	Name  *string `json:"name" binding:"omitempty,min=2" example:"Jane Doe"`
}

// ChangePasswordRequest is the payload for changing one's own password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required" example:"secret123"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=72" example:"evenmoresecret"`
}

// UserUpdate is the storage-level change set for a user.
type UserUpdate struct {
	Email    *string
	Name     *string
	Password *string
	Role     *Role
	Approved *bool
	LDAIDs   []primitive.ObjectID

	// SetLDAIDs distinguishes "clear the list" from "leave it alone".
	SetLDAIDs bool
}

// UserFilter narrows a user listing.
type UserFilter struct {
	Roles []Role
}

// UserListResponse is the response for listing users.
type UserListResponse struct {
	Items      []User     `json:"items"`
	Pagination Pagination `json:"pagination"`
}
