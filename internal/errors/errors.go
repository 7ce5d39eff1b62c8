// Package errors provides custom error types for the application.
package errors

import "errors"

// ErrInvalidID is returned for a malformed object id.
var ErrInvalidID = errors.New("invalid id")

// Access errors. ErrForbidden carries no detail on purpose: callers must not
// learn which scope rule failed.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotApproved = errors.New("account is awaiting approval")
	ErrInvalidRole        = errors.New("invalid role")
	ErrStaffLDAScope      = errors.New("lda ids are only allowed for the USER role")
)

// Auth errors
var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)

// LDA errors
var (
	ErrLDANotFound = errors.New("lda not found")
	ErrUnknownLDA  = errors.New("one or more lda ids do not exist")
)

// Funding errors
var (
	ErrFunderNotFound = errors.New("funder not found")
	ErrFundNotFound   = errors.New("fund not found")
	ErrFunderHasFunds = errors.New("funder still has funds")
	ErrUnknownFund    = errors.New("one or more fund ids do not exist")
	ErrUnknownFunder  = errors.New("funder does not exist")
)

// Document and media errors
var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrMediaNotFound    = errors.New("media not found")
	ErrLinkRequired     = errors.New("one of ldaId, fundId or funderId is required")
	ErrInvalidValidity  = errors.New("validUntil must be after validFrom")
)

// Contact errors
var (
	ErrContactNotFound    = errors.New("contact not found")
	ErrContactLDARequired = errors.New("at least one lda id is required")
)
