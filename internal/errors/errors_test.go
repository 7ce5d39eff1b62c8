package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrUnauthenticated", ErrUnauthenticated, "authentication required"},
		{"ErrForbidden", ErrForbidden, "forbidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestUserErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrUserNotFound", ErrUserNotFound, "user not found"},
		{"ErrUserAlreadyExists", ErrUserAlreadyExists, "user with this email already exists"},
		{"ErrInvalidCredentials", ErrInvalidCredentials, "invalid email or password"},
		{"ErrAccountNotApproved", ErrAccountNotApproved, "account is awaiting approval"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestResourceErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrLDANotFound", ErrLDANotFound, "lda not found"},
		{"ErrFunderNotFound", ErrFunderNotFound, "funder not found"},
		{"ErrFundNotFound", ErrFundNotFound, "fund not found"},
		{"ErrDocumentNotFound", ErrDocumentNotFound, "document not found"},
		{"ErrMediaNotFound", ErrMediaNotFound, "media not found"},
		{"ErrContactNotFound", ErrContactNotFound, "contact not found"},
		{"ErrStaffLDAScope", ErrStaffLDAScope, "lda ids are only allowed for the USER role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	all := []error{
		ErrInvalidID, ErrUnauthenticated, ErrForbidden,
		ErrUserNotFound, ErrUserAlreadyExists, ErrInvalidCredentials, ErrAccountNotApproved, ErrInvalidRole, ErrStaffLDAScope,
		ErrInvalidToken, ErrInvalidResetToken,
		ErrLDANotFound, ErrUnknownLDA, ErrFunderNotFound, ErrFundNotFound, ErrFunderHasFunds, ErrUnknownFund, ErrUnknownFunder,
		ErrDocumentNotFound, ErrMediaNotFound, ErrLinkRequired, ErrInvalidValidity,
		ErrContactNotFound, ErrContactLDARequired,
	}

	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}

func TestWrappedErrorsMatch(t *testing.T) {
	wrapped := fmt.Errorf("loading document: %w", ErrDocumentNotFound)

	assert.True(t, errors.Is(wrapped, ErrDocumentNotFound))
	assert.False(t, errors.Is(wrapped, ErrForbidden))
}
