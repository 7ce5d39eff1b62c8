package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResetTokenKeys(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(string) string
		input    string
		expected string
	}{
		{"token hash", ResetTokenKey, "abc123", "password_reset:abc123"},
		{"empty token hash", ResetTokenKey, "", "password_reset:"},
		{"user id", ResetTokenUserKey, "507f1f77bcf86cd799439011", "password_reset_user:507f1f77bcf86cd799439011"},
		{"empty user id", ResetTokenUserKey, "", "password_reset_user:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.fn(tt.input))
		})
	}
}
