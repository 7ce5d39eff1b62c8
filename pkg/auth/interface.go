package auth

import "time"

//go:generate mockgen -destination=mocks/mock_auth.go -package=mocks lda-portal/pkg/auth TokenManager,ResetTokenGenerator

// TokenManager issues and verifies access tokens.
type TokenManager interface {
	// GenerateToken creates a signed access token for a user.
	GenerateToken(userID string) (string, error)
	// ValidateToken parses and validates an access token, returning its claims.
	ValidateToken(tokenString string) (*Claims, error)
	// Expiry is the lifetime of tokens produced by GenerateToken.
	Expiry() time.Duration
}

// ResetTokenGenerator produces single-use password reset tokens.
type ResetTokenGenerator interface {
	// Generate returns a new token and the hash under which it is stored.
	Generate() (token string, hash string, err error)
	// Hash returns the SHA-256 hash of a token.
	Hash(token string) string
	// Validate checks the token's shape without touching storage.
	Validate(token string) error
	// CompareHashes securely compares two token hashes.
	CompareHashes(hash1, hash2 string) bool
}

var (
	_ TokenManager        = (*JWTManager)(nil)
	_ ResetTokenGenerator = (*resetTokenGenerator)(nil)
)
