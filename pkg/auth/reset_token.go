package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const (
	resetTokenPrefix  = "pr_"
	resetTokenByteLen = 32
)

// ErrMalformedResetToken is returned by Validate for tokens this package
// could not have produced.
var ErrMalformedResetToken = errors.New("malformed reset token")

type resetTokenGenerator struct{}

// NewResetTokenGenerator creates a ResetTokenGenerator.
func NewResetTokenGenerator() ResetTokenGenerator {
	return &resetTokenGenerator{}
}

// Generate creates a token of the form pr_{64 hex chars}. Only the hash is
// meant to be persisted; the token itself goes to the user once.
func (g *resetTokenGenerator) Generate() (string, string, error) {
	buf := make([]byte, resetTokenByteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	token := resetTokenPrefix + hex.EncodeToString(buf)
	return token, g.Hash(token), nil
}

// Hash returns the SHA-256 hash of the token as a hex string.
func (g *resetTokenGenerator) Hash(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Validate checks prefix, length and encoding.
func (g *resetTokenGenerator) Validate(token string) error {
	body, ok := strings.CutPrefix(token, resetTokenPrefix)
	if !ok || len(body) != resetTokenByteLen*2 {
		return ErrMalformedResetToken
	}
	if _, err := hex.DecodeString(body); err != nil {
		return ErrMalformedResetToken
	}
	return nil
}

// CompareHashes compares two hashes in constant time.
func (g *resetTokenGenerator) CompareHashes(hash1, hash2 string) bool {
	return subtle.ConstantTimeCompare([]byte(hash1), []byte(hash2)) == 1
}
