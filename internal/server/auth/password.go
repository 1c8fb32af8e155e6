// Package auth implements the credential store: salted one-way password
// hashing and verification. Plaintext passwords only ever pass through this
// package's inputs; the rest of the system stores and compares digests.
package auth

import (
	"github.com/plateshare/plateshare/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// Digest is an opaque, salted bcrypt hash of a password. It can be checked
// against a candidate plaintext but never reversed.
type Digest string

// HashPassword derives a Digest from plaintext using the given bcrypt cost.
// A cost outside the bcrypt range falls back to the default adaptive cost.
// Empty passwords are rejected.
func HashPassword(plaintext string, cost int) (Digest, error) {
	if plaintext == "" {
		return "", common.NewValidationError("Password must be present")
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return Digest(b), nil
}

// Verify reports whether plaintext matches the digest. An empty or
// malformed digest verifies as false; Verify never returns an error.
func (d Digest) Verify(plaintext string) bool {
	if d == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(d), []byte(plaintext)) == nil
}
