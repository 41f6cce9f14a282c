// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"kickoff/config"
	domainerrors "kickoff/internal/domain/errors"
	"kickoff/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher. The work factor comes
// from config; values outside bcrypt's valid range fall back to the default.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil {
		if c := cfg.Auth.BcryptCost; c >= bcrypt.MinCost && c <= bcrypt.MaxCost {
			cost = c
		}
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a raw password using bcrypt.
// bcrypt generates a fresh random salt per call, so hashing the same password
// twice yields different hash values.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", domainerrors.ErrHashFailed.WrapMessage("refusing to hash an empty password")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a raw password with a bcrypt hash. bcrypt's comparison is
// constant-time, and a malformed hash is reported as a mismatch rather than
// an error.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}
