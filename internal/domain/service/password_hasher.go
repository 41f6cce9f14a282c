// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a raw password. Two calls with the
	// same input produce different hashes; Check remains consistent for both.
	// Hashing an empty password is an error.
	Hash(password string) (string, error)

	// Check compares a raw password with a stored hash. The comparison runs
	// in time independent of where a mismatch occurs. A malformed hash is a
	// plain mismatch, never an error or panic.
	Check(password, hash string) bool
}
