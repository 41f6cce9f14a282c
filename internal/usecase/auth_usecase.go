// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// RegisterUserInput defines the data required to register a new user.
// Password carries the raw password; the use case replaces it with a hash
// before anything is persisted.
type RegisterUserInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Age       int
}

// AuthUsecase defines the caller-facing authentication operations.
// Every operation collapses its failure detail to a primitive at this
// boundary: callers get a bool or a sentinel int, never a partial record and
// never the raw or hashed password. The reasons stay in the logs.
type AuthUsecase interface {
	// RegisterUser validates the candidate, rejects duplicates
	// (case-insensitively), hashes the password and persists the record.
	// Returns true only when the record was committed.
	RegisterUser(ctx context.Context, input *RegisterUserInput) bool

	// ValidateCredential reports whether the raw password matches the stored
	// hash for the given username. Missing input means false without any
	// store access.
	ValidateCredential(ctx context.Context, username, rawPassword string) bool

	// GetUserAge returns the stored age for the username, or -1 when the
	// username is empty or unknown. Callers must treat -1 as "unknown".
	GetUserAge(ctx context.Context, username string) int
}
