// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing one registered person.
// The store assigns the ID on creation; the username is case-insensitively
// unique across all records and never changes afterwards.
type User struct {
	ID           uuid.UUID // The unique identifier for the user, assigned by the store.
	Username     string    // The login identifier. Unique when compared case-insensitively.
	FirstName    string    // The user's given name.
	LastName     string    // The user's family name.
	Age          int       // The user's age in years. Persisted values lie in [MinAge, MaxAge].
	PasswordHash string    // The bcrypt hash of the user's password. Never the raw password.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// Credential is a transient username/raw-password pair submitted for
// validation. It is never persisted and is discarded after use.
type Credential struct {
	Username string
	Password string
}
