// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"kickoff/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a username lookup
// matches no record.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByUsername retrieves at most one user whose username matches the
	// given one case-insensitively. A miss returns ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user entity and assigns its ID. The store
	// enforces case-insensitive username uniqueness atomically, so a
	// concurrent duplicate insert fails here rather than producing two rows.
	Create(ctx context.Context, user *entity.User) error

	// No update or delete: a persisted record is immutable in this core.
}
