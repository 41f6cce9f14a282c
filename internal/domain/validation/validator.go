// Package validation holds the pure business-rule checks that gate what may
// be persisted. The functions here have no side effects and perform no I/O,
// so they can run before any store access.
package validation

import (
	"kickoff/internal/domain/entity"

	"github.com/pkg/errors"
)

// Age bounds for a persistable user record, inclusive on both ends.
const (
	MinAge = 1
	MaxAge = 125
)

// Each rule has its own sentinel so callers and tests can identify the first
// failing rule with errors.Is.
var (
	ErrNilCandidate     = errors.New("candidate is nil")
	ErrMissingUsername  = errors.New("username is required")
	ErrMissingPassword  = errors.New("password is required")
	ErrMissingFirstName = errors.New("first name is required")
	ErrMissingLastName  = errors.New("last name is required")
	ErrAgeOutOfRange    = errors.Errorf("age must be between %d and %d", MinAge, MaxAge)
)

// ForRegistration checks a candidate user record in rule order (username,
// password source, first name, last name, age) and returns the first failing
// rule's error, or nil when the candidate may be persisted. The candidate
// carries the raw password in PasswordHash at this point; hashing happens
// after validation succeeds.
func ForRegistration(candidate *entity.User) error {
	if candidate == nil {
		return ErrNilCandidate
	}
	if candidate.Username == "" {
		return ErrMissingUsername
	}
	if candidate.PasswordHash == "" {
		return ErrMissingPassword
	}
	if candidate.FirstName == "" {
		return ErrMissingFirstName
	}
	if candidate.LastName == "" {
		return ErrMissingLastName
	}
	if candidate.Age < MinAge || candidate.Age > MaxAge {
		return ErrAgeOutOfRange
	}

	return nil
}
