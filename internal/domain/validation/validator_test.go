package validation

import (
	"math"
	"testing"

	"kickoff/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func validCandidate() *entity.User {
	return &entity.User{
		Username:     "bob_johnson",
		PasswordHash: "1234", // raw password at validation time
		FirstName:    "Bob",
		LastName:     "Johnson",
		Age:          17,
	}
}

func TestForRegistration_Valid(t *testing.T) {
	assert.NoError(t, ForRegistration(validCandidate()))
}

func TestForRegistration_NilCandidate(t *testing.T) {
	err := ForRegistration(nil)
	assert.True(t, errors.Is(err, ErrNilCandidate))
}

func TestForRegistration_FirstFailingRule(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*entity.User)
		wantErr error
	}{
		{name: "missing username", mutate: func(u *entity.User) { u.Username = "" }, wantErr: ErrMissingUsername},
		{name: "missing password", mutate: func(u *entity.User) { u.PasswordHash = "" }, wantErr: ErrMissingPassword},
		{name: "missing first name", mutate: func(u *entity.User) { u.FirstName = "" }, wantErr: ErrMissingFirstName},
		{name: "missing last name", mutate: func(u *entity.User) { u.LastName = "" }, wantErr: ErrMissingLastName},
		{
			// Username is checked first, so clearing every field reports it.
			name:    "empty candidate",
			mutate:  func(u *entity.User) { *u = entity.User{} },
			wantErr: ErrMissingUsername,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := validCandidate()
			tt.mutate(candidate)

			err := ForRegistration(candidate)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestForRegistration_AgeBounds(t *testing.T) {
	tests := []struct {
		name string
		age  int
		ok   bool
	}{
		{name: "zero", age: 0, ok: false},
		{name: "lower edge", age: 1, ok: true},
		{name: "upper edge", age: 125, ok: true},
		{name: "just above upper edge", age: 126, ok: false},
		{name: "negative", age: -1, ok: false},
		{name: "min int", age: math.MinInt, ok: false},
		{name: "max int", age: math.MaxInt, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := validCandidate()
			candidate.Age = tt.age

			err := ForRegistration(candidate)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, ErrAgeOutOfRange), "got %v", err)
			}
		})
	}
}
