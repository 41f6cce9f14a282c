package auth

import (
	"testing"

	"kickoff/config"
	domainerrors "kickoff/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	// MinCost keeps the test suite fast; the algorithm is identical.
	return &bcryptHasher{cost: bcrypt.MinCost}
}

func TestBcryptHasher_HashRoundTrip(t *testing.T) {
	hasher := newTestHasher()

	password := "s3cret-pass"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("other-pass", hash))
}

func TestBcryptHasher_HashEmptyPassword(t *testing.T) {
	hasher := newTestHasher()

	_, err := hasher.Hash("")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrHashFailed))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("same-input")
	assert.NoError(t, err)
	second, err := hasher.Hash("same-input")
	assert.NoError(t, err)

	// A fresh salt per call means the encodings differ while both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-input", first))
	assert.True(t, hasher.Check("same-input", second))
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := newTestHasher()

	assert.False(t, hasher.Check("whatever", ""))
	assert.False(t, hasher.Check("whatever", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("whatever", "$2a$garbage"))
}

func TestBcryptHasher_CheckCrossPasswords(t *testing.T) {
	hasher := newTestHasher()

	hashA, err := hasher.Hash("password-a")
	assert.NoError(t, err)
	hashB, err := hasher.Hash("password-b")
	assert.NoError(t, err)

	assert.False(t, hasher.Check("password-a", hashB))
	assert.False(t, hasher.Check("password-b", hashA))
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}

	hasher, ok := NewBcryptHasher(cfg).(*bcryptHasher)
	assert.True(t, ok)
	assert.Equal(t, bcrypt.MinCost, hasher.cost)

	// Out-of-range cost falls back to bcrypt's default.
	cfg.Auth.BcryptCost = 99
	hasher, ok = NewBcryptHasher(cfg).(*bcryptHasher)
	assert.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
