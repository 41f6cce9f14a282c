package impl

import (
	"context"
	"testing"

	"kickoff/internal/infra/auth"
	"kickoff/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRoundTripService wires the service against the in-memory fake store and
// the real bcrypt hasher, exercising the full register/validate/age flow.
func newRoundTripService(t *testing.T) (usecase.AuthUsecase, *fakeUserStore) {
	t.Helper()

	store := newFakeUserStore()
	cfg := newTestConfig()

	service := NewAuthService(AuthServiceParams{
		TxManager: passthroughTxManager{repo: store},
		UserRepo:  store,
		Hasher:    auth.NewBcryptHasher(cfg),
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	return service, store
}

func TestAuthService_RoundTrip_RegisterThenValidate(t *testing.T) {
	service, _ := newRoundTripService(t)
	ctx := context.Background()

	require.True(t, service.RegisterUser(ctx, validInput()))

	assert.True(t, service.ValidateCredential(ctx, "bob_johnson", "1234"))
	assert.False(t, service.ValidateCredential(ctx, "bob_johnson", "1234extra"))
	assert.False(t, service.ValidateCredential(ctx, "bob_johnsonnot", "1234"))
}

func TestAuthService_RoundTrip_CrossUserPassword(t *testing.T) {
	service, _ := newRoundTripService(t)
	ctx := context.Background()

	require.True(t, service.RegisterUser(ctx, validInput()))
	require.True(t, service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Username:  "ryan_daniels",
		Password:  "password",
		FirstName: "Ryan",
		LastName:  "Daniels",
		Age:       14,
	}))

	// A valid password paired with another user's username must fail.
	assert.False(t, service.ValidateCredential(ctx, "bob_johnson", "password"))
	assert.False(t, service.ValidateCredential(ctx, "ryan_daniels", "1234"))
}

func TestAuthService_RoundTrip_DuplicateUsernameCaseInsensitive(t *testing.T) {
	service, store := newRoundTripService(t)
	ctx := context.Background()

	first := validInput()
	first.Username = "Bob"
	require.True(t, service.RegisterUser(ctx, first))

	second := validInput()
	second.Username = "bob"
	assert.False(t, service.RegisterUser(ctx, second))
	assert.Equal(t, 1, store.count())
}

func TestAuthService_RoundTrip_UnicodeUsernames(t *testing.T) {
	service, _ := newRoundTripService(t)
	ctx := context.Background()

	// Icelandic, Arabic and Mandarin usernames behave exactly like ASCII.
	usernames := []string{"Davíð", "ديفيد", "大衛"}

	for _, username := range usernames {
		input := validInput()
		input.Username = username

		require.True(t, service.RegisterUser(ctx, input), "register %q", username)
		assert.True(t, service.ValidateCredential(ctx, username, "1234"), "validate %q", username)
		assert.Equal(t, 17, service.GetUserAge(ctx, username), "age of %q", username)
	}
}

func TestAuthService_RoundTrip_GetUserAge(t *testing.T) {
	service, _ := newRoundTripService(t)
	ctx := context.Background()

	require.True(t, service.RegisterUser(ctx, validInput()))

	assert.Equal(t, 17, service.GetUserAge(ctx, "bob_johnson"))
	assert.Equal(t, -1, service.GetUserAge(ctx, "new_bob_johnson"))
}

func TestAuthService_RoundTrip_InvalidCandidatePersistsNothing(t *testing.T) {
	service, store := newRoundTripService(t)
	ctx := context.Background()

	input := validInput()
	input.Age = 126
	assert.False(t, service.RegisterUser(ctx, input))
	assert.Equal(t, 0, store.count())
}
