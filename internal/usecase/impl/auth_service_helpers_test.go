package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"kickoff/config"
	"kickoff/internal/domain/entity"
	domainerrors "kickoff/internal/domain/errors"
	"kickoff/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:   4,
			StoreTimeout: time.Second,
		},
	}
}

// --- testify mocks ---

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)

	var user *entity.User
	if v := args.Get(0); v != nil {
		user = v.(*entity.User)
	}

	return user, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// passthroughTxManager runs the callback against a fixed repository, standing
// in for a real transaction.
type passthroughTxManager struct {
	repo repository.UserRepository
}

func (m passthroughTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(staticRepoFactory{repo: m.repo})
}

type staticRepoFactory struct {
	repo repository.UserRepository
}

func (f staticRepoFactory) UserRepo() repository.UserRepository {
	return f.repo
}

// --- in-memory fake store ---

// fakeUserStore implements UserRepository with the store contract the service
// relies on: case-insensitive lookup and atomic case-insensitive uniqueness.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]*entity.User // keyed by lowercased username
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*entity.User)}
}

func (s *fakeUserStore) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[strings.ToLower(username)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	copied := *user

	return &copied, nil
}

func (s *fakeUserStore) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(user.Username)
	if _, exists := s.users[key]; exists {
		return domainerrors.ErrDuplicateUsername.WrapMessage("username already exists")
	}

	user.ID = uuid.New()
	copied := *user
	s.users[key] = &copied

	return nil
}

func (s *fakeUserStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.users)
}
