// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"kickoff/config"
	"kickoff/internal/domain/entity"
	domainerrors "kickoff/internal/domain/errors"
	"kickoff/internal/domain/repository"
	"kickoff/internal/domain/service"
	"kickoff/internal/domain/validation"
	"kickoff/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultStoreTimeout = 5 * time.Second

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	storeTimeout time.Duration
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	storeTimeout := defaultStoreTimeout
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.StoreTimeout > 0 {
		storeTimeout = params.Config.Auth.StoreTimeout
	}

	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		storeTimeout: storeTimeout,
		logger:       params.Logger,
	}
}

// storeCtx bounds a store call so an unresponsive database surfaces as a
// failed operation rather than a hung request.
func (srv *authService) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, srv.storeTimeout)
}

// RegisterUser orchestrates the complete user registration process.
// Every failure path returns false; the reason is only logged.
func (srv *authService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) bool {
	candidate := buildCandidate(input)

	if err := validation.ForRegistration(candidate); err != nil {
		srv.logger.Warn("Registration rejected by validation", slog.Any("error", err))

		return false
	}

	// Hash outside the transaction: bcrypt is CPU-bound and must not hold a
	// store connection. After this point the raw password is no longer used.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return false
	}

	ctx, cancel := srv.storeCtx(ctx)
	defer cancel()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// Fast-path duplicate check for a friendly rejection. The unique
		// index on the normalized username remains the system of record, so
		// losing a concurrent race still fails the insert below.
		_, err := userRepo.FindByUsername(ctx, candidate.Username)
		if err == nil {
			return domainerrors.ErrDuplicateUsername.WrapMessage("username already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username availability")
		}

		record := &entity.User{
			Username:     candidate.Username,
			FirstName:    candidate.FirstName,
			LastName:     candidate.LastName,
			Age:          candidate.Age,
			PasswordHash: hashedPassword,
		}

		return userRepo.Create(ctx, record)
	})

	if err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateUsername) {
			srv.logger.Info("Registration rejected, username taken", slog.String("username", candidate.Username))
		} else {
			srv.logger.Error("Failed to execute registration transaction", slog.String("username", candidate.Username), slog.Any("error", err))
		}

		return false
	}

	srv.logger.Debug("Registration completed", slog.String("username", candidate.Username))

	return true
}

// ValidateCredential reports whether the submitted credential matches the
// stored record. The raw password and the stored hash never appear in logs
// or results.
func (srv *authService) ValidateCredential(ctx context.Context, username, rawPassword string) bool {
	if username == "" || rawPassword == "" {
		return false
	}

	ctx, cancel := srv.storeCtx(ctx)
	defer cancel()

	record, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Error("Failed to look up user for credential validation", slog.String("username", username), slog.Any("error", err))
		}

		return false
	}

	return srv.hasher.Check(rawPassword, record.PasswordHash)
}

// GetUserAge returns the stored age for the username, or -1 when unknown.
func (srv *authService) GetUserAge(ctx context.Context, username string) int {
	if username == "" {
		return -1
	}

	ctx, cancel := srv.storeCtx(ctx)
	defer cancel()

	record, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Error("Failed to look up user age", slog.String("username", username), slog.Any("error", err))
		}

		return -1
	}

	return record.Age
}

// buildCandidate maps the registration input onto the entity the validator
// checks. The raw password rides in PasswordHash as the "password source"
// field until hashing replaces it.
func buildCandidate(input *usecase.RegisterUserInput) *entity.User {
	if input == nil {
		return nil
	}

	return &entity.User{
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Age:          input.Age,
		PasswordHash: input.Password,
	}
}
