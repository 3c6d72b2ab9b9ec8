package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"account-server/internal/models"
	"account-server/internal/password"
	"account-server/internal/repository"
)

// Compile-time check to ensure accountServiceImpl implements AccountService
var _ AccountService = (*accountServiceImpl)(nil)

type accountServiceImpl struct {
	repo   repository.AccountRepository
	hasher password.Hasher
	logger *zap.Logger

	// decoyDigest is verified against when the name is unknown, so lookups
	// for missing accounts take the same hashing path as wrong passwords.
	decoyDigest string
}

// NewAccountService creates a new AccountService.
func NewAccountService(repo repository.AccountRepository, hasher password.Hasher, logger *zap.Logger) (AccountService, error) {
	decoy, err := hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("failed to prepare decoy digest: %w", err)
	}
	return &accountServiceImpl{
		repo:        repo,
		hasher:      hasher,
		logger:      logger.Named("AccountService"),
		decoyDigest: decoy,
	}, nil
}

// Register creates a new account. Duplicate names and emails surface from the
// store's unique constraints; there is no check-then-insert.
func (s *accountServiceImpl) Register(ctx context.Context, name, pass string, email *string) (*models.Account, error) {
	s.logger.Info("Registering new account", zap.String("name", name))

	digest, err := s.hasher.Hash(pass)
	if err != nil {
		s.logger.Error("Failed to hash password during registration", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		Name:           name,
		PasswordDigest: digest,
		Email:          email,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, models.ErrNameTaken) || errors.Is(err, models.ErrEmailTaken) {
			return nil, err
		}
		s.logger.Error("Failed to create account via repository", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Account registered successfully", zap.String("accountID", account.ID.String()), zap.String("name", account.Name))
	return account, nil
}

// Authenticate resolves credentials to an account. Unknown name and wrong
// password collapse to the same outcome and a comparable amount of work.
func (s *accountServiceImpl) Authenticate(ctx context.Context, name, pass string) (*models.Account, error) {
	account, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			_, _ = s.hasher.Verify(pass, s.decoyDigest)
			s.logger.Warn("Authentication failed: account not found", zap.String("name", name))
			return nil, models.ErrInvalidCredentials
		}
		s.logger.Error("Authentication failed: error getting account from repository", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	ok, err := s.hasher.Verify(pass, account.PasswordDigest)
	if err != nil {
		// A digest we cannot decode is a server defect, not bad credentials.
		s.logger.Error("Authentication failed: stored digest unreadable", zap.Error(err), zap.String("accountID", account.ID.String()))
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		s.logger.Warn("Authentication failed: invalid password", zap.String("name", name), zap.String("accountID", account.ID.String()))
		return nil, models.ErrInvalidCredentials
	}

	return account, nil
}

// GetByID fetches an account by id.
func (s *accountServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial update, hashing a new password when present.
func (s *accountServiceImpl) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Account, error) {
	params := repository.UpdateAccountParams{
		Name:  input.Name,
		Email: input.Email,
	}

	if input.Password != nil {
		digest, err := s.hasher.Hash(*input.Password)
		if err != nil {
			s.logger.Error("Failed to hash password during update", zap.String("accountID", id.String()), zap.Error(err))
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		params.PasswordDigest = &digest
	}

	if params.Empty() {
		return nil, models.ErrInvalidInput
	}

	account, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Account updated successfully", zap.String("accountID", id.String()))
	return account, nil
}

// Delete removes the account.
func (s *accountServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Account deleted", zap.String("accountID", id.String()))
	return nil
}
