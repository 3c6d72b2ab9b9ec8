package service

import (
	"context"

	"github.com/google/uuid"

	"account-server/internal/models"
)

// UpdateInput carries a partial account update with plaintext password. Nil
// fields are left untouched; Email distinguishes absent from explicit null.
type UpdateInput struct {
	Name     *string
	Password *string
	Email    models.OptionalString
}

// AccountService defines the account management and credential-verification
// logic. Inputs are assumed to have passed field validation.
type AccountService interface {
	// Register creates a new account from validated input.
	Register(ctx context.Context, name, password string, email *string) (*models.Account, error)

	// Authenticate resolves name/password credentials to an account. An
	// unknown name and a wrong password both return ErrInvalidCredentials.
	Authenticate(ctx context.Context, name, password string) (*models.Account, error)

	// GetByID fetches an account whose identity was already established.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)

	// Update applies a partial update, re-hashing the password if present.
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Account, error)

	// Delete removes the account. Unknown ids are not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
