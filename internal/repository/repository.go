package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"account-server/internal/models"
)

// DBTX abstracts the query executor so repositories accept a pool or a
// transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UpdateAccountParams carries a partial update. Nil pointers leave the stored
// value untouched; Email distinguishes an absent field from an explicit null
// that clears the column.
type UpdateAccountParams struct {
	Name           *string
	PasswordDigest *string
	Email          models.OptionalString
}

// Empty reports whether the update would modify nothing.
func (p UpdateAccountParams) Empty() bool {
	return p.Name == nil && p.PasswordDigest == nil && !p.Email.Set
}

// AccountRepository defines the storage operations for accounts. Uniqueness
// of name and email is enforced by the store's constraints; implementations
// surface violations as ErrNameTaken / ErrEmailTaken rather than performing
// racy check-then-insert lookups.
//
//go:generate mockery --name AccountRepository --output ./mocks --outpkg mocks --case=underscore
type AccountRepository interface {
	// Create inserts the account and fills in its server-assigned fields.
	Create(ctx context.Context, account *models.Account) error

	// GetByName retrieves an account by its unique name.
	GetByName(ctx context.Context, name string) (*models.Account, error)

	// GetByID retrieves an account by its id.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)

	// Update applies a partial update and returns the post-update account.
	Update(ctx context.Context, id uuid.UUID, params UpdateAccountParams) (*models.Account, error)

	// Delete removes the account. Deleting an id that no longer exists is
	// not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
