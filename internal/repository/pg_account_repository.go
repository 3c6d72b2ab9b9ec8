package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"account-server/internal/models"
)

// Postgres constraint names the adapter recognizes as duplicate signals.
const (
	nameConstraint  = "accounts_name_key"
	emailConstraint = "accounts_email_key"
)

const pgUniqueViolation = "23505"

// Compile-time check to ensure pgAccountRepository implements AccountRepository
var _ AccountRepository = (*pgAccountRepository)(nil)

type pgAccountRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgAccountRepository creates a new PostgreSQL-backed AccountRepository.
func NewPgAccountRepository(db DBTX, logger *zap.Logger) AccountRepository {
	return &pgAccountRepository{
		db:     db,
		logger: logger.Named("PgAccountRepo"),
	}
}

// Create inserts a new account. The id is generated here; created is assigned
// by the database.
func (r *pgAccountRepository) Create(ctx context.Context, account *models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	query := `INSERT INTO accounts (id, name, password, email) VALUES ($1, $2, $3, $4) RETURNING created`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("name", account.Name))

	err := r.db.QueryRow(ctx, query, account.ID, account.Name, account.PasswordDigest, account.Email).Scan(&account.Created)
	if err != nil {
		if dupErr := duplicateError(err); dupErr != nil {
			r.logger.Warn("Attempted to create account violating a unique constraint",
				zap.String("name", account.Name), zap.Error(dupErr))
			return dupErr
		}
		r.logger.Error("Failed to create account in postgres", zap.Error(err), zap.String("name", account.Name))
		return fmt.Errorf("failed to create account in postgres: %w", err)
	}

	r.logger.Info("Account created successfully", zap.String("accountID", account.ID.String()), zap.String("name", account.Name))
	return nil
}

// GetByName retrieves an account by its unique name.
func (r *pgAccountRepository) GetByName(ctx context.Context, name string) (*models.Account, error) {
	query := `SELECT id, name, password, email, created FROM accounts WHERE name = $1`
	account := &models.Account{}
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("name", name))

	if err := pgxscan.Get(ctx, r.db, account, query, name); err != nil {
		if pgxscan.NotFound(err) {
			r.logger.Debug("Account not found by name", zap.String("name", name))
			return nil, models.ErrAccountNotFound
		}
		r.logger.Error("Failed to get account by name from postgres", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("failed to get account by name from postgres: %w", err)
	}
	return account, nil
}

// GetByID retrieves an account by its id.
func (r *pgAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	query := `SELECT id, name, password, email, created FROM accounts WHERE id = $1`
	account := &models.Account{}
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("id", id.String()))

	if err := pgxscan.Get(ctx, r.db, account, query, id); err != nil {
		if pgxscan.NotFound(err) {
			r.logger.Debug("Account not found by id", zap.String("id", id.String()))
			return nil, models.ErrAccountNotFound
		}
		r.logger.Error("Failed to get account by id from postgres", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to get account by id from postgres: %w", err)
	}
	return account, nil
}

// Update applies a partial update. Only fields present in params reach the
// SET clause; column names are fixed here and every value is bound, never
// interpolated.
func (r *pgAccountRepository) Update(ctx context.Context, id uuid.UUID, params UpdateAccountParams) (*models.Account, error) {
	queryBase := "UPDATE accounts SET"
	args := []any{}
	argID := 1

	appendSet := func(column string, value any) {
		if argID > 1 {
			queryBase += ","
		}
		queryBase += fmt.Sprintf(" %s = $%d", column, argID)
		args = append(args, value)
		argID++
	}

	if params.Name != nil {
		appendSet("name", *params.Name)
	}
	if params.PasswordDigest != nil {
		appendSet("password", *params.PasswordDigest)
	}
	if params.Email.Set {
		// A nil value binds as NULL and clears the column.
		appendSet("email", params.Email.Value)
	}

	if len(args) == 0 {
		r.logger.Warn("Update called with no fields to update", zap.String("accountID", id.String()))
		return nil, models.ErrInvalidInput
	}

	query := queryBase + fmt.Sprintf(" WHERE id = $%d RETURNING id, name, password, email, created", argID)
	args = append(args, id)

	r.logger.Debug("Executing update account query", zap.String("query", query), zap.String("accountID", id.String()))

	account := &models.Account{}
	if err := pgxscan.Get(ctx, r.db, account, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			r.logger.Warn("Attempted to update non-existent account", zap.String("accountID", id.String()))
			return nil, models.ErrAccountNotFound
		}
		if dupErr := duplicateError(err); dupErr != nil {
			r.logger.Warn("Attempted to update account violating a unique constraint",
				zap.String("accountID", id.String()), zap.Error(dupErr))
			return nil, dupErr
		}
		r.logger.Error("Failed to update account in postgres", zap.Error(err), zap.String("accountID", id.String()))
		return nil, fmt.Errorf("failed to update account in postgres: %w", err)
	}

	r.logger.Info("Account updated successfully", zap.String("accountID", id.String()))
	return account, nil
}

// Delete removes the account. Zero rows affected still reports success, so a
// repeated delete is indistinguishable from the first.
func (r *pgAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM accounts WHERE id = $1`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("accountID", id.String()))

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to delete account from postgres", zap.Error(err), zap.String("accountID", id.String()))
		return fmt.Errorf("failed to delete account from postgres: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.Debug("Delete affected no rows", zap.String("accountID", id.String()))
	} else {
		r.logger.Info("Account deleted successfully", zap.String("accountID", id.String()))
	}
	return nil
}

// duplicateError maps a unique-constraint violation to the sentinel error for
// the violated field, or returns nil when err is not a duplicate signal.
func duplicateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case emailConstraint:
		return models.ErrEmailTaken
	case nameConstraint:
		return models.ErrNameTaken
	default:
		// Unknown unique constraint on accounts; treat as a name conflict.
		return models.ErrNameTaken
	}
}
