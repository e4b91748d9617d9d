package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-accounts/internal/logger"
	"github.com/MKhiriev/go-user-accounts/models"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
)

// accountRepository is the SQL implementation of [AccountRepository] shared
// by the PostgreSQL and SQLite backends. Dialect differences live in [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// GetAccountByEmail looks up the account registered under email.
//
// Error handling:
//   - no row → [ErrNoAccountWasFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *accountRepository) GetAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAccountByEmailQuery(r.db.builder(), email)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.GetAccountByEmail").Msg("failed to create query")
		return models.Account{}, err
	}

	var account models.Account
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&account.ID,
			&account.FullName,
			&account.Email,
			&account.PasswordHash,
			&account.SecurityToken,
			&account.Verified,
			&account.CreatedAt,
			&account.UpdatedAt,
		)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountWasFound
		}

		log.Err(err).Str("func", "*accountRepository.GetAccountByEmail").Msg("failed to get account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}

// CreateAccount inserts a new account. CreatedAt and UpdatedAt are filled
// in when zero.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	now := r.now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	if account.UpdatedAt.IsZero() {
		account.UpdatedAt = now
	}

	query, args, err := buildCreateAccountQuery(r.db.builder(), account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("failed to create query")
		return err
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*accountRepository.CreateAccount").Str("account_id", account.ID.String()).Msg("failed to insert account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// UpdateAccount overwrites the mutable fields of the account with the same
// ID and bumps UpdatedAt. Returns [ErrNoAccountWasFound] when no row matched.
func (r *accountRepository) UpdateAccount(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	account.UpdatedAt = r.now()

	query, args, err := buildUpdateAccountQuery(r.db.builder(), account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateAccount").Msg("failed to create query")
		return err
	}

	return r.execAffectingOne(ctx, "*accountRepository.UpdateAccount", query, args, account)
}

// DeleteAccount removes the account with the same ID. Returns
// [ErrNoAccountWasFound] when no row matched.
func (r *accountRepository) DeleteAccount(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAccountQuery(r.db.builder(), account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteAccount").Msg("failed to create query")
		return err
	}

	return r.execAffectingOne(ctx, "*accountRepository.DeleteAccount", query, args, account)
}

func (r *accountRepository) execAffectingOne(ctx context.Context, funcName, query string, args []any, account models.Account) error {
	log := logger.FromContext(ctx)

	var affected int64
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		result, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", funcName).Str("account_id", account.ID.String()).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrNoAccountWasFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}

	sqliteErr, ok := sqliteError(err)
	return ok && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
