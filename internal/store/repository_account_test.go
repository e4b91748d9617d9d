// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-user-accounts/internal/logger"
	"github.com/MKhiriev/go-user-accounts/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestAccountRepo(t *testing.T) (*accountRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	repo := &accountRepository{
		db: &DB{
			DB:                 db,
			placeholder:        sq.Dollar,
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             l,
		},
		logger: l,
		now:    func() time.Time { return fixedNow },
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func accountRows() *sqlmock.Rows {
	return sqlmock.NewRows(accountColumns)
}

func TestGetAccountByEmail_Success(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	id := uuid.New()
	token := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM accounts WHERE email = \$1`).
		WithArgs("fred@example.com").
		WillReturnRows(accountRows().AddRow(id.String(), "Fred", "fred@example.com", "hash", token.String(), false, fixedNow, fixedNow))

	account, err := repo.GetAccountByEmail(context.Background(), "fred@example.com")
	require.NoError(t, err)

	assert.Equal(t, id, account.ID)
	assert.Equal(t, "Fred", account.FullName)
	assert.Equal(t, "hash", account.PasswordHash)
	assert.True(t, account.HasSecurityToken(token))
	assert.False(t, account.Verified)
	assert.Equal(t, fixedNow, account.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAccountByEmail_NullToken(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM accounts`).
		WithArgs("fred@example.com").
		WillReturnRows(accountRows().AddRow(uuid.NewString(), "Fred", "fred@example.com", "hash", nil, true, fixedNow, fixedNow))

	account, err := repo.GetAccountByEmail(context.Background(), "fred@example.com")
	require.NoError(t, err)
	assert.False(t, account.SecurityToken.Valid)
	assert.True(t, account.Verified)
}

func TestGetAccountByEmail_NotFound(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM accounts`).
		WithArgs("ghost@example.com").
		WillReturnRows(accountRows())

	_, err := repo.GetAccountByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrNoAccountWasFound)
}

func TestGetAccountByEmail_UnexpectedError(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	dbErr := errors.New("db failure")
	mock.ExpectQuery(`SELECT (.+) FROM accounts`).WillReturnError(dbErr)

	_, err := repo.GetAccountByEmail(context.Background(), "fred@example.com")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, dbErr)
}

func TestGetAccountByEmail_RetriesTransientError(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM accounts`).
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery(`SELECT (.+) FROM accounts`).
		WillReturnRows(accountRows().AddRow(id.String(), "Fred", "fred@example.com", "hash", nil, true, fixedNow, fixedNow))

	account, err := repo.GetAccountByEmail(context.Background(), "fred@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, account.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccount_Success(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	account := models.Account{
		ID:           uuid.New(),
		FullName:     "Fred",
		Email:        "fred@example.com",
		PasswordHash: "hash",
	}
	account.SetSecurityToken(uuid.New())

	mock.ExpectExec(`INSERT INTO accounts`).
		WithArgs(account.ID, "Fred", "fred@example.com", "hash", account.SecurityToken, false, fixedNow, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateAccount(context.Background(), account))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccount_UniqueViolation(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectExec(`INSERT INTO accounts`).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.CreateAccount(context.Background(), models.Account{ID: uuid.New(), Email: "fred@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccount_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectExec(`INSERT INTO accounts`).
		WillReturnError(errors.New("db network error"))

	err := repo.CreateAccount(context.Background(), models.Account{ID: uuid.New()})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestUpdateAccount_Success(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	account := models.Account{ID: uuid.New(), FullName: "Fred", Email: "fred@example.com", PasswordHash: "hash", Verified: true}

	mock.ExpectExec(`UPDATE accounts SET (.+) WHERE id = \$7`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateAccount(context.Background(), account))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAccount_NoRows(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectExec(`UPDATE accounts`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateAccount(context.Background(), models.Account{ID: uuid.New()})
	assert.ErrorIs(t, err, ErrNoAccountWasFound)
}

func TestUpdateAccount_RowsAffectedError(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectExec(`UPDATE accounts`).
		WillReturnResult(sqlmock.NewErrorResult(errors.New("rows affected unsupported")))

	err := repo.UpdateAccount(context.Background(), models.Account{ID: uuid.New()})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestDeleteAccount(t *testing.T) {
	repo, mock := newTestAccountRepo(t)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM accounts WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM accounts WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteAccount(context.Background(), models.Account{ID: id}))
	assert.ErrorIs(t, repo.DeleteAccount(context.Background(), models.Account{ID: id}), ErrNoAccountWasFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithRetry_StopsOnPermanentError(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier()}

	calls := 0
	err := db.withRetry(context.Background(), func(context.Context) error {
		calls++
		return pgError(pgerrcode.UniqueViolation)
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier()}

	calls := 0
	err := db.withRetry(context.Background(), func(context.Context) error {
		calls++
		return pgError(pgerrcode.DeadlockDetected)
	})

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, pgerrcode.DeadlockDetected, pgErr.Code)
	assert.Equal(t, dbRetryAttempts+1, calls)
}

func TestWithRetry_NoRowsIsNotRetried(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier()}

	calls := 0
	err := db.withRetry(context.Background(), func(context.Context) error {
		calls++
		return sql.ErrNoRows
	})

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Equal(t, 1, calls)
}
