package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-user-accounts/models"
)

var accountsTable = models.Account{}.TableName()

var accountColumns = []string{
	"id",
	"full_name",
	"email",
	"password_hash",
	"security_token",
	"verified",
	"created_at",
	"updated_at",
}

func buildGetAccountByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	query, args, err := b.
		Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildCreateAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	query, args, err := b.
		Insert(accountsTable).
		Columns(accountColumns...).
		Values(
			account.ID,
			account.FullName,
			account.Email,
			account.PasswordHash,
			account.SecurityToken,
			account.Verified,
			account.CreatedAt,
			account.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpdateAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	query, args, err := b.
		Update(accountsTable).
		SetMap(map[string]any{
			"full_name":      account.FullName,
			"email":          account.Email,
			"password_hash":  account.PasswordHash,
			"security_token": account.SecurityToken,
			"verified":       account.Verified,
			"updated_at":     account.UpdatedAt,
		}).
		Where(sq.Eq{"id": account.ID.String()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	query, args, err := b.
		Delete(accountsTable).
		Where(sq.Eq{"id": account.ID.String()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
