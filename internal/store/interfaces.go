package store

import (
	"context"

	"github.com/MKhiriev/go-user-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists accounts keyed by their unique email address.
type AccountRepository interface {
	// GetAccountByEmail returns [ErrNoAccountWasFound] when no account uses email.
	GetAccountByEmail(ctx context.Context, email string) (models.Account, error)
	// CreateAccount returns [ErrEmailAlreadyExists] when the email is taken.
	CreateAccount(ctx context.Context, account models.Account) error
	// UpdateAccount replaces the stored record with the same ID.
	UpdateAccount(ctx context.Context, account models.Account) error
	// DeleteAccount removes the stored record with the same ID.
	DeleteAccount(ctx context.Context, account models.Account) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
