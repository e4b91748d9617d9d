package service

import (
	"context"

	"github.com/MKhiriev/go-user-accounts/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountService drives the account lifecycle: registration, email
// confirmation, login and password recovery.
//
// Precondition failures and unknown accounts are reported as errors
// (ErrInvalidDataProvided, ErrAccountNotFound, ErrAccountAlreadyExists).
// Token or credential mismatches are reported as a false result with a nil
// error.
type AccountService interface {
	Register(ctx context.Context, info models.AccountInfo) error
	ConfirmRegistration(ctx context.Context, email string, securityToken uuid.UUID) (bool, error)
	Login(ctx context.Context, email, password string) (models.AccountInfo, bool, error)
	ForgotPassword(ctx context.Context, email string) (bool, error)
	ResetPassword(ctx context.Context, email, password string, securityToken uuid.UUID) (bool, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}

// Hasher turns a plaintext password into its stored representation.
// Hash must be deterministic.
type Hasher interface {
	Hash(password string) string
}

// TokenGenerator issues account identifiers and one-time security tokens.
type TokenGenerator interface {
	NewID() uuid.UUID
	NewToken() uuid.UUID
}
