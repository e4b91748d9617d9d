// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the account service API.
//
// The primary abstraction is [AccountsAdapter], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPAccountsAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-accounts/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AccountsAdapter mirrors the account lifecycle operations of the server.
// Declined operations are reported the same way the server reports them: a
// false result with a nil error.
type AccountsAdapter interface {
	// Register creates an account. Returns [ErrConflict] (wrapped) when the
	// email is already registered.
	Register(ctx context.Context, info models.AccountInfo) error

	// ConfirmRegistration presents the token received by email.
	ConfirmRegistration(ctx context.Context, email string, securityToken uuid.UUID) (bool, error)

	// Login returns the account info on success. Wrong credentials and
	// unverified accounts yield false with a nil error.
	Login(ctx context.Context, email, password string) (models.AccountInfo, bool, error)

	// ForgotPassword asks the server to email a password reset token.
	ForgotPassword(ctx context.Context, email string) (bool, error)

	// ResetPassword replaces the password using the emailed token.
	ResetPassword(ctx context.Context, email, password string, securityToken uuid.UUID) (bool, error)

	// GetVersion fetches the server build information.
	GetVersion(ctx context.Context) (models.VersionResponse, error)
}
