package models

import "github.com/google/uuid"

// ConfirmRegistrationRequest is the body of POST /api/accounts/confirm.
type ConfirmRegistrationRequest struct {
	Email         string    `json:"email"`
	SecurityToken uuid.UUID `json:"security_token"`
}

// LoginRequest is the body of POST /api/accounts/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest is the body of POST /api/accounts/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of POST /api/accounts/reset-password.
type ResetPasswordRequest struct {
	Email         string    `json:"email"`
	Password      string    `json:"password"`
	SecurityToken uuid.UUID `json:"security_token"`
}

// ResultResponse reports the outcome of an operation that may be declined
// without being an error (a stale token, an unverified account, ...).
type ResultResponse struct {
	Success bool `json:"success"`
}

// VersionResponse is returned by GET /api/version/.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}
