// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Account is the persisted identity record of a registered user.
//
// An Account whose ID equals [uuid.Nil] does not describe a real record and
// is treated as "not found" by every consumer (see [Account.IsZero]).
type Account struct {
	// ID is the unique identifier assigned on registration.
	ID uuid.UUID `json:"id"`

	// FullName is the display name the user registered with.
	FullName string `json:"full_name"`

	// Email is the unique key used to look accounts up.
	Email string `json:"email"`

	// PasswordHash is the output of the configured hasher for the user's
	// plaintext password. The plaintext is never stored.
	PasswordHash string `json:"-"`

	// SecurityToken is valid while an email confirmation or a password reset
	// is pending, and cleared as soon as that action is consumed.
	SecurityToken uuid.NullUUID `json:"-"`

	// Verified reports whether the owner has confirmed control of Email.
	Verified bool `json:"verified"`

	// CreatedAt and UpdatedAt are maintained by the storage layer.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsZero reports whether a is the "no such account" sentinel.
func (a Account) IsZero() bool {
	return a.ID == uuid.Nil
}

// HasSecurityToken reports whether a is waiting for token to be presented.
func (a Account) HasSecurityToken(token uuid.UUID) bool {
	return a.SecurityToken.Valid && a.SecurityToken.UUID == token
}

// SetSecurityToken marks a pending action authorised by token.
func (a *Account) SetSecurityToken(token uuid.UUID) {
	a.SecurityToken = uuid.NullUUID{UUID: token, Valid: true}
}

// ClearSecurityToken consumes the pending action.
func (a *Account) ClearSecurityToken() {
	a.SecurityToken = uuid.NullUUID{}
}

// Info projects a into the public [AccountInfo] view. The password is never
// copied.
func (a Account) Info() AccountInfo {
	return AccountInfo{
		FullName: a.FullName,
		Email:    a.Email,
	}
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// AccountInfo is the transfer object used for registration input and login
// output. Password carries plaintext on input only and is never populated on
// output.
type AccountInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// IsEmpty reports whether every field of i is empty.
func (i AccountInfo) IsEmpty() bool {
	return i == AccountInfo{}
}
