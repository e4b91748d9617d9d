// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the HTTP handlers and the
// command-line client.
//
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body is missing or cannot
	// be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidCredentials is returned when a login is declined: wrong
	// password or an account that was never confirmed.
	MsgInvalidCredentials = "invalid email/password"

	// MsgConfirmationDeclined describes a confirmation with a stale token or
	// for an already confirmed account.
	MsgConfirmationDeclined = "token is invalid or the account is already confirmed"

	// MsgResetDeclined describes a password reset with a stale token.
	MsgResetDeclined = "token is invalid or was already used"

	// MsgNotConfirmed describes a password recovery request for an account
	// that was never confirmed.
	MsgNotConfirmed = "account is not confirmed"
)
