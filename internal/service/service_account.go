// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-accounts/internal/logger"
	"github.com/MKhiriev/go-user-accounts/internal/notify"
	"github.com/MKhiriev/go-user-accounts/internal/store"
	"github.com/MKhiriev/go-user-accounts/models"
	"github.com/google/uuid"
)

// accountService is the concrete implementation of AccountService.
// It does not validate its input: NewAccountService always decorates it with
// AccountValidationService.
type accountService struct {
	// accountRepository persists and looks up accounts by email.
	accountRepository store.AccountRepository

	// hasher produces the stored form of a password. Must be the same hasher
	// for the whole lifetime of the stored data.
	hasher Hasher

	// tokens issues account ids and security tokens.
	tokens TokenGenerator

	// notifier delivers confirmation and password-reset emails.
	notifier notify.Notifier

	logger *logger.Logger
}

// NewAccountService constructs an AccountService backed by the given
// collaborators. Input is validated before any collaborator is called.
//
// The returned service keeps no state between calls and is safe for
// concurrent use as long as its collaborators are.
func NewAccountService(accountRepository store.AccountRepository, hasher Hasher, tokens TokenGenerator, notifier notify.Notifier, logger *logger.Logger) AccountService {
	inner := &accountService{
		accountRepository: accountRepository,
		hasher:            hasher,
		tokens:            tokens,
		notifier:          notifier,
		logger:            logger,
	}

	return NewAccountValidationService().Wrap(inner)
}

// Register creates an unverified account for info and emails the owner a
// confirmation token.
//
// Returns:
//   - ErrAccountAlreadyExists if an account with info.Email is already stored.
//   - A wrapped storage error if the lookup or the insert fails.
//   - A wrapped notifier error if the email could not be sent. The account
//     stays created in that case.
func (a *accountService) Register(ctx context.Context, info models.AccountInfo) error {
	log := logger.FromContext(ctx)

	existing, err := a.accountRepository.GetAccountByEmail(ctx, info.Email)
	switch {
	case err == nil && !existing.IsZero():
		log.Info().Str("func", "*accountService.Register").Str("email", info.Email).Msg("account already exists")
		return ErrAccountAlreadyExists
	case err != nil && !errors.Is(err, store.ErrNoAccountWasFound):
		log.Err(err).Str("func", "*accountService.Register").Str("email", info.Email).Msg("error looking up account")
		return fmt.Errorf("error looking up account: %w", err)
	}

	account := models.Account{
		ID:           a.tokens.NewID(),
		FullName:     info.FullName,
		Email:        info.Email,
		PasswordHash: a.hasher.Hash(info.Password),
		Verified:     false,
	}
	securityToken := a.tokens.NewToken()
	account.SetSecurityToken(securityToken)

	if err = a.accountRepository.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Info().Str("func", "*accountService.Register").Str("email", info.Email).Msg("account was created concurrently")
			return fmt.Errorf("%w: %w", ErrAccountAlreadyExists, err)
		}
		log.Err(err).Str("func", "*accountService.Register").Str("email", info.Email).Msg("account creation ended with error")
		return fmt.Errorf("account creation ended with error: %w", err)
	}

	if err = a.notifier.Send(ctx, models.EmailTemplateRegister, account.Email, account.FullName, securityToken); err != nil {
		log.Err(err).Str("func", "*accountService.Register").Str("email", info.Email).Msg("error sending registration email")
		return fmt.Errorf("error sending registration email: %w", err)
	}

	log.Debug().Str("func", "*accountService.Register").Str("account_id", account.ID.String()).Msg("account registered")
	return nil
}

// ConfirmRegistration marks the account as verified when securityToken is
// the pending token of a not yet verified account.
func (a *accountService) ConfirmRegistration(ctx context.Context, email string, securityToken uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	account, err := a.findAccount(ctx, email)
	if err != nil {
		return false, err
	}

	if account.Verified || !account.HasSecurityToken(securityToken) {
		log.Debug().Str("func", "*accountService.ConfirmRegistration").Str("email", email).Msg("confirmation declined")
		return false, nil
	}

	account.ClearSecurityToken()
	account.Verified = true

	if err = a.accountRepository.UpdateAccount(ctx, account); err != nil {
		log.Err(err).Str("func", "*accountService.ConfirmRegistration").Str("email", email).Msg("error updating account")
		return false, fmt.Errorf("error confirming registration: %w", err)
	}

	return true, nil
}

// Login checks the credentials of a verified account. A wrong password and an
// unverified account both yield an empty AccountInfo and false.
func (a *accountService) Login(ctx context.Context, email, password string) (models.AccountInfo, bool, error) {
	log := logger.FromContext(ctx)

	account, err := a.findAccount(ctx, email)
	if err != nil {
		return models.AccountInfo{}, false, err
	}

	if !samePasswordHash(a.hasher.Hash(password), account.PasswordHash) || !account.Verified {
		log.Debug().Str("func", "*accountService.Login").Str("email", email).Bool("verified", account.Verified).Msg("login declined")
		return models.AccountInfo{}, false, nil
	}

	return account.Info(), true, nil
}

// ForgotPassword issues a new security token for a verified account and
// emails it to the owner. Unverified accounts are declined without an email.
//
// A notifier failure is returned wrapped with a false result; the token stays
// stored.
func (a *accountService) ForgotPassword(ctx context.Context, email string) (bool, error) {
	log := logger.FromContext(ctx)

	account, err := a.findAccount(ctx, email)
	if err != nil {
		return false, err
	}

	if !account.Verified {
		log.Debug().Str("func", "*accountService.ForgotPassword").Str("email", email).Msg("account is not verified")
		return false, nil
	}

	securityToken := a.tokens.NewToken()
	account.SetSecurityToken(securityToken)

	if err = a.accountRepository.UpdateAccount(ctx, account); err != nil {
		log.Err(err).Str("func", "*accountService.ForgotPassword").Str("email", email).Msg("error updating account")
		return false, fmt.Errorf("error storing security token: %w", err)
	}

	if err = a.notifier.Send(ctx, models.EmailTemplateChangePassword, account.Email, account.FullName, securityToken); err != nil {
		log.Err(err).Str("func", "*accountService.ForgotPassword").Str("email", email).Msg("error sending password reset email")
		return false, fmt.Errorf("error sending password reset email: %w", err)
	}

	return true, nil
}

// ResetPassword replaces the password of a verified account when
// securityToken matches the pending token, then consumes the token.
func (a *accountService) ResetPassword(ctx context.Context, email, password string, securityToken uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	account, err := a.findAccount(ctx, email)
	if err != nil {
		return false, err
	}

	if !account.Verified || !account.HasSecurityToken(securityToken) {
		log.Debug().Str("func", "*accountService.ResetPassword").Str("email", email).Msg("password reset declined")
		return false, nil
	}

	account.ClearSecurityToken()
	account.PasswordHash = a.hasher.Hash(password)

	if err = a.accountRepository.UpdateAccount(ctx, account); err != nil {
		log.Err(err).Str("func", "*accountService.ResetPassword").Str("email", email).Msg("error updating account")
		return false, fmt.Errorf("error resetting password: %w", err)
	}

	return true, nil
}

// findAccount looks up the account by email. A missing row and a stored
// account with a nil id are both ErrAccountNotFound.
func (a *accountService) findAccount(ctx context.Context, email string) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := a.accountRepository.GetAccountByEmail(ctx, email)
	if errors.Is(err, store.ErrNoAccountWasFound) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*accountService.findAccount").Str("email", email).Msg("error getting account")
		return models.Account{}, fmt.Errorf("error getting account: %w", err)
	}
	if account.IsZero() {
		return models.Account{}, ErrAccountNotFound
	}

	return account, nil
}

func samePasswordHash(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
