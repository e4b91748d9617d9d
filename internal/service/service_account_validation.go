package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-accounts/internal/validators"
	"github.com/MKhiriev/go-user-accounts/models"
	"github.com/google/uuid"
)

// AccountValidationService rejects incomplete input with
// ErrInvalidDataProvided before the wrapped AccountService is reached.
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AccountValidationService) Register(ctx context.Context, info models.AccountInfo) error {
	if err := v.validator.Validate(ctx, info); err != nil {
		return invalidData(err)
	}

	return v.inner.Register(ctx, info)
}

func (v *AccountValidationService) ConfirmRegistration(ctx context.Context, email string, securityToken uuid.UUID) (bool, error) {
	if err := v.validator.Validate(ctx, models.ConfirmRegistrationRequest{Email: email, SecurityToken: securityToken}); err != nil {
		return false, invalidData(err)
	}

	return v.inner.ConfirmRegistration(ctx, email, securityToken)
}

func (v *AccountValidationService) Login(ctx context.Context, email, password string) (models.AccountInfo, bool, error) {
	if err := v.validator.Validate(ctx, models.LoginRequest{Email: email, Password: password}); err != nil {
		return models.AccountInfo{}, false, invalidData(err)
	}

	return v.inner.Login(ctx, email, password)
}

func (v *AccountValidationService) ForgotPassword(ctx context.Context, email string) (bool, error) {
	if err := v.validator.Validate(ctx, models.ForgotPasswordRequest{Email: email}); err != nil {
		return false, invalidData(err)
	}

	return v.inner.ForgotPassword(ctx, email)
}

func (v *AccountValidationService) ResetPassword(ctx context.Context, email, password string, securityToken uuid.UUID) (bool, error) {
	req := models.ResetPasswordRequest{Email: email, Password: password, SecurityToken: securityToken}
	if err := v.validator.Validate(ctx, req); err != nil {
		return false, invalidData(err)
	}

	return v.inner.ResetPassword(ctx, email, password, securityToken)
}

func (v *AccountValidationService) Wrap(wrapped AccountService) AccountService {
	v.inner = wrapped
	return v
}

func invalidData(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
