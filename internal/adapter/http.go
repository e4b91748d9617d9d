package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-user-accounts/internal/config"
	"github.com/MKhiriev/go-user-accounts/internal/logger"
	"github.com/MKhiriev/go-user-accounts/internal/utils"
	"github.com/MKhiriev/go-user-accounts/models"
	"github.com/google/uuid"
)

type httpAccountsAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPAccountsAdapter constructs an HTTP/REST implementation of
// [AccountsAdapter]. A bare host:port address is treated as http.
//
// Returns [ErrInvalidAddress] (wrapped) if cfg.HTTPAddress is empty or cannot
// be parsed as a URL with a host.
func NewHTTPAccountsAdapter(cfg config.Adapter, logger *logger.Logger) (AccountsAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpAccountsAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAccountsAdapter) Register(ctx context.Context, info models.AccountInfo) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(info).
		Post("/api/accounts/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAccountsAdapter) ConfirmRegistration(ctx context.Context, email string, securityToken uuid.UUID) (bool, error) {
	return h.postForResult(ctx, "/api/accounts/confirm", models.ConfirmRegistrationRequest{
		Email:         email,
		SecurityToken: securityToken,
	})
}

// Login maps 401 Unauthorized to a declined login.
func (h *httpAccountsAdapter) Login(ctx context.Context, email, password string) (models.AccountInfo, bool, error) {
	var info models.AccountInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.LoginRequest{Email: email, Password: password}).
		SetResult(&info).
		Post("/api/accounts/login")
	if err != nil {
		return models.AccountInfo{}, false, fmt.Errorf("login request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			h.logger.Debug().Str("func", "*httpAccountsAdapter.Login").Str("email", email).Msg("login declined")
			return models.AccountInfo{}, false, nil
		}
		return models.AccountInfo{}, false, err
	}

	return info, true, nil
}

func (h *httpAccountsAdapter) ForgotPassword(ctx context.Context, email string) (bool, error) {
	return h.postForResult(ctx, "/api/accounts/forgot-password", models.ForgotPasswordRequest{Email: email})
}

func (h *httpAccountsAdapter) ResetPassword(ctx context.Context, email, password string, securityToken uuid.UUID) (bool, error) {
	return h.postForResult(ctx, "/api/accounts/reset-password", models.ResetPasswordRequest{
		Email:         email,
		Password:      password,
		SecurityToken: securityToken,
	})
}

func (h *httpAccountsAdapter) GetVersion(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version/")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

func (h *httpAccountsAdapter) postForResult(ctx context.Context, path string, body any) (bool, error) {
	var result models.ResultResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return false, fmt.Errorf("request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return result.Success, nil
}
