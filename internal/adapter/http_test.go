// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-accounts/internal/config"
	"github.com/MKhiriev/go-user-accounts/internal/logger"
	"github.com/MKhiriev/go-user-accounts/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) AccountsAdapter {
	t.Helper()

	a, err := NewHTTPAccountsAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNewHTTPAccountsAdapter_InvalidAddress(t *testing.T) {
	for _, addr := range []string{"", "   ", "http://"} {
		_, err := NewHTTPAccountsAdapter(config.Adapter{HTTPAddress: addr}, logger.Nop())
		assert.ErrorIs(t, err, ErrInvalidAddress, addr)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "https://accounts.example.com/", want: "https://accounts.example.com"},
		{raw: " http://127.0.0.1:9000 ", want: "http://127.0.0.1:9000"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/accounts/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var info models.AccountInfo
		require.NoError(t, json.NewDecoder(r.Body).Decode(&info))
		assert.Equal(t, models.AccountInfo{FullName: "Fred", Email: "fred@example.com", Password: "Password"}, info)

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Register(context.Background(), models.AccountInfo{FullName: "Fred", Email: "fred@example.com", Password: "Password"})
	require.NoError(t, err)
}

func TestRegister_ErrorMapping(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{status: http.StatusNotFound, wantErr: ErrNotFound},
		{status: http.StatusConflict, wantErr: ErrConflict},
		{status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "details", tt.status)
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).Register(context.Background(), models.AccountInfo{Email: "fred@example.com"})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "details")
		})
	}
}

func TestRegister_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Register(context.Background(), models.AccountInfo{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 503")
}

func TestRegister_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := newTestAdapter(t, url).Register(context.Background(), models.AccountInfo{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "register request")
}

// ── Result operations ───────────────────────────────────────────────────────

func TestResultOperations(t *testing.T) {
	token := uuid.New()

	tests := []struct {
		name     string
		path     string
		success  bool
		call     func(a AccountsAdapter) (bool, error)
		wantBody map[string]any
	}{
		{
			name:    "confirm",
			path:    "/api/accounts/confirm",
			success: true,
			call: func(a AccountsAdapter) (bool, error) {
				return a.ConfirmRegistration(context.Background(), "fred@example.com", token)
			},
			wantBody: map[string]any{"email": "fred@example.com", "security_token": token.String()},
		},
		{
			name:    "forgot password declined",
			path:    "/api/accounts/forgot-password",
			success: false,
			call: func(a AccountsAdapter) (bool, error) {
				return a.ForgotPassword(context.Background(), "fred@example.com")
			},
			wantBody: map[string]any{"email": "fred@example.com"},
		},
		{
			name:    "reset password",
			path:    "/api/accounts/reset-password",
			success: true,
			call: func(a AccountsAdapter) (bool, error) {
				return a.ResetPassword(context.Background(), "fred@example.com", "NewPassword", token)
			},
			wantBody: map[string]any{"email": "fred@example.com", "password": "NewPassword", "security_token": token.String()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.path, r.URL.Path)

				var body map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, tt.wantBody, body)

				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(models.ResultResponse{Success: tt.success})
			}))
			defer srv.Close()

			ok, err := tt.call(newTestAdapter(t, srv.URL))
			require.NoError(t, err)
			assert.Equal(t, tt.success, ok)
		})
	}
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantInfo models.AccountInfo
		wantOK   bool
		wantErr  error
	}{
		{
			name:     "success",
			status:   http.StatusOK,
			body:     `{"full_name":"Fred","email":"fred@example.com"}`,
			wantInfo: models.AccountInfo{FullName: "Fred", Email: "fred@example.com"},
			wantOK:   true,
		},
		{name: "declined", status: http.StatusUnauthorized, body: "invalid email/password"},
		{name: "unknown account", status: http.StatusNotFound, body: "account not found", wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/accounts/login", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			info, ok, err := newTestAdapter(t, srv.URL).Login(context.Background(), "fred@example.com", "Password")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantInfo, info)
		})
	}
}

// ── GetVersion ──────────────────────────────────────────────────────────────

func TestGetVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/version/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"version":"1.2.3","date":"2026-10-01"}`))
	}))
	defer srv.Close()

	v, err := newTestAdapter(t, srv.URL).GetVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.VersionResponse{Version: "1.2.3", Date: "2026-10-01"}, v)
}
