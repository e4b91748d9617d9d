// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-accounts/internal/app"
	"github.com/MKhiriev/go-user-accounts/internal/logger"
	"github.com/MKhiriev/go-user-accounts/internal/utils"
	"github.com/MKhiriev/go-user-accounts/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var info models.AccountInfo
	if err := utils.ReadJSON(r, &info); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.Register(r.Context(), info); err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) confirmRegistration(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ConfirmRegistrationRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.confirmRegistration").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	ok, err := h.services.AccountService.ConfirmRegistration(r.Context(), req.Email, req.SecurityToken)
	if err != nil {
		writeError(w, r, "*Handler.confirmRegistration", err)
		return
	}

	h.writeResult(w, r, ok)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	info, ok, err := h.services.AccountService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}
	if !ok {
		http.Error(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
		return
	}

	if _, err = utils.WriteJSON(w, info, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("error writing response")
	}
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ForgotPasswordRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.forgotPassword").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	ok, err := h.services.AccountService.ForgotPassword(r.Context(), req.Email)
	if err != nil {
		writeError(w, r, "*Handler.forgotPassword", err)
		return
	}

	h.writeResult(w, r, ok)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ResetPasswordRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.resetPassword").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	ok, err := h.services.AccountService.ResetPassword(r.Context(), req.Email, req.Password, req.SecurityToken)
	if err != nil {
		writeError(w, r, "*Handler.resetPassword", err)
		return
	}

	h.writeResult(w, r, ok)
}

func (h *Handler) writeResult(w http.ResponseWriter, r *http.Request, ok bool) {
	if _, err := utils.WriteJSON(w, models.ResultResponse{Success: ok}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
