// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var params models.LoginParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeInvalidJSON(w)
		return
	}

	log.Debug().Str("account", params.Account).Msg("login requested")

	token, err := h.services.AuthService.Login(ctx, params)
	if err != nil {
		log.Err(err).Str("account", params.Account).Msg("login failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.Success(token.SignedString), http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var params models.LoginParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeInvalidJSON(w)
		return
	}

	token, err := h.services.AuthService.Register(ctx, params)
	if err != nil {
		log.Err(err).Str("account", params.Account).Msg("registration failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.Success(token.SignedString), http.StatusOK)
}

// logout succeeds for a missing, unknown or already revoked token alike.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token := utils.ParseAuthorizationHeader(r.Header.Get(authorizationHeader))
	if err := h.services.AuthService.Logout(ctx, token); err != nil {
		log.Err(err).Msg("logout failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.Success(nil), http.StatusOK)
}
