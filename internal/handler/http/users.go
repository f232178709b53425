// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, ok := utils.GetTokenFromContext(ctx)
	if !ok {
		writeError(w, ErrNotLoggedIn)
		return
	}

	user, err := h.services.UserService.FindUserByToken(ctx, token)
	if err != nil {
		log.Debug().Err(err).Msg("current user lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.Success(user), http.StatusOK)
}
