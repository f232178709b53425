// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
)

const authorizationHeader = "Authorization"

// tokenRequired rejects requests whose "Authorization" header carries no
// token with [app.CodeNotLoggedIn]. The header may hold the bare token or
// "Bearer <token>". The token itself is not validated here: downstream
// handlers resolve it and report [app.CodeTokenInvalid] themselves.
//
// On success the token is stored in the request context under
// [utils.TokenCtxKey].
func (h *Handler) tokenRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token := utils.ParseAuthorizationHeader(r.Header.Get(authorizationHeader))
		if token == "" {
			log.Info().Str("uri", r.RequestURI).Msg("request without token")
			writeError(w, ErrNotLoggedIn)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithToken(r.Context(), token)))
	})
}
