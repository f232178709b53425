// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
)

// notFoundOnWrongMethod is the router's MethodNotAllowed handler. A known
// path asked with a method it does not serve is answered like an unknown
// path: 404, empty body, no envelope.
func (h *Handler) notFoundOnWrongMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not served on this path")

	w.WriteHeader(http.StatusNotFound)
}
