// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

type errorResponse struct {
	code   int
	msg    string
	status int
}

// Business failures keep HTTP 200 and report themselves in the envelope.
var errorResponseMap = map[error]errorResponse{
	ErrInvalidJSON:                      {app.CodeParamsError, app.MsgParamsError, http.StatusBadRequest},
	ErrNotLoggedIn:                      {app.CodeNotLoggedIn, app.MsgNotLoggedIn, http.StatusOK},
	service.ErrParamsInvalid:            {app.CodeParamsError, app.MsgParamsError, http.StatusOK},
	service.ErrAccountOrPasswordInvalid: {app.CodeAccountOrPasswordNotExist, app.MsgAccountOrPasswordNotExist, http.StatusOK},
	service.ErrTokenInvalid:             {app.CodeTokenInvalid, app.MsgTokenInvalid, http.StatusOK},
	service.ErrAccountExists:            {app.CodeAccountExists, app.MsgAccountExists, http.StatusOK},
}

var systemError = errorResponse{app.CodeSystemError, app.MsgSystemError, http.StatusInternalServerError}

func responseFromError(err error) errorResponse {
	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return systemError
}

func writeError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	utils.WriteJSON(w, models.Fail(resp.code, resp.msg), resp.status)
}

func writeInvalidJSON(w http.ResponseWriter) {
	writeError(w, ErrInvalidJSON)
}
