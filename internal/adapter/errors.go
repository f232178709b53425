// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"

	"github.com/MKhiriev/go-blog/internal/app"
)

var (
	ErrParamsInvalid            = errors.New(app.MsgParamsError)
	ErrAccountOrPasswordInvalid = errors.New(app.MsgAccountOrPasswordNotExist)
	ErrTokenInvalid             = errors.New(app.MsgTokenInvalid)
	ErrAccountExists            = errors.New(app.MsgAccountExists)
	ErrNotLoggedIn              = errors.New(app.MsgNotLoggedIn)

	// ErrServer is returned for a failed envelope without a known code or a
	// non-2xx response.
	ErrServer = errors.New("server error")

	// ErrMalformedResponse is returned when the body is not a result envelope.
	ErrMalformedResponse = errors.New("malformed response")
)
