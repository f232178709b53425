// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNotLoggedIn is reported when a route that needs a session token is
	// called without an "Authorization" header carrying one.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
