// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client of the blog auth HTTP API.
//
// [ServerAdapter] hides the wire format: request bodies, the
// "Authorization" header and the [models.Result] envelope. Failed envelopes
// are mapped to the sentinel errors in errors.go so callers can use
// [errors.Is] (e.g. [ErrAccountExists] for code 10004).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// ServerAdapter defines communication with the blog auth server.
// Implementations are safe for concurrent use.
type ServerAdapter interface {
	// SetToken stores the token attached to subsequent authenticated
	// requests. Login and Register call it on success.
	SetToken(token string)

	// Token returns the stored token, or "" if none has been set.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, params models.LoginParams) (string, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, params models.LoginParams) (string, error)

	// Logout revokes the stored token on the server and forgets it locally.
	Logout(ctx context.Context) error

	// CurrentUser returns the owner of the stored token.
	CurrentUser(ctx context.Context) (models.LoginUser, error)
}
