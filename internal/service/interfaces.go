// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock github.com/MKhiriev/go-blog/internal/service AuthService,UserService,TokenCodec

// AuthService issues, checks and revokes session tokens.
type AuthService interface {
	// Login verifies account and password and opens a session.
	Login(ctx context.Context, params models.LoginParams) (models.Token, error)
	// Register creates an account and opens a session for it.
	Register(ctx context.Context, params models.LoginParams) (models.Token, error)
	// CheckToken returns the cached user snapshot of a live session.
	// Every failure collapses to ok == false.
	CheckToken(ctx context.Context, token string) (models.User, bool)
	// Logout removes the session entry of token. Only a cache transport
	// failure is reported.
	Logout(ctx context.Context, token string) error
}

// UserService serves data about the user owning a session.
type UserService interface {
	FindUserByToken(ctx context.Context, token string) (models.LoginUser, error)
}

// TokenCodec creates and validates signed session tokens.
type TokenCodec interface {
	Create(userID int64) (models.Token, error)
	// Validate never panics; malformed, expired or forged input yields false.
	Validate(token string) (models.Token, bool)
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// metrics collection.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}
