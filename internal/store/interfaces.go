// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store backed by the sys_users table.
// Soft-deleted users are invisible to every lookup.
type UserRepository interface {
	// FindUserByAccount returns the live user owning account, or
	// [ErrNoUserWasFound].
	FindUserByAccount(ctx context.Context, account string) (models.User, error)

	// FindUserByCredentials returns the live user whose account and password
	// hash both match, or [ErrNoUserWasFound].
	FindUserByCredentials(ctx context.Context, account, passwordHash string) (models.User, error)

	// CreateUser inserts user and returns it with the generated ID set.
	// A duplicate account yields [ErrAccountAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// UpdateLastLogin sets the last_login column of the given user.
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error
}

// SessionCache is a string key/value store with per-entry TTL.
type SessionCache interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Get returns [ErrSessionNotFound] on a miss.
	Get(ctx context.Context, key string) (string, error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
