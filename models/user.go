// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a blog account stored in the sys_users table.
// It is also the snapshot serialized into a session entry, so the password
// hash must be cleared (see [User.Snapshot]) before the value leaves the
// persistence layer.
type User struct {
	// ID is the store-generated unique identifier of the user.
	ID int64 `json:"id"`

	// Account is the unique login name. Never empty.
	Account string `json:"account"`

	// Password holds the salted password hash, never the plaintext.
	// Omitted from JSON when empty, which is always the case for snapshots.
	Password string `json:"password,omitempty"`

	// Nickname is the display name shown next to articles and comments.
	Nickname string `json:"nickname"`

	// Avatar is the URL or static path of the user's avatar image.
	Avatar string `json:"avatar"`

	// CreateDate is the moment the account was registered.
	CreateDate time.Time `json:"createDate"`

	// LastLogin is the moment of the most recent successful login.
	LastLogin time.Time `json:"lastLogin"`

	// Admin marks the account as an administrator.
	Admin bool `json:"admin"`

	// Deleted is the soft-delete flag. Deleted users stay in the table but
	// are invisible to every lookup.
	Deleted bool `json:"deleted"`

	Salt              string `json:"salt"`
	Status            string `json:"status"`
	Email             string `json:"email"`
	MobilePhoneNumber string `json:"mobilePhoneNumber"`
}

// Snapshot returns a copy of u without the password hash, suitable for
// caching in a session entry or returning to callers outside the store.
func (u User) Snapshot() User {
	u.Password = ""
	return u
}

// LoginUser returns the public view of u exposed by the currentUser endpoint.
func (u User) LoginUser() LoginUser {
	return LoginUser{
		ID:       u.ID,
		Account:  u.Account,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "sys_users"
}

// LoginParams is the request body of the login and register endpoints.
// Nickname is only required by registration.
type LoginParams struct {
	Account  string `json:"account"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

// LoginUser is the public projection of a [User] returned to the client
// that owns the session.
type LoginUser struct {
	ID       int64  `json:"id"`
	Account  string `json:"account"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}
