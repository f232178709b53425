// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Business errors of the auth flow. Each one maps to a distinct response code
// in the HTTP layer.
var (
	ErrParamsInvalid            = errors.New("params invalid")
	ErrAccountOrPasswordInvalid = errors.New("account or password invalid")
	ErrAccountExists            = errors.New("account already exists")
	ErrTokenInvalid             = errors.New("token invalid")
)

// Infrastructure failures, always wrapped around the underlying cause.
var (
	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrSessionWriteFailed  = errors.New("session write failed")
	ErrSessionDeleteFailed = errors.New("session delete failed")
)
