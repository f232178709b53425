// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrBlankAccount  = errors.New("account is blank")
	ErrBlankPassword = errors.New("password is blank")
	ErrBlankNickname = errors.New("nickname is blank")
	ErrBlankToken    = errors.New("token is blank")
)
