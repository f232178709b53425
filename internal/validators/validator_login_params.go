// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-blog/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldAccount targets the login name.
	FieldAccount = "account"

	// FieldPassword targets the plaintext password.
	FieldPassword = "password"

	// FieldNickname targets the display name; required by registration only.
	FieldNickname = "nickname"
)

// LoginFields are the fields checked by login.
var LoginFields = []string{FieldAccount, FieldPassword}

// RegisterFields are the fields checked by registration.
var RegisterFields = []string{FieldAccount, FieldPassword, FieldNickname}

// AuthValidator validates authentication inputs: [models.LoginParams] and
// raw token strings. A value is blank when it is empty or whitespace only.
type AuthValidator struct {
}

func NewAuthValidator() Validator {
	return &AuthValidator{}
}

// Validate checks obj. For LoginParams with no fields given, every field is
// checked. A plain string is treated as a token.
func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginParams:
		return v.validateLoginParams(ctx, value, fields...)
	case *models.LoginParams:
		return v.validateLoginParams(ctx, *value, fields...)

	case string:
		if isBlank(value) {
			return ErrBlankToken
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateLoginParams(_ context.Context, params models.LoginParams, fields ...string) error {
	if len(fields) == 0 {
		fields = RegisterFields
	}

	for _, f := range fields {
		switch f {
		case FieldAccount:
			if isBlank(params.Account) {
				return ErrBlankAccount
			}
		case FieldPassword:
			if isBlank(params.Password) {
				return ErrBlankPassword
			}
		case FieldNickname:
			if isBlank(params.Nickname) {
				return ErrBlankNickname
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
