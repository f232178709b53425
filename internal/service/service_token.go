// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// jwtTokenCodec is the HS256 JWT implementation of [TokenCodec].
type jwtTokenCodec struct {
	// signKey is the HMAC secret used to sign and verify tokens.
	signKey string

	// issuer is the "iss" claim embedded in every token.
	// Tokens whose issuer does not match this value are rejected.
	issuer string

	// duration controls how long a newly issued token remains valid.
	duration time.Duration
}

// NewJWTTokenCodec builds a [TokenCodec] from the token settings of cfg.
func NewJWTTokenCodec(cfg config.App) TokenCodec {
	return &jwtTokenCodec{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
	}
}

// Create issues a signed token whose subject is userID.
func (c *jwtTokenCodec) Create(userID int64) (models.Token, error) {
	return utils.GenerateJWTToken(c.issuer, userID, c.duration, c.signKey)
}

// Validate checks signature, issuer, expiry and subject of token.
func (c *jwtTokenCodec) Validate(token string) (models.Token, bool) {
	parsed, err := utils.ValidateAndParseJWTToken(token, c.signKey, c.issuer)
	if err != nil {
		return models.Token{}, false
	}

	return parsed, true
}
