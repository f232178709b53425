// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

type userService struct {
	authService AuthService
	logger      *logger.Logger
}

// NewUserService builds a [UserService] that resolves sessions through
// authService.
func NewUserService(authService AuthService, logger *logger.Logger) UserService {
	return &userService{
		authService: authService,
		logger:      logger,
	}
}

// FindUserByToken returns the public view of the session owner, or
// ErrTokenInvalid if the token does not resolve to a live session.
func (s *userService) FindUserByToken(ctx context.Context, token string) (models.LoginUser, error) {
	user, ok := s.authService.CheckToken(ctx, token)
	if !ok {
		return models.LoginUser{}, ErrTokenInvalid
	}

	return user.LoginUser(), nil
}
