// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/metrics"
	"github.com/MKhiriev/go-blog/internal/store"
)

type Services struct {
	AuthService AuthService
	UserService UserService
}

// NewServices wires the service layer on top of storages. When authMetrics is
// non-nil the AuthService is decorated with [AuthMetricsService].
func NewServices(storages *store.Storages, cfg config.StructuredConfig, authMetrics *metrics.AuthMetrics, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(storages.UserRepository, storages.SessionCache, NewJWTTokenCodec(cfg.App), cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("creating auth service: %w", err)
	}

	if authMetrics != nil {
		authService = NewAuthMetricsService(authMetrics).Wrap(authService)
	}

	return &Services{
		AuthService: authService,
		UserService: NewUserService(authService, logger),
	}, nil
}
