// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-blog/internal/metrics"
	"github.com/MKhiriev/go-blog/models"
)

// AuthMetricsService decorates an AuthService with Prometheus counters.
type AuthMetricsService struct {
	inner   AuthService
	metrics *metrics.AuthMetrics
}

func NewAuthMetricsService(m *metrics.AuthMetrics) AuthServiceWrapper {
	return &AuthMetricsService{metrics: m}
}

func (s *AuthMetricsService) Login(ctx context.Context, params models.LoginParams) (models.Token, error) {
	start := time.Now()
	token, err := s.inner.Login(ctx, params)
	s.metrics.Record(metrics.OpLogin, resultOf(err), time.Since(start))
	return token, err
}

func (s *AuthMetricsService) Register(ctx context.Context, params models.LoginParams) (models.Token, error) {
	start := time.Now()
	token, err := s.inner.Register(ctx, params)
	s.metrics.Record(metrics.OpRegister, resultOf(err), time.Since(start))
	return token, err
}

func (s *AuthMetricsService) CheckToken(ctx context.Context, token string) (models.User, bool) {
	start := time.Now()
	user, ok := s.inner.CheckToken(ctx, token)

	result := metrics.ResultSuccess
	if !ok {
		result = metrics.ResultTokenInvalid
	}
	s.metrics.Record(metrics.OpCheckToken, result, time.Since(start))

	return user, ok
}

func (s *AuthMetricsService) Logout(ctx context.Context, token string) error {
	start := time.Now()
	err := s.inner.Logout(ctx, token)
	s.metrics.Record(metrics.OpLogout, resultOf(err), time.Since(start))
	return err
}

func (s *AuthMetricsService) Wrap(wrapped AuthService) AuthService {
	s.inner = wrapped
	return s
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, ErrParamsInvalid):
		return metrics.ResultParamsInvalid
	case errors.Is(err, ErrAccountOrPasswordInvalid):
		return metrics.ResultAccountOrPasswordInvalid
	case errors.Is(err, ErrAccountExists):
		return metrics.ResultAccountExists
	case errors.Is(err, ErrTokenInvalid):
		return metrics.ResultTokenInvalid
	default:
		return metrics.ResultError
	}
}
