// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the auth service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation label values.
const (
	OpLogin      = "login"
	OpRegister   = "register"
	OpCheckToken = "check_token"
	OpLogout     = "logout"
)

// Result label values.
const (
	ResultSuccess                  = "success"
	ResultParamsInvalid            = "params_invalid"
	ResultAccountOrPasswordInvalid = "account_or_password_invalid"
	ResultAccountExists            = "account_exists"
	ResultTokenInvalid             = "token_invalid"
	ResultError                    = "error"
)

// AuthMetrics counts and times auth operations.
type AuthMetrics struct {
	attempts *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewAuthMetrics creates the collectors and registers them with reg.
// Panics if registration fails (following prometheus convention).
func NewAuthMetrics(reg prometheus.Registerer) *AuthMetrics {
	m := &AuthMetrics{
		attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "blog",
				Subsystem: "auth",
				Name:      "attempts_total",
				Help:      "Total number of auth operations by operation and result",
			},
			[]string{"op", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "blog",
				Subsystem: "auth",
				Name:      "duration_seconds",
				Help:      "Auth operation duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"op"},
		),
	}

	reg.MustRegister(m.attempts, m.duration)
	return m
}

// Record increments the attempt counter for op/result and observes d.
// A nil receiver is a no-op.
func (m *AuthMetrics) Record(op, result string, d time.Duration) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(op, result).Inc()
	m.duration.WithLabelValues(op).Observe(d.Seconds())
}
