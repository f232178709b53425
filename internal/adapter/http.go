// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress and applies the
// request timeout to the underlying client.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register posts params to POST /register and stores the returned token.
func (h *httpServerAdapter) Register(ctx context.Context, params models.LoginParams) (string, error) {
	return h.authenticate(ctx, "/register", params)
}

// Login posts params to POST /login and stores the returned token.
func (h *httpServerAdapter) Login(ctx context.Context, params models.LoginParams) (string, error) {
	return h.authenticate(ctx, "/login", params)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, params models.LoginParams) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(params).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", path, err)
	}

	var token string
	if err = decodeResult(resp, &token); err != nil {
		h.logger.Debug().Err(err).Str("path", path).Str("account", params.Account).Msg("server refused")
		return "", err
	}

	h.SetToken(token)
	return token, nil
}

// Logout posts the stored token to POST /logout. The local token is
// forgotten even if the request fails.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	token := h.Token()
	h.SetToken("")

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", token).
		Post("/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return decodeResult(resp, nil)
}

// CurrentUser calls GET /users/currentUser with the stored token.
func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.LoginUser, error) {
	var user models.LoginUser

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", h.Token()).
		Get("/users/currentUser")
	if err != nil {
		return models.LoginUser{}, fmt.Errorf("current user request: %w", err)
	}

	if err = decodeResult(resp, &user); err != nil {
		return models.LoginUser{}, err
	}
	return user, nil
}
