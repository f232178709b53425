// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/handler"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandlers(t *testing.T, cfg config.Server) (*handler.Handlers, *mock.MockAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	authService := mock.NewMockAuthService(ctrl)

	handlers, err := handler.NewHandlers(&service.Services{
		AuthService: authService,
		UserService: mock.NewMockUserService(ctrl),
	}, cfg, nil, logger.Nop())
	require.NoError(t, err)

	return handlers, authService
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_DefaultShutdownTimeout(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	handlers, _ := newTestHandlers(t, cfg)

	s, err := NewServer(handlers, cfg, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, defaultShutdownTimeout, s.(*server).shutdownTimeout)
}

func TestRunServer_ServesUntilContextCancelled(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: 2 * time.Second}
	handlers, authService := newTestHandlers(t, cfg)
	authService.EXPECT().Logout(gomock.Any(), "tok").Return(nil)

	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	srv := s.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	select {
	case <-srv.httpServer.ready:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	req, err := http.NewRequest(http.MethodPost, "http://"+srv.httpServer.addr.String()+"/logout", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "tok")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":true,"code":200,"msg":"success","data":null}`, string(body))

	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunServer_ListenFailure(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:-1"}
	handlers, _ := newTestHandlers(t, cfg)

	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	err = s.RunServer(context.Background())
	assert.ErrorIs(t, err, ErrListen)
}
