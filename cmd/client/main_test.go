// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) adapter.ServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestRun_Login(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		var params models.LoginParams
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, models.LoginParams{Account: "bob", Password: "pw1"}, params)
		_ = json.NewEncoder(w).Encode(models.Success("tok"))
	})

	out, err := run(context.Background(), a, "login", []string{"-account", "bob", "-password", "pw1"})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"token": "tok"}, out)
	assert.Equal(t, "tok", a.Token())
}

func TestRun_Me(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/currentUser", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.Success(models.LoginUser{ID: 1, Account: "bob"}))
	})
	a.SetToken("tok")

	out, err := run(context.Background(), a, "me", nil)

	require.NoError(t, err)
	assert.Equal(t, models.LoginUser{ID: 1, Account: "bob"}, out)
}

func TestRun_UnknownCommand(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := run(context.Background(), a, "delete", nil)

	assert.ErrorIs(t, err, errUnknownCommand)
}

func TestRun_BadFlag(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := run(context.Background(), a, "login", []string{"-unknown"})

	assert.Error(t, err)
}
