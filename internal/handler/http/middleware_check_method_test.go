// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInit_WrongMethodIsNotFound(t *testing.T) {
	// no service expectations: gomock fails the test if a handler runs
	router := newTestDeps(t).handler.Init()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/login"},
		{http.MethodPut, "/login"},
		{http.MethodGet, "/register"},
		{http.MethodPut, "/register"},
		{http.MethodDelete, "/logout"},
		{http.MethodPut, "/logout"},
		{http.MethodPost, "/users/currentUser"},
		{http.MethodDelete, "/users/currentUser"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", "t")

			rec := serve(router, req)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestInit_UnknownPathIsNotFound(t *testing.T) {
	router := newTestDeps(t).handler.Init()

	for _, path := range []string{"/nope", "/users", "/users/currentUser/extra", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(router, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_ServedMethodPassesThrough(t *testing.T) {
	deps := newTestDeps(t)
	deps.authService.EXPECT().Logout(gomock.Any(), "t").Return(nil)
	deps.userService.EXPECT().FindUserByToken(gomock.Any(), "t").Return(models.LoginUser{ID: 1}, nil)
	router := deps.handler.Init()

	for _, path := range []string{"/logout", "/users/currentUser"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			req.Header.Set("Authorization", "t")

			rec := serve(router, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, decodeResult(t, rec).Success)
		})
	}
}

func TestNotFoundOnWrongMethod(t *testing.T) {
	h := newTestDeps(t).handler
	rec := httptest.NewRecorder()

	h.notFoundOnWrongMethod(rec, httptest.NewRequest(http.MethodPatch, "/login", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, rec.Body.Len())
}
