// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the blog auth service.
//
// It exposes route wiring, request handlers, and middleware for the login,
// register, logout and currentUser endpoints. Every response body is a
// [models.Result] envelope. Request tracing, access logging, compression and
// panic recovery are handled here before requests reach the service layer.
package http
