// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the blog auth HTTP transport.
//
// It owns the listener lifecycle: startup, waiting for cancellation of the
// run context (normally tied to SIGINT/SIGTERM), and graceful shutdown
// bounded by the configured shutdown timeout.
package server
