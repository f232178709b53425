// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrListen is returned by RunServer when the configured address cannot
	// be bound.
	ErrListen = errors.New("cannot listen on HTTP address")
)
