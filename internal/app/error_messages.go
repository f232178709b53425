// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the result-envelope codes and messages shared by the
// HTTP handlers and the API client.
//
// Business failures travel inside a successful HTTP response; clients
// distinguish them only by these codes, so the values are part of the wire
// contract with existing blog front ends and must not change.
package app

// Envelope codes.
const (
	CodeParamsError               = 10001
	CodeAccountOrPasswordNotExist = 10002
	CodeTokenInvalid              = 10003
	CodeAccountExists             = 10004
	CodeNotLoggedIn               = 90002
	CodeSystemError               = -999
)

// Envelope messages.
const (
	MsgParamsError               = "params error"
	MsgAccountOrPasswordNotExist = "account or password does not exist"
	MsgTokenInvalid              = "token invalid"
	MsgAccountExists             = "account already exists"
	MsgNotLoggedIn               = "not logged in"
	MsgSystemError               = "system error"
)
