// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Result is the response envelope written by every API endpoint.
// Business failures are reported with Success == false and a non-zero Code;
// the HTTP status stays 200 for them so that existing blog clients, which
// only inspect the envelope, keep working.
type Result struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Msg     string `json:"msg"`
	Data    any    `json:"data"`
}

// Success wraps data into a successful envelope.
func Success(data any) Result {
	return Result{
		Success: true,
		Code:    200,
		Msg:     "success",
		Data:    data,
	}
}

// Fail builds a failed envelope carrying code and msg.
func Fail(code int, msg string) Result {
	return Result{
		Success: false,
		Code:    code,
		Msg:     msg,
		Data:    nil,
	}
}
