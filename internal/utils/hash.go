// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// PasswordHasher turns a plaintext password and the configured salt into the
// digest stored in the users table. Implementations must be deterministic:
// login looks users up by (account, digest).
type PasswordHasher func(password, salt string) string

// NewPasswordHasher returns the hasher registered under algorithm.
// Supported values are "md5" and "hmac-sha256".
func NewPasswordHasher(algorithm string) (PasswordHasher, error) {
	switch algorithm {
	case "md5", "":
		return MD5Hex, nil
	case "hmac-sha256":
		return HMACSHA256Hex, nil
	default:
		return nil, fmt.Errorf("unknown password hash algorithm %q", algorithm)
	}
}

// MD5Hex returns the lowercase hex md5 of password+salt. It reproduces the
// digests already stored by the legacy blog, so existing accounts keep
// working.
func MD5Hex(password, salt string) string {
	sum := md5.Sum([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// HMACSHA256Hex returns the hex HMAC-SHA256 of password keyed by salt.
func HMACSHA256Hex(password, salt string) string {
	hasher := hmac.New(sha256.New, []byte(salt))
	hasher.Write([]byte(password))
	return hex.EncodeToString(hasher.Sum(nil))
}
