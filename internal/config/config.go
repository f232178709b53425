// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-blog server. It is populated by merging defaults, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the authentication settings: password salt, token signing
	// parameters, session lifetime and registration policy.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the credential database and the
	// session cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control password
// hashing, token lifecycle and the defaults applied to new accounts.
type App struct {
	// PasswordSalt is appended to every password before hashing.
	// Changing it invalidates every stored password hash.
	// Env: APP_PASSWORD_SALT
	PasswordSalt string `env:"PASSWORD_SALT"`

	// PasswordHashAlgorithm selects the digest used for passwords:
	// "md5" (hex md5 of password+salt, compatible with legacy blog rows) or
	// "hmac-sha256" (hex HMAC-SHA256 of the password keyed by the salt).
	// Env: APP_PASSWORD_HASH_ALGORITHM
	PasswordHashAlgorithm string `env:"PASSWORD_HASH_ALGORITHM"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// checked on validation.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid after issuance.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// SessionTTL is the expiry of a session cache entry, fixed at write time.
	// Env: APP_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// DefaultAvatar is the avatar path assigned to newly registered users.
	// Env: APP_DEFAULT_AVATAR
	DefaultAvatar string `env:"DEFAULT_AVATAR"`

	// RegisterAsAdmin grants the administrator flag to every new account.
	// Off by default.
	// Sources are merged with mergo.WithOverride, which skips zero values:
	// once any source sets it to true, a later source cannot turn it back
	// off. Unset it at the source that enabled it.
	// Env: APP_REGISTER_AS_ADMIN
	RegisterAsAdmin bool `env:"REGISTER_AS_ADMIN"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the credential database connection settings.
	DB DB `envPrefix:"DB_"`

	// Cache holds the Redis connection settings of the session cache.
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects both the driver and the connection: a "postgres://" or
	// "postgresql://" URL opens PostgreSQL through pgx, anything else is
	// treated as a SQLite file path (":memory:" included).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Cache holds connection settings for the Redis session cache.
type Cache struct {
	// Address is the Redis "host:port".
	// Env: STORAGE_CACHE_ADDRESS
	Address string `env:"ADDRESS"`

	// Password is the optional Redis AUTH password.
	// Env: STORAGE_CACHE_PASSWORD
	Password string `env:"PASSWORD"`

	// DB is the Redis logical database index.
	// Env: STORAGE_CACHE_DB
	DB int `env:"DB"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
