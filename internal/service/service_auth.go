// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// SessionKeyPrefix prefixes every session cache key.
const SessionKeyPrefix = "TOKEN_"

// SessionKey returns the cache key of the session opened with token.
func SessionKey(token string) string {
	return SessionKeyPrefix + token
}

// authService is the concrete implementation of AuthService.
// It verifies credentials against a UserRepository, issues tokens through a
// TokenCodec, and keeps one JSON user snapshot per token in a SessionCache.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionCache stores "TOKEN_<token>" → user snapshot entries.
	sessionCache store.SessionCache

	// tokenCodec signs and validates tokens.
	tokenCodec TokenCodec

	// validator rejects blank login and register inputs.
	validator validators.Validator

	// hasher digests passwords together with salt. Must match the algorithm
	// used when existing rows were written.
	hasher utils.PasswordHasher
	salt   string

	// sessionTTL is the expiry of every session entry.
	sessionTTL time.Duration

	// defaultAvatar and registerAsAdmin shape newly registered users.
	defaultAvatar   string
	registerAsAdmin bool

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repository,
// cache and codec, and populated with security parameters from cfg.
//
// Returns an error if cfg names an unknown password hash algorithm.
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(
	userRepository store.UserRepository,
	sessionCache store.SessionCache,
	tokenCodec TokenCodec,
	cfg config.App,
	logger *logger.Logger,
) (AuthService, error) {
	hasher, err := utils.NewPasswordHasher(cfg.PasswordHashAlgorithm)
	if err != nil {
		return nil, err
	}

	return &authService{
		userRepository:  userRepository,
		sessionCache:    sessionCache,
		tokenCodec:      tokenCodec,
		validator:       validators.NewAuthValidator(),
		hasher:          hasher,
		salt:            cfg.PasswordSalt,
		sessionTTL:      cfg.SessionTTL,
		defaultAvatar:   cfg.DefaultAvatar,
		registerAsAdmin: cfg.RegisterAsAdmin,
		now:             time.Now,
		logger:          logger,
	}, nil
}

// Login authenticates an existing user and opens a session.
//
// Returns the issued token or:
//   - ErrParamsInvalid if account or password is blank; nothing else is touched.
//   - ErrAccountOrPasswordInvalid if no live user matches account and hash.
//   - A wrapped storage, token or cache error otherwise.
//
// A failure to record the last-login time is logged and ignored.
func (a *authService) Login(ctx context.Context, params models.LoginParams) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, params, validators.LoginFields...); err != nil {
		log.Debug().Err(err).Str("account", params.Account).Msg("invalid login params")
		return models.Token{}, fmt.Errorf("%w: %w", ErrParamsInvalid, err)
	}

	passwordHash := a.hasher(params.Password, a.salt)

	user, err := a.userRepository.FindUserByCredentials(ctx, params.Account, passwordHash)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("account", params.Account).Msg("wrong account or password")
		return models.Token{}, ErrAccountOrPasswordInvalid
	}
	if err != nil {
		log.Err(err).Str("account", params.Account).Msg("user search by credentials failed")
		return models.Token{}, fmt.Errorf("user search by credentials failed: %w", err)
	}

	loginAt := a.now()
	if err = a.userRepository.UpdateLastLogin(ctx, user.ID, loginAt); err != nil {
		log.Warn().Err(err).Int64("id", user.ID).Msg("could not record last login")
	} else {
		user.LastLogin = loginAt
	}

	return a.openSession(ctx, user)
}

// Register creates a new user account and opens a session for it.
//
// Returns the issued token or:
//   - ErrParamsInvalid if account, password or nickname is blank.
//   - ErrAccountExists if the account is taken, including when a concurrent
//     registration wins the race and the unique constraint fires.
//   - A wrapped storage, token or cache error otherwise.
func (a *authService) Register(ctx context.Context, params models.LoginParams) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, params, validators.RegisterFields...); err != nil {
		log.Debug().Err(err).Str("account", params.Account).Msg("invalid register params")
		return models.Token{}, fmt.Errorf("%w: %w", ErrParamsInvalid, err)
	}

	_, err := a.userRepository.FindUserByAccount(ctx, params.Account)
	switch {
	case err == nil:
		log.Info().Str("account", params.Account).Msg("account already exists")
		return models.Token{}, ErrAccountExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("account", params.Account).Msg("user search by account failed")
		return models.Token{}, fmt.Errorf("user search by account failed: %w", err)
	}

	now := a.now()
	user := models.User{
		Account:    params.Account,
		Password:   a.hasher(params.Password, a.salt),
		Nickname:   params.Nickname,
		Avatar:     a.defaultAvatar,
		CreateDate: now,
		LastLogin:  now,
		Admin:      a.registerAsAdmin,
		Deleted:    false,
	}

	createdUser, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrAccountAlreadyExists) {
		log.Info().Str("account", params.Account).Msg("account taken by concurrent registration")
		return models.Token{}, ErrAccountExists
	}
	if err != nil {
		log.Err(err).Str("account", params.Account).Msg("user creation ended with error")
		return models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", createdUser.ID).Str("account", createdUser.Account).Msg("user registered")
	return a.openSession(ctx, createdUser)
}

// CheckToken resolves token to the user snapshot stored at login.
//
// Every failure (blank token, rejected signature, expired token, missing or
// blank entry, cache error, undecodable snapshot) yields ok == false.
func (a *authService) CheckToken(ctx context.Context, token string) (models.User, bool) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, token); err != nil {
		return models.User{}, false
	}

	if _, ok := a.tokenCodec.Validate(token); !ok {
		log.Debug().Msg("token rejected by codec")
		return models.User{}, false
	}

	snapshot, err := a.sessionCache.Get(ctx, SessionKey(token))
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			log.Err(err).Msg("session lookup failed")
		}
		return models.User{}, false
	}
	if err = a.validator.Validate(ctx, snapshot); err != nil {
		return models.User{}, false
	}

	var user models.User
	if err = json.Unmarshal([]byte(snapshot), &user); err != nil {
		log.Err(err).Msg("session snapshot is not a user")
		return models.User{}, false
	}

	return user, true
}

// Logout deletes the session entry of token. A token without a session is
// not an error; only a cache transport failure is returned.
func (a *authService) Logout(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, token); err != nil {
		return nil
	}

	if err := a.sessionCache.Delete(ctx, SessionKey(token)); err != nil {
		log.Err(err).Msg("session delete failed")
		return fmt.Errorf("%w: %w", ErrSessionDeleteFailed, err)
	}

	return nil
}

// openSession issues a token for user and stores the password-free snapshot
// under its session key.
func (a *authService) openSession(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := a.tokenCodec.Create(user.ID)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	snapshot, err := json.Marshal(user.Snapshot())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrSessionWriteFailed, err)
	}

	if err = a.sessionCache.Set(ctx, SessionKey(token.SignedString), string(snapshot), a.sessionTTL); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("session write failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrSessionWriteFailed, err)
	}

	return token, nil
}
