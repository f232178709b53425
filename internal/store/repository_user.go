// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// userRepository is the database/sql implementation of [UserRepository].
// It handles account creation and lookup against the "sys_users" table on
// either PostgreSQL or SQLite, depending on the dialect of the [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindUserByAccount retrieves the live user whose account matches.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - any other driver-level error → [ErrExecutingQuery], wrapped.
func (r *userRepository) FindUserByAccount(ctx context.Context, account string) (models.User, error) {
	query, args, err := r.db.buildFindUserByAccountQuery(account)
	if err != nil {
		return models.User{}, err
	}

	return r.findOne(ctx, "*userRepository.FindUserByAccount", query, args)
}

// FindUserByCredentials retrieves the live user whose account and password
// hash both match. A wrong password and an unknown account are
// indistinguishable: both yield [ErrNoUserWasFound].
func (r *userRepository) FindUserByCredentials(ctx context.Context, account, passwordHash string) (models.User, error) {
	query, args, err := r.db.buildFindUserByCredentialsQuery(account, passwordHash)
	if err != nil {
		return models.User{}, err
	}

	return r.findOne(ctx, "*userRepository.FindUserByCredentials", query, args)
}

// CreateUser persists a new user record and returns it with the
// database-assigned ID.
//
// Error handling:
//   - unique violation on account (PostgreSQL 23505, SQLite
//     SQLITE_CONSTRAINT_UNIQUE) → [ErrAccountAlreadyExists].
//   - any other driver-level error → [ErrExecutingStatement], wrapped.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildCreateUserQuery(user)
	if err != nil {
		return models.User{}, err
	}

	// create user in db
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		if r.db.isUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("account", user.Account).Msg("account already exists")
			return models.User{}, ErrAccountAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Bool("transient", r.db.isTransient(err)).Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// UpdateLastLogin stamps the last successful login of userID.
// Returns [ErrNoUserWasFound] when no row was updated.
func (r *userRepository) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildUpdateLastLoginQuery(userID, at)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateLastLogin").Bool("transient", r.db.isTransient(err)).Msg("error updating last login")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(userScanDest(&foundUser)...)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", funcName).Bool("transient", r.db.isTransient(err)).Msg("error querying user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w: %w", ErrExecutingQuery, err)
	}

	return foundUser, nil
}
