// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog/models"
)

const usersTable = "sys_users"

// userColumns is the SELECT list scanned by [scanUser]. Order matters.
var userColumns = []string{
	"id",
	"account",
	"password",
	"nickname",
	"avatar",
	"create_date",
	"last_login",
	"admin",
	"deleted",
	"salt",
	"status",
	"email",
	"mobile_phone_number",
}

// userScanDest returns pointers into u in [userColumns] order.
func userScanDest(u *models.User) []any {
	return []any{
		&u.ID,
		&u.Account,
		&u.Password,
		&u.Nickname,
		&u.Avatar,
		&u.CreateDate,
		&u.LastLogin,
		&u.Admin,
		&u.Deleted,
		&u.Salt,
		&u.Status,
		&u.Email,
		&u.MobilePhoneNumber,
	}
}

func (db *DB) buildFindUserByAccountQuery(account string) (string, []any, error) {
	query, args, err := db.builder().
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"account": account, "deleted": false}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (db *DB) buildFindUserByCredentialsQuery(account, passwordHash string) (string, []any, error) {
	query, args, err := db.builder().
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"account": account, "password": passwordHash, "deleted": false}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCreateUserQuery inserts every column except id and returns the
// generated id. Both PostgreSQL and SQLite (3.35+) accept RETURNING.
func (db *DB) buildCreateUserQuery(user models.User) (string, []any, error) {
	query, args, err := db.builder().
		Insert(usersTable).
		Columns(userColumns[1:]...).
		Values(
			user.Account,
			user.Password,
			user.Nickname,
			user.Avatar,
			user.CreateDate,
			user.LastLogin,
			user.Admin,
			user.Deleted,
			user.Salt,
			user.Status,
			user.Email,
			user.MobilePhoneNumber,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (db *DB) buildUpdateLastLoginQuery(userID int64, at time.Time) (string, []any, error) {
	query, args, err := db.builder().
		Update(usersTable).
		Set("last_login", at).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
