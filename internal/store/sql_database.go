// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/migrations"
)

// Dialect identifies the SQL backend behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// ErrorClassificator inspects driver errors of one SQL backend.
type ErrorClassificator interface {
	// IsTransient reports whether err comes from a lost connection, a lock
	// or a rolled back transaction rather than from the statement itself.
	IsTransient(err error) bool
	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}

// DB is a database/sql handle tagged with its dialect. The dialect picks the
// squirrel placeholder format and the driver error classifier.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectDB opens the database named by cfg.DSN. "postgres://" and
// "postgresql://" URLs go through pgx; anything else is a SQLite path.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if DialectFromDSN(cfg.DSN) == DialectPostgres {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// DialectFromDSN returns the dialect a DSN will be opened with.
func DialectFromDSN(dsn string) Dialect {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DialectPostgres
	}

	return DialectSQLite
}

// Dialect returns the backend of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate brings the sys_users schema up to date for the db's dialect.
// Returns [ErrNilDatabase] when db holds no connection.
func (db *DB) Migrate() error {
	if db == nil || db.DB == nil {
		return ErrNilDatabase
	}

	if err := migrations.Migrate(db.DB, string(db.dialect)); err != nil {
		return fmt.Errorf("migrating %s database: %w", db.dialect, err)
	}

	return nil
}

// builder returns a squirrel statement builder using the placeholder format
// of the db's dialect.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (db *DB) isUniqueViolation(err error) bool {
	if db.errorClassificator == nil {
		return false
	}

	return db.errorClassificator.IsUniqueViolation(err)
}

func (db *DB) isTransient(err error) bool {
	if db.errorClassificator == nil {
		return false
	}

	return db.errorClassificator.IsTransient(err)
}
