// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package favorites

import (
	"context"
	"database/sql"
	"embed"

	// registers the "pgx" database/sql driver
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	cerrors "github.com/NVIDIA/cocktail-explorer/pkg/errors"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var gooseUpContext = goose.UpContext

// RunMigrations applies the embedded schema migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("pgx"); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInternal, "failed to set migration dialect", err)
	}
	if err := gooseUpContext(ctx, db, "migrations"); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInternal, "failed to apply favorites migrations", err)
	}
	return nil
}

// PostgresRepository stores favorites in the favorites table. Entry order
// is kept in the position column.
type PostgresRepository struct {
	db *sql.DB
}

var _ Repository = (*PostgresRepository)(nil)

// NewPostgresRepository returns a repository over an open database. The
// schema must already exist; see RunMigrations.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// OpenPostgres connects to dsn, checks the connection, and applies
// migrations.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresRepository, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeUnavailable, "failed to open favorites database", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, cerrors.Wrap(cerrors.ErrCodeUnavailable, "favorites database is unreachable", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewPostgresRepository(db), nil
}

// Close closes the underlying database.
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// Load implements Repository.
func (r *PostgresRepository) Load(ctx context.Context) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title FROM favorites ORDER BY position, id`)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInternal, "failed to query favorites", err)
	}
	defer rows.Close()

	list := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Title); err != nil {
			return nil, cerrors.Wrap(cerrors.ErrCodeInternal, "failed to scan favorite", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInternal, "failed to read favorites", err)
	}
	return list, nil
}

// Save implements Repository. The table is replaced in one transaction.
func (r *PostgresRepository) Save(ctx context.Context, list []Entry) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInternal, "failed to begin favorites transaction", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM favorites`); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInternal, "failed to clear favorites", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO favorites (id, title, position) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInternal, "failed to prepare favorites insert", err)
	}
	defer stmt.Close()

	for i, e := range list {
		if _, err = stmt.ExecContext(ctx, e.ID, e.Title, i); err != nil {
			return cerrors.WrapWithContext(cerrors.ErrCodeInternal, "failed to insert favorite", err,
				map[string]any{"id": e.ID})
		}
	}

	if err = tx.Commit(); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInternal, "failed to commit favorites", err)
	}
	return nil
}
