// Copyright 2025 The Motorcycle Dynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repo persists user accounts and named designs in Postgres
package repo

import (
	"context"
	"database/sql"
	"os"
	"time"

	_ "github.com/lib/pq"
)

// DesignInfo is one entry of a user's design listing
type DesignInfo struct {
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	Updated time.Time `json:"updated"`
}

// Repository is the persistence boundary of the service
type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)

	SaveDesign(ctx context.Context, owner int, name string, payload []byte) (int, error)
	GetDesign(ctx context.Context, owner int, name string) ([]byte, error)
	ListDesigns(ctx context.Context, owner int) ([]DesignInfo, error)
	DeleteDesign(ctx context.Context, owner int, name string) error
}

// PostgresRepository implements Repository on a Postgres database
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresDB wraps an open database handle
func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// InitDB opens the Postgres connection described by the DATABASE_URL
// environment variable
func InitDB() (*sql.DB, error) {
	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveDesign(ctx context.Context, owner int, name string, payload []byte) (int, error) {
	var id int
	query := `INSERT INTO designs (owner_id, name, payload, updated)
	          VALUES ($1, $2, $3, now())
	          ON CONFLICT (owner_id, name) DO UPDATE SET payload=$3, updated=now()
	          RETURNING id`
	err := r.db.QueryRowContext(ctx, query, owner, name, payload).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetDesign(ctx context.Context, owner int, name string) ([]byte, error) {
	var payload []byte
	query := "SELECT payload FROM designs WHERE owner_id=$1 AND name=$2"
	err := r.db.QueryRowContext(ctx, query, owner, name).Scan(&payload)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (r *PostgresRepository) ListDesigns(ctx context.Context, owner int) ([]DesignInfo, error) {
	query := "SELECT id, name, updated FROM designs WHERE owner_id=$1 ORDER BY updated DESC"
	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []DesignInfo
	for rows.Next() {
		var d DesignInfo
		if err := rows.Scan(&d.ID, &d.Name, &d.Updated); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *PostgresRepository) DeleteDesign(ctx context.Context, owner int, name string) error {
	query := "DELETE FROM designs WHERE owner_id=$1 AND name=$2"
	res, err := r.db.ExecContext(ctx, query, owner, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
