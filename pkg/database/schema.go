package database

import (
	"context"
	"fmt"
)

// schema run at startup; idempotent. Email uniqueness lives here at the store
// level, not in application code.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS soils (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		suitable_crops TEXT[] NOT NULL DEFAULT '{}',
		ph_level DOUBLE PRECISION,
		nutrients TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS distributors (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		contact TEXT NOT NULL,
		seed_type TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		quantity DOUBLE PRECISION NOT NULL,
		location TEXT,
		crops TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS blogs (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		images TEXT[] NOT NULL DEFAULT '{}',
		author_email TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
}

// InitSchema creates the tables if they do not exist yet
func InitSchema(ctx context.Context, db PgxIface) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
