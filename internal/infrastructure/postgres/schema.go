package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is the full relational layout. Statements are idempotent so the
// server can apply them on every boot.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		name TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('distributor', 'consumer', 'manufacturer')),
		phone TEXT,
		address TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS materials (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL CHECK (category IN ('cement', 'steel', 'tiles', 'other')),
		manufacturer TEXT NOT NULL,
		grade TEXT,
		type TEXT,
		description TEXT,
		unit TEXT NOT NULL DEFAULT 'piece',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS inventory (
		id UUID PRIMARY KEY,
		distributor_id UUID NOT NULL REFERENCES users(id),
		material_id UUID NOT NULL REFERENCES materials(id),
		quantity NUMERIC NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		last_updated TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (distributor_id, material_id)
	)`,
	`CREATE TABLE IF NOT EXISTS prices (
		id UUID PRIMARY KEY,
		distributor_id UUID NOT NULL REFERENCES users(id),
		material_id UUID NOT NULL REFERENCES materials(id),
		price NUMERIC NOT NULL CHECK (price >= 0),
		effective_date DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_prices_pair_date
		ON prices (distributor_id, material_id, effective_date DESC)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id UUID PRIMARY KEY,
		from_user_id UUID NOT NULL REFERENCES users(id),
		to_user_id UUID REFERENCES users(id),
		to_role TEXT,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT 'info',
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_recipient
		ON notifications (to_user_id, to_role, is_read)`,
	`CREATE TABLE IF NOT EXISTS inquiries (
		id UUID PRIMARY KEY,
		consumer_id UUID NOT NULL REFERENCES users(id),
		distributor_id UUID NOT NULL REFERENCES users(id),
		material_id UUID NOT NULL REFERENCES materials(id),
		quantity NUMERIC,
		message TEXT,
		status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'responded', 'closed')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema applies the schema statements in order.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
