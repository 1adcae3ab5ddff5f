package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func New(connStr string) (*sql.DB, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// EnsureSchema creates the tables the services expect. Statements are
// idempotent so every binary can run this at startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS transactions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			space_id UUID NOT NULL,
			type TEXT NOT NULL,
			amount NUMERIC(14,2) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			date DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_space_date
			ON transactions (space_id, date)`,
		`CREATE TABLE IF NOT EXISTS debts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			space_id UUID NOT NULL,
			name TEXT NOT NULL,
			total_amount NUMERIC(14,2) NOT NULL,
			monthly_payment NUMERIC(14,2) NOT NULL DEFAULT 0,
			remaining_installments INT NOT NULL DEFAULT 0,
			total_installments INT NOT NULL DEFAULT 0,
			category TEXT NOT NULL DEFAULT '',
			next_payment_date DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS obligations (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			space_id UUID NOT NULL,
			title TEXT NOT NULL,
			amount NUMERIC(14,2) NOT NULL,
			due_date DATE NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			category TEXT NOT NULL DEFAULT '',
			minimum_payment NUMERIC(14,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_obligations_space_status
			ON obligations (space_id, status)`,
		`CREATE TABLE IF NOT EXISTS recurring_rules (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			space_id UUID NOT NULL,
			type TEXT NOT NULL,
			amount NUMERIC(14,2) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			frequency TEXT NOT NULL,
			start_date DATE NOT NULL,
			next_run DATE NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_recurring_rules_due
			ON recurring_rules (space_id, next_run) WHERE is_active`,
		`CREATE TABLE IF NOT EXISTS audit_events (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			space_id UUID NOT NULL,
			entity_type TEXT NOT NULL,
			entity_id TEXT NOT NULL,
			action TEXT NOT NULL,
			before JSONB,
			after JSONB,
			metadata JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensuring schema: %w", err)
		}
	}

	return nil
}
