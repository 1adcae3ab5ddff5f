package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hucha-finance/hucha/internal/obligation"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, space_id, title, amount, due_date, status, category, minimum_payment, created_at, updated_at
func scanObligation(s scanner) (*obligation.Obligation, error) {
	var o obligation.Obligation

	var statusStr string

	if err := s.Scan(
		&o.ID, &o.SpaceID, &o.Title, &o.Amount, &o.DueDate, &statusStr,
		&o.Category, &o.MinimumPayment, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}

	o.Status = obligation.Status(statusStr)

	return &o, nil
}

const selectObligationColumns = `
	o.id, o.space_id, o.title, o.amount, o.due_date, o.status, o.category,
	o.minimum_payment, o.created_at, o.updated_at
`

func (s *Store) CreateObligation(ctx context.Context, o *obligation.Obligation) error {
	query := `
		INSERT INTO obligations (space_id, title, amount, due_date, status, category, minimum_payment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		o.SpaceID,
		o.Title,
		o.Amount,
		o.DueDate,
		o.Status,
		o.Category,
		o.MinimumPayment,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating obligation: %w", err)
	}

	return nil
}

func (s *Store) GetObligation(ctx context.Context, spaceID, id uuid.UUID) (*obligation.Obligation, error) {
	query := `SELECT ` + selectObligationColumns + `
		FROM obligations o
		WHERE o.id = $1 AND o.space_id = $2`

	o, err := scanObligation(s.db.QueryRowContext(ctx, query, id, spaceID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, obligation.ErrNotFound
		}

		return nil, fmt.Errorf("getting obligation: %w", err)
	}

	return o, nil
}

func (s *Store) ListObligations(ctx context.Context, spaceID uuid.UUID, filter obligation.ListFilter) ([]*obligation.Obligation, error) {
	query := `SELECT ` + selectObligationColumns + `
		FROM obligations o
		WHERE o.space_id = $1`

	args := []any{spaceID}

	argIdx := 2

	if len(filter.Statuses) > 0 {
		query += fmt.Sprintf(" AND o.status = ANY($%d)", argIdx)

		statuses := make([]string, len(filter.Statuses))
		for i, st := range filter.Statuses {
			statuses[i] = string(st)
		}

		args = append(args, statuses)
		argIdx++
	}

	query += " ORDER BY o.due_date ASC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)

		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing obligations: %w", err)
	}
	defer rows.Close()

	var obligations []*obligation.Obligation

	for rows.Next() {
		o, err := scanObligation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning obligation: %w", err)
		}

		obligations = append(obligations, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating obligation rows: %w", err)
	}

	return obligations, nil
}

func (s *Store) UpdateObligation(ctx context.Context, o *obligation.Obligation) error {
	query := `
		UPDATE obligations
		SET title = $1, amount = $2, due_date = $3, status = $4, category = $5, minimum_payment = $6, updated_at = NOW()
		WHERE id = $7 AND space_id = $8
	`

	_, err := s.db.ExecContext(ctx, query,
		o.Title,
		o.Amount,
		o.DueDate,
		o.Status,
		o.Category,
		o.MinimumPayment,
		o.ID,
		o.SpaceID,
	)
	if err != nil {
		return fmt.Errorf("updating obligation: %w", err)
	}

	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, spaceID, id uuid.UUID, status obligation.Status) error {
	query := `
		UPDATE obligations
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND space_id = $3
	`

	_, err := s.db.ExecContext(ctx, query, status, id, spaceID)
	if err != nil {
		return fmt.Errorf("updating obligation status: %w", err)
	}

	return nil
}

func (s *Store) UpdateOutstanding(ctx context.Context, spaceID, id uuid.UUID, amount decimal.Decimal) error {
	query := `
		UPDATE obligations
		SET amount = $1, updated_at = NOW()
		WHERE id = $2 AND space_id = $3
	`

	_, err := s.db.ExecContext(ctx, query, amount, id, spaceID)
	if err != nil {
		return fmt.Errorf("updating obligation outstanding amount: %w", err)
	}

	return nil
}

func (s *Store) DeleteObligation(ctx context.Context, spaceID, id uuid.UUID) error {
	query := `DELETE FROM obligations WHERE id = $1 AND space_id = $2`

	_, err := s.db.ExecContext(ctx, query, id, spaceID)
	if err != nil {
		return fmt.Errorf("deleting obligation: %w", err)
	}

	return nil
}
