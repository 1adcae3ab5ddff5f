package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hucha-finance/hucha/internal/dateutil"
	"github.com/hucha-finance/hucha/internal/recurring"
	"github.com/hucha-finance/hucha/internal/transaction"
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

// Expected column order: id, space_id, type, amount, description, category,
// frequency, start_date, next_run, is_active, created_at, updated_at
func scanRule(s scanner) (*recurring.Rule, error) {
	var r recurring.Rule

	var typeStr, freqStr string

	if err := s.Scan(
		&r.ID, &r.SpaceID, &typeStr, &r.Amount, &r.Description, &r.Category,
		&freqStr, &r.StartDate, &r.NextRun, &r.IsActive, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}

	r.Type = transaction.Type(typeStr)
	r.Frequency = dateutil.Frequency(freqStr)

	return &r, nil
}

const selectRuleColumns = `
	r.id, r.space_id, r.type, r.amount, r.description, r.category,
	r.frequency, r.start_date, r.next_run, r.is_active, r.created_at, r.updated_at
`

func (s *Store) CreateRule(ctx context.Context, r *recurring.Rule) error {
	query := `
		INSERT INTO recurring_rules (space_id, type, amount, description, category, frequency, start_date, next_run, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		r.SpaceID,
		r.Type,
		r.Amount,
		r.Description,
		r.Category,
		r.Frequency,
		r.StartDate,
		r.NextRun,
		r.IsActive,
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating recurring rule: %w", err)
	}

	return nil
}

func (s *Store) GetRule(ctx context.Context, spaceID, id uuid.UUID) (*recurring.Rule, error) {
	query := `SELECT ` + selectRuleColumns + `
		FROM recurring_rules r
		WHERE r.id = $1 AND r.space_id = $2`

	r, err := scanRule(s.db.QueryRowContext(ctx, query, id, spaceID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, recurring.ErrNotFound
		}

		return nil, fmt.Errorf("getting recurring rule: %w", err)
	}

	return r, nil
}

func (s *Store) ListRules(ctx context.Context, spaceID uuid.UUID) ([]*recurring.Rule, error) {
	query := `SELECT ` + selectRuleColumns + `
		FROM recurring_rules r
		WHERE r.space_id = $1
		ORDER BY r.next_run ASC`

	return s.queryRules(ctx, query, spaceID)
}

func (s *Store) ListDueRules(ctx context.Context, spaceID uuid.UUID, today time.Time) ([]*recurring.Rule, error) {
	query := `SELECT ` + selectRuleColumns + `
		FROM recurring_rules r
		WHERE r.space_id = $1 AND r.is_active AND r.next_run <= $2
		ORDER BY r.next_run ASC`

	return s.queryRules(ctx, query, spaceID, today)
}

func (s *Store) queryRules(ctx context.Context, query string, args ...any) ([]*recurring.Rule, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing recurring rules: %w", err)
	}
	defer rows.Close()

	var rules []*recurring.Rule

	for rows.Next() {
		r, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning recurring rule: %w", err)
		}

		rules = append(rules, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recurring rule rows: %w", err)
	}

	return rules, nil
}

func (s *Store) ListSpacesWithDueRules(ctx context.Context, today time.Time) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT space_id
		FROM recurring_rules
		WHERE is_active AND next_run <= $1
	`

	rows, err := s.db.QueryContext(ctx, query, today)
	if err != nil {
		return nil, fmt.Errorf("listing spaces with due rules: %w", err)
	}
	defer rows.Close()

	var spaces []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning space id: %w", err)
		}

		spaces = append(spaces, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating space rows: %w", err)
	}

	return spaces, nil
}

func (s *Store) UpdateRule(ctx context.Context, r *recurring.Rule) error {
	query := `
		UPDATE recurring_rules
		SET type = $1, amount = $2, description = $3, category = $4, frequency = $5, start_date = $6, next_run = $7, is_active = $8, updated_at = NOW()
		WHERE id = $9 AND space_id = $10
	`

	_, err := s.db.ExecContext(ctx, query,
		r.Type,
		r.Amount,
		r.Description,
		r.Category,
		r.Frequency,
		r.StartDate,
		r.NextRun,
		r.IsActive,
		r.ID,
		r.SpaceID,
	)
	if err != nil {
		return fmt.Errorf("updating recurring rule: %w", err)
	}

	return nil
}

func (s *Store) UpdateNextRun(ctx context.Context, spaceID, id uuid.UUID, nextRun time.Time) error {
	query := `
		UPDATE recurring_rules
		SET next_run = $1, updated_at = NOW()
		WHERE id = $2 AND space_id = $3
	`

	_, err := s.db.ExecContext(ctx, query, nextRun, id, spaceID)
	if err != nil {
		return fmt.Errorf("updating recurring rule next run: %w", err)
	}

	return nil
}

func (s *Store) DeleteRule(ctx context.Context, spaceID, id uuid.UUID) error {
	query := `DELETE FROM recurring_rules WHERE id = $1 AND space_id = $2`

	_, err := s.db.ExecContext(ctx, query, id, spaceID)
	if err != nil {
		return fmt.Errorf("deleting recurring rule: %w", err)
	}

	return nil
}
