package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hucha-finance/hucha/internal/debt"
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

// Expected column order: id, space_id, name, total_amount, monthly_payment,
// remaining_installments, total_installments, category, next_payment_date, created_at, updated_at
func scanDebt(s scanner) (*debt.Debt, error) {
	var d debt.Debt

	if err := s.Scan(
		&d.ID, &d.SpaceID, &d.Name, &d.TotalAmount, &d.MonthlyPayment,
		&d.RemainingInstallments, &d.TotalInstallments, &d.Category,
		&d.NextPaymentDate, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &d, nil
}

const selectDebtColumns = `
	d.id, d.space_id, d.name, d.total_amount, d.monthly_payment,
	d.remaining_installments, d.total_installments, d.category,
	d.next_payment_date, d.created_at, d.updated_at
`

func (s *Store) CreateDebt(ctx context.Context, d *debt.Debt) error {
	query := `
		INSERT INTO debts (space_id, name, total_amount, monthly_payment, remaining_installments, total_installments, category, next_payment_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		d.SpaceID,
		d.Name,
		d.TotalAmount,
		d.MonthlyPayment,
		d.RemainingInstallments,
		d.TotalInstallments,
		d.Category,
		d.NextPaymentDate,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating debt: %w", err)
	}

	return nil
}

func (s *Store) GetDebt(ctx context.Context, spaceID, id uuid.UUID) (*debt.Debt, error) {
	query := `SELECT ` + selectDebtColumns + `
		FROM debts d
		WHERE d.id = $1 AND d.space_id = $2`

	d, err := scanDebt(s.db.QueryRowContext(ctx, query, id, spaceID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, debt.ErrNotFound
		}

		return nil, fmt.Errorf("getting debt: %w", err)
	}

	return d, nil
}

func (s *Store) ListDebts(ctx context.Context, spaceID uuid.UUID) ([]*debt.Debt, error) {
	query := `SELECT ` + selectDebtColumns + `
		FROM debts d
		WHERE d.space_id = $1
		ORDER BY d.next_payment_date ASC`

	rows, err := s.db.QueryContext(ctx, query, spaceID)
	if err != nil {
		return nil, fmt.Errorf("listing debts: %w", err)
	}
	defer rows.Close()

	var debts []*debt.Debt

	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning debt: %w", err)
		}

		debts = append(debts, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating debt rows: %w", err)
	}

	return debts, nil
}

func (s *Store) UpdateDebt(ctx context.Context, d *debt.Debt) error {
	query := `
		UPDATE debts
		SET name = $1, total_amount = $2, monthly_payment = $3, remaining_installments = $4, total_installments = $5, category = $6, next_payment_date = $7, updated_at = NOW()
		WHERE id = $8 AND space_id = $9
	`

	_, err := s.db.ExecContext(ctx, query,
		d.Name,
		d.TotalAmount,
		d.MonthlyPayment,
		d.RemainingInstallments,
		d.TotalInstallments,
		d.Category,
		d.NextPaymentDate,
		d.ID,
		d.SpaceID,
	)
	if err != nil {
		return fmt.Errorf("updating debt: %w", err)
	}

	return nil
}

// UpdateBalance writes the reconciler-owned fields only. The same
// statement serves the compensating write with the prior values.
func (s *Store) UpdateBalance(ctx context.Context, spaceID, id uuid.UUID, total decimal.Decimal, remainingInstallments int, nextPaymentDate time.Time) error {
	query := `
		UPDATE debts
		SET total_amount = $1, remaining_installments = $2, next_payment_date = $3, updated_at = NOW()
		WHERE id = $4 AND space_id = $5
	`

	_, err := s.db.ExecContext(ctx, query, total, remainingInstallments, nextPaymentDate, id, spaceID)
	if err != nil {
		return fmt.Errorf("updating debt balance: %w", err)
	}

	return nil
}

func (s *Store) DeleteDebt(ctx context.Context, spaceID, id uuid.UUID) error {
	query := `DELETE FROM debts WHERE id = $1 AND space_id = $2`

	_, err := s.db.ExecContext(ctx, query, id, spaceID)
	if err != nil {
		return fmt.Errorf("deleting debt: %w", err)
	}

	return nil
}
