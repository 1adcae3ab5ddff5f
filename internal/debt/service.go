package debt

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hucha-finance/hucha/internal/audit"
	"github.com/hucha-finance/hucha/internal/dateutil"
	"github.com/hucha-finance/hucha/internal/obligation"
	"github.com/hucha-finance/hucha/internal/saga"
	"github.com/hucha-finance/hucha/internal/transaction"
)

// FullPaymentThreshold is the fraction of an obligation's outstanding
// amount a payment must reach before the obligation is closed. Below 1
// to absorb rounding differences and small fees.
const FullPaymentThreshold = 0.98

// openObligationLimit caps how many open obligations are pulled into a
// single matching pass.
const openObligationLimit = 100

//go:generate mockgen -source=service.go -destination=service_mock.go -package=debt
type Repository interface {
	CreateDebt(ctx context.Context, d *Debt) error
	GetDebt(ctx context.Context, spaceID, id uuid.UUID) (*Debt, error)
	ListDebts(ctx context.Context, spaceID uuid.UUID) ([]*Debt, error)
	UpdateDebt(ctx context.Context, d *Debt) error
	UpdateBalance(ctx context.Context, spaceID, id uuid.UUID, total decimal.Decimal, remainingInstallments int, nextPaymentDate time.Time) error
	DeleteDebt(ctx context.Context, spaceID, id uuid.UUID) error
}

// Ledger records the settling transaction for a confirmed payment.
type Ledger interface {
	CreateTransaction(ctx context.Context, tx *transaction.Transaction) error
	DeleteTransaction(ctx context.Context, spaceID, id uuid.UUID) error
}

// ObligationBook exposes the open obligations a payment may settle.
type ObligationBook interface {
	ListOpen(ctx context.Context, spaceID uuid.UUID, limit int) ([]*obligation.Obligation, error)
	MarkPaid(ctx context.Context, spaceID, id uuid.UUID) error
}

type Service struct {
	repo        Repository
	ledger      Ledger
	obligations ObligationBook
	audit       *audit.Recorder
	match       obligation.MatchConfig
}

func NewService(repo Repository, ledger Ledger, obligations ObligationBook, recorder *audit.Recorder) *Service {
	return &Service{
		repo:        repo,
		ledger:      ledger,
		obligations: obligations,
		audit:       recorder,
		match:       obligation.DefaultMatchConfig(),
	}
}

type CreateParams struct {
	Name                  string
	TotalAmount           decimal.Decimal
	MonthlyPayment        decimal.Decimal
	RemainingInstallments int
	TotalInstallments     int
	Category              string
	NextPaymentDate       time.Time
}

// PaymentParams narrows a payment confirmation. Every field is
// optional: amount defaults to the debt's monthly payment, date to now.
type PaymentParams struct {
	Amount      *decimal.Decimal
	Date        *time.Time
	Description string
}

type PaymentResult struct {
	Debt        *Debt
	Transaction *transaction.Transaction
	// ObligationID is the matched open obligation, when one was found.
	ObligationID *uuid.UUID
	// ObligationUpdated reports whether that obligation was closed.
	// Closing is best-effort; the payment succeeds either way.
	ObligationUpdated bool
}

func (s *Service) Create(ctx context.Context, spaceID uuid.UUID, params CreateParams) (*Debt, error) {
	if params.TotalAmount.Sign() < 0 {
		return nil, fmt.Errorf("%w: total amount cannot be negative", ErrInvalidPayment)
	}

	d := &Debt{
		SpaceID:               spaceID,
		Name:                  params.Name,
		TotalAmount:           params.TotalAmount,
		MonthlyPayment:        params.MonthlyPayment,
		RemainingInstallments: params.RemainingInstallments,
		TotalInstallments:     params.TotalInstallments,
		Category:              params.Category,
		NextPaymentDate:       params.NextPaymentDate,
	}
	if err := s.repo.CreateDebt(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

func (s *Service) Get(ctx context.Context, spaceID, id uuid.UUID) (*Debt, error) {
	return s.repo.GetDebt(ctx, spaceID, id)
}

func (s *Service) List(ctx context.Context, spaceID uuid.UUID) ([]*Debt, error) {
	return s.repo.ListDebts(ctx, spaceID)
}

func (s *Service) Update(ctx context.Context, d *Debt) error {
	return s.repo.UpdateDebt(ctx, d)
}

func (s *Service) Delete(ctx context.Context, spaceID, id uuid.UUID) error {
	return s.repo.DeleteDebt(ctx, spaceID, id)
}

// ConfirmPayment applies a payment to an open debt: shrinks the
// balance, decrements the installment counter without letting it hit
// zero while balance remains, advances the due date, and records an
// expense transaction. The debt mutation is rolled back if the
// transaction insert fails. After both commit, the payment is matched
// against open obligations and a fully covered match is closed
// best-effort.
func (s *Service) ConfirmPayment(ctx context.Context, spaceID, debtID uuid.UUID, params PaymentParams, now time.Time) (*PaymentResult, error) {
	d, err := s.repo.GetDebt(ctx, spaceID, debtID)
	if err != nil {
		return nil, err
	}

	if d.Settled() {
		return nil, ErrAlreadySettled
	}

	requested := d.MonthlyPayment
	if params.Amount != nil {
		requested = *params.Amount
	} else if requested.Sign() <= 0 {
		requested = d.TotalAmount
	}

	if requested.Sign() <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be positive", ErrInvalidPayment)
	}

	paymentDate := dateutil.Midnight(now)
	if params.Date != nil {
		paymentDate = dateutil.Midnight(*params.Date)
	}

	// A payment never shrinks the balance below zero.
	applied := requested
	if applied.GreaterThan(d.TotalAmount) {
		applied = d.TotalAmount
	}

	updatedTotal := d.TotalAmount.Sub(applied)
	if updatedTotal.Sign() < 0 {
		updatedTotal = decimal.Zero
	}

	// A dangling debt with a zero counter still owes one virtual
	// installment; and the counter may not reach zero while balance
	// remains.
	remaining := d.RemainingInstallments
	if remaining <= 0 {
		remaining = 1
	}

	remaining--

	if updatedTotal.Sign() > 0 && remaining < 1 {
		remaining = 1
	}

	nextDue := paymentDate
	if updatedTotal.Sign() > 0 {
		nextDue = dateutil.AddMonth(d.NextPaymentDate)
	}

	description := params.Description
	if description == "" {
		description = fmt.Sprintf("Pago %s", d.Name)
	}

	tx := &transaction.Transaction{
		SpaceID:     spaceID,
		Type:        transaction.TypeExpense,
		Amount:      applied,
		Description: description,
		Category:    d.Category,
		Date:        paymentDate,
	}

	err = saga.Run(ctx, []saga.Step{
		{
			Name: "updating debt balance",
			Commit: func(ctx context.Context) error {
				return s.repo.UpdateBalance(ctx, spaceID, d.ID, updatedTotal, remaining, nextDue)
			},
			Rollback: func(ctx context.Context) error {
				return s.repo.UpdateBalance(ctx, spaceID, d.ID, d.TotalAmount, d.RemainingInstallments, d.NextPaymentDate)
			},
		},
		{
			Name: "recording payment transaction",
			Commit: func(ctx context.Context) error {
				return s.ledger.CreateTransaction(ctx, tx)
			},
		},
	})
	if err != nil {
		return nil, err
	}

	updated := *d
	updated.TotalAmount = updatedTotal
	updated.RemainingInstallments = remaining
	updated.NextPaymentDate = nextDue

	result := &PaymentResult{Debt: &updated, Transaction: tx}

	s.closeMatchedObligation(ctx, spaceID, d.Name, applied, paymentDate, result)

	s.audit.Record(ctx, spaceID, audit.Event{
		EntityType: "debt",
		EntityID:   d.ID.String(),
		Action:     "payment_confirmed",
		Before:     map[string]any{"total_amount": d.TotalAmount, "remaining_installments": d.RemainingInstallments},
		After:      map[string]any{"total_amount": updatedTotal, "remaining_installments": remaining},
		Metadata:   map[string]any{"transaction_id": tx.ID, "payment_amount": applied},
	})

	return result, nil
}

// closeMatchedObligation is the one-way side effect of a confirmed
// payment: failures are logged and never surfaced, the payment already
// committed.
func (s *Service) closeMatchedObligation(ctx context.Context, spaceID uuid.UUID, debtName string, applied decimal.Decimal, paymentDate time.Time, result *PaymentResult) {
	opens, err := s.obligations.ListOpen(ctx, spaceID, openObligationLimit)
	if err != nil {
		slog.Warn("skipping obligation matching", "debt", debtName, "error", err)
		return
	}

	match := obligation.PickMatch(opens, debtName, applied, paymentDate, s.match)
	if match == nil {
		return
	}

	result.ObligationID = &match.ID

	threshold := match.Amount.Mul(decimal.NewFromFloat(FullPaymentThreshold))
	if applied.LessThan(threshold) {
		return
	}

	if err := s.obligations.MarkPaid(ctx, spaceID, match.ID); err != nil {
		slog.Warn("failed to close matched obligation", "obligation_id", match.ID, "error", err)
		return
	}

	result.ObligationUpdated = true
}
