package copilot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hucha-finance/hucha/internal/audit"
	"github.com/hucha-finance/hucha/internal/dateutil"
	"github.com/hucha-finance/hucha/internal/debt"
	"github.com/hucha-finance/hucha/internal/obligation"
	"github.com/hucha-finance/hucha/internal/saga"
	"github.com/hucha-finance/hucha/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=copilot
type ObligationBook interface {
	Create(ctx context.Context, spaceID uuid.UUID, params obligation.CreateParams) (*obligation.Obligation, error)
	MarkPaid(ctx context.Context, spaceID, id uuid.UUID) error
	ReduceOutstanding(ctx context.Context, spaceID, id uuid.UUID, remaining decimal.Decimal) error
	Delete(ctx context.Context, spaceID, id uuid.UUID) error
}

type DebtBook interface {
	Create(ctx context.Context, spaceID uuid.UUID, params debt.CreateParams) (*debt.Debt, error)
	Delete(ctx context.Context, spaceID, id uuid.UUID) error
}

type Ledger interface {
	CreateTransaction(ctx context.Context, tx *transaction.Transaction) error
	DeleteTransaction(ctx context.Context, spaceID, id uuid.UUID) error
}

// DocumentReader produces an extraction proposal from raw document
// bytes.
type DocumentReader interface {
	Extract(ctx context.Context, data []byte, mimeType string) (*Extraction, error)
}

type Service struct {
	obligations ObligationBook
	debts       DebtBook
	ledger      Ledger
	reader      DocumentReader
	audit       *audit.Recorder
}

func NewService(obligations ObligationBook, debts DebtBook, ledger Ledger, reader DocumentReader, recorder *audit.Recorder) *Service {
	return &Service{
		obligations: obligations,
		debts:       debts,
		ledger:      ledger,
		reader:      reader,
		audit:       recorder,
	}
}

// Extract runs the document through the configured reader and returns
// the proposal for the user to review.
func (s *Service) Extract(ctx context.Context, data []byte, mimeType string) (*Extraction, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidInput)
	}

	return s.reader.Extract(ctx, data, mimeType)
}

// ConfirmResult collects everything a confirmation created. Debt and
// Transaction are nil when their intent was not requested.
type ConfirmResult struct {
	Obligation  *obligation.Obligation
	Debt        *debt.Debt
	Transaction *transaction.Transaction
	// Remaining is the obligation balance left open after a mark-paid
	// confirmation. Zero means the obligation was closed.
	Remaining decimal.Decimal
}

// ConfirmDocument materializes a reviewed extraction. The obligation is
// always created first; the debt and the settling transaction follow
// depending on the intents. Any failure deletes everything created so
// far, in reverse order, so a confirmation never leaves partial state.
func (s *Service) ConfirmDocument(ctx context.Context, spaceID uuid.UUID, in ConfirmInput, now time.Time) (*ConfirmResult, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	if in.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	dueDate := dateutil.ToISODate(in.DueDate, now)

	payment := in.PaymentAmount
	if payment.Sign() == 0 {
		payment = in.Amount
	}

	result := &ConfirmResult{}

	steps := []saga.Step{
		{
			Name: "creating obligation",
			Commit: func(ctx context.Context) error {
				o, err := s.obligations.Create(ctx, spaceID, obligation.CreateParams{
					Title:          title,
					Amount:         in.Amount,
					DueDate:        dueDate,
					Category:       in.Category,
					MinimumPayment: in.MinimumPayment,
				})
				if err != nil {
					return err
				}

				result.Obligation = o
				return nil
			},
			Rollback: func(ctx context.Context) error {
				return s.obligations.Delete(ctx, spaceID, result.Obligation.ID)
			},
		},
	}

	if in.CreateDebt {
		steps = append(steps, saga.Step{
			Name: "creating debt",
			Commit: func(ctx context.Context) error {
				total := in.TotalInstallments
				if total < 1 {
					total = 1
				}

				remaining := in.RemainingInstallments
				if remaining < 0 {
					remaining = 0
				}
				if remaining > total {
					remaining = total
				}

				monthly := in.MonthlyPayment
				if monthly.Sign() <= 0 {
					monthly = in.MinimumPayment
				}
				if monthly.Sign() <= 0 {
					monthly = in.Amount
				}

				d, err := s.debts.Create(ctx, spaceID, debt.CreateParams{
					Name:                  title,
					TotalAmount:           in.Amount,
					MonthlyPayment:        monthly,
					RemainingInstallments: remaining,
					TotalInstallments:     total,
					Category:              in.Category,
					NextPaymentDate:       dueDate,
				})
				if err != nil {
					return err
				}

				result.Debt = d
				return nil
			},
			Rollback: func(ctx context.Context) error {
				return s.debts.Delete(ctx, spaceID, result.Debt.ID)
			},
		})
	}

	if in.MarkPaid {
		steps = append(steps,
			saga.Step{
				Name: "recording settling transaction",
				Commit: func(ctx context.Context) error {
					if payment.Sign() <= 0 {
						return fmt.Errorf("%w: payment amount must be positive", ErrInvalidPayment)
					}

					tx := &transaction.Transaction{
						SpaceID:     spaceID,
						Type:        transaction.TypeExpense,
						Amount:      payment,
						Description: fmt.Sprintf("Pago %s", title),
						Category:    in.Category,
						Date:        dateutil.Midnight(now),
					}
					if err := s.ledger.CreateTransaction(ctx, tx); err != nil {
						return err
					}

					result.Transaction = tx
					return nil
				},
				Rollback: func(ctx context.Context) error {
					return s.ledger.DeleteTransaction(ctx, spaceID, result.Transaction.ID)
				},
			},
			saga.Step{
				Name: "settling obligation",
				Commit: func(ctx context.Context) error {
					remaining := in.Amount.Sub(payment)
					if remaining.Sign() <= 0 {
						result.Remaining = decimal.Zero
						return s.obligations.MarkPaid(ctx, spaceID, result.Obligation.ID)
					}

					result.Remaining = remaining
					return s.obligations.ReduceOutstanding(ctx, spaceID, result.Obligation.ID, remaining)
				},
			},
		)
	}

	if err := saga.Run(ctx, steps); err != nil {
		return nil, err
	}

	metadata := map[string]any{"create_debt": in.CreateDebt, "mark_paid": in.MarkPaid}
	if result.Debt != nil {
		metadata["debt_id"] = result.Debt.ID
	}
	if result.Transaction != nil {
		metadata["transaction_id"] = result.Transaction.ID
	}

	s.audit.Record(ctx, spaceID, audit.Event{
		EntityType: "obligation",
		EntityID:   result.Obligation.ID.String(),
		Action:     "document_confirmed",
		After:      map[string]any{"title": title, "amount": in.Amount, "remaining": result.Remaining},
		Metadata:   metadata,
	})

	return result, nil
}
