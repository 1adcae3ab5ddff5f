package debt

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when a debt does not exist or belongs to
	// another space.
	ErrNotFound = errors.New("debt not found")

	// ErrAlreadySettled is returned when a payment is confirmed against
	// a debt whose balance already reached zero.
	ErrAlreadySettled = errors.New("debt is already settled")

	// ErrInvalidPayment is returned when the payment amount is not a
	// positive number.
	ErrInvalidPayment = errors.New("invalid payment amount")
)

// Debt carries the installment schedule for borrowed money. A settled
// debt keeps its row with a zero balance; it is never deleted by the
// reconciler.
type Debt struct {
	ID             uuid.UUID
	SpaceID        uuid.UUID
	Name           string
	TotalAmount    decimal.Decimal
	MonthlyPayment decimal.Decimal
	// RemainingInstallments is a display and scheduling counter, not
	// the payoff signal: TotalAmount is. The reconciler keeps it at 1
	// or above while any balance remains.
	RemainingInstallments int
	TotalInstallments     int
	Category              string
	NextPaymentDate       time.Time
	CreatedAt             time.Time
	UpdatedAt             *time.Time
}

// Settled reports whether the debt balance has reached zero.
func (d *Debt) Settled() bool {
	return d.TotalAmount.Sign() <= 0
}
