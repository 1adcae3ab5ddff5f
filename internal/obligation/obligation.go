package obligation

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when an obligation does not exist or belongs
// to another space.
var ErrNotFound = errors.New("obligation not found")

// Status is the lifecycle state of an obligation.
type Status string

const (
	StatusPending Status = "pending"
	StatusOverdue Status = "overdue"
	StatusPaid    Status = "paid"
)

// OpenStatuses are the states in which an obligation can still be
// matched against a payment.
var OpenStatuses = []Status{StatusPending, StatusOverdue}

// Obligation is a bill or statement the user still has to act on.
// Amount is the outstanding balance: a partial payment reduces it
// instead of closing the obligation.
type Obligation struct {
	ID             uuid.UUID
	SpaceID        uuid.UUID
	Title          string
	Amount         decimal.Decimal
	DueDate        time.Time
	Status         Status
	Category       string
	MinimumPayment decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Open reports whether the obligation can still receive payments.
func (o *Obligation) Open() bool {
	return o.Status == StatusPending || o.Status == StatusOverdue
}
