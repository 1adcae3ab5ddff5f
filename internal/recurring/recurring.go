package recurring

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hucha-finance/hucha/internal/dateutil"
	"github.com/hucha-finance/hucha/internal/transaction"
)

// ErrNotFound is returned when a rule does not exist or belongs to
// another space.
var ErrNotFound = errors.New("recurring rule not found")

// Rule describes a transaction that repeats on a fixed cadence.
// NextRun is the single source of truth for due-ness: it only moves
// forward, one frequency step at a time, and only after the occurrences
// it covers were persisted.
type Rule struct {
	ID          uuid.UUID
	SpaceID     uuid.UUID
	Type        transaction.Type
	Amount      decimal.Decimal
	Description string
	Category    string
	Frequency   dateutil.Frequency
	StartDate   time.Time
	NextRun     time.Time
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
