package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a transaction does not exist or belongs
// to another space.
var ErrNotFound = errors.New("transaction not found")

// Type represents the direction of a transaction.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether t is a known transaction type.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents one money movement within a space. Debt
// payments and recurring occurrences each materialize as one of these.
type Transaction struct {
	ID          uuid.UUID
	SpaceID     uuid.UUID
	Type        Type
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}
