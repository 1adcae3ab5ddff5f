// Package copilot turns AI-extracted document data into confirmed
// records: always an obligation, optionally a debt with its installment
// schedule, optionally a settling transaction.
package copilot

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidInput is returned when a confirmation payload fails
	// validation before any write happens.
	ErrInvalidInput = errors.New("invalid confirmation input")

	// ErrInvalidPayment is returned when the mark-paid path carries a
	// non-positive payment amount.
	ErrInvalidPayment = errors.New("invalid payment amount")
)

// Extraction is the structured proposal produced from an uploaded
// document. The user reviews and possibly edits it before confirming.
type Extraction struct {
	Title             string          `json:"title"`
	Amount            decimal.Decimal `json:"amount"`
	DueDate           string          `json:"due_date"`
	Category          string          `json:"category"`
	MinimumPayment    decimal.Decimal `json:"minimum_payment"`
	MonthlyPayment    decimal.Decimal `json:"monthly_payment"`
	TotalInstallments int             `json:"total_installments"`
	SuggestCreateDebt bool            `json:"suggest_create_debt"`
}

// ConfirmInput is the user-confirmed version of an extraction plus the
// independent intents: the obligation is always created, the debt only
// when CreateDebt is set, the settling transaction only when MarkPaid
// is.
type ConfirmInput struct {
	Title                 string
	Amount                decimal.Decimal
	DueDate               string
	Category              string
	MinimumPayment        decimal.Decimal
	MonthlyPayment        decimal.Decimal
	TotalInstallments     int
	RemainingInstallments int
	PaymentAmount         decimal.Decimal
	CreateDebt            bool
	MarkPaid              bool
}
