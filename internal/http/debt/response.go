package debt

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hucha-finance/hucha/internal/debt"
)

type debtResponse struct {
	ID                    uuid.UUID       `json:"id"`
	Name                  string          `json:"name"`
	TotalAmount           decimal.Decimal `json:"total_amount"`
	MonthlyPayment        decimal.Decimal `json:"monthly_payment"`
	RemainingInstallments int             `json:"remaining_installments"`
	TotalInstallments     int             `json:"total_installments"`
	Category              string          `json:"category"`
	NextPaymentDate       string          `json:"next_payment_date"`
	Settled               bool            `json:"settled"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(d *debt.Debt) debtResponse {
	return debtResponse{
		ID:                    d.ID,
		Name:                  d.Name,
		TotalAmount:           d.TotalAmount,
		MonthlyPayment:        d.MonthlyPayment,
		RemainingInstallments: d.RemainingInstallments,
		TotalInstallments:     d.TotalInstallments,
		Category:              d.Category,
		NextPaymentDate:       d.NextPaymentDate.Format(time.DateOnly),
		Settled:               d.Settled(),
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}
}

func toResponseList(debts []*debt.Debt) []debtResponse {
	resp := make([]debtResponse, len(debts))
	for i, d := range debts {
		resp[i] = toResponse(d)
	}

	return resp
}

type paymentResponse struct {
	Debt              debtResponse    `json:"debt"`
	TransactionID     uuid.UUID       `json:"transaction_id"`
	Amount            decimal.Decimal `json:"amount"`
	ObligationID      *uuid.UUID      `json:"obligation_id,omitempty"`
	ObligationUpdated bool            `json:"obligation_updated"`
}

func toPaymentResponse(result *debt.PaymentResult) paymentResponse {
	return paymentResponse{
		Debt:              toResponse(result.Debt),
		TransactionID:     result.Transaction.ID,
		Amount:            result.Transaction.Amount,
		ObligationID:      result.ObligationID,
		ObligationUpdated: result.ObligationUpdated,
	}
}
