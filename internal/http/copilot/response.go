package copilot

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hucha-finance/hucha/internal/copilot"
	"github.com/hucha-finance/hucha/internal/obligation"
)

type confirmResponse struct {
	Obligation    obligationDTO   `json:"obligation"`
	DebtID        *uuid.UUID      `json:"debt_id,omitempty"`
	TransactionID *uuid.UUID      `json:"transaction_id,omitempty"`
	Remaining     decimal.Decimal `json:"remaining"`
}

type obligationDTO struct {
	ID      uuid.UUID         `json:"id"`
	Title   string            `json:"title"`
	Amount  decimal.Decimal   `json:"amount"`
	DueDate string            `json:"due_date"`
	Status  obligation.Status `json:"status"`
}

func toConfirmResponse(result *copilot.ConfirmResult) confirmResponse {
	resp := confirmResponse{
		Obligation: obligationDTO{
			ID:      result.Obligation.ID,
			Title:   result.Obligation.Title,
			Amount:  result.Obligation.Amount,
			DueDate: result.Obligation.DueDate.Format(time.DateOnly),
			Status:  result.Obligation.Status,
		},
		Remaining: result.Remaining,
	}

	if result.Debt != nil {
		resp.DebtID = &result.Debt.ID
	}

	if result.Transaction != nil {
		resp.TransactionID = &result.Transaction.ID
	}

	return resp
}
