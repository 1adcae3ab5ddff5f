package obligation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hucha-finance/hucha/internal/obligation"
)

type obligationResponse struct {
	ID             uuid.UUID         `json:"id"`
	Title          string            `json:"title"`
	Amount         decimal.Decimal   `json:"amount"`
	DueDate        string            `json:"due_date"`
	Status         obligation.Status `json:"status"`
	Category       string            `json:"category"`
	MinimumPayment decimal.Decimal   `json:"minimum_payment"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      *time.Time        `json:"updated_at,omitempty"`
}

func toResponse(o *obligation.Obligation) obligationResponse {
	return obligationResponse{
		ID:             o.ID,
		Title:          o.Title,
		Amount:         o.Amount,
		DueDate:        o.DueDate.Format(time.DateOnly),
		Status:         o.Status,
		Category:       o.Category,
		MinimumPayment: o.MinimumPayment,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func toResponseList(obligations []*obligation.Obligation) []obligationResponse {
	resp := make([]obligationResponse, len(obligations))
	for i, o := range obligations {
		resp[i] = toResponse(o)
	}

	return resp
}
