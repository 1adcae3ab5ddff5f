package recurring

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hucha-finance/hucha/internal/dateutil"
	"github.com/hucha-finance/hucha/internal/recurring"
	"github.com/hucha-finance/hucha/internal/transaction"
)

type ruleResponse struct {
	ID          uuid.UUID          `json:"id"`
	Type        transaction.Type   `json:"type"`
	Amount      decimal.Decimal    `json:"amount"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Frequency   dateutil.Frequency `json:"frequency"`
	StartDate   string             `json:"start_date"`
	NextRun     string             `json:"next_run"`
	IsActive    bool               `json:"is_active"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   *time.Time         `json:"updated_at,omitempty"`
}

func toResponse(r *recurring.Rule) ruleResponse {
	return ruleResponse{
		ID:          r.ID,
		Type:        r.Type,
		Amount:      r.Amount,
		Description: r.Description,
		Category:    r.Category,
		Frequency:   r.Frequency,
		StartDate:   r.StartDate.Format(time.DateOnly),
		NextRun:     r.NextRun.Format(time.DateOnly),
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toResponseList(rules []*recurring.Rule) []ruleResponse {
	resp := make([]ruleResponse, len(rules))
	for i, r := range rules {
		resp[i] = toResponse(r)
	}

	return resp
}
