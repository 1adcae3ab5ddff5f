package obligation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=obligation
type Repository interface {
	CreateObligation(ctx context.Context, o *Obligation) error
	GetObligation(ctx context.Context, spaceID, id uuid.UUID) (*Obligation, error)
	ListObligations(ctx context.Context, spaceID uuid.UUID, filter ListFilter) ([]*Obligation, error)
	UpdateObligation(ctx context.Context, o *Obligation) error
	UpdateStatus(ctx context.Context, spaceID, id uuid.UUID, status Status) error
	UpdateOutstanding(ctx context.Context, spaceID, id uuid.UUID, amount decimal.Decimal) error
	DeleteObligation(ctx context.Context, spaceID, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Title          string
	Amount         decimal.Decimal
	DueDate        time.Time
	Category       string
	MinimumPayment decimal.Decimal
}

type ListFilter struct {
	Statuses []Status
	Limit    int
}

func (s *Service) Create(ctx context.Context, spaceID uuid.UUID, params CreateParams) (*Obligation, error) {
	o := &Obligation{
		SpaceID:        spaceID,
		Title:          params.Title,
		Amount:         params.Amount,
		DueDate:        params.DueDate,
		Status:         StatusPending,
		Category:       params.Category,
		MinimumPayment: params.MinimumPayment,
	}
	if err := s.repo.CreateObligation(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *Service) Get(ctx context.Context, spaceID, id uuid.UUID) (*Obligation, error) {
	return s.repo.GetObligation(ctx, spaceID, id)
}

// List returns obligations for the space, flipping pending ones past
// their due date to overdue. The flip is persisted best-effort; the
// returned state is authoritative for the caller either way.
func (s *Service) List(ctx context.Context, spaceID uuid.UUID, filter ListFilter, now time.Time) ([]*Obligation, error) {
	obligations, err := s.repo.ListObligations(ctx, spaceID, filter)
	if err != nil {
		return nil, err
	}

	for _, o := range obligations {
		if o.Status != StatusPending || !o.DueDate.Before(now) {
			continue
		}

		o.Status = StatusOverdue

		if err := s.repo.UpdateStatus(ctx, spaceID, o.ID, StatusOverdue); err != nil {
			slog.Warn("failed to persist overdue status", "obligation_id", o.ID, "error", err)
		}
	}

	return obligations, nil
}

// ListOpen returns the obligations a payment may still settle.
func (s *Service) ListOpen(ctx context.Context, spaceID uuid.UUID, limit int) ([]*Obligation, error) {
	return s.repo.ListObligations(ctx, spaceID, ListFilter{Statuses: OpenStatuses, Limit: limit})
}

func (s *Service) Update(ctx context.Context, o *Obligation) error {
	return s.repo.UpdateObligation(ctx, o)
}

func (s *Service) MarkPaid(ctx context.Context, spaceID, id uuid.UUID) error {
	return s.repo.UpdateStatus(ctx, spaceID, id, StatusPaid)
}

// ReduceOutstanding overwrites the obligation's amount with the balance
// still owed after a partial payment. Status stays open.
func (s *Service) ReduceOutstanding(ctx context.Context, spaceID, id uuid.UUID, remaining decimal.Decimal) error {
	return s.repo.UpdateOutstanding(ctx, spaceID, id, remaining)
}

func (s *Service) Delete(ctx context.Context, spaceID, id uuid.UUID) error {
	return s.repo.DeleteObligation(ctx, spaceID, id)
}
