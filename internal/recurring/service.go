package recurring

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hucha-finance/hucha/internal/audit"
	"github.com/hucha-finance/hucha/internal/dateutil"
	"github.com/hucha-finance/hucha/internal/transaction"
)

// maxCatchUpOccurrences bounds how many missed periods a single run
// backfills per rule. A weekly rule untouched for a year stays due and
// catches up incrementally across runs instead of inserting hundreds of
// rows in one request.
const maxCatchUpOccurrences = 24

// occurrenceSuffix marks generated transactions in their description.
const occurrenceSuffix = " (Recurrente)"

//go:generate mockgen -source=service.go -destination=service_mock.go -package=recurring
type Repository interface {
	CreateRule(ctx context.Context, r *Rule) error
	GetRule(ctx context.Context, spaceID, id uuid.UUID) (*Rule, error)
	ListRules(ctx context.Context, spaceID uuid.UUID) ([]*Rule, error)
	ListDueRules(ctx context.Context, spaceID uuid.UUID, today time.Time) ([]*Rule, error)
	ListSpacesWithDueRules(ctx context.Context, today time.Time) ([]uuid.UUID, error)
	UpdateRule(ctx context.Context, r *Rule) error
	UpdateNextRun(ctx context.Context, spaceID, id uuid.UUID, nextRun time.Time) error
	DeleteRule(ctx context.Context, spaceID, id uuid.UUID) error
}

// Ledger persists a rule's catch-up batch atomically.
type Ledger interface {
	CreateTransactions(ctx context.Context, txs []*transaction.Transaction) error
}

type Service struct {
	repo   Repository
	ledger Ledger
	audit  *audit.Recorder
}

func NewService(repo Repository, ledger Ledger, recorder *audit.Recorder) *Service {
	return &Service{repo: repo, ledger: ledger, audit: recorder}
}

// RunResult summarizes one projection pass.
type RunResult struct {
	Generated    int
	UpdatedRules int
}

// RunDue projects every active rule due on or before today: generates
// the missed occurrences (bounded), inserts them as one batch, and only
// then advances the rule's next_run. Rules are independent; one rule's
// failure is logged and the pass continues.
func (s *Service) RunDue(ctx context.Context, spaceID uuid.UUID, today time.Time) (RunResult, error) {
	today = dateutil.Midnight(today)

	rules, err := s.repo.ListDueRules(ctx, spaceID, today)
	if err != nil {
		return RunResult{}, err
	}

	var result RunResult

	for _, rule := range rules {
		batch, cursor := project(rule, today)
		if len(batch) == 0 {
			continue
		}

		if err := s.ledger.CreateTransactions(ctx, batch); err != nil {
			slog.Error("failed to insert recurring occurrences",
				"rule_id", rule.ID, "count", len(batch), "error", err)
			continue
		}

		result.Generated += len(batch)

		if err := s.repo.UpdateNextRun(ctx, spaceID, rule.ID, cursor); err != nil {
			// The occurrences are in; without the pointer advance the
			// rule will re-generate them next pass. Surfacing would not
			// undo anything, so log and move on.
			slog.Error("failed to advance recurring rule",
				"rule_id", rule.ID, "next_run", cursor, "error", err)
			continue
		}

		result.UpdatedRules++

		s.audit.Record(ctx, spaceID, audit.Event{
			EntityType: "recurring_rule",
			EntityID:   rule.ID.String(),
			Action:     "occurrences_generated",
			Before:     map[string]any{"next_run": rule.NextRun},
			After:      map[string]any{"next_run": cursor},
			Metadata:   map[string]any{"generated": len(batch)},
		})
	}

	return result, nil
}

// project builds the transactions a rule owes between its next_run and
// today, inclusive, capped at maxCatchUpOccurrences. Returns the batch
// and the cursor the rule should advance to.
func project(rule *Rule, today time.Time) ([]*transaction.Transaction, time.Time) {
	cursor := dateutil.Midnight(rule.NextRun)

	var batch []*transaction.Transaction

	for !cursor.After(today) && len(batch) < maxCatchUpOccurrences {
		batch = append(batch, &transaction.Transaction{
			SpaceID:     rule.SpaceID,
			Type:        rule.Type,
			Amount:      rule.Amount,
			Description: rule.Description + occurrenceSuffix,
			Category:    rule.Category,
			Date:        cursor,
		})

		cursor = dateutil.AdvanceByFrequency(cursor, rule.Frequency)
	}

	return batch, cursor
}

type CreateParams struct {
	Type        transaction.Type
	Amount      decimal.Decimal
	Description string
	Category    string
	Frequency   dateutil.Frequency
	StartDate   time.Time
}

func (s *Service) Create(ctx context.Context, spaceID uuid.UUID, params CreateParams) (*Rule, error) {
	r := &Rule{
		SpaceID:     spaceID,
		Type:        params.Type,
		Amount:      params.Amount,
		Description: params.Description,
		Category:    params.Category,
		Frequency:   params.Frequency,
		StartDate:   dateutil.Midnight(params.StartDate),
		NextRun:     dateutil.Midnight(params.StartDate),
		IsActive:    true,
	}
	if err := s.repo.CreateRule(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) Get(ctx context.Context, spaceID, id uuid.UUID) (*Rule, error) {
	return s.repo.GetRule(ctx, spaceID, id)
}

func (s *Service) List(ctx context.Context, spaceID uuid.UUID) ([]*Rule, error) {
	return s.repo.ListRules(ctx, spaceID)
}

func (s *Service) Update(ctx context.Context, r *Rule) error {
	return s.repo.UpdateRule(ctx, r)
}

func (s *Service) Delete(ctx context.Context, spaceID, id uuid.UUID) error {
	return s.repo.DeleteRule(ctx, spaceID, id)
}

// SpacesWithDueRules lists the spaces the scheduler should run a
// projection pass for.
func (s *Service) SpacesWithDueRules(ctx context.Context, today time.Time) ([]uuid.UUID, error) {
	return s.repo.ListSpacesWithDueRules(ctx, dateutil.Midnight(today))
}
