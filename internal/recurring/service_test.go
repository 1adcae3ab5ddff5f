package recurring_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hucha-finance/hucha/internal/dateutil"
	"github.com/hucha-finance/hucha/internal/recurring"
	"github.com/hucha-finance/hucha/internal/transaction"
)

func amt(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}

	return t
}

func weeklyRule(spaceID uuid.UUID, nextRun string) *recurring.Rule {
	return &recurring.Rule{
		ID:          uuid.New(),
		SpaceID:     spaceID,
		Type:        transaction.TypeExpense,
		Amount:      amt("25"),
		Description: "Gimnasio",
		Category:    "salud",
		Frequency:   dateutil.FrequencyWeekly,
		NextRun:     day(nextRun),
		IsActive:    true,
	}
}

func TestRunDue_SingleOccurrence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spaceID := uuid.New()
	today := day("2024-03-04")
	rule := weeklyRule(spaceID, "2024-03-04")

	repo := recurring.NewMockRepository(ctrl)
	ledger := recurring.NewMockLedger(ctrl)

	repo.EXPECT().ListDueRules(gomock.Any(), spaceID, today).Return([]*recurring.Rule{rule}, nil)
	ledger.EXPECT().
		CreateTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txs []*transaction.Transaction) error {
			require.Len(t, txs, 1)
			assert.Equal(t, "Gimnasio (Recurrente)", txs[0].Description)
			assert.Equal(t, "2024-03-04", txs[0].Date.Format(time.DateOnly))
			assert.Equal(t, spaceID, txs[0].SpaceID)
			return nil
		})
	repo.EXPECT().UpdateNextRun(gomock.Any(), spaceID, rule.ID, day("2024-03-11")).Return(nil)

	svc := recurring.NewService(repo, ledger, nil)

	got, err := svc.RunDue(context.Background(), spaceID, today)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Generated)
	assert.Equal(t, 1, got.UpdatedRules)
}

func TestRunDue_BoundedCatchUp(t *testing.T) {
	// A weekly rule 52 weeks behind generates exactly 24 occurrences
	// and advances by 24 weeks, staying due for the next pass.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spaceID := uuid.New()
	today := day("2024-12-30")
	rule := weeklyRule(spaceID, "2024-01-01") // 52 weeks behind

	repo := recurring.NewMockRepository(ctrl)
	ledger := recurring.NewMockLedger(ctrl)

	repo.EXPECT().ListDueRules(gomock.Any(), spaceID, today).Return([]*recurring.Rule{rule}, nil)
	ledger.EXPECT().
		CreateTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txs []*transaction.Transaction) error {
			require.Len(t, txs, 24)
			assert.Equal(t, "2024-01-01", txs[0].Date.Format(time.DateOnly))
			assert.Equal(t, "2024-06-10", txs[23].Date.Format(time.DateOnly))
			return nil
		})

	// next_run advances by exactly 24*7 days, still in the past.
	wantCursor := day("2024-01-01").AddDate(0, 0, 24*7)
	repo.EXPECT().UpdateNextRun(gomock.Any(), spaceID, rule.ID, wantCursor).Return(nil)

	svc := recurring.NewService(repo, ledger, nil)

	got, err := svc.RunDue(context.Background(), spaceID, today)
	require.NoError(t, err)
	assert.Equal(t, 24, got.Generated)
	assert.True(t, wantCursor.Before(today), "rule must remain due after a capped run")
}

func TestRunDue_MonthlyCatchUpUsesCalendarMonths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spaceID := uuid.New()
	today := day("2024-03-31")

	rule := weeklyRule(spaceID, "2024-01-31")
	rule.Frequency = dateutil.FrequencyMonthly

	repo := recurring.NewMockRepository(ctrl)
	ledger := recurring.NewMockLedger(ctrl)

	repo.EXPECT().ListDueRules(gomock.Any(), spaceID, today).Return([]*recurring.Rule{rule}, nil)
	ledger.EXPECT().
		CreateTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txs []*transaction.Transaction) error {
			require.Len(t, txs, 3)
			assert.Equal(t, "2024-01-31", txs[0].Date.Format(time.DateOnly))
			assert.Equal(t, "2024-02-29", txs[1].Date.Format(time.DateOnly))
			assert.Equal(t, "2024-03-29", txs[2].Date.Format(time.DateOnly))
			return nil
		})
	repo.EXPECT().UpdateNextRun(gomock.Any(), spaceID, rule.ID, day("2024-04-29")).Return(nil)

	svc := recurring.NewService(repo, ledger, nil)

	got, err := svc.RunDue(context.Background(), spaceID, today)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Generated)
}

func TestRunDue_RuleFailuresAreIndependent(t *testing.T) {
	// The first rule's insert fails; the second rule still runs. The
	// failed rule's next_run must not advance.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spaceID := uuid.New()
	today := day("2024-03-04")

	broken := weeklyRule(spaceID, "2024-03-04")
	healthy := weeklyRule(spaceID, "2024-03-01")

	repo := recurring.NewMockRepository(ctrl)
	ledger := recurring.NewMockLedger(ctrl)

	repo.EXPECT().ListDueRules(gomock.Any(), spaceID, today).Return([]*recurring.Rule{broken, healthy}, nil)

	gomock.InOrder(
		ledger.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).Return(errors.New("insert failed")),
		ledger.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).Return(nil),
	)
	repo.EXPECT().UpdateNextRun(gomock.Any(), spaceID, healthy.ID, gomock.Any()).Return(nil)

	svc := recurring.NewService(repo, ledger, nil)

	got, err := svc.RunDue(context.Background(), spaceID, today)
	require.NoError(t, err)
	assert.Equal(t, 1, got.UpdatedRules)
}

func TestRunDue_NextRunNotAdvancedWhenUpdateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spaceID := uuid.New()
	today := day("2024-03-04")
	rule := weeklyRule(spaceID, "2024-03-04")

	repo := recurring.NewMockRepository(ctrl)
	ledger := recurring.NewMockLedger(ctrl)

	repo.EXPECT().ListDueRules(gomock.Any(), spaceID, today).Return([]*recurring.Rule{rule}, nil)
	ledger.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().UpdateNextRun(gomock.Any(), spaceID, rule.ID, gomock.Any()).Return(errors.New("update failed"))

	svc := recurring.NewService(repo, ledger, nil)

	got, err := svc.RunDue(context.Background(), spaceID, today)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Generated)
	assert.Equal(t, 0, got.UpdatedRules)
}

func TestRunDue_ListFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spaceID := uuid.New()

	repo := recurring.NewMockRepository(ctrl)
	ledger := recurring.NewMockLedger(ctrl)

	repo.EXPECT().ListDueRules(gomock.Any(), spaceID, gomock.Any()).Return(nil, errors.New("db down"))

	svc := recurring.NewService(repo, ledger, nil)

	_, err := svc.RunDue(context.Background(), spaceID, day("2024-03-04"))
	assert.Error(t, err)
}

func TestCreate_InitializesNextRunFromStartDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spaceID := uuid.New()

	repo := recurring.NewMockRepository(ctrl)
	ledger := recurring.NewMockLedger(ctrl)

	repo.EXPECT().
		CreateRule(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *recurring.Rule) error {
			r.ID = uuid.New()
			return nil
		})

	svc := recurring.NewService(repo, ledger, nil)

	got, err := svc.Create(context.Background(), spaceID, recurring.CreateParams{
		Type:        transaction.TypeExpense,
		Amount:      amt("149.99"),
		Description: "Renta",
		Category:    "vivienda",
		Frequency:   dateutil.FrequencyMonthly,
		StartDate:   day("2024-04-01"),
	})
	require.NoError(t, err)

	assert.True(t, got.Amount.Equal(amt("149.99")))
	assert.Equal(t, "2024-04-01", got.NextRun.Format(time.DateOnly))
	assert.Equal(t, got.StartDate, got.NextRun)
	assert.True(t, got.IsActive)
}
