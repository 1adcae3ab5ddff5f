package obligation_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hucha-finance/hucha/internal/obligation"
)

func amt(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}

	return t
}

func open(title, amount, due string) *obligation.Obligation {
	return &obligation.Obligation{
		ID:      uuid.New(),
		Title:   title,
		Amount:  amt(amount),
		DueDate: day(due),
		Status:  obligation.StatusPending,
	}
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "prestamo coche", obligation.NormalizeTitle("  Préstamo   COCHE "))
	assert.Equal(t, "tarjeta bbva", obligation.NormalizeTitle("Tarjeta\tBBVA"))
	assert.Equal(t, "", obligation.NormalizeTitle("   "))
}

func TestPickMatch_ExactTitleShortCircuits(t *testing.T) {
	// The exact-title candidate has a far worse amount than the other
	// one; it must still win.
	exact := open("Préstamo Coche", "9000", "2024-06-01")
	closer := open("Gimnasio", "1000", "2024-01-15")

	got := obligation.PickMatch(
		[]*obligation.Obligation{closer, exact},
		"prestamo coche",
		amt("1000"),
		day("2024-01-15"),
		obligation.DefaultMatchConfig(),
	)

	require.NotNil(t, got)
	assert.Equal(t, exact.ID, got.ID)
}

func TestPickMatch_AmountGateRejectsUnrelated(t *testing.T) {
	// amountDelta 4000 > max(1000*0.35, 2500) = 2500, no title relation.
	only := open("Seguro Hogar", "5000", "2024-01-15")

	got := obligation.PickMatch(
		[]*obligation.Obligation{only},
		"tarjeta visa",
		amt("1000"),
		day("2024-01-15"),
		obligation.DefaultMatchConfig(),
	)

	assert.Nil(t, got)
}

func TestPickMatch_GateScalesWithPayment(t *testing.T) {
	// With a 20000 payment the gate is 20000*0.35 = 7000, so a 6000
	// delta survives even without title relation.
	only := open("Seguro Hogar", "26000", "2024-01-15")

	got := obligation.PickMatch(
		[]*obligation.Obligation{only},
		"tarjeta visa",
		amt("20000"),
		day("2024-01-15"),
		obligation.DefaultMatchConfig(),
	)

	require.NotNil(t, got)
	assert.Equal(t, only.ID, got.ID)
}

func TestPickMatch_TitleRelationBeatsCloserAmount(t *testing.T) {
	// Substring relation earns -1000; the unrelated bill would need an
	// amount advantage larger than that to win.
	related := open("Tarjeta Visa enero", "1400", "2024-01-10")
	unrelated := open("Luz", "1050", "2024-01-15")

	got := obligation.PickMatch(
		[]*obligation.Obligation{unrelated, related},
		"tarjeta visa",
		amt("1000"),
		day("2024-01-15"),
		obligation.DefaultMatchConfig(),
	)

	require.NotNil(t, got)
	assert.Equal(t, related.ID, got.ID)
}

func TestPickMatch_DateDriftWeighted(t *testing.T) {
	// Same amounts and no relation: the obligation due closer to the
	// payment date scores better (12 points per day of drift).
	near := open("Luz", "1000", "2024-01-16")
	far := open("Agua", "1000", "2024-02-15")

	got := obligation.PickMatch(
		[]*obligation.Obligation{far, near},
		"tarjeta visa",
		amt("1000"),
		day("2024-01-15"),
		obligation.DefaultMatchConfig(),
	)

	require.NotNil(t, got)
	assert.Equal(t, near.ID, got.ID)
}

func TestPickMatch_EmptyInputs(t *testing.T) {
	cfg := obligation.DefaultMatchConfig()

	assert.Nil(t, obligation.PickMatch(nil, "tarjeta", amt("100"), day("2024-01-15"), cfg))

	// A blank debt name never counts as related to anything.
	only := open("Seguro Hogar", "9000", "2024-01-15")
	assert.Nil(t, obligation.PickMatch([]*obligation.Obligation{only}, "   ", amt("100"), day("2024-01-15"), cfg))
}
