package copilot

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amtStr(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestParseExtraction(t *testing.T) {
	raw := `{
		"title": " Recibo Telmex ",
		"amount": 599.90,
		"due_date": "2024-03-15",
		"category": "servicios",
		"minimum_payment": null,
		"monthly_payment": "599.90",
		"total_installments": 12,
		"suggest_create_debt": true
	}`

	got, err := parseExtraction(raw)
	require.NoError(t, err)

	assert.Equal(t, "Recibo Telmex", got.Title)
	assert.True(t, got.Amount.Equal(amtStr("599.90")))
	assert.Equal(t, "2024-03-15", got.DueDate)
	assert.Equal(t, "servicios", got.Category)
	assert.True(t, got.MinimumPayment.IsZero(), "null degrades to zero")
	assert.True(t, got.MonthlyPayment.Equal(amtStr("599.90")))
	assert.Equal(t, 12, got.TotalInstallments)
	assert.True(t, got.SuggestCreateDebt)
}

func TestParseExtraction_FencedResponse(t *testing.T) {
	raw := "```json\n{\"title\": \"Factura\", \"amount\": \"100\"}\n```"

	got, err := parseExtraction(raw)
	require.NoError(t, err)

	assert.Equal(t, "Factura", got.Title)
	assert.True(t, got.Amount.Equal(amtStr("100")))
}

func TestParseExtraction_SurroundingProse(t *testing.T) {
	raw := "Here is the extracted data:\n{\"title\": \"Factura\", \"amount\": 50}\nLet me know if you need anything else."

	got, err := parseExtraction(raw)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(amtStr("50")))
}

func TestParseExtraction_RejectsBadAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "missing", raw: `{"title": "Factura"}`},
		{name: "garbage", raw: `{"title": "Factura", "amount": "mucho dinero"}`},
		{name: "not json", raw: "the model refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseExtraction(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestParseExtraction_LooseFieldsDegrade(t *testing.T) {
	raw := `{
		"title": "Factura",
		"amount": 100,
		"minimum_payment": "n/a",
		"total_installments": "doce",
		"suggest_create_debt": "yes"
	}`

	got, err := parseExtraction(raw)
	require.NoError(t, err)

	assert.True(t, got.MinimumPayment.IsZero())
	assert.Equal(t, 0, got.TotalInstallments)
	assert.False(t, got.SuggestCreateDebt)
}

func TestCleanModelJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "bare", raw: `{"a":1}`, want: `{"a":1}`},
		{name: "fenced", raw: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "fence no lang", raw: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "prose around", raw: "sure:\n{\"a\":1}\nthanks", want: `{"a":1}`},
		{name: "whitespace", raw: "  {\"a\":1}  ", want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanModelJSON(tt.raw))
		})
	}
}
