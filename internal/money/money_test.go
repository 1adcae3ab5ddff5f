package money_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hucha-finance/hucha/internal/money"
)

func TestParse(t *testing.T) {
	type testCase struct {
		name    string
		value   any
		want    string
		wantErr bool
	}

	tests := []testCase{
		{name: "Float", value: 1234.56, want: "1234.56"},
		{name: "Int", value: 500, want: "500"},
		{name: "String", value: "  899.90 ", want: "899.9"},
		{name: "JSONNumber", value: json.Number("42.5"), want: "42.5"},
		{name: "Decimal", value: decimal.RequireFromString("10"), want: "10"},
		{name: "NaN", value: math.NaN(), wantErr: true},
		{name: "PositiveInfinity", value: math.Inf(1), wantErr: true},
		{name: "NegativeInfinity", value: math.Inf(-1), wantErr: true},
		{name: "EmptyString", value: "", wantErr: true},
		{name: "Garbage", value: "tres mil", wantErr: true},
		{name: "Nil", value: nil, wantErr: true},
		{name: "UnsupportedType", value: []int{1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Parse(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseOrZero(t *testing.T) {
	assert.True(t, money.ParseOrZero(math.NaN()).IsZero())
	assert.True(t, money.ParseOrZero("not a number").IsZero())
	assert.Equal(t, "15.5", money.ParseOrZero("15.50").String())
}

func TestIsPositive(t *testing.T) {
	assert.True(t, money.IsPositive(decimal.RequireFromString("0.01")))
	assert.False(t, money.IsPositive(decimal.Zero))
	assert.False(t, money.IsPositive(decimal.RequireFromString("-5")))
}
