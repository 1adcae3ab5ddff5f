// Package money provides coercion helpers for monetary values coming
// from untrusted inputs (request payloads, model extractions).
package money

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse coerces an arbitrary value into a decimal amount. Non-finite
// floats, unparseable strings and unsupported types are rejected.
func Parse(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case nil:
		return decimal.Zero, fmt.Errorf("amount is missing")
	case decimal.Decimal:
		return v, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero, fmt.Errorf("amount is not a finite number")
		}

		return decimal.NewFromFloat(v), nil
	case float32:
		return Parse(float64(v))
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case json.Number:
		return Parse(string(v))
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return decimal.Zero, fmt.Errorf("amount is empty")
		}

		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
		}

		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("unsupported amount type %T", value)
	}
}

// ParseOrZero coerces like Parse but falls back to zero on any failure.
// Matching heuristics use this form; reconciliation uses the strict one.
func ParseOrZero(value any) decimal.Decimal {
	d, err := Parse(value)
	if err != nil {
		return decimal.Zero
	}

	return d
}

// IsPositive reports whether d is a strictly positive amount.
func IsPositive(d decimal.Decimal) bool {
	return d.Sign() > 0
}
