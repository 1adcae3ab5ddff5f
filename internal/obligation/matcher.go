package obligation

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/hucha-finance/hucha/internal/dateutil"
)

// MatchConfig carries the matcher weights. The values have no derived
// justification in the product history; they are kept overridable so
// tuning does not require a code change.
type MatchConfig struct {
	// TitleRelationBonus is added to the score when one normalized
	// title contains the other. Large and negative so textual relation
	// dominates amount and date drift.
	TitleRelationBonus float64
	// DateWeightPerDay converts due-date drift in days into score units.
	DateWeightPerDay float64
	// AmountGatePercent and AmountGateAbsolute bound how far an
	// unrelated obligation's amount may sit from the payment before it
	// is discarded outright. The larger of the two applies.
	AmountGatePercent  float64
	AmountGateAbsolute float64
}

func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		TitleRelationBonus: -1000,
		DateWeightPerDay:   12,
		AmountGatePercent:  0.35,
		AmountGateAbsolute: 2500,
	}
}

// NormalizeTitle lowercases, strips diacritics and collapses whitespace
// so "Préstamo  Coche" and "prestamo coche" compare equal.
func NormalizeTitle(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(strip, s); err == nil {
		s = out
	}

	return strings.Join(strings.Fields(s), " ")
}

// PickMatch selects the open obligation that best matches a debt
// payment, or nil when none is plausible. An exact normalized title
// match wins immediately; otherwise candidates are scored by amount
// proximity and due-date drift, with a strong bonus when the titles are
// substring-related. Unrelated candidates whose amount sits too far
// from the payment are discarded before scoring.
//
// Pure: no I/O, no clock reads.
func PickMatch(open []*Obligation, debtName string, payment decimal.Decimal, paymentDate time.Time, cfg MatchConfig) *Obligation {
	name := NormalizeTitle(debtName)

	for _, o := range open {
		if name != "" && NormalizeTitle(o.Title) == name {
			return o
		}
	}

	paymentValue := payment.InexactFloat64()

	gate := paymentValue * cfg.AmountGatePercent
	if gate < cfg.AmountGateAbsolute {
		gate = cfg.AmountGateAbsolute
	}

	var best *Obligation

	var bestScore float64

	for _, o := range open {
		title := NormalizeTitle(o.Title)

		related := name != "" && title != "" &&
			(strings.Contains(title, name) || strings.Contains(name, title))

		amountDelta := o.Amount.Sub(payment).Abs().InexactFloat64()

		if !related && amountDelta > gate {
			continue
		}

		score := amountDelta + float64(dateutil.DaysBetween(o.DueDate, paymentDate))*cfg.DateWeightPerDay
		if related {
			score += cfg.TitleRelationBonus
		}

		if best == nil || score < bestScore {
			best = o
			bestScore = score
		}
	}

	return best
}
