// Package dateutil holds the calendar arithmetic shared by the debt
// reconciler and the recurring projection runner. All dates are civil
// dates pinned to UTC midnight.
package dateutil

import (
	"time"
)

// Frequency is the cadence of a recurring rule.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	}

	return false
}

var parseLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
}

// Midnight truncates t to UTC midnight.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ToISODate parses a date-like string as a UTC civil date. Empty or
// unparseable input falls back to now's date rather than failing; bad
// dates on user documents are common and a wrong-but-sane default beats
// rejecting the whole operation.
func ToISODate(value string, now time.Time) time.Time {
	if value == "" {
		return Midnight(now)
	}

	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return Midnight(t)
		}
	}

	return Midnight(now)
}

// AddMonth advances t by exactly one calendar month, clamping the day
// to the last valid day of the target month (Jan 31 -> Feb 28/29).
func AddMonth(t time.Time) time.Time {
	t = Midnight(t)
	y, m, d := t.Date()

	// Day 0 of month+2 is the last day of month+1.
	lastDay := time.Date(y, m+2, 0, 0, 0, 0, 0, time.UTC).Day()
	if d > lastDay {
		d = lastDay
	}

	return time.Date(y, m+1, d, 0, 0, 0, 0, time.UTC)
}

// AdvanceByFrequency moves t forward one step of the given frequency.
// Unknown frequencies advance by a month, same as the monthly case.
func AdvanceByFrequency(t time.Time, f Frequency) time.Time {
	switch f {
	case FrequencyWeekly:
		return Midnight(t).AddDate(0, 0, 7)
	case FrequencyBiweekly:
		return Midnight(t).AddDate(0, 0, 14)
	default:
		return AddMonth(t)
	}
}

// DaysBetween returns the absolute number of whole days between two
// civil dates.
func DaysBetween(a, b time.Time) int {
	days := int(Midnight(a).Sub(Midnight(b)).Hours() / 24)
	if days < 0 {
		days = -days
	}

	return days
}
