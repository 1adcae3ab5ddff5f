package dateutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hucha-finance/hucha/internal/dateutil"
)

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}

	return t
}

func TestToISODate(t *testing.T) {
	now := time.Date(2024, 3, 15, 17, 42, 0, 0, time.UTC)

	type testCase struct {
		name  string
		value string
		want  string
	}

	tests := []testCase{
		{name: "ISODate", value: "2024-01-31", want: "2024-01-31"},
		{name: "RFC3339", value: "2024-06-01T10:30:00Z", want: "2024-06-01"},
		{name: "SlashFormat", value: "05/02/2024", want: "2024-02-05"},
		{name: "EmptyFallsBackToToday", value: "", want: "2024-03-15"},
		{name: "GarbageFallsBackToToday", value: "next tuesday", want: "2024-03-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dateutil.ToISODate(tt.value, now)
			assert.Equal(t, tt.want, got.Format(time.DateOnly))
			assert.Equal(t, time.UTC, got.Location())
			assert.Equal(t, 0, got.Hour())
		})
	}
}

func TestAddMonth(t *testing.T) {
	type testCase struct {
		name string
		in   string
		want string
	}

	tests := []testCase{
		{name: "LeapFebruaryClamp", in: "2024-01-31", want: "2024-02-29"},
		{name: "NonLeapFebruaryClamp", in: "2023-01-31", want: "2023-02-28"},
		{name: "ThirtyDayClamp", in: "2024-05-31", want: "2024-06-30"},
		{name: "PlainAdvance", in: "2024-01-15", want: "2024-02-15"},
		{name: "YearRollover", in: "2024-12-10", want: "2025-01-10"},
		{name: "EndOfFebruaryForward", in: "2024-02-29", want: "2024-03-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dateutil.AddMonth(date(tt.in))
			assert.Equal(t, tt.want, got.Format(time.DateOnly))
		})
	}
}

func TestAdvanceByFrequency(t *testing.T) {
	start := date("2024-01-31")

	assert.Equal(t, "2024-02-07", dateutil.AdvanceByFrequency(start, dateutil.FrequencyWeekly).Format(time.DateOnly))
	assert.Equal(t, "2024-02-14", dateutil.AdvanceByFrequency(start, dateutil.FrequencyBiweekly).Format(time.DateOnly))
	assert.Equal(t, "2024-02-29", dateutil.AdvanceByFrequency(start, dateutil.FrequencyMonthly).Format(time.DateOnly))
	assert.Equal(t, "2024-02-29", dateutil.AdvanceByFrequency(start, dateutil.Frequency("unknown")).Format(time.DateOnly))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 5, dateutil.DaysBetween(date("2024-01-20"), date("2024-01-15")))
	assert.Equal(t, 5, dateutil.DaysBetween(date("2024-01-15"), date("2024-01-20")))
	assert.Equal(t, 0, dateutil.DaysBetween(date("2024-01-15"), date("2024-01-15")))
}

func TestFrequencyValid(t *testing.T) {
	assert.True(t, dateutil.FrequencyWeekly.Valid())
	assert.True(t, dateutil.FrequencyBiweekly.Valid())
	assert.True(t, dateutil.FrequencyMonthly.Valid())
	assert.False(t, dateutil.Frequency("daily").Valid())
}
