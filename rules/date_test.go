package rules_test

import (
	"testing"
	"time"

	"github.com/FieldPulse/go-incentives/rules"
	"github.com/stretchr/testify/assert"
)

func TestCampaignEndDate(t *testing.T) {
	start, err := rules.ParseDate("2023-10-01")
	assert.NoError(t, err)

	tests := []struct {
		name       string
		start      string
		duration   int
		recurrence rules.Recurrence
		customDays int
		want       string
	}{
		{"monthly three cycles", "2023-10-01", 3, rules.RecurrenceMonthly, 0, "Jan 1, 2024"},
		{"weekly one cycle", "2023-11-01", 1, rules.RecurrenceWeekly, 0, "Nov 8, 2023"},
		{"biweekly two cycles", "2023-11-01", 2, rules.RecurrenceBiweekly, 0, "Nov 29, 2023"},
		{"quarterly one cycle", "2023-10-01", 1, rules.RecurrenceQuarterly, 0, "Jan 1, 2024"},
		{"custom ten days", "2023-11-01", 2, rules.RecurrenceCustom, 10, "Nov 21, 2023"},
		{"custom days unset defaults to one", "2023-11-01", 3, rules.RecurrenceCustom, 0, "Nov 4, 2023"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := rules.ParseDate(tc.start)
			assert.NoError(t, err)
			end := rules.CampaignEndDate(s, tc.duration, tc.recurrence, tc.customDays)
			assert.Equal(t, tc.want, end.Display())
		})
	}

	// one-time campaigns end the day they start, whatever the duration says
	for _, duration := range []int{1, 5, 100} {
		end := rules.CampaignEndDate(start, duration, rules.RecurrenceNone, 0)
		assert.Equal(t, start.Display(), end.Display())
	}
}

func TestCampaignEndDateUnknownRecurrencePanics(t *testing.T) {
	assert.Panics(t, func() {
		rules.CampaignEndDate(rules.NewDate(2023, time.October, 1), 1, rules.Recurrence("fortnightly"), 0)
	})
}

func TestFormatDisplayDateIdempotent(t *testing.T) {
	first, err := rules.FormatDisplayDate("2024-03-15")
	assert.NoError(t, err)
	assert.Equal(t, "Mar 15, 2024", first)

	second, err := rules.FormatDisplayDate(first)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFormatDisplayDateRejectsGarbage(t *testing.T) {
	_, err := rules.FormatDisplayDate("not a date")
	assert.Error(t, err)
}

func TestDateArithmeticIgnoresHostTimeZone(t *testing.T) {
	// A DST-shifting local zone must not perturb civil date math.
	central, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Skip("tz database unavailable")
	}
	local := time.Date(2023, time.March, 11, 23, 30, 0, 0, central)
	d := rules.DateOf(local)
	assert.Equal(t, "2023-03-11", d.ISO())
	assert.Equal(t, "2023-03-12", d.AddDays(1).ISO())
	assert.Equal(t, "2023-04-11", d.AddMonths(1).ISO())
}

func TestDateOrdering(t *testing.T) {
	a := rules.NewDate(2023, time.December, 31)
	b := rules.NewDate(2024, time.January, 1)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
}
