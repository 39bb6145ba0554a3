package rules

import (
	"fmt"
	"time"
)

// Date is a civil calendar date with no time-of-day component. All date
// arithmetic goes through time.Date in UTC so the host's time zone and DST
// transitions never shift the Y-M-D result.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

const (
	isoDateLayout     = "2006-01-02"
	displayDateLayout = "Jan 2, 2006"
)

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates a time.Time to its calendar date in the time's own
// location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses an ISO "2006-01-02" date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(isoDateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n calendar days after d.
func (d Date) AddDays(n int) Date {
	return DateOf(d.utc().AddDate(0, 0, n))
}

// AddMonths returns the date n calendar months after d, with time.AddDate
// overflow semantics (Jan 31 + 1 month = Mar 2/3).
func (d Date) AddMonths(n int) Date {
	return DateOf(d.utc().AddDate(0, n, 0))
}

// Before reports whether d falls before other on the calendar.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

// ISO renders the date as "2006-01-02".
func (d Date) ISO() string {
	return d.utc().Format(isoDateLayout)
}

// Display renders the date as "Jan 2, 2006". Month names are always the
// English abbreviations regardless of locale.
func (d Date) Display() string {
	return d.utc().Format(displayDateLayout)
}

func (d Date) String() string {
	return d.ISO()
}

// FormatDisplayDate formats a date string for display. It accepts both ISO
// dates and strings already in display form, so applying it twice yields
// the same output as applying it once.
func FormatDisplayDate(s string) (string, error) {
	if t, err := time.Parse(displayDateLayout, s); err == nil {
		return DateOf(t).Display(), nil
	}
	d, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return d.Display(), nil
}

// CampaignEndDate computes the calendar end date of a campaign from its
// start date, cycle count and recurrence. A one-time campaign ends the day
// it starts. Custom recurrence treats an unset cycle length as one day.
func CampaignEndDate(start Date, duration int, recurrence Recurrence, customDays int) Date {
	mustRecurrence(recurrence)
	switch recurrence {
	case RecurrenceNone:
		return start
	case RecurrenceWeekly:
		return start.AddDays(duration * 7)
	case RecurrenceBiweekly:
		return start.AddDays(duration * 14)
	case RecurrenceMonthly:
		return start.AddMonths(duration)
	case RecurrenceQuarterly:
		return start.AddMonths(duration * 3)
	default: // RecurrenceCustom
		if customDays < 1 {
			customDays = 1
		}
		return start.AddDays(duration * customDays)
	}
}
