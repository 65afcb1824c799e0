package types

import (
	"fmt"
	"time"
)

const periodKeyLayout = "2006-01"

// Period is a calendar year+month pair used as the billing cutoff.
// The key form is "2006-01", the display label "January 2006".
type Period struct {
	Year  int
	Month time.Month
}

// PeriodOf returns the period containing t (in t's location).
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// ParsePeriod parses a "YYYY-MM" key.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse(periodKeyLayout, s)
	if err != nil {
		return Period{}, fmt.Errorf("parse period %q: %w", s, err)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// String returns the "YYYY-MM" key used for lookups and storage.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Label returns the human-readable form, e.g. "January 2026".
func (p Period) Label() string {
	return fmt.Sprintf("%s %d", p.Month.String(), p.Year)
}

// Start returns the first instant of the period in UTC.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether t falls within this period's year+month.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

// IsBefore reports whether t is strictly earlier than the first
// calendar day of the period. A date inside or after the period is
// never "before" it.
func (p Period) IsBefore(t time.Time) bool {
	if t.Year() != p.Year {
		return t.Year() < p.Year
	}
	return t.Month() < p.Month
}

// IsZero reports whether p is the zero value.
func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}
