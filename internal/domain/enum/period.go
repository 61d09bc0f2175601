package enum

import (
	"fmt"
	"strings"
	"time"
)

// Period is a reporting window anchored to the current local time
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

func (p Period) String() string {
	return string(p)
}

func (p Period) IsValid() bool {
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodAll:
		return true
	}
	return false
}

// ParsePeriod parses a period name; an empty string means today
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PeriodToday, nil
	}
	p := Period(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid period %q", s)
	}
	return p, nil
}

// Start returns the inclusive lower bound of the window for now.
// Week and month count back 7 and 30 days from today's local midnight.
// PeriodAll returns the zero time.
func (p Period) Start(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch p {
	case PeriodToday:
		return midnight
	case PeriodWeek:
		return midnight.Add(-7 * 24 * time.Hour)
	case PeriodMonth:
		return midnight.Add(-30 * 24 * time.Hour)
	}
	return time.Time{}
}
