package reports

import (
	"time"

	"github.com/printdesk/printdesk/internal/quotes"
)

// Period selects how far back a report window reaches from "now".
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// Periods lists every report period.
func Periods() []Period {
	return []Period{PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear}
}

// Window is an inclusive date range.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ResolveWindow computes the report range ending at now. Unknown periods
// fall back to the month window. Month-based subtraction clamps to the
// end of the target month, so one month before March 31 is the last day
// of February rather than a day in early March.
func ResolveWindow(period Period, now time.Time) Window {
	var start time.Time
	switch period {
	case PeriodWeek:
		start = now.AddDate(0, 0, -7)
	case PeriodQuarter:
		start = shiftMonths(now, -3)
	case PeriodYear:
		start = shiftMonths(now, -12)
	default:
		start = shiftMonths(now, -1)
	}
	return Window{Start: start, End: now}
}

// shiftMonths adds months calendar-aware: the day of month is clamped to
// the last day of the target month instead of rolling over.
func shiftMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month, 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	if last := daysInMonth(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}
	hour, min, sec := t.Clock()
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, hour, min, sec, t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FilterByWindow keeps the quotes created inside the window, inclusive on
// both ends.
func FilterByWindow(collection []quotes.Quote, w Window) []quotes.Quote {
	filtered := make([]quotes.Quote, 0, len(collection))
	for _, q := range collection {
		if q.CreatedAt.Before(w.Start) || q.CreatedAt.After(w.End) {
			continue
		}
		filtered = append(filtered, q)
	}
	return filtered
}
