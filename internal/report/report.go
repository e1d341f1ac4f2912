package report

import (
	"time"

	"clockifish/internal/domain"
)

// Window is a half-open date range [Start, End) computed against the local
// calendar. It is never persisted; the exclusive End is what gets sent to
// the service.
type Window struct {
	Start time.Time
	End   time.Time
}

// DisplayEnd returns the window end adjusted for human display: one second
// before the exclusive upper bound, so the rendered date falls inside the
// window ("through Sunday" rather than "through next Monday"). It must not
// be used for queries.
func (w Window) DisplayEnd() time.Time {
	return w.End.Add(-time.Second)
}

// WeekWindow returns the week containing now: Monday at local midnight
// through the following Monday at local midnight, exclusive. Monday is the
// first day of the week; a Sunday maps back six days.
func WeekWindow(now time.Time) Window {
	daysBack := int(now.Weekday()) - int(time.Monday)
	if daysBack < 0 {
		daysBack = 6
	}
	monday := now.AddDate(0, 0, -daysBack)
	start := time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, now.Location())
	return Window{Start: start, End: start.AddDate(0, 0, 7)}
}

// MonthWindow returns the month containing now: the 1st at local midnight
// through the 1st of the following month at local midnight, exclusive.
func MonthWindow(now time.Time) Window {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

// TotalHours reduces a list of time entries to fractional hours. Entries
// still running (no end time) are excluded from the total, not counted as
// partial. No rounding is applied; rounding to two decimals happens only at
// display time.
func TotalHours(entries []*domain.TimeEntry) float64 {
	var seconds float64
	for _, entry := range entries {
		if entry == nil || entry.EndTime == nil {
			continue
		}
		seconds += entry.EndTime.Sub(entry.StartTime).Seconds()
	}
	return seconds / 3600
}
