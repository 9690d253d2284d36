package dashboard

import (
	"time"

	"github.com/2beens/fittrack/pkg"
)

const TrailingWeeks = 4

// Window is a half-open range of calendar days [Start, End), aligned to Mondays in UTC.
type Window struct {
	Start time.Time
	End   time.Time
}

// weekStart returns the Monday (UTC midnight) of the week containing t.
func weekStart(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	// Sunday is 0 in time.Weekday, weeks here start on Monday
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// TrailingWindow covers the current week and the weeks-1 weeks before it.
func TrailingWindow(now time.Time, weeks int) Window {
	if weeks < 1 {
		weeks = 1
	}
	current := weekStart(now)
	return Window{
		Start: current.AddDate(0, 0, -7*(weeks-1)),
		End:   current.AddDate(0, 0, 7),
	}
}

func (w Window) WeekStarts() []time.Time {
	var starts []time.Time
	for d := w.Start; d.Before(w.End); d = d.AddDate(0, 0, 7) {
		starts = append(starts, d)
	}
	return starts
}

// denseWeeks returns one entry per week of the window in ascending order; weeks
// missing from sparse are present with zero totals.
func denseWeeks(w Window, sparse []WeekTotals) []WeekTotals {
	byStart := make(map[string]WeekTotals, len(sparse))
	for _, wt := range sparse {
		byStart[wt.WeekStart] = wt
	}

	starts := w.WeekStarts()
	weeks := make([]WeekTotals, 0, len(starts))
	for _, start := range starts {
		key := start.Format(pkg.DateLayout)
		wt, ok := byStart[key]
		if !ok {
			wt = WeekTotals{WeekStart: key}
		}
		weeks = append(weeks, wt)
	}
	return weeks
}

func progressFrom(weeks []WeekTotals) Progress {
	p := Progress{
		Days:     make([]string, 0, len(weeks)),
		Calories: make([]int, 0, len(weeks)),
	}
	for _, wt := range weeks {
		p.Days = append(p.Days, wt.WeekStart)
		p.Calories = append(p.Calories, wt.Calories)
	}
	return p
}
