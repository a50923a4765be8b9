// Package stats aggregates work units into daily and weekly quota
// statistics with a running carryover balance.
package stats

import (
	"iter"
	"time"
)

// DateRange yields every date in [start, end), end exclusive, skipping
// dates whose weekday is excluded.
func DateRange(start, end time.Time, excluded []time.Weekday) iter.Seq[time.Time] {
	skip := make(map[time.Weekday]bool, len(excluded))
	for _, weekday := range excluded {
		skip[weekday] = true
	}
	return func(yield func(time.Time) bool) {
		for day := dateKey(start); day.Before(dateKey(end)); day = day.AddDate(0, 0, 1) {
			if skip[day.Weekday()] {
				continue
			}
			if !yield(day) {
				return
			}
		}
	}
}

// WeekRange returns the inclusive ISO week numbers spanned by start and
// end. When the end date's week number is smaller than the start date's
// (a range crossing into a new year) the result is empty.
func WeekRange(start, end time.Time) []int {
	_, first := start.ISOWeek()
	_, last := end.ISOWeek()
	var weeks []int
	for week := first; week <= last; week++ {
		weeks = append(weeks, week)
	}
	return weeks
}

// dateKey normalizes a time to midnight UTC so map lookups and equality
// ignore clock time and location.
func dateKey(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
