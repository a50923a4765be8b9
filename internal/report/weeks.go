package report

import "time"

// WeekSpan returns the Monday and the Sunday of the given ISO week, or the
// Friday instead of the Sunday when excludeWeekend is set.
func WeekSpan(year, week int, excludeWeekend bool) (time.Time, time.Time) {
	// January 4th always falls into ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := jan4.AddDate(0, 0, -(weekday - 1)).AddDate(0, 0, (week-1)*7)
	days := 6
	if excludeWeekend {
		days = 4
	}
	return monday, monday.AddDate(0, 0, days)
}
