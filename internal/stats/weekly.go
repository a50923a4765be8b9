package stats

import (
	"iter"
	"sort"
	"time"

	"github.com/verte-zerg/worklog/internal/model"
	"github.com/verte-zerg/worklog/internal/otl"
)

// WeeklyOptions configures Weekly.
type WeeklyOptions struct {
	StartDate      time.Time
	EndDate        time.Time // zero means today; inclusive
	MinutesPerWeek int
}

type weekKey struct {
	year int
	week int
}

// Weekly consumes the work-unit sequence once and returns one WeekStat per
// ISO week spanned by [start, end], sorted by week number ascending. Weeks
// without recorded work are filled in with zero minutes.
//
// Gap weeks are attributed to the start date's year; a range crossing a
// calendar year can therefore bucket a gap week under the wrong year.
// TODO: compute the year per gap week from the date range instead of
// assuming the start year.
//
// The carryover recurrence runs over first-seen key order before the final
// sort, so out-of-order input changes individual carryover values but
// never the returned week ordering.
func Weekly(units iter.Seq2[model.WorkUnit, error], opts WeeklyOptions) ([]model.WeekStat, error) {
	end := opts.EndDate
	if end.IsZero() {
		end = otl.Today()
	}

	perWeek := make(map[weekKey]int)
	var order []weekKey
	for unit, err := range units {
		if err != nil {
			return nil, err
		}
		year, week := unit.Date.ISOWeek()
		key := weekKey{year: year, week: week}
		if _, ok := perWeek[key]; !ok {
			order = append(order, key)
		}
		perWeek[key] += unit.Minutes
	}

	seen := make(map[int]bool, len(order))
	for _, key := range order {
		seen[key.week] = true
	}
	for _, week := range WeekRange(opts.StartDate, end) {
		if seen[week] {
			continue
		}
		key := weekKey{year: opts.StartDate.Year(), week: week}
		if _, ok := perWeek[key]; !ok {
			perWeek[key] = 0
			order = append(order, key)
		}
	}

	weekStats := make([]model.WeekStat, 0, len(order))
	carryover := 0
	for i, key := range order {
		minutes := perWeek[key]
		diff := minutes - opts.MinutesPerWeek
		if i == 0 {
			carryover = diff
		} else {
			carryover += diff
		}
		weekStats = append(weekStats, model.WeekStat{
			Year:      key.year,
			Week:      key.week,
			Minutes:   minutes,
			Diff:      diff,
			Carryover: carryover,
		})
	}
	sort.Slice(weekStats, func(i, j int) bool {
		return weekStats[i].Week < weekStats[j].Week
	})
	return weekStats, nil
}
