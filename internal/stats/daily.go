package stats

import (
	"iter"
	"time"

	"github.com/verte-zerg/worklog/internal/model"
	"github.com/verte-zerg/worklog/internal/otl"
)

// DailyOptions configures Daily.
type DailyOptions struct {
	StartDate        time.Time
	EndDate          time.Time // zero means today; exclusive either way
	MinutesPerDay    int
	ExcludedWeekdays []time.Weekday
}

// Daily consumes the work-unit sequence once and returns one DayStat per
// date in [start, end), ascending. Days without recorded work get an
// explicit zero-minute entry so quota misses stay visible. Each entry's
// carryover is the running sum of all diffs since the range start:
// the first carryover equals the first diff, every later one adds the
// day's diff to the previous carryover.
func Daily(units iter.Seq2[model.WorkUnit, error], opts DailyOptions) ([]model.DayStat, error) {
	end := opts.EndDate
	if end.IsZero() {
		end = otl.Today()
	}

	perDay := make(map[time.Time]int)
	for unit, err := range units {
		if err != nil {
			return nil, err
		}
		perDay[dateKey(unit.Date)] += unit.Minutes
	}

	var dayStats []model.DayStat
	carryover := 0
	for day := range DateRange(opts.StartDate, end, opts.ExcludedWeekdays) {
		minutes := perDay[day]
		diff := minutes - opts.MinutesPerDay
		if len(dayStats) == 0 {
			carryover = diff
		} else {
			carryover += diff
		}
		dayStats = append(dayStats, model.DayStat{
			Date:      day,
			Minutes:   minutes,
			Diff:      diff,
			Carryover: carryover,
		})
	}
	return dayStats, nil
}
