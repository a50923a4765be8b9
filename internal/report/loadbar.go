// Package report renders work statistics for terminal and CSV output.
package report

import (
	"strings"

	"github.com/verte-zerg/worklog/internal/model"
)

const (
	// One bar character per 10 minutes for days, per hour for weeks.
	dayBarStep  = 10
	weekBarStep = 60
)

// LoadBar draws the quota bar: one '#' per step minutes of regular work,
// then '+' for each step worked beyond the quota, or '-' for each step
// still missing from it.
func LoadBar(minutes, quota, step int) string {
	var b strings.Builder
	if minutes >= quota {
		b.WriteString(strings.Repeat("#", quota/step))
		if exceed := (minutes - quota) / step; exceed > 0 {
			b.WriteString(strings.Repeat("+", exceed))
		}
		return b.String()
	}
	done := minutes / step
	b.WriteString(strings.Repeat("#", done))
	if missing := quota/step - done; missing > 0 {
		b.WriteString(strings.Repeat("-", missing))
	}
	return b.String()
}

// DayBalance returns the load bar and the signed quota balance for a day.
func DayBalance(stat model.DayStat, minutesPerDay int) (string, int) {
	return LoadBar(stat.Minutes, minutesPerDay, dayBarStep), stat.Minutes - minutesPerDay
}

// WeekBalance returns the load bar and the signed quota balance for a week.
func WeekBalance(stat model.WeekStat, minutesPerWeek int) (string, int) {
	return LoadBar(stat.Minutes, minutesPerWeek, weekBarStep), stat.Minutes - minutesPerWeek
}
