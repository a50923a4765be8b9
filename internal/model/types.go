// Package model defines shared data structures.
package model

import "time"

// WorkUnit is one recorded task entry reconstructed from the work log.
type WorkUnit struct {
	Date        time.Time
	Client      string
	Minutes     int
	Description string

	// DescriptionLine is the 1-based line number of the entry's first
	// description line, kept for diagnostics.
	DescriptionLine int

	// Start and End are reserved for timestamped entries; the current
	// aggregations do not read them.
	Start time.Time
	End   time.Time
}

// DayStat aggregates worked minutes for one calendar day.
type DayStat struct {
	Date      time.Time
	Minutes   int
	Diff      int
	Carryover int
}

// WeekStat aggregates worked minutes for one ISO week.
type WeekStat struct {
	Year      int
	Week      int
	Minutes   int
	Diff      int
	Carryover int
}

// Mode selects between listing work units and aggregating them.
type Mode string

const (
	ModeList      Mode = "list"
	ModeAggregate Mode = "aggregate"
)

// Interval selects the aggregation bucket.
type Interval string

const (
	IntervalDay  Interval = "day"
	IntervalWeek Interval = "week"
)

// Params holds the fully resolved settings for one invocation. It is built
// once by config.Resolve and treated as immutable afterwards.
type Params struct {
	Client   string
	DataPath string
	Mode     Mode
	Interval Interval

	StartDate time.Time
	EndDate   time.Time // zero means today

	MinutesPerDay    int
	MinutesPerWeek   int
	ExcludedWeekdays []time.Weekday

	// Spaces is the configured indentation width; zero selects tabs.
	Spaces int

	HourlyWage   float64
	CurrencySign string
	DisplayHours bool
	CSV          bool
}
