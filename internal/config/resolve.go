package config

import (
	"fmt"
	"os"
	"time"

	"github.com/verte-zerg/worklog/internal/model"
	"github.com/verte-zerg/worklog/internal/otl"
)

// Options carries the raw command-line input before resolution.
type Options struct {
	Client   string
	Mode     string
	Interval string
	Start    string
	End      string
	CSV      bool
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Resolve merges command-line options over the file configuration and
// built-in defaults, validates the combination, and returns immutable run
// parameters. Precedence is flag, then config file, then default.
//
// Every check runs before any parsing: the client must map to an existing
// data file, dates must parse, the quota for the requested aggregation
// interval must be set, and list mode needs an hourly wage for the client.
func Resolve(opts Options, file FileConfig) (model.Params, error) {
	client := opts.Client
	if expanded, ok := file.Abbreviations[client]; ok && client != "" {
		client = expanded
	}
	if client == "" {
		switch {
		case file.Default.Client != nil && *file.Default.Client != "":
			client = *file.Default.Client
		case len(file.Clients) == 1:
			for name := range file.Clients {
				client = name
			}
		default:
			return model.Params{}, ErrNoClient
		}
	}

	dataPath, ok := file.Clients[client]
	if !ok {
		return model.Params{}, &ClientNotFoundError{Client: client}
	}
	if _, err := os.Stat(dataPath); err != nil {
		return model.Params{}, fmt.Errorf("data file for client %q: %w", client, err)
	}

	mode := model.Mode(firstNonEmpty(opts.Mode, stringOr(file.Mode, string(model.ModeList))))
	if mode != model.ModeList && mode != model.ModeAggregate {
		return model.Params{}, &ConfigurationError{Msg: fmt.Sprintf("invalid mode %q, must be list or aggregate", mode)}
	}
	interval := model.Interval(firstNonEmpty(opts.Interval, stringOr(file.Interval, string(model.IntervalWeek))))
	if interval != model.IntervalDay && interval != model.IntervalWeek {
		return model.Params{}, &ConfigurationError{Msg: fmt.Sprintf("invalid interval %q, must be day or week", interval)}
	}

	startDate, err := resolveStartDate(opts.Start, file.StartDate)
	if err != nil {
		return model.Params{}, err
	}
	var endDate time.Time
	if opts.End != "" {
		endDate, err = time.Parse(otl.DateLayout, opts.End)
		if err != nil {
			return model.Params{}, &ConfigurationError{Msg: fmt.Sprintf("end date %q must match YYYY-MM-DD", opts.End)}
		}
	}

	if mode == model.ModeAggregate && interval == model.IntervalWeek && intOr(file.MinutesPerWeek, 0) == 0 {
		return model.Params{}, &ConfigurationError{Msg: `"minutes_per_week" must be set in the config file when aggregating by week`}
	}
	if mode == model.ModeAggregate && interval == model.IntervalDay && intOr(file.MinutesPerDay, 0) == 0 {
		return model.Params{}, &ConfigurationError{Msg: `"minutes_per_day" must be set in the config file when aggregating by day`}
	}
	hourlyWage := file.HourlyWages[client]
	if mode == model.ModeList && hourlyWage == 0 {
		return model.Params{}, &ConfigurationError{Msg: fmt.Sprintf(`an hourly wage for %q must be set in the config file when using list mode`, client)}
	}

	excluded, err := resolveExcludedWeekdays(file.ExcludedWeekdays)
	if err != nil {
		return model.Params{}, err
	}

	return model.Params{
		Client:           client,
		DataPath:         dataPath,
		Mode:             mode,
		Interval:         interval,
		StartDate:        startDate,
		EndDate:          endDate,
		MinutesPerDay:    intOr(file.MinutesPerDay, 0),
		MinutesPerWeek:   intOr(file.MinutesPerWeek, 0),
		ExcludedWeekdays: excluded,
		Spaces:           intOr(file.Spaces, 0),
		HourlyWage:       hourlyWage,
		CurrencySign:     stringOr(file.CurrencySign, "€"),
		DisplayHours:     boolOr(file.DisplayHours, true),
		CSV:              opts.CSV,
	}, nil
}

// resolveStartDate prefers the flag, then the config file, then the first
// of the current month.
func resolveStartDate(flag string, fromFile *string) (time.Time, error) {
	value := firstNonEmpty(flag, stringOr(fromFile, ""))
	if value == "" {
		today := otl.Today()
		return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	startDate, err := time.Parse(otl.DateLayout, value)
	if err != nil {
		return time.Time{}, &ConfigurationError{Msg: fmt.Sprintf("start date %q must match YYYY-MM-DD", value)}
	}
	return startDate, nil
}

func resolveExcludedWeekdays(names []string) ([]time.Weekday, error) {
	if names == nil {
		return []time.Weekday{time.Saturday, time.Sunday}, nil
	}
	weekdays := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		weekday, ok := weekdayNames[name]
		if !ok {
			return nil, &ConfigurationError{Msg: fmt.Sprintf("unknown weekday %q in excluded_weekdays", name)}
		}
		weekdays = append(weekdays, weekday)
	}
	return weekdays, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func stringOr(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}

func intOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}

func boolOr(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}
