package otl

import (
	"iter"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/worklog/internal/grammar"
	"github.com/verte-zerg/worklog/internal/model"
)

// DateLayout is the date format used throughout the work log.
const DateLayout = "2006-01-02"

// ParseWorkUnits scans validated log lines and yields one WorkUnit per
// complete (date, description, duration) group, lazily and in file order.
// The sequence is single-pass; call ParseWorkUnits again to iterate anew.
//
// Entries dated before start or after end are skipped; end defaults to
// today when zero. Only units whose client matches the requested client
// case-insensitively are yielded. A date line that passed the lexical
// pattern but names an impossible calendar day stops the sequence with a
// DateParseError.
func ParseWorkUnits(lines []string, client string, start, end time.Time, patterns grammar.Patterns) iter.Seq2[model.WorkUnit, error] {
	return func(yield func(model.WorkUnit, error) bool) {
		if end.IsZero() {
			end = Today()
		}
		var (
			currentDate time.Time
			excluded    bool
			description strings.Builder
			descLine    int
		)
		for i, line := range lines {
			switch {
			case patterns.Date.MatchString(line):
				date, err := time.Parse(DateLayout, strings.TrimSpace(line))
				if err != nil {
					yield(model.WorkUnit{}, &DateParseError{Line: i + 1, Value: strings.TrimSpace(line), Err: err})
					return
				}
				currentDate = date
				excluded = date.Before(start) || date.After(end)
			case patterns.Description.MatchString(line):
				if excluded {
					continue
				}
				if description.Len() == 0 {
					descLine = i + 1
				}
				description.WriteByte(' ')
				description.WriteString(strings.TrimSpace(line))
			case patterns.Duration.MatchString(line):
				if excluded {
					continue
				}
				minutes, err := strconv.Atoi(strings.TrimSpace(line))
				if err != nil {
					yield(model.WorkUnit{}, &FormatError{Line: i + 1, Msg: "duration is not a number"})
					return
				}
				unit := model.WorkUnit{
					Date:            currentDate,
					Client:          client,
					Minutes:         minutes,
					Description:     description.String(),
					DescriptionLine: descLine,
				}
				description.Reset()
				descLine = 0
				if strings.EqualFold(unit.Client, client) {
					if !yield(unit, nil) {
						return
					}
				}
			}
		}
	}
}

// Collect materializes a work-unit sequence, stopping at the first error.
func Collect(units iter.Seq2[model.WorkUnit, error]) ([]model.WorkUnit, error) {
	var out []model.WorkUnit
	for unit, err := range units {
		if err != nil {
			return nil, err
		}
		out = append(out, unit)
	}
	return out, nil
}

// Today returns the current date at midnight UTC, matching the time
// location of parsed log dates.
func Today() time.Time {
	year, month, day := time.Now().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
