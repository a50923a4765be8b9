package otl

import "github.com/verte-zerg/worklog/internal/grammar"

// Validate checks the line-adjacency grammar of a work log.
//
// The first line must be a date and the last line a duration. Every date
// line must be followed by a description; every duration line by a
// description or the next date. Descriptions may be followed by anything,
// which allows multi-line descriptions. Line numbers in errors are 1-based.
func Validate(lines []string, patterns grammar.Patterns) error {
	if len(lines) == 0 {
		return &FormatError{Msg: "file is empty"}
	}
	if !patterns.Date.MatchString(lines[0]) {
		return &FormatError{Line: 1, Msg: "first line must be a date"}
	}
	if !patterns.Duration.MatchString(lines[len(lines)-1]) {
		return &FormatError{Line: len(lines), Msg: "last line must be a duration"}
	}
	for i := 0; i < len(lines)-1; i++ {
		next := lines[i+1]
		switch {
		case patterns.Date.MatchString(lines[i]):
			if !patterns.Description.MatchString(next) {
				return &FormatError{Line: i + 1, Msg: "date must be followed by a description"}
			}
		case patterns.Duration.MatchString(lines[i]):
			if !patterns.Description.MatchString(next) && !patterns.Date.MatchString(next) {
				return &FormatError{Line: i + 1, Msg: "duration must be followed by a description or a date"}
			}
		}
	}
	return nil
}
