// Package grammar classifies work-log lines by pattern matching.
//
// A work log knows three line roles: a date (YYYY-MM-DD at column zero), a
// description (indented one level), and a duration in minutes (indented two
// levels). Indentation is either tabs or a configured number of spaces.
package grammar

import (
	"fmt"
	"regexp"
	"strings"
)

// Role identifies what a single non-blank line represents.
type Role int

const (
	RoleNone Role = iota
	RoleDate
	RoleDescription
	RoleDuration
)

// datePattern accepts YYYY-MM-DD with years 2020-2039. Month and day are
// checked lexically only; an impossible day such as 2025-02-31 still
// matches and is left for the date parser to reject.
var datePattern = regexp.MustCompile(`^20[23]\d-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)

// Patterns holds the compiled line patterns for one indentation style.
type Patterns struct {
	Date        *regexp.Regexp
	Description *regexp.Regexp
	Duration    *regexp.Regexp
}

// Tabs returns the default patterns: one tab for descriptions, two tabs
// for durations.
func Tabs() Patterns {
	return Patterns{
		Date:        datePattern,
		Description: regexp.MustCompile(`^\t[^\t].*`),
		Duration:    regexp.MustCompile(`^\t\t\d+`),
	}
}

// Spaces returns patterns for space indentation: n spaces for descriptions,
// 2n spaces for durations.
func Spaces(n int) Patterns {
	indent := strings.Repeat(" ", n)
	return Patterns{
		Date:        datePattern,
		Description: regexp.MustCompile(fmt.Sprintf(`^%s[^ ].*`, indent)),
		Duration:    regexp.MustCompile(fmt.Sprintf(`^%s\d+`, indent+indent)),
	}
}

// ForIndent selects Spaces(spaces) when spaces is positive, Tabs otherwise.
func ForIndent(spaces int) Patterns {
	if spaces > 0 {
		return Spaces(spaces)
	}
	return Tabs()
}

// Classify reports the single role the line matches, or RoleNone.
func (p Patterns) Classify(line string) Role {
	switch {
	case p.Date.MatchString(line):
		return RoleDate
	case p.Description.MatchString(line):
		return RoleDescription
	case p.Duration.MatchString(line):
		return RoleDuration
	}
	return RoleNone
}
