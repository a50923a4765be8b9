package report

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// FormatElapsed renders worked time for a table or CSV cell, either as
// H:MM against the quota or as plain minutes. The CSV variant drops the
// "from quota" suffix for hours; the minutes form keeps it either way.
func FormatElapsed(minutes, quota int, displayHours, csv bool) string {
	if displayHours {
		elapsed := fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
		if !csv {
			elapsed += fmt.Sprintf(" from %d:%02d", quota/60, quota%60)
		}
		return elapsed
	}
	return fmt.Sprintf(" %d from %d", minutes, quota)
}

// FormatSigned renders a balance or carryover with an explicit plus sign
// for positive values, as floor-divided hours or as plain minutes.
func FormatSigned(v int, displayHours bool) string {
	sign := ""
	if v > 0 {
		sign = "+"
	}
	if !displayHours {
		return fmt.Sprintf("%s%d", sign, v)
	}
	hours, minutes := hoursMinutes(v)
	return fmt.Sprintf("%s%d:%02d", sign, hours, minutes)
}

// hoursMinutes floor-divides minutes so that e.g. -30 becomes -1:30.
func hoursMinutes(v int) (int, int) {
	hours := v / 60
	minutes := v % 60
	if minutes < 0 {
		hours--
		minutes += 60
	}
	return hours, minutes
}

// Cost computes the price of a work unit: minutes/60 at the hourly wage,
// half-up rounded to two decimals exactly once.
func Cost(minutes int, hourlyWage float64) float64 {
	return math.Round(float64(minutes)/60*hourlyWage*100) / 100
}

// titleCase capitalizes the first rune and lowercases the rest, for table
// titles built from client names.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
