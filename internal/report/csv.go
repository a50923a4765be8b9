package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/worklog/internal/model"
)

// BuildOutputPath returns the CSV export target in the user's home
// directory, stamped with the client name and the current time.
func BuildOutputPath(client, mode string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	name := fmt.Sprintf("%s-%s_statistics-%s.csv",
		strings.ToLower(client), mode, time.Now().Format("2006-01-02-15-04"))
	return filepath.Join(home, name), nil
}

// WriteDayStatsCSV writes the daily statistics as CSV rows.
func WriteDayStatsCSV(w io.Writer, dayStats []model.DayStat, minutesPerDay int, displayHours bool) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Day", unitHeader(displayHours), "Balance", "Carryover"}); err != nil {
		return err
	}
	for _, stat := range dayStats {
		_, balance := DayBalance(stat, minutesPerDay)
		record := []string{
			stat.Date.Format("2006-01-02"),
			FormatElapsed(stat.Minutes, minutesPerDay, displayHours, true),
			FormatSigned(balance, displayHours),
			FormatSigned(stat.Carryover, displayHours),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteWeekStatsCSV writes the weekly statistics as CSV rows.
func WriteWeekStatsCSV(w io.Writer, weekStats []model.WeekStat, minutesPerWeek int, displayHours bool) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Week", "Days", unitHeader(displayHours), "Balance", "Carryover"}); err != nil {
		return err
	}
	for _, stat := range weekStats {
		firstDay, lastDay := WeekSpan(stat.Year, stat.Week, false)
		_, balance := WeekBalance(stat, minutesPerWeek)
		record := []string{
			fmt.Sprintf("%d", stat.Week),
			fmt.Sprintf("%s - %s", firstDay.Format("2006-01-02"), lastDay.Format("2006-01-02")),
			FormatElapsed(stat.Minutes, minutesPerWeek, displayHours, true),
			FormatSigned(balance, displayHours),
			FormatSigned(stat.Carryover, displayHours),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteWorkUnitsCSV writes one row per work unit with its computed cost.
func WriteWorkUnitsCSV(w io.Writer, units []model.WorkUnit, hourlyWage float64, currencySign string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Work", "Duration (minutes)", fmt.Sprintf("Cost (%s)", currencySign)}); err != nil {
		return err
	}
	for _, unit := range units {
		record := []string{
			unit.Description,
			fmt.Sprintf("%d", unit.Minutes),
			fmt.Sprintf("%.2f", Cost(unit.Minutes, hourlyWage)),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
