package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/verte-zerg/worklog/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C0C0C0")).Bold(true)
	plusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	minusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

const fallbackWidth = 80

// RenderDayStats prints the daily statistics table followed by the current
// balance line.
func RenderDayStats(w io.Writer, client string, dayStats []model.DayStat, minutesPerDay int, displayHours bool) error {
	if len(dayStats) == 0 {
		_, err := fmt.Fprintln(w, "No days in the requested range.")
		return err
	}
	headers := []string{"Day", "#: regular +-", unitHeader(displayHours), "Balance", "Carryover"}
	rows := make([][]string, 0, len(dayStats))
	for _, stat := range dayStats {
		bar, balance := DayBalance(stat, minutesPerDay)
		rows = append(rows, []string{
			stat.Date.Format("2006-01-02"),
			bar,
			FormatElapsed(stat.Minutes, minutesPerDay, displayHours, false),
			FormatSigned(balance, displayHours),
			FormatSigned(stat.Carryover, displayHours),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true}
	if err := renderTable(w, titleCase(client), headers, rows, rightAlign); err != nil {
		return err
	}
	return renderBalanceLine(w, dayStats[len(dayStats)-1].Carryover, displayHours)
}

// RenderWeekStats prints the weekly statistics table followed by the
// current balance line. Each row names the week number and its Monday to
// Sunday span.
func RenderWeekStats(w io.Writer, client string, weekStats []model.WeekStat, minutesPerWeek int, displayHours bool) error {
	if len(weekStats) == 0 {
		_, err := fmt.Fprintln(w, "No weeks in the requested range.")
		return err
	}
	headers := []string{"Week", "#: regular +-", unitHeader(displayHours), "Balance", "Carryover"}
	rows := make([][]string, 0, len(weekStats))
	for _, stat := range weekStats {
		firstDay, lastDay := WeekSpan(stat.Year, stat.Week, false)
		bar, balance := WeekBalance(stat, minutesPerWeek)
		rows = append(rows, []string{
			fmt.Sprintf("Nr.%d, %s - %s", stat.Week, firstDay.Format("2006-01-02"), lastDay.Format("2006-01-02")),
			bar,
			FormatElapsed(stat.Minutes, minutesPerWeek, displayHours, false),
			FormatSigned(balance, displayHours),
			FormatSigned(stat.Carryover, displayHours),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true}
	if err := renderTable(w, titleCase(client), headers, rows, rightAlign); err != nil {
		return err
	}
	return renderBalanceLine(w, weekStats[len(weekStats)-1].Carryover, displayHours)
}

// RenderWorkUnits prints one row per work unit with its duration and cost,
// closed by a sum row. Long descriptions are truncated to the terminal
// width.
func RenderWorkUnits(w io.Writer, client string, units []model.WorkUnit, hourlyWage float64, currencySign string, displayHours bool) error {
	if len(units) == 0 {
		_, err := fmt.Fprintln(w, "No work units in the requested range.")
		return err
	}
	durationHeader := "Duration (minutes)"
	if displayHours {
		durationHeader = "Duration (hours)"
	}
	headers := []string{"Work", durationHeader, fmt.Sprintf("Cost (%s)", currencySign)}

	maxDescWidth := terminalWidth() - displayWidth(durationHeader) - displayWidth(headers[2]) - 4
	totalCost := 0.0
	totalMinutes := 0
	rows := make([][]string, 0, len(units)+1)
	for _, unit := range units {
		cost := Cost(unit.Minutes, hourlyWage)
		totalCost += cost
		totalMinutes += unit.Minutes
		duration := fmt.Sprintf("%d", unit.Minutes)
		if displayHours {
			duration = fmt.Sprintf("%d:%02d", unit.Minutes/60, unit.Minutes%60)
		}
		rows = append(rows, []string{
			runewidth.Truncate(unit.Description, maxDescWidth, "..."),
			duration,
			fmt.Sprintf("%6.2f", cost),
		})
	}
	rows = append(rows, []string{"", "", ""})
	rows = append(rows, []string{
		fmt.Sprintf("Sum (%.2f hours, hourly wage: %v%s)", float64(totalMinutes)/60, hourlyWage, currencySign),
		fmt.Sprintf("%d", totalMinutes),
		fmt.Sprintf("%6.2f", totalCost),
	})
	rightAlign := map[int]bool{1: true, 2: true}
	return renderTable(w, titleCase(client), headers, rows, rightAlign)
}

func renderTable(w io.Writer, title string, headers []string, rows [][]string, rightAlign map[int]bool) error {
	if _, err := fmt.Fprintln(w, titleStyle.Render(title)); err != nil {
		return err
	}
	lines := formatTable(headers, rows, rightAlign)
	for i, line := range lines {
		if i == 0 {
			line = headerStyle.Render(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func renderBalanceLine(w io.Writer, carryover int, displayHours bool) error {
	style := plusStyle
	word := "Plus"
	if carryover < 0 {
		style = minusStyle
	}
	if carryover <= 0 {
		word = "Minus"
	}
	value := fmt.Sprintf("%d", carryover)
	if displayHours {
		hours, minutes := hoursMinutes(carryover)
		value = fmt.Sprintf("%d:%02d", hours, minutes)
	}
	_, err := fmt.Fprintf(w, "Current Balance: %s\n", style.Render(fmt.Sprintf("%s %s", word, value)))
	return err
}

func unitHeader(displayHours bool) string {
	if displayHours {
		return "Hours"
	}
	return "Minutes"
}

func terminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return fallbackWidth
}
