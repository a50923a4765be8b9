// Package statsui provides the Bubble Tea statistics browser.
package statsui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/worklog/internal/model"
	"github.com/verte-zerg/worklog/internal/report"
)

const (
	tabOverview = iota
	tabDaily
	tabWeekly
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	positiveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	negativeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Model implements the Bubble Tea statistics browser over precomputed
// daily and weekly aggregates.
type Model struct {
	params    model.Params
	dayStats  []model.DayStat
	weekStats []model.WeekStat

	tabs      []string
	activeTab int
	overview  viewport.Model
	dayTable  table.Model
	weekTable table.Model

	width  int
	height int
}

// NewModel constructs a statistics browser for the given aggregates.
func NewModel(params model.Params, dayStats []model.DayStat, weekStats []model.WeekStat) *Model {
	m := &Model{
		params:    params,
		dayStats:  dayStats,
		weekStats: weekStats,
		tabs:      []string{"Overview", "Daily", "Weekly"},
	}
	m.overview = viewport.New(0, 0)
	m.dayTable = buildDayTable(dayStats, params.MinutesPerDay, params.DisplayHours)
	m.weekTable = buildWeekTable(weekStats, params.MinutesPerWeek, params.DisplayHours)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.overview.SetContent(m.renderOverview())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "g", "home":
			switch m.activeTab {
			case tabDaily:
				m.dayTable.GotoTop()
			case tabWeekly:
				m.weekTable.GotoTop()
			default:
				m.overview.GotoTop()
			}
			return m, nil
		case "G", "end":
			switch m.activeTab {
			case tabDaily:
				m.dayTable.GotoBottom()
			case tabWeekly:
				m.weekTable.GotoBottom()
			default:
				m.overview.GotoBottom()
			}
			return m, nil
		default:
			var cmd tea.Cmd
			switch m.activeTab {
			case tabDaily:
				m.dayTable, cmd = m.dayTable.Update(msg)
			case tabWeekly:
				m.weekTable, cmd = m.weekTable.Update(msg)
			default:
				m.overview, cmd = m.overview.Update(msg)
			}
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.overview.Width = m.width
	m.overview.Height = bodyHeight
	m.dayTable.SetWidth(m.width)
	m.dayTable.SetHeight(maxInt(1, bodyHeight-1))
	m.weekTable.SetWidth(m.width)
	m.weekTable.SetHeight(maxInt(1, bodyHeight-1))
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	m.dayTable.Blur()
	m.weekTable.Blur()
	switch m.activeTab {
	case tabDaily:
		m.dayTable.Focus()
	case tabWeekly:
		m.weekTable.Focus()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	tabs := padLines(m.renderTabs(), m.width)
	summary := fmt.Sprintf("Client: %s  Start: %s", m.params.Client, m.params.StartDate.Format("2006-01-02"))
	if !m.params.EndDate.IsZero() {
		summary += "  End: " + m.params.EndDate.Format("2006-01-02")
	}
	return tabs + "\n" + padLines(headerStyle.Render(truncateLine(summary, m.width)), m.width)
}

func (m *Model) renderFooter() string {
	return headerStyle.Render("Nav: left/right  Scroll: up/down/pgup/pgdn  Top/Bottom: g/G  Quit: q")
}

func (m *Model) renderBody() string {
	_, bodyHeight, _ := m.layoutHeights()
	switch m.activeTab {
	case tabDaily:
		if len(m.dayStats) == 0 {
			return fitLines("No days in the requested range.", m.width, bodyHeight)
		}
		return fitLines(tableMutedStyle.Render(m.dayTable.View()), m.width, bodyHeight)
	case tabWeekly:
		if len(m.weekStats) == 0 {
			return fitLines("No weeks in the requested range.", m.width, bodyHeight)
		}
		return fitLines(tableMutedStyle.Render(m.weekTable.View()), m.width, bodyHeight)
	}
	return fitLines(m.overview.View(), m.width, bodyHeight)
}

func (m *Model) renderOverview() string {
	if len(m.dayStats) == 0 && len(m.weekStats) == 0 {
		return "No work recorded in the requested range."
	}
	cards := []string{
		metricCard("Days", fmt.Sprintf("%d", len(m.dayStats))),
		metricCard("Weeks", fmt.Sprintf("%d", len(m.weekStats))),
		metricCard("Worked", formatTotal(m.totalMinutes(), m.params.DisplayHours)),
		metricCard("Balance", m.renderBalanceCard()),
	}
	if m.width < 80 {
		return strings.Join(cards, "\n")
	}
	row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1])
	row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[2], cards[3])
	return lipgloss.JoinVertical(lipgloss.Left, row1, row2)
}

func (m *Model) renderBalanceCard() string {
	carryover := m.currentCarryover()
	value := report.FormatSigned(carryover, m.params.DisplayHours)
	if carryover < 0 {
		return negativeStyle.Render(value)
	}
	return positiveStyle.Render(value)
}

// currentCarryover prefers the interval the run was aggregated by.
func (m *Model) currentCarryover() int {
	if m.params.Interval == model.IntervalDay && len(m.dayStats) > 0 {
		return m.dayStats[len(m.dayStats)-1].Carryover
	}
	if len(m.weekStats) > 0 {
		return m.weekStats[len(m.weekStats)-1].Carryover
	}
	if len(m.dayStats) > 0 {
		return m.dayStats[len(m.dayStats)-1].Carryover
	}
	return 0
}

func (m *Model) totalMinutes() int {
	total := 0
	if len(m.weekStats) > 0 {
		for _, stat := range m.weekStats {
			total += stat.Minutes
		}
		return total
	}
	for _, stat := range m.dayStats {
		total += stat.Minutes
	}
	return total
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func formatTotal(minutes int, displayHours bool) string {
	if displayHours {
		return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%d min", minutes)
}

func buildDayTable(dayStats []model.DayStat, minutesPerDay int, displayHours bool) table.Model {
	columns := []table.Column{
		{Title: "Day", Width: 10},
		{Title: "#: regular +-", Width: 16},
		{Title: unitTitle(displayHours), Width: 16},
		{Title: "Balance", Width: 8},
		{Title: "Carryover", Width: 9},
	}
	rows := make([]table.Row, 0, len(dayStats))
	for _, stat := range dayStats {
		bar, balance := report.DayBalance(stat, minutesPerDay)
		rows = append(rows, table.Row{
			stat.Date.Format("2006-01-02"),
			bar,
			report.FormatElapsed(stat.Minutes, minutesPerDay, displayHours, false),
			report.FormatSigned(balance, displayHours),
			report.FormatSigned(stat.Carryover, displayHours),
		})
	}
	return newStatsTable(columns, rows)
}

func buildWeekTable(weekStats []model.WeekStat, minutesPerWeek int, displayHours bool) table.Model {
	columns := []table.Column{
		{Title: "Week", Width: 28},
		{Title: "#: regular +-", Width: 16},
		{Title: unitTitle(displayHours), Width: 16},
		{Title: "Balance", Width: 8},
		{Title: "Carryover", Width: 9},
	}
	rows := make([]table.Row, 0, len(weekStats))
	for _, stat := range weekStats {
		firstDay, lastDay := report.WeekSpan(stat.Year, stat.Week, false)
		bar, balance := report.WeekBalance(stat, minutesPerWeek)
		rows = append(rows, table.Row{
			fmt.Sprintf("Nr.%d, %s - %s", stat.Week, firstDay.Format("2006-01-02"), lastDay.Format("2006-01-02")),
			bar,
			report.FormatElapsed(stat.Minutes, minutesPerWeek, displayHours, false),
			report.FormatSigned(balance, displayHours),
			report.FormatSigned(stat.Carryover, displayHours),
		})
	}
	return newStatsTable(columns, rows)
}

func unitTitle(displayHours bool) string {
	if displayHours {
		return "Hours"
	}
	return "Minutes"
}

func newStatsTable(columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(1),
	)
	t.SetStyles(statsTableStyles())
	return t
}

func statsTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
