// Package main provides the CLI entrypoint for worklog.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/worklog/internal/config"
	"github.com/verte-zerg/worklog/internal/grammar"
	"github.com/verte-zerg/worklog/internal/model"
	"github.com/verte-zerg/worklog/internal/otl"
	"github.com/verte-zerg/worklog/internal/report"
	"github.com/verte-zerg/worklog/internal/stats"
	"github.com/verte-zerg/worklog/internal/statsui"
)

var (
	flagMode     string
	flagInterval string
	flagStart    string
	flagEnd      string
	flagCSV      bool
	flagConfig   string
	flagTUI      bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "worklog [client]",
		Short:         "Work log statistics from plain-text outlines",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runRootCmd,
	}

	rootCmd.Flags().StringVar(&flagMode, "mode", "", "list work units or aggregate them (list|aggregate)")
	rootCmd.Flags().StringVar(&flagInterval, "interval", "", "aggregation interval (day|week)")
	rootCmd.Flags().StringVar(&flagStart, "start", "", "start date (YYYY-MM-DD, default: first of the current month)")
	rootCmd.Flags().StringVar(&flagEnd, "end", "", "end date (YYYY-MM-DD, default: today)")
	rootCmd.Flags().BoolVar(&flagCSV, "csv", false, "export to a CSV file in the home directory")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "config file path (default: XDG config dir)")
	rootCmd.Flags().BoolVar(&flagTUI, "tui", false, "browse aggregated statistics interactively")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runRootCmd(_ *cobra.Command, args []string) error {
	configPath := flagConfig
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	fileCfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts := config.Options{
		Mode:     flagMode,
		Interval: flagInterval,
		Start:    flagStart,
		End:      flagEnd,
		CSV:      flagCSV,
	}
	if len(args) > 0 {
		opts.Client = args[0]
	}
	params, err := config.Resolve(opts, fileCfg)
	if err != nil {
		return err
	}

	lines, err := otl.ReadLines(params.DataPath)
	if err != nil {
		return fmt.Errorf("failed to read work log: %w", err)
	}
	patterns := grammar.ForIndent(params.Spaces)
	if err := otl.Validate(lines, patterns); err != nil {
		return fmt.Errorf("invalid work log: %w", err)
	}

	if flagTUI {
		return runStatsUI(lines, params, patterns)
	}
	if params.Mode == model.ModeList {
		return runList(lines, params, patterns)
	}
	return runAggregate(lines, params, patterns)
}

func runList(lines []string, params model.Params, patterns grammar.Patterns) error {
	units, err := otl.Collect(otl.ParseWorkUnits(lines, params.Client, params.StartDate, params.EndDate, patterns))
	if err != nil {
		return err
	}
	if params.CSV {
		return writeCSV(params, func(w *os.File) error {
			return report.WriteWorkUnitsCSV(w, units, params.HourlyWage, params.CurrencySign)
		})
	}
	return report.RenderWorkUnits(os.Stdout, params.Client, units, params.HourlyWage, params.CurrencySign, params.DisplayHours)
}

func runAggregate(lines []string, params model.Params, patterns grammar.Patterns) error {
	units := otl.ParseWorkUnits(lines, params.Client, params.StartDate, params.EndDate, patterns)
	if params.Interval == model.IntervalDay {
		dayStats, err := stats.Daily(units, stats.DailyOptions{
			StartDate:        params.StartDate,
			EndDate:          params.EndDate,
			MinutesPerDay:    params.MinutesPerDay,
			ExcludedWeekdays: params.ExcludedWeekdays,
		})
		if err != nil {
			return err
		}
		if params.CSV {
			return writeCSV(params, func(w *os.File) error {
				return report.WriteDayStatsCSV(w, dayStats, params.MinutesPerDay, params.DisplayHours)
			})
		}
		return report.RenderDayStats(os.Stdout, params.Client, dayStats, params.MinutesPerDay, params.DisplayHours)
	}

	weekStats, err := stats.Weekly(units, stats.WeeklyOptions{
		StartDate:      params.StartDate,
		EndDate:        params.EndDate,
		MinutesPerWeek: params.MinutesPerWeek,
	})
	if err != nil {
		return err
	}
	if params.CSV {
		return writeCSV(params, func(w *os.File) error {
			return report.WriteWeekStatsCSV(w, weekStats, params.MinutesPerWeek, params.DisplayHours)
		})
	}
	return report.RenderWeekStats(os.Stdout, params.Client, weekStats, params.MinutesPerWeek, params.DisplayHours)
}

// runStatsUI aggregates by every interval whose quota is configured and
// opens the interactive browser. The parsed sequence is single-pass, so
// each aggregation parses the lines anew.
func runStatsUI(lines []string, params model.Params, patterns grammar.Patterns) error {
	var dayStats []model.DayStat
	var weekStats []model.WeekStat
	var err error
	if params.MinutesPerDay > 0 {
		units := otl.ParseWorkUnits(lines, params.Client, params.StartDate, params.EndDate, patterns)
		dayStats, err = stats.Daily(units, stats.DailyOptions{
			StartDate:        params.StartDate,
			EndDate:          params.EndDate,
			MinutesPerDay:    params.MinutesPerDay,
			ExcludedWeekdays: params.ExcludedWeekdays,
		})
		if err != nil {
			return err
		}
	}
	if params.MinutesPerWeek > 0 {
		units := otl.ParseWorkUnits(lines, params.Client, params.StartDate, params.EndDate, patterns)
		weekStats, err = stats.Weekly(units, stats.WeeklyOptions{
			StartDate:      params.StartDate,
			EndDate:        params.EndDate,
			MinutesPerWeek: params.MinutesPerWeek,
		})
		if err != nil {
			return err
		}
	}
	if dayStats == nil && weekStats == nil {
		return fmt.Errorf(`"minutes_per_day" or "minutes_per_week" must be set in the config file for the statistics browser`)
	}

	uiModel := statsui.NewModel(params, dayStats, weekStats)
	program := tea.NewProgram(uiModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func writeCSV(params model.Params, write func(w *os.File) error) error {
	path, err := report.BuildOutputPath(params.Client, string(params.Mode))
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			logErrf("failed to close CSV file: %v\n", cerr)
		}
	}()
	if err := write(file); err != nil {
		return fmt.Errorf("failed to write CSV file: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := flagConfig
	if path == "" {
		path = config.DefaultConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return `# worklog configuration
# Uncomment a value to enable it. CLI flags override config values.

# mode = "list"               # list work units or aggregate them (list|aggregate)
# interval = "week"           # aggregation interval (day|week)
# start_date = "2025-01-01"   # default start date (YYYY-MM-DD)
# minutes_per_day = 480       # daily quota, required when aggregating by day
# minutes_per_week = 2400     # weekly quota, required when aggregating by week
# spaces = 0                  # spaces per indent level (0 means tabs)
# currency_sign = "€"         # sign used in cost columns
# display_hours = true        # show durations as H:MM instead of minutes
# excluded_weekdays = ["saturday", "sunday"]

[clients]
# acme = "/home/user/worklogs/acme.otl"

[hourly-wages]
# acme = 80.0

[abbr]
# a = "acme"

[default]
# client = "acme"
`
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
