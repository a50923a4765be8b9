package report

import (
	"testing"
	"time"
)

func TestWeekSpan(t *testing.T) {
	cases := []struct {
		year           int
		week           int
		excludeWeekend bool
		wantFirst      string
		wantLast       string
	}{
		{2025, 10, false, "2025-03-03", "2025-03-09"},
		{2025, 10, true, "2025-03-03", "2025-03-07"},
		{2025, 1, false, "2024-12-30", "2025-01-05"},
		{2024, 52, false, "2024-12-23", "2024-12-29"},
		{2026, 1, false, "2025-12-29", "2026-01-04"},
	}
	for _, tc := range cases {
		first, last := WeekSpan(tc.year, tc.week, tc.excludeWeekend)
		if got := first.Format("2006-01-02"); got != tc.wantFirst {
			t.Errorf("WeekSpan(%d, %d) first = %s, want %s", tc.year, tc.week, got, tc.wantFirst)
		}
		if got := last.Format("2006-01-02"); got != tc.wantLast {
			t.Errorf("WeekSpan(%d, %d) last = %s, want %s", tc.year, tc.week, got, tc.wantLast)
		}
		if first.Weekday() != time.Monday {
			t.Errorf("WeekSpan(%d, %d) first day is %v, want Monday", tc.year, tc.week, first.Weekday())
		}
	}
}
