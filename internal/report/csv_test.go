package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/verte-zerg/worklog/internal/model"
)

func TestWriteDayStatsCSV(t *testing.T) {
	dayStats := []model.DayStat{
		{Date: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), Minutes: 510, Diff: 30, Carryover: 30},
		{Date: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), Minutes: 0, Diff: -480, Carryover: -450},
	}
	var buf bytes.Buffer
	if err := WriteDayStatsCSV(&buf, dayStats, 480, true); err != nil {
		t.Fatalf("WriteDayStatsCSV() error = %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	wantHeader := []string{"Day", "Hours", "Balance", "Carryover"}
	for i, cell := range wantHeader {
		if records[0][i] != cell {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], cell)
		}
	}
	wantFirst := []string{"2025-03-03", "8:30", "+0:30", "+0:30"}
	for i, cell := range wantFirst {
		if records[1][i] != cell {
			t.Errorf("row[%d] = %q, want %q", i, records[1][i], cell)
		}
	}
	wantSecond := []string{"2025-03-04", "0:00", "-8:00", "-8:30"}
	for i, cell := range wantSecond {
		if records[2][i] != cell {
			t.Errorf("row[%d] = %q, want %q", i, records[2][i], cell)
		}
	}
}

func TestWriteWeekStatsCSV(t *testing.T) {
	weekStats := []model.WeekStat{
		{Year: 2025, Week: 10, Minutes: 2460, Diff: 60, Carryover: 60},
	}
	var buf bytes.Buffer
	if err := WriteWeekStatsCSV(&buf, weekStats, 2400, false); err != nil {
		t.Fatalf("WriteWeekStatsCSV() error = %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	want := []string{"10", "2025-03-03 - 2025-03-09", " 2460 from 2400", "+60", "+60"}
	for i, cell := range want {
		if records[1][i] != cell {
			t.Errorf("row[%d] = %q, want %q", i, records[1][i], cell)
		}
	}
}

func TestWriteWorkUnitsCSV(t *testing.T) {
	units := []model.WorkUnit{
		{Description: " Task 1", Minutes: 90},
		{Description: " Task 2", Minutes: 30},
	}
	var buf bytes.Buffer
	if err := WriteWorkUnitsCSV(&buf, units, 80, "€"); err != nil {
		t.Fatalf("WriteWorkUnitsCSV() error = %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0][2] != "Cost (€)" {
		t.Errorf("cost header = %q, want %q", records[0][2], "Cost (€)")
	}
	if records[1][2] != "120.00" {
		t.Errorf("cost = %q, want %q", records[1][2], "120.00")
	}
	if records[2][2] != "40.00" {
		t.Errorf("cost = %q, want %q", records[2][2], "40.00")
	}
}
