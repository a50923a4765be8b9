package stats

import (
	"iter"
	"math/rand"
	"testing"
	"time"

	"github.com/verte-zerg/worklog/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func unitSeq(units []model.WorkUnit) iter.Seq2[model.WorkUnit, error] {
	return func(yield func(model.WorkUnit, error) bool) {
		for _, unit := range units {
			if !yield(unit, nil) {
				return
			}
		}
	}
}

func errSeq(err error) iter.Seq2[model.WorkUnit, error] {
	return func(yield func(model.WorkUnit, error) bool) {
		yield(model.WorkUnit{}, err)
	}
}

func TestDailySingleDay(t *testing.T) {
	units := []model.WorkUnit{
		{Date: date(2025, 1, 10), Client: "client", Minutes: 1},
	}
	dayStats, err := Daily(unitSeq(units), DailyOptions{
		StartDate:     date(2025, 1, 10),
		EndDate:       date(2025, 1, 11),
		MinutesPerDay: 1,
	})
	if err != nil {
		t.Fatalf("Daily() error = %v", err)
	}
	if len(dayStats) != 1 {
		t.Fatalf("expected 1 day stat, got %d", len(dayStats))
	}
	if dayStats[0].Minutes != 1 || dayStats[0].Diff != 0 || dayStats[0].Carryover != 0 {
		t.Errorf("unexpected stat: %+v", dayStats[0])
	}
}

func TestDailyRangeCompleteness(t *testing.T) {
	start := date(2025, 3, 1)
	end := date(2025, 3, 21)
	dayStats, err := Daily(unitSeq(nil), DailyOptions{
		StartDate:     start,
		EndDate:       end,
		MinutesPerDay: 60,
	})
	if err != nil {
		t.Fatalf("Daily() error = %v", err)
	}
	if len(dayStats) != 20 {
		t.Fatalf("expected 20 day stats, got %d", len(dayStats))
	}
	for i, stat := range dayStats {
		want := start.AddDate(0, 0, i)
		if !stat.Date.Equal(want) {
			t.Errorf("dayStats[%d].Date = %v, want %v", i, stat.Date, want)
		}
		if stat.Minutes != 0 {
			t.Errorf("dayStats[%d].Minutes = %d, want 0", i, stat.Minutes)
		}
		if stat.Diff != -60 {
			t.Errorf("dayStats[%d].Diff = %d, want -60", i, stat.Diff)
		}
	}
	// A quota miss on a day with no logged work must accumulate.
	if last := dayStats[len(dayStats)-1]; last.Carryover != -60*20 {
		t.Errorf("final carryover = %d, want %d", last.Carryover, -60*20)
	}
}

func TestDailyCarryoverRecurrence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	start := date(2025, 2, 1)
	var units []model.WorkUnit
	for i := 0; i < 28; i++ {
		units = append(units, model.WorkUnit{
			Date:    start.AddDate(0, 0, i),
			Client:  "client",
			Minutes: rng.Intn(600),
		})
	}
	dayStats, err := Daily(unitSeq(units), DailyOptions{
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 28),
		MinutesPerDay: 480,
	})
	if err != nil {
		t.Fatalf("Daily() error = %v", err)
	}
	if len(dayStats) != 28 {
		t.Fatalf("expected 28 day stats, got %d", len(dayStats))
	}
	if dayStats[0].Carryover != dayStats[0].Diff {
		t.Errorf("first carryover = %d, want diff %d", dayStats[0].Carryover, dayStats[0].Diff)
	}
	for i := 1; i < len(dayStats); i++ {
		want := dayStats[i-1].Carryover + dayStats[i].Diff
		if dayStats[i].Carryover != want {
			t.Errorf("carryover[%d] = %d, want %d", i, dayStats[i].Carryover, want)
		}
	}
}

func TestDailyExcludesWeekdays(t *testing.T) {
	// 2025-03-01 is a Saturday.
	dayStats, err := Daily(unitSeq(nil), DailyOptions{
		StartDate:        date(2025, 3, 1),
		EndDate:          date(2025, 3, 15),
		MinutesPerDay:    60,
		ExcludedWeekdays: []time.Weekday{time.Saturday, time.Sunday},
	})
	if err != nil {
		t.Fatalf("Daily() error = %v", err)
	}
	if len(dayStats) != 10 {
		t.Fatalf("expected 10 weekday stats, got %d", len(dayStats))
	}
	for _, stat := range dayStats {
		if wd := stat.Date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Errorf("excluded weekday %v present: %v", wd, stat.Date)
		}
	}
}

func TestDailyMultipleUnitsPerDay(t *testing.T) {
	units := []model.WorkUnit{
		{Date: date(2025, 3, 3), Minutes: 30},
		{Date: date(2025, 3, 3), Minutes: 45},
		{Date: date(2025, 3, 4), Minutes: 60},
	}
	dayStats, err := Daily(unitSeq(units), DailyOptions{
		StartDate:     date(2025, 3, 3),
		EndDate:       date(2025, 3, 5),
		MinutesPerDay: 60,
	})
	if err != nil {
		t.Fatalf("Daily() error = %v", err)
	}
	if dayStats[0].Minutes != 75 {
		t.Errorf("day 1 minutes = %d, want 75", dayStats[0].Minutes)
	}
	if dayStats[1].Minutes != 60 {
		t.Errorf("day 2 minutes = %d, want 60", dayStats[1].Minutes)
	}
	if dayStats[1].Carryover != 15 {
		t.Errorf("final carryover = %d, want 15", dayStats[1].Carryover)
	}
}

func TestDailyPropagatesParseError(t *testing.T) {
	wantErr := &testError{}
	_, err := Daily(errSeq(wantErr), DailyOptions{
		StartDate:     date(2025, 3, 1),
		EndDate:       date(2025, 3, 2),
		MinutesPerDay: 60,
	})
	if err != wantErr {
		t.Fatalf("Daily() error = %v, want %v", err, wantErr)
	}
}

type testError struct{}

func (*testError) Error() string { return "test error" }
