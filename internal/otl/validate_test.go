package otl

import (
	"errors"
	"testing"

	"github.com/verte-zerg/worklog/internal/grammar"
)

func TestValidateMinimalLog(t *testing.T) {
	lines := []string{
		"2025-03-01",
		"\tTask 1",
		"\t\t5",
	}
	if err := Validate(lines, grammar.Tabs()); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateMultiEntryLog(t *testing.T) {
	lines := []string{
		"2025-03-01",
		"\tTask 1",
		"\tcontinued on a second line",
		"\t\t5",
		"\tTask 2",
		"\t\t10",
		"2025-03-02",
		"\tTask 3",
		"\t\t20",
	}
	if err := Validate(lines, grammar.Tabs()); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name     string
		lines    []string
		wantLine int
		wantMsg  string
	}{
		{
			name:    "empty file",
			lines:   nil,
			wantMsg: "file is empty",
		},
		{
			name:     "first line not a date",
			lines:    []string{"\tTask 1", "\t\t5"},
			wantLine: 1,
			wantMsg:  "first line must be a date",
		},
		{
			name:     "last line not a duration",
			lines:    []string{"2025-03-01", "\tTask 1"},
			wantLine: 2,
			wantMsg:  "last line must be a duration",
		},
		{
			name:     "date followed by duration",
			lines:    []string{"2025-03-01", "\t\t5"},
			wantLine: 1,
			wantMsg:  "date must be followed by a description",
		},
		{
			name:     "date followed by date",
			lines:    []string{"2025-03-01", "2025-03-02", "\tTask 1", "\t\t5"},
			wantLine: 1,
			wantMsg:  "date must be followed by a description",
		},
		{
			name:     "duration followed by duration",
			lines:    []string{"2025-03-01", "\tTask 1", "\t\t5", "\t\t10"},
			wantLine: 3,
			wantMsg:  "duration must be followed by a description or a date",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.lines, grammar.Tabs())
			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("Validate() = %v, want *FormatError", err)
			}
			if formatErr.Line != tc.wantLine {
				t.Errorf("Line = %d, want %d", formatErr.Line, tc.wantLine)
			}
			if formatErr.Msg != tc.wantMsg {
				t.Errorf("Msg = %q, want %q", formatErr.Msg, tc.wantMsg)
			}
		})
	}
}

func TestValidateSpaceIndentation(t *testing.T) {
	lines := []string{
		"2025-03-01",
		"  Task 1",
		"    5",
	}
	if err := Validate(lines, grammar.Spaces(2)); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if err := Validate(lines, grammar.Tabs()); err == nil {
		t.Fatalf("Validate() with tab patterns should reject a space-indented log")
	}
}
