package grammar

import "testing"

func TestDatePattern(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"2025-01-01", true},
		{"2020-12-31", true},
		{"2039-06-15", true},
		{"2025-13-01", false},
		{"205-12-01", false},
		{"2025-00-01", false},
		{"2025-1-01", false},
		{"2025-s1-01", false},
		{"2040-01-01", false},
		{"2019-01-01", false},
		{"2025-02-31", true}, // lexical check only
	}
	p := Tabs()
	for _, tc := range cases {
		if got := p.Date.MatchString(tc.line); got != tc.want {
			t.Errorf("Date.MatchString(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestClassifyTabs(t *testing.T) {
	p := Tabs()
	cases := []struct {
		line string
		want Role
	}{
		{"2025-03-01", RoleDate},
		{"\tFix the login form", RoleDescription},
		{"\t\t45", RoleDuration},
		{"\t\tnot a number", RoleNone},
		{"no indentation here", RoleNone},
		{"   2025-03-01", RoleNone},
	}
	for _, tc := range cases {
		if got := p.Classify(tc.line); got != tc.want {
			t.Errorf("Classify(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestClassifySpaces(t *testing.T) {
	p := Spaces(2)
	cases := []struct {
		line string
		want Role
	}{
		{"2025-03-01", RoleDate},
		{"  Fix the login form", RoleDescription},
		{"    45", RoleDuration},
		{"\tFix the login form", RoleNone},
		{" misindented", RoleNone},
	}
	for _, tc := range cases {
		if got := p.Classify(tc.line); got != tc.want {
			t.Errorf("Classify(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestForIndent(t *testing.T) {
	if got := ForIndent(0); !got.Description.MatchString("\tTask") {
		t.Fatalf("ForIndent(0) should select tab patterns")
	}
	if got := ForIndent(4); !got.Description.MatchString("    Task") {
		t.Fatalf("ForIndent(4) should select space patterns")
	}
}
