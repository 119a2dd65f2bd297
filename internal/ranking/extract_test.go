package ranking

import (
	"testing"

	"github.com/diazpablogon/footballstats/internal/dataset"
)

var testMapping = Mapping{
	RoleHomeTeam:  "home_team",
	RoleAwayTeam:  "away_team",
	RoleHomeGoals: "home_goals",
	RoleAwayGoals: "away_goals",
}

func scheduleRow(home, away, hg, ag string) dataset.Row {
	return dataset.Row{
		"home_team":  home,
		"away_team":  away,
		"home_goals": hg,
		"away_goals": ag,
	}
}

func TestExtractSkipsUnplayedRow(t *testing.T) {
	rows := []dataset.Row{
		scheduleRow("A", "B", "2", "1"),
		scheduleRow("B", "C", "", ""),
		scheduleRow("C", "A", "0", "3"),
	}

	results, skipped := Extract(rows, testMapping)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	// Order of the surviving rows is preserved.
	if results[0].HomeTeam != "A" || results[1].HomeTeam != "C" {
		t.Errorf("order not preserved: %v", results)
	}
}

func TestExtractSkipRules(t *testing.T) {
	tests := []struct {
		name string
		row  dataset.Row
		keep bool
	}{
		{"played match", scheduleRow("A", "B", "1", "0"), true},
		{"goalless draw", scheduleRow("A", "B", "0", "0"), true},
		{"non-numeric goals", scheduleRow("A", "B", "two", "1"), false},
		{"float goals", scheduleRow("A", "B", "1.0", "1"), false},
		{"negative goals", scheduleRow("A", "B", "-1", "2"), false},
		{"missing away goals", scheduleRow("A", "B", "1", ""), false},
		{"empty home team", scheduleRow("", "B", "1", "0"), false},
		{"whitespace away team", scheduleRow("A", "   ", "1", "0"), false},
		{"whitespace-padded score", scheduleRow("A", "B", " 2 ", "1"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, skipped := Extract([]dataset.Row{tt.row}, testMapping)
			if tt.keep && (len(results) != 1 || skipped != 0) {
				t.Errorf("row dropped: results=%d skipped=%d", len(results), skipped)
			}
			if !tt.keep && (len(results) != 0 || skipped != 1) {
				t.Errorf("row kept: results=%d skipped=%d", len(results), skipped)
			}
		})
	}
}

func TestExtractKeepsDuplicates(t *testing.T) {
	row := scheduleRow("A", "B", "2", "2")
	results, _ := Extract([]dataset.Row{row, row}, testMapping)
	if len(results) != 2 {
		t.Fatalf("got %d results, want duplicate fixtures kept", len(results))
	}
}
