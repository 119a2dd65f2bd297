package fbref

import (
	"testing"

	"github.com/diazpablogon/footballstats/internal/dataset"
)

const schedulePage = `<html><body>
<table id="sched_2023-2024_9_1">
<thead>
<tr><th data-stat="gameweek">Wk</th><th data-stat="home_team">Home</th><th data-stat="score">Score</th><th data-stat="away_team">Away</th></tr>
</thead>
<tbody>
<tr><th data-stat="gameweek">1</th><td data-stat="home_team">Burnley</td><td data-stat="score">0&#8211;3</td><td data-stat="away_team">Manchester City</td></tr>
<tr class="thead"><th data-stat="gameweek">Wk</th><td data-stat="home_team">Home</td><td data-stat="score"></td><td data-stat="away_team">Away</td></tr>
<tr><th data-stat="gameweek">2</th><td data-stat="home_team">Arsenal</td><td data-stat="score"></td><td data-stat="away_team">Everton</td></tr>
</tbody>
</table>
</body></html>`

func TestExtractTable(t *testing.T) {
	frame, err := ExtractTable([]byte(schedulePage), "sched")
	if err != nil {
		t.Fatalf("ExtractTable: %v", err)
	}
	if frame.Len() != 2 {
		t.Fatalf("got %d rows, want 2 (spacer row dropped)", frame.Len())
	}
	if got, _ := frame.Rows[0].Get("home_team"); got != "Burnley" {
		t.Errorf("home_team = %q", got)
	}
	if !frame.HasColumn("score") {
		t.Errorf("columns = %v", frame.Columns)
	}
}

func TestExtractTableInsideComment(t *testing.T) {
	commented := `<html><body><div><!--` + schedulePage + `--></div></body></html>`
	frame, err := ExtractTable([]byte(commented), "sched")
	if err != nil {
		t.Fatalf("ExtractTable on commented page: %v", err)
	}
	if frame.Len() != 2 {
		t.Errorf("got %d rows, want 2", frame.Len())
	}
}

func TestExtractTableMissing(t *testing.T) {
	if _, err := ExtractTable([]byte("<html><body></body></html>"), "sched"); err == nil {
		t.Fatal("expected error for missing table")
	}
}

func TestNormalizeScheduleScores(t *testing.T) {
	frame, err := ExtractTable([]byte(schedulePage), "sched")
	if err != nil {
		t.Fatalf("ExtractTable: %v", err)
	}
	normalizeScheduleScores(frame)

	if !frame.HasColumn("home_goals") || !frame.HasColumn("away_goals") {
		t.Fatalf("goal columns not added: %v", frame.Columns)
	}
	hg, _ := frame.Rows[0].Get("home_goals")
	ag, _ := frame.Rows[0].Get("away_goals")
	if hg != "0" || ag != "3" {
		t.Errorf("split score = %q / %q", hg, ag)
	}
	// Unplayed fixture keeps empty goal cells.
	if _, ok := frame.Rows[1].Get("home_goals"); ok {
		t.Error("unplayed fixture gained a home_goals value")
	}
}

func TestNormalizeScheduleScoresPassthrough(t *testing.T) {
	f := dataset.New("home_team", "away_team", "home_goals", "away_goals")
	f.Append(dataset.Row{"home_team": "A", "away_team": "B", "home_goals": "1", "away_goals": "0"})
	before := len(f.Columns)
	normalizeScheduleScores(f)
	if len(f.Columns) != before {
		t.Errorf("columns changed on passthrough: %v", f.Columns)
	}
}

func TestSplitScore(t *testing.T) {
	tests := []struct {
		in         string
		home, away string
		ok         bool
	}{
		{"2–1", "2", "1", true},
		{"0-0", "0", "0", true},
		{" 3 – 2 ", "3", "2", true},
		{"", "", "", false},
		{"postponed", "", "", false},
	}
	for _, tt := range tests {
		home, away, ok := splitScore(tt.in)
		if home != tt.home || away != tt.away || ok != tt.ok {
			t.Errorf("splitScore(%q) = %q, %q, %v", tt.in, home, away, ok)
		}
	}
}
