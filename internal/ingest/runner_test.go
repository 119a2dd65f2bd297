package ingest

import (
	"context"
	"log/slog"
	"testing"
)

func TestStatToCamel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"shooting", "Shooting"},
		{"goal_shot_creation", "GoalShotCreation"},
		{"playing_time", "PlayingTime"},
		{"misc", "Misc"},
	}
	for _, tt := range tests {
		if got := statToCamel(tt.in); got != tt.want {
			t.Errorf("statToCamel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildPairs(t *testing.T) {
	leagues := map[string]string{"LaLiga_ESP": "ESP-La Liga", "PremierLeague_ENG": "ENG-Premier League"}
	seasons := map[string]int{"2023-2024": 2023, "2024-2025": 2024}

	pairs := buildPairs(leagues, seasons)
	if len(pairs) != 4 {
		t.Fatalf("got %d pairs, want 4", len(pairs))
	}
	for _, p := range pairs {
		if p.LeagueID == "" || p.SeasonLabel == "" || p.StartYear == 0 {
			t.Errorf("incomplete pair: %+v", p)
		}
	}
}

func TestRunPairsMergesResults(t *testing.T) {
	leagues := map[string]string{"A": "a", "B": "b", "C": "c"}
	seasons := map[string]int{"2024-2025": 2024}

	result := runPairs(context.Background(), buildPairs(leagues, seasons), 2, slog.Default(),
		func(ctx context.Context, p pair) RunResult {
			return RunResult{FramesSaved: 1, RowsSkipped: 2}
		})

	if result.Pairs != 3 || result.FramesSaved != 3 || result.RowsSkipped != 6 {
		t.Errorf("merge mismatch: %+v", result)
	}
}

func TestRunPairsEmpty(t *testing.T) {
	result := runPairs(context.Background(), nil, 4, slog.Default(),
		func(ctx context.Context, p pair) RunResult {
			t.Fatal("work called for empty pair set")
			return RunResult{}
		})
	if result.Pairs != 0 {
		t.Errorf("pairs = %d", result.Pairs)
	}
}
