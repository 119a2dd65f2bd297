package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/diazpablogon/footballstats/internal/dataset"
	"github.com/diazpablogon/footballstats/internal/ranking"
)

var sampleTable = ranking.Table{
	{Position: 1, Team: "Girona", Played: 2, Wins: 2, GoalsFor: 5, GoalsAgainst: 1, GoalDiff: 4, Points: 6},
	{Position: 2, Team: "Betis", Played: 2, Wins: 0, Draws: 1, Losses: 1, GoalsFor: 1, GoalsAgainst: 5, GoalDiff: -4, Points: 1},
}

func TestSaveAndLoadRanking(t *testing.T) {
	s := New(t.TempDir(), nil)
	dir := s.LeagueDir("2023-2024", "LaLiga_ESP")

	path, err := s.SaveRanking(dir, sampleTable)
	if err != nil {
		t.Fatalf("SaveRanking: %v", err)
	}
	if filepath.Base(path) != "Ranking.parquet" && filepath.Base(path) != "Ranking.csv" {
		t.Fatalf("unexpected artifact %s", path)
	}

	got, err := s.LoadRanking("2023-2024", "LaLiga_ESP")
	if err != nil {
		t.Fatalf("LoadRanking: %v", err)
	}
	if !reflect.DeepEqual(got, sampleTable) {
		t.Errorf("roundtrip mismatch:\ngot  %+v\nwant %+v", got, sampleTable)
	}
}

func TestSaveRankingEmptyTable(t *testing.T) {
	s := New(t.TempDir(), nil)
	dir := s.LeagueDir("2023-2024", "LaLiga_ESP")

	if _, err := s.SaveRanking(dir, ranking.Table{}); err != nil {
		t.Fatalf("SaveRanking empty: %v", err)
	}
	got, err := s.LoadRanking("2023-2024", "LaLiga_ESP")
	if err != nil {
		t.Fatalf("LoadRanking empty: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("empty table roundtripped to %d rows", len(got))
	}
}

func TestRankingCSVRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Ranking.csv")
	if err := writeRankingCSV(path, sampleTable); err != nil {
		t.Fatalf("writeRankingCSV: %v", err)
	}
	got, err := readRankingCSV(path)
	if err != nil {
		t.Fatalf("readRankingCSV: %v", err)
	}
	if !reflect.DeepEqual(got, sampleTable) {
		t.Errorf("roundtrip mismatch:\ngot  %+v\nwant %+v", got, sampleTable)
	}
}

func TestFrameCSVRoundtrip(t *testing.T) {
	f := dataset.New("home_team", "away_team", "home_goals", "away_goals")
	f.Append(dataset.Row{"home_team": "A", "away_team": "B", "home_goals": "2", "away_goals": "1"})
	f.Append(dataset.Row{"home_team": "B", "away_team": "A"})

	path := filepath.Join(t.TempDir(), "Schedule.csv")
	if err := writeFrameCSV(path, f); err != nil {
		t.Fatalf("writeFrameCSV: %v", err)
	}

	got, err := LoadFrame(path)
	if err != nil {
		t.Fatalf("LoadFrame: %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("got %d rows", got.Len())
	}
	if v, _ := got.Rows[0].Get("home_goals"); v != "2" {
		t.Errorf("home_goals = %q", v)
	}
	if _, ok := got.Rows[1].Get("home_goals"); ok {
		t.Error("unplayed row gained a goals value")
	}
}

func TestListSeasonsAndLeagues(t *testing.T) {
	s := New(t.TempDir(), nil)
	if _, err := s.SaveRanking(s.LeagueDir("2023-2024", "LaLiga_ESP"), sampleTable); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveRanking(s.LeagueDir("2023-2024", "PremierLeague_ENG"), sampleTable); err != nil {
		t.Fatal(err)
	}

	seasons, err := s.ListSeasons()
	if err != nil {
		t.Fatalf("ListSeasons: %v", err)
	}
	if !reflect.DeepEqual(seasons, []string{"2023-2024"}) {
		t.Errorf("seasons = %v", seasons)
	}

	leagues, err := s.ListLeagues("2023-2024")
	if err != nil {
		t.Fatalf("ListLeagues: %v", err)
	}
	if !reflect.DeepEqual(leagues, []string{"LaLiga_ESP", "PremierLeague_ENG"}) {
		t.Errorf("leagues = %v", leagues)
	}

	// Missing directories are not an error, just empty.
	if got, err := s.ListLeagues("1999-2000"); err != nil || got != nil {
		t.Errorf("missing season: %v, %v", got, err)
	}
}
