package ranking

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestAggregateCommutativity(t *testing.T) {
	results := []MatchResult{
		{"Arsenal", "Chelsea", 2, 1},
		{"Chelsea", "Spurs", 0, 0},
		{"Spurs", "Arsenal", 1, 3},
		{"Arsenal", "Spurs", 1, 1},
		{"Chelsea", "Arsenal", 2, 2},
	}

	want := Aggregate(results)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]MatchResult, len(results))
		copy(shuffled, results)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := Aggregate(shuffled)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("shuffle %d changed the table:\ngot  %+v\nwant %+v", i, got, want)
		}
	}
}

func TestAggregatePointsAndRecord(t *testing.T) {
	table := Aggregate([]MatchResult{
		{"Home", "Away", 3, 1},
		{"Away", "Home", 2, 2},
	})

	byTeam := make(map[string]Standing, len(table))
	for _, s := range table {
		byTeam[s.Team] = s
	}

	home := byTeam["Home"]
	if home.Played != 2 || home.Wins != 1 || home.Draws != 1 || home.Losses != 0 {
		t.Errorf("Home record: %+v", home)
	}
	if home.Points != 4 || home.GoalsFor != 5 || home.GoalsAgainst != 3 || home.GoalDiff != 2 {
		t.Errorf("Home derived fields: %+v", home)
	}
	away := byTeam["Away"]
	if away.Points != 1 || away.Losses != 1 || away.Draws != 1 {
		t.Errorf("Away record: %+v", away)
	}
}

func TestTieBreakLevels(t *testing.T) {
	// Zeta beats Alpha on points; Gamma beats Delta on goal difference;
	// Epsilon beats Gamma on goals for at equal points and difference.
	table := Aggregate([]MatchResult{
		{"Zeta", "Alpha", 1, 0},
		{"Gamma", "Delta", 3, 1},
		{"Delta", "Gamma", 2, 1},
		{"Epsilon", "Omega", 4, 3},
		{"Omega", "Epsilon", 3, 2},
	})

	order := make([]string, len(table))
	for i, s := range table {
		order[i] = s.Team
	}

	pos := func(team string) int {
		for i, name := range order {
			if name == team {
				return i
			}
		}
		t.Fatalf("%s missing from table %v", team, order)
		return -1
	}

	if pos("Gamma") > pos("Delta") {
		t.Errorf("goal difference tie-break failed: %v", order)
	}
	if pos("Epsilon") > pos("Gamma") {
		t.Errorf("goals-for tie-break failed: %v", order)
	}
}

func TestTieBreakDeterministicByName(t *testing.T) {
	// Identical records in every respect: identifier decides.
	table := Aggregate([]MatchResult{
		{"Beta", "Alpha", 1, 1},
	})
	if table[0].Team != "Alpha" || table[1].Team != "Beta" {
		t.Errorf("equal records not ordered by name: %v, %v", table[0].Team, table[1].Team)
	}
	if table[0].Position != 1 || table[1].Position != 2 {
		t.Errorf("positions not sequential: %d, %d", table[0].Position, table[1].Position)
	}
}

func TestAggregateEmpty(t *testing.T) {
	if table := Aggregate(nil); len(table) != 0 {
		t.Errorf("empty input produced %d standings", len(table))
	}
}
