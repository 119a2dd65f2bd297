package ranking

import "sort"

// Standing is one team's accumulated record within a season.
type Standing struct {
	Position     int    `json:"position" parquet:"Pos"`
	Team         string `json:"team" parquet:"Team"`
	Played       int    `json:"played" parquet:"MP"`
	Wins         int    `json:"wins" parquet:"W"`
	Draws        int    `json:"draws" parquet:"D"`
	Losses       int    `json:"losses" parquet:"L"`
	GoalsFor     int    `json:"goals_for" parquet:"GF"`
	GoalsAgainst int    `json:"goals_against" parquet:"GA"`
	GoalDiff     int    `json:"goal_diff" parquet:"GD"`
	Points       int    `json:"points" parquet:"Pts"`
}

// Table is an ordered standings table, best team first. Only teams with at
// least one completed match appear — teams with no finished fixtures cannot
// be derived from schedule data alone.
type Table []Standing

// Aggregate folds match results into per-team standings and returns them
// ordered by points, goal difference, goals for, then team name. Folding is
// order-independent over the result sequence, but the sequence must be
// complete and passed exactly once: folding the same results twice doubles
// every total.
func Aggregate(results []MatchResult) Table {
	acc := make(map[string]*Standing)
	team := func(name string) *Standing {
		s, ok := acc[name]
		if !ok {
			s = &Standing{Team: name}
			acc[name] = s
		}
		return s
	}

	for _, m := range results {
		home := team(m.HomeTeam)
		away := team(m.AwayTeam)

		home.Played++
		away.Played++
		home.GoalsFor += m.HomeGoals
		home.GoalsAgainst += m.AwayGoals
		away.GoalsFor += m.AwayGoals
		away.GoalsAgainst += m.HomeGoals

		switch {
		case m.HomeGoals > m.AwayGoals:
			home.Wins++
			away.Losses++
		case m.HomeGoals < m.AwayGoals:
			away.Wins++
			home.Losses++
		default:
			home.Draws++
			away.Draws++
		}
	}

	table := make(Table, 0, len(acc))
	for _, s := range acc {
		s.GoalDiff = s.GoalsFor - s.GoalsAgainst
		s.Points = 3*s.Wins + s.Draws
		table = append(table, *s)
	}

	// Points, then goal difference, then goals for, then name. The name leg
	// guarantees a total order so equal records still rank deterministically.
	sort.Slice(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDiff != b.GoalDiff {
			return a.GoalDiff > b.GoalDiff
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.Team < b.Team
	})

	for i := range table {
		table[i].Position = i + 1
	}
	return table
}
