package ranking

import (
	"strconv"

	"github.com/diazpablogon/footballstats/internal/dataset"
)

// MatchResult is one finished match with participants and final score.
type MatchResult struct {
	HomeTeam  string
	AwayTeam  string
	HomeGoals int
	AwayGoals int
}

// Extract converts schedule rows into finished-match results using an
// already-resolved mapping. Rows whose goal cells are missing, non-numeric,
// or negative are skipped — they are fixtures not yet played or malformed
// entries, not errors. Rows with an empty team cell are skipped too. Input
// order is preserved; duplicate fixtures are kept, since aggregation handles
// repeats correctly.
//
// The second return value counts skipped rows so silent data loss stays
// observable through the pipeline Diagnostic.
func Extract(rows []dataset.Row, mapping Mapping) ([]MatchResult, int) {
	results := make([]MatchResult, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		result, ok := extractRow(row, mapping)
		if !ok {
			skipped++
			continue
		}
		results = append(results, result)
	}
	return results, skipped
}

func extractRow(row dataset.Row, mapping Mapping) (MatchResult, bool) {
	home, ok := row.Get(mapping[RoleHomeTeam])
	if !ok {
		return MatchResult{}, false
	}
	away, ok := row.Get(mapping[RoleAwayTeam])
	if !ok {
		return MatchResult{}, false
	}
	homeGoals, ok := parseGoals(row, mapping[RoleHomeGoals])
	if !ok {
		return MatchResult{}, false
	}
	awayGoals, ok := parseGoals(row, mapping[RoleAwayGoals])
	if !ok {
		return MatchResult{}, false
	}
	return MatchResult{
		HomeTeam:  home,
		AwayTeam:  away,
		HomeGoals: homeGoals,
		AwayGoals: awayGoals,
	}, true
}

func parseGoals(row dataset.Row, column string) (int, bool) {
	raw, ok := row.Get(column)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
