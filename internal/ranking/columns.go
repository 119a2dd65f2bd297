// Package ranking computes a league standings table from a schedule dataset.
//
// The upstream provider has renamed schedule columns more than once, so the
// package never hard-codes column names: each semantic role carries an ordered
// synonym list, resolved once per dataset. When resolution fails the package
// degrades to an empty table plus a Diagnostic instead of returning an error —
// callers iterate many (league, season) pairs and one schema mismatch must not
// abort the batch.
package ranking

import (
	"sort"
	"strings"

	"github.com/diazpablogon/footballstats/internal/dataset"
)

// Role identifies the semantic meaning of a schedule column.
type Role string

const (
	RoleHomeTeam  Role = "home_team"
	RoleAwayTeam  Role = "away_team"
	RoleHomeGoals Role = "home_goals"
	RoleAwayGoals Role = "away_goals"
)

// requiredRoles lists every role a schedule must provide, in reporting order.
var requiredRoles = []Role{RoleHomeTeam, RoleAwayTeam, RoleHomeGoals, RoleAwayGoals}

// Synonyms maps each role to its accepted column names in priority order.
// Matching is case-insensitive. New provider naming drift is handled by
// appending an entry here (or passing an extended table to NewResolver),
// never by branching in the aggregation logic.
type Synonyms map[Role][]string

// DefaultSynonyms returns the synonym table covering every naming convention
// observed from the provider so far.
func DefaultSynonyms() Synonyms {
	return Synonyms{
		RoleHomeTeam:  {"home_team", "team_home", "home"},
		RoleAwayTeam:  {"away_team", "team_away", "away"},
		RoleHomeGoals: {"home_goals", "home_score", "goals_home", "home_g"},
		RoleAwayGoals: {"away_goals", "away_score", "goals_away", "away_g"},
	}
}

// Mapping holds the concrete column name resolved for each role.
// A Mapping is only ever produced complete: partial mappings cannot safely
// extract scores and are never returned.
type Mapping map[Role]string

// Resolver locates the four role columns among a dataset's column names.
type Resolver struct {
	synonyms Synonyms
}

// NewResolver creates a Resolver. A nil or partial synonym table falls back
// to DefaultSynonyms for the roles it does not cover.
func NewResolver(synonyms Synonyms) *Resolver {
	merged := DefaultSynonyms()
	for role, names := range synonyms {
		if len(names) > 0 {
			merged[role] = names
		}
	}
	return &Resolver{synonyms: merged}
}

// Resolve picks, independently per role, the first synonym present in the
// given column names. It returns the complete mapping, or nil plus the roles
// that had no match. Resolution is pure: the same column set always yields
// the same result.
func (r *Resolver) Resolve(columns []string) (Mapping, []Role) {
	// First occurrence wins when two columns differ only by case.
	lower := make(map[string]string, len(columns))
	for _, col := range columns {
		key := strings.ToLower(col)
		if _, seen := lower[key]; !seen {
			lower[key] = col
		}
	}

	mapping := make(Mapping, len(requiredRoles))
	var missing []Role
	for _, role := range requiredRoles {
		found := ""
		for _, name := range r.synonyms[role] {
			if actual, ok := lower[strings.ToLower(name)]; ok {
				found = actual
				break
			}
		}
		if found == "" {
			missing = append(missing, role)
			continue
		}
		mapping[role] = found
	}

	if len(missing) > 0 {
		return nil, missing
	}
	return mapping, nil
}

// columnSet returns the sorted union of column names across rows.
func columnSet(rows []dataset.Row) []string {
	seen := make(map[string]struct{})
	for _, r := range rows {
		for col := range r {
			seen[col] = struct{}{}
		}
	}
	columns := make([]string, 0, len(seen))
	for col := range seen {
		columns = append(columns, col)
	}
	sort.Strings(columns)
	return columns
}
