package ranking

import (
	"testing"
)

// canonicalFor returns the first (canonical) synonym for a role.
func canonicalFor(role Role) string {
	return DefaultSynonyms()[role][0]
}

func TestResolveSynonymCoverage(t *testing.T) {
	synonyms := DefaultSynonyms()
	for role, names := range synonyms {
		for _, name := range names {
			columns := []string{name}
			for other := range synonyms {
				if other != role {
					columns = append(columns, canonicalFor(other))
				}
			}

			mapping, missing := NewResolver(nil).Resolve(columns)
			if mapping == nil {
				t.Errorf("Resolve with %s as %s: unresolved (missing %v)", name, role, missing)
				continue
			}
			if mapping[role] != name {
				t.Errorf("Resolve with %s as %s: mapped to %q", name, role, mapping[role])
			}
		}
	}
}

func TestResolveMissingRoleNeverPartial(t *testing.T) {
	for _, absent := range []Role{RoleHomeTeam, RoleAwayTeam, RoleHomeGoals, RoleAwayGoals} {
		var columns []string
		for role := range DefaultSynonyms() {
			if role != absent {
				columns = append(columns, canonicalFor(role))
			}
		}

		mapping, missing := NewResolver(nil).Resolve(columns)
		if mapping != nil {
			t.Errorf("absent %s: got partial mapping %v", absent, mapping)
		}
		if len(missing) != 1 || missing[0] != absent {
			t.Errorf("absent %s: missing = %v", absent, missing)
		}
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	columns := []string{"Home_Team", "AWAY_TEAM", "Home_Goals", "Away_Goals"}
	mapping, missing := NewResolver(nil).Resolve(columns)
	if mapping == nil {
		t.Fatalf("unresolved: missing %v", missing)
	}
	// Mapping must hold the actual column names, not the lowered synonyms.
	if mapping[RoleHomeTeam] != "Home_Team" || mapping[RoleAwayTeam] != "AWAY_TEAM" {
		t.Errorf("team columns: %q / %q", mapping[RoleHomeTeam], mapping[RoleAwayTeam])
	}
}

func TestResolvePriorityOrder(t *testing.T) {
	columns := []string{"home_team", "away_team", "goals_home", "home_goals", "goals_away", "away_goals"}
	mapping, _ := NewResolver(nil).Resolve(columns)
	if mapping == nil {
		t.Fatal("unresolved")
	}
	if mapping[RoleHomeGoals] != "home_goals" {
		t.Errorf("home goals resolved to %q, want the higher-priority home_goals", mapping[RoleHomeGoals])
	}
	if mapping[RoleAwayGoals] != "away_goals" {
		t.Errorf("away goals resolved to %q, want the higher-priority away_goals", mapping[RoleAwayGoals])
	}
}

func TestResolveExtendedSynonyms(t *testing.T) {
	// New provider drift is handled by appending a synonym, nothing else.
	custom := Synonyms{
		RoleHomeGoals: {"home_goals", "ft_home"},
		RoleAwayGoals: {"away_goals", "ft_away"},
	}
	columns := []string{"home_team", "away_team", "ft_home", "ft_away"}
	mapping, missing := NewResolver(custom).Resolve(columns)
	if mapping == nil {
		t.Fatalf("unresolved: missing %v", missing)
	}
	if mapping[RoleHomeGoals] != "ft_home" || mapping[RoleAwayGoals] != "ft_away" {
		t.Errorf("goal columns: %q / %q", mapping[RoleHomeGoals], mapping[RoleAwayGoals])
	}
}
