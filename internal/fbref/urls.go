package fbref

import "fmt"

const baseURL = "https://fbref.com/en/comps"

// competition holds FBref's routing identifiers for one league.
type competition struct {
	ID   int
	Slug string
}

// competitions maps provider league identifiers (as configured) to FBref
// competition routes.
var competitions = map[string]competition{
	"ENG-Premier League": {ID: 9, Slug: "Premier-League"},
	"ESP-La Liga":        {ID: 12, Slug: "La-Liga"},
	"ITA-Serie A":        {ID: 11, Slug: "Serie-A"},
	"GER-Bundesliga":     {ID: 20, Slug: "Bundesliga"},
	"FRA-Ligue 1":        {ID: 13, Slug: "Ligue-1"},
}

// SupportedLeague reports whether a provider league identifier is known.
func SupportedLeague(leagueID string) bool {
	_, ok := competitions[leagueID]
	return ok
}

// SeasonLabel renders a start year as FBref's season path segment.
func SeasonLabel(startYear int) string {
	return fmt.Sprintf("%d-%d", startYear, startYear+1)
}

// ScheduleURL returns the scores-and-fixtures page for a league season.
func ScheduleURL(leagueID string, startYear int) (string, error) {
	comp, ok := competitions[leagueID]
	if !ok {
		return "", fmt.Errorf("unsupported league %q", leagueID)
	}
	season := SeasonLabel(startYear)
	return fmt.Sprintf("%s/%d/%s/schedule/%s-%s-Scores-and-Fixtures",
		baseURL, comp.ID, season, season, comp.Slug), nil
}

// statPathOverrides maps stat types whose FBref path segment differs from the
// stat type name.
var statPathOverrides = map[string]string{
	"goal_shot_creation": "gca",
	"playing_time":       "playingtime",
	"standard":           "stats",
}

// StatsURL returns the stats page for one stat type of a league season.
func StatsURL(leagueID string, startYear int, statType string) (string, error) {
	comp, ok := competitions[leagueID]
	if !ok {
		return "", fmt.Errorf("unsupported league %q", leagueID)
	}
	path := statType
	if override, ok := statPathOverrides[statType]; ok {
		path = override
	}
	season := SeasonLabel(startYear)
	return fmt.Sprintf("%s/%d/%s/%s/%s-%s-Stats",
		baseURL, comp.ID, season, path, season, comp.Slug), nil
}

// TeamMatchStats lists the per-match team stat types fetched by the
// team-match step.
var TeamMatchStats = []string{
	"shooting",
	"passing",
	"goal_shot_creation",
	"defense",
	"possession",
	"misc",
}

// TeamSeasonStats lists the season-aggregate team stat types.
var TeamSeasonStats = []string{
	"standard",
	"shooting",
	"passing",
	"goal_shot_creation",
	"defense",
	"possession",
	"misc",
}

// PlayerSeasonStats lists the season-aggregate player stat types.
var PlayerSeasonStats = []string{
	"standard",
	"shooting",
	"passing",
	"goal_shot_creation",
	"defense",
	"possession",
	"playing_time",
	"misc",
}

// PlayerMatchStats lists the per-match player stat types.
var PlayerMatchStats = []string{
	"shooting",
	"passing",
	"defense",
	"possession",
	"misc",
}
