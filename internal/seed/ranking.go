package seed

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diazpablogon/footballstats/internal/ranking"
)

// SeedRanking replaces the stored standings for one league season. The
// previous rows are deleted first so teams that dropped out of the dataset
// (a schema change, a truncated schedule) do not linger with stale records.
func SeedRanking(
	ctx context.Context,
	pool *pgxpool.Pool,
	seasonLabel string,
	leagueKey string,
	table ranking.Table,
	logger *slog.Logger,
) Result {
	var result Result

	if _, err := pool.Exec(ctx, "delete_ranking", seasonLabel, leagueKey); err != nil {
		result.AddErrorf("clear ranking %s/%s: %v", seasonLabel, leagueKey, err)
		return result
	}

	for _, s := range table {
		if err := upsertTeam(ctx, pool, s.Team, leagueKey); err != nil {
			result.AddErrorf("upsert team %s: %v", s.Team, err)
		} else {
			result.TeamsUpserted++
		}

		_, err := pool.Exec(ctx, "upsert_ranking_row",
			seasonLabel, leagueKey, s.Team, s.Position,
			s.Played, s.Wins, s.Draws, s.Losses,
			s.GoalsFor, s.GoalsAgainst, s.GoalDiff, s.Points,
		)
		if err != nil {
			result.AddErrorf("upsert ranking %s/%s %s: %v", seasonLabel, leagueKey, s.Team, err)
		} else {
			result.RankingsUpserted++
		}
	}

	logger.Info("Ranking seeded",
		"season", seasonLabel, "league", leagueKey, "summary", result.Summary())
	return result
}

func upsertTeam(ctx context.Context, pool *pgxpool.Pool, name, leagueKey string) error {
	_, err := pool.Exec(ctx, "upsert_team", name, leagueKey)
	return err
}
