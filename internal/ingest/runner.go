// Package ingest orchestrates fetch, ranking, and persistence across the
// configured league/season matrix. Each (league, season) pair is independent
// work: pairs run on a bounded worker pool and a failure in one pair never
// aborts the batch.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diazpablogon/footballstats/internal/dataset"
	"github.com/diazpablogon/footballstats/internal/fbref"
	"github.com/diazpablogon/footballstats/internal/ranking"
	"github.com/diazpablogon/footballstats/internal/seed"
	"github.com/diazpablogon/footballstats/internal/store"
)

// Deps holds the collaborators an ingest run needs. Pool is nil when no
// Postgres sink is configured.
type Deps struct {
	Handler *fbref.Handler
	Store   *store.Store
	Pool    *pgxpool.Pool
}

// RunResult tracks the outcome of one ingest step across all pairs.
type RunResult struct {
	Pairs            int
	FramesSaved      int
	RankingsComputed int
	Unresolved       int
	RowsSkipped      int
	Duration         time.Duration
	Errors           []string
}

// Add merges a per-pair result under the caller's lock.
func (r *RunResult) Add(other RunResult) {
	r.Pairs += other.Pairs
	r.FramesSaved += other.FramesSaved
	r.RankingsComputed += other.RankingsComputed
	r.Unresolved += other.Unresolved
	r.RowsSkipped += other.RowsSkipped
	r.Errors = append(r.Errors, other.Errors...)
}

// Summary returns a human-readable summary of the run.
func (r *RunResult) Summary() string {
	return fmt.Sprintf("pairs=%d frames=%d rankings=%d unresolved=%d skipped_rows=%d errors=%d dur=%s",
		r.Pairs, r.FramesSaved, r.RankingsComputed, r.Unresolved, r.RowsSkipped,
		len(r.Errors), r.Duration.Round(time.Second))
}

// pair is one unit of work: a league within a season.
type pair struct {
	SeasonLabel string
	StartYear   int
	LeagueKey   string
	LeagueID    string
}

func buildPairs(leagues map[string]string, seasons map[string]int) []pair {
	pairs := make([]pair, 0, len(leagues)*len(seasons))
	for seasonLabel, startYear := range seasons {
		for leagueKey, leagueID := range leagues {
			pairs = append(pairs, pair{
				SeasonLabel: seasonLabel,
				StartYear:   startYear,
				LeagueKey:   leagueKey,
				LeagueID:    leagueID,
			})
		}
	}
	return pairs
}

// runPairs fans pairs out over a worker pool and merges per-pair results.
func runPairs(ctx context.Context, pairs []pair, workers int, logger *slog.Logger,
	work func(ctx context.Context, p pair) RunResult) RunResult {

	start := time.Now()
	var result RunResult

	if len(pairs) == 0 {
		logger.Info("Nothing to process")
		result.Duration = time.Since(start)
		return result
	}

	if workers < 1 {
		workers = 1
	}
	if workers > len(pairs) {
		workers = len(pairs)
	}

	ch := make(chan pair, len(pairs))
	for _, p := range pairs {
		ch <- p
	}
	close(ch)

	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range ch {
				r := work(ctx, p)
				r.Pairs = 1
				mu.Lock()
				result.Add(r)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	result.Duration = time.Since(start)
	return result
}

// LeagueInit downloads the schedule for every configured pair, computes the
// standings table, and persists both. With a Postgres sink configured the
// standings are additionally upserted there.
func LeagueInit(
	ctx context.Context,
	deps *Deps,
	leagues map[string]string,
	seasons map[string]int,
	synonyms ranking.Synonyms,
	workers int,
	logger *slog.Logger,
) RunResult {
	pipeline := ranking.NewPipeline(synonyms)

	result := runPairs(ctx, buildPairs(leagues, seasons), workers, logger, func(ctx context.Context, p pair) RunResult {
		var r RunResult
		log := logger.With("season", p.SeasonLabel, "league", p.LeagueKey)

		schedule, err := deps.Handler.Schedule(ctx, p.LeagueID, p.StartYear)
		if err != nil {
			r.Errors = append(r.Errors, fmt.Sprintf("%s/%s: schedule: %v", p.SeasonLabel, p.LeagueKey, err))
			return r
		}
		if schedule.Empty() {
			log.Warn("Schedule is empty; skipping ranking computation")
			return r
		}

		dir := deps.Store.LeagueDir(p.SeasonLabel, p.LeagueKey)
		if path, err := deps.Store.SaveFrame(dir, "Schedule", schedule); err != nil {
			r.Errors = append(r.Errors, fmt.Sprintf("%s/%s: save schedule: %v", p.SeasonLabel, p.LeagueKey, err))
		} else {
			r.FramesSaved++
			log.Info("Saved schedule", "path", path, "rows", schedule.Len())
		}

		table, diag := pipeline.ComputeFrame(schedule)
		switch {
		case diag.Unresolved():
			r.Unresolved++
			log.Error("Ranking columns unresolved", "diagnostic", diag.String())
		case diag != nil:
			r.RowsSkipped += diag.SkippedRows
			log.Warn("Ranking computed with skipped rows", "diagnostic", diag.String())
		}
		if len(table) > 0 {
			r.RankingsComputed++
		} else if !diag.Unresolved() {
			log.Warn("Ranking could not be computed (no finished matches)")
		}

		// An empty table is still persisted: a degraded pair leaves a
		// well-formed artifact, not a hole in the data directory.
		if path, err := deps.Store.SaveRanking(dir, table); err != nil {
			r.Errors = append(r.Errors, fmt.Sprintf("%s/%s: save ranking: %v", p.SeasonLabel, p.LeagueKey, err))
		} else {
			log.Info("Saved ranking", "path", path, "teams", len(table))
		}

		if deps.Pool != nil && len(table) > 0 {
			seedResult := seed.SeedRanking(ctx, deps.Pool, p.SeasonLabel, p.LeagueKey, table, log)
			r.Errors = append(r.Errors, seedResult.Errors...)
		}
		return r
	})

	logger.Info("League init complete", "summary", result.Summary())
	return result
}

// StatStep describes one statistics fetch step: which stat types to pull and
// the subdirectory the frames land in.
type StatStep struct {
	Name   string
	Subdir string
	Types  []string
	Player bool
}

// Steps available to the ingest CLI, mirroring the provider's stat families.
var (
	StepTeamMatch    = StatStep{Name: "team-match", Subdir: "TeamMatch", Types: fbref.TeamMatchStats}
	StepTeamSeason   = StatStep{Name: "team-season", Subdir: "TeamSeason", Types: fbref.TeamSeasonStats}
	StepPlayerMatch  = StatStep{Name: "player-match", Subdir: "PlayerMatch", Types: fbref.PlayerMatchStats, Player: true}
	StepPlayerSeason = StatStep{Name: "player-season", Subdir: "PlayerSeason", Types: fbref.PlayerSeasonStats, Player: true}
)

// Stats downloads one stat family for every configured pair.
func Stats(
	ctx context.Context,
	deps *Deps,
	leagues map[string]string,
	seasons map[string]int,
	step StatStep,
	workers int,
	logger *slog.Logger,
) RunResult {
	result := runPairs(ctx, buildPairs(leagues, seasons), workers, logger, func(ctx context.Context, p pair) RunResult {
		var r RunResult
		log := logger.With("step", step.Name, "season", p.SeasonLabel, "league", p.LeagueKey)

		dir := deps.Store.LeagueDir(p.SeasonLabel, p.LeagueKey)
		for _, statType := range step.Types {
			var frame *dataset.Frame
			var err error
			if step.Player {
				frame, err = deps.Handler.PlayerStats(ctx, p.LeagueID, p.StartYear, statType)
			} else {
				frame, err = deps.Handler.TeamStats(ctx, p.LeagueID, p.StartYear, statType)
			}
			if err != nil {
				r.Errors = append(r.Errors, fmt.Sprintf("%s/%s: %s: %v", p.SeasonLabel, p.LeagueKey, statType, err))
				continue
			}
			if frame.Empty() {
				log.Warn("Stat table returned no data", "stat", statType)
				continue
			}

			name := statToCamel(statType)
			if path, err := deps.Store.SaveFrame(filepath.Join(dir, step.Subdir), name, frame); err != nil {
				r.Errors = append(r.Errors, fmt.Sprintf("%s/%s: save %s: %v", p.SeasonLabel, p.LeagueKey, name, err))
			} else {
				r.FramesSaved++
				log.Info("Saved stat table", "stat", name, "path", path, "rows", frame.Len())
			}
		}
		return r
	})

	logger.Info("Stat step complete", "step", step.Name, "summary", result.Summary())
	return result
}

// statToCamel renders a stat type as a file name, e.g. goal_shot_creation
// becomes GoalShotCreation.
func statToCamel(statType string) string {
	parts := strings.Split(statType, "_")
	for i, part := range parts {
		if part != "" {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, "")
}
