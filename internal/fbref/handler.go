package fbref

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/diazpablogon/footballstats/internal/config"
	"github.com/diazpablogon/footballstats/internal/dataset"
)

// Handler fetches and normalizes FBref datasets for one ingest run.
type Handler struct {
	client *Client
	logger *slog.Logger
}

// NewHandler creates a Handler from the fbref configuration.
func NewHandler(cfg config.FBrefConfig, logger *slog.Logger) *Handler {
	return &Handler{
		client: NewClient(cfg.RequestsPerMinute, cfg.Timeout.Std(), cfg.MaxRetries, cfg.UserAgent, logger),
		logger: logger,
	}
}

// Schedule fetches the scores-and-fixtures table for a league season.
func (h *Handler) Schedule(ctx context.Context, leagueID string, startYear int) (*dataset.Frame, error) {
	url, err := ScheduleURL(leagueID, startYear)
	if err != nil {
		return nil, err
	}
	page, err := h.client.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	frame, err := ExtractTable(page, "sched")
	if err != nil {
		return nil, fmt.Errorf("schedule %s %s: %w", leagueID, SeasonLabel(startYear), err)
	}
	normalizeScheduleScores(frame)
	return frame, nil
}

// statTableOverrides maps stat types whose FBref table id segment differs
// from the stat type name.
var statTableOverrides = map[string]string{
	"goal_shot_creation": "gca",
}

// TeamStats fetches the squad table for one stat type.
func (h *Handler) TeamStats(ctx context.Context, leagueID string, startYear int, statType string) (*dataset.Frame, error) {
	segment := statType
	if override, ok := statTableOverrides[statType]; ok {
		segment = override
	}
	return h.stats(ctx, leagueID, startYear, statType, "stats_squads_"+segment+"_for")
}

// PlayerStats fetches the player table for one stat type.
func (h *Handler) PlayerStats(ctx context.Context, leagueID string, startYear int, statType string) (*dataset.Frame, error) {
	segment := statType
	if override, ok := statTableOverrides[statType]; ok {
		segment = override
	}
	return h.stats(ctx, leagueID, startYear, statType, "stats_"+segment)
}

func (h *Handler) stats(ctx context.Context, leagueID string, startYear int, statType, tableID string) (*dataset.Frame, error) {
	url, err := StatsURL(leagueID, startYear, statType)
	if err != nil {
		return nil, err
	}
	page, err := h.client.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	frame, err := ExtractTable(page, tableID)
	if err != nil {
		return nil, fmt.Errorf("%s %s %s: %w", statType, leagueID, SeasonLabel(startYear), err)
	}
	return frame, nil
}

// normalizeScheduleScores splits FBref's combined score column ("2–1") into
// home_goals and away_goals when the schedule does not already carry goal
// columns. Later provider versions expose the goals directly; those frames
// pass through untouched.
func normalizeScheduleScores(f *dataset.Frame) {
	if f.HasColumn("home_goals") || f.HasColumn("away_goals") || !f.HasColumn("score") {
		return
	}
	for _, row := range f.Rows {
		score, ok := row.Get("score")
		if !ok {
			continue
		}
		home, away, ok := splitScore(score)
		if !ok {
			continue
		}
		row["home_goals"] = home
		row["away_goals"] = away
	}
	f.Columns = append(f.Columns, "home_goals", "away_goals")
}

// splitScore parses "2–1" (FBref uses an en dash, older exports a hyphen).
func splitScore(score string) (home, away string, ok bool) {
	for _, sep := range []string{"–", "-"} {
		if strings.Contains(score, sep) {
			parts := strings.SplitN(score, sep, 2)
			home = strings.TrimSpace(parts[0])
			away = strings.TrimSpace(parts[1])
			return home, away, home != "" && away != ""
		}
	}
	return "", "", false
}
