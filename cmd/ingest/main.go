// Command ingest is the footballstats data ingestion CLI.
//
// Usage:
//
//	footballstats-ingest league-init
//	footballstats-ingest league-init --only-leagues LaLiga_ESP --only-seasons 2023-2024
//	footballstats-ingest team-match
//	footballstats-ingest player-season --only-leagues PremierLeague_ENG
//	footballstats-ingest rank --schedule data/raw/2023-2024/LaLiga_ESP/Schedule.csv
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/diazpablogon/footballstats/internal/config"
	"github.com/diazpablogon/footballstats/internal/db"
	"github.com/diazpablogon/footballstats/internal/fbref"
	"github.com/diazpablogon/footballstats/internal/ingest"
	"github.com/diazpablogon/footballstats/internal/ranking"
	"github.com/diazpablogon/footballstats/internal/store"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

var (
	configPath  string
	onlyLeagues string
	onlySeasons string
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "footballstats-ingest",
		Short: "Football statistics ingestion CLI",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to YAML config")
	root.PersistentFlags().StringVar(&onlyLeagues, "only-leagues", "", "Comma-separated league keys to process")
	root.PersistentFlags().StringVar(&onlySeasons, "only-seasons", "", "Comma-separated season labels to process")

	root.AddCommand(leagueInitCmd())
	root.AddCommand(statStepCmd(ingest.StepTeamMatch, "Fetch per-match team statistics",
		func(cfg *config.Config) bool { return cfg.FBref.EnableTeamMatch }))
	root.AddCommand(statStepCmd(ingest.StepTeamSeason, "Fetch season-aggregate team statistics",
		func(cfg *config.Config) bool { return cfg.FBref.EnableTeamSeason }))
	root.AddCommand(statStepCmd(ingest.StepPlayerMatch, "Fetch per-match player statistics",
		func(cfg *config.Config) bool { return cfg.FBref.EnablePlayerMatch }))
	root.AddCommand(statStepCmd(ingest.StepPlayerSeason, "Fetch season-aggregate player statistics",
		func(cfg *config.Config) bool { return cfg.FBref.EnablePlayerSeason }))
	root.AddCommand(rankCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// league-init command
// --------------------------------------------------------------------------

func leagueInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "league-init",
		Short: "Download schedules and compute league rankings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStep(func(ctx context.Context, cfg *config.Config, deps *ingest.Deps) error {
				if !cfg.FBref.EnableLeagueInit {
					logger.Info("League initialization disabled via configuration")
					return nil
				}
				start := time.Now()
				result := ingest.LeagueInit(ctx, deps,
					cfg.FilterLeagues(splitFilter(onlyLeagues)),
					cfg.FilterSeasons(splitFilter(onlySeasons)),
					ranking.DefaultSynonyms(), cfg.Workers, logger)
				logger.Info("League init finished",
					"duration", time.Since(start).Round(time.Second), "summary", result.Summary())
				logErrors(result.Errors)
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// stat step commands (team-match, team-season, player-match, player-season)
// --------------------------------------------------------------------------

func statStepCmd(step ingest.StatStep, short string, enabled func(*config.Config) bool) *cobra.Command {
	return &cobra.Command{
		Use:   step.Name,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStep(func(ctx context.Context, cfg *config.Config, deps *ingest.Deps) error {
				if !enabled(cfg) {
					logger.Info("Step disabled via configuration", "step", step.Name)
					return nil
				}
				start := time.Now()
				result := ingest.Stats(ctx, deps,
					cfg.FilterLeagues(splitFilter(onlyLeagues)),
					cfg.FilterSeasons(splitFilter(onlySeasons)),
					step, cfg.Workers, logger)
				logger.Info("Step finished", "step", step.Name,
					"duration", time.Since(start).Round(time.Second), "summary", result.Summary())
				logErrors(result.Errors)
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// rank command — recompute standings from a saved schedule, no network
// --------------------------------------------------------------------------

func rankCmd() *cobra.Command {
	var schedulePath string
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Compute standings from an already-saved schedule file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if schedulePath == "" {
				return fmt.Errorf("--schedule is required")
			}
			frame, err := store.LoadFrame(schedulePath)
			if err != nil {
				return fmt.Errorf("load schedule: %w", err)
			}

			table, diag := ranking.NewPipeline(ranking.DefaultSynonyms()).ComputeFrame(frame)
			if diag.Unresolved() {
				logger.Error("Ranking columns unresolved", "diagnostic", diag.String())
			} else if diag != nil {
				logger.Warn("Ranking computed with skipped rows", "diagnostic", diag.String())
			}

			fmt.Printf("%-4s %-24s %3s %3s %3s %3s %4s %4s %4s %4s\n",
				"Pos", "Team", "MP", "W", "D", "L", "GF", "GA", "GD", "Pts")
			for _, s := range table {
				fmt.Printf("%-4d %-24s %3d %3d %3d %3d %4d %4d %4d %4d\n",
					s.Position, s.Team, s.Played, s.Wins, s.Draws, s.Losses,
					s.GoalsFor, s.GoalsAgainst, s.GoalDiff, s.Points)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&schedulePath, "schedule", "", "Path to a saved Schedule.parquet or Schedule.csv")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runStep handles config loading, dependency wiring, and context cancellation.
func runStep(fn func(ctx context.Context, cfg *config.Config, deps *ingest.Deps) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	deps := &ingest.Deps{
		Handler: fbref.NewHandler(cfg.FBref, logger),
		Store:   store.New(cfg.DataDir, logger),
	}

	if cfg.DatabaseURL != "" {
		pool, err := db.New(ctx, cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()
		deps.Pool = pool.Pool
		logger.Info("Postgres sink enabled")
	}

	return fn(ctx, cfg, deps)
}

func splitFilter(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func logErrors(errs []string) {
	for _, e := range errs {
		logger.Error("ingest error", "error", e)
	}
}
