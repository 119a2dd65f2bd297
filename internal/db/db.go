// Package db provides a pgxpool-based connection pool with prepared
// statement registration and health checking for the optional Postgres sink.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diazpablogon/footballstats/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// registerPreparedStatements registers the statements the ingest sink uses.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		"health_check": "SELECT 1",

		"upsert_team": `
			INSERT INTO teams (name, league_key)
			VALUES ($1, $2)
			ON CONFLICT (name, league_key) DO UPDATE SET
				updated_at = NOW()`,

		"upsert_ranking_row": `
			INSERT INTO rankings (
				season, league_key, team, position,
				played, wins, draws, losses,
				goals_for, goals_against, goal_diff, points
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
			ON CONFLICT (season, league_key, team) DO UPDATE SET
				position = EXCLUDED.position,
				played = EXCLUDED.played,
				wins = EXCLUDED.wins,
				draws = EXCLUDED.draws,
				losses = EXCLUDED.losses,
				goals_for = EXCLUDED.goals_for,
				goals_against = EXCLUDED.goals_against,
				goal_diff = EXCLUDED.goal_diff,
				points = EXCLUDED.points,
				updated_at = NOW()`,

		"delete_ranking": `
			DELETE FROM rankings WHERE season = $1 AND league_key = $2`,
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
