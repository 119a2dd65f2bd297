// Package store persists datasets and ranking tables as columnar files laid
// out per season and league:
//
//	<root>/<season>/<league>/Schedule.parquet
//	<root>/<season>/<league>/Ranking.parquet
//	<root>/<season>/<league>/TeamMatch/<Stat>.parquet
//
// Parquet is the primary format. When a Parquet write fails the store falls
// back to CSV next to the intended path, so an ingest run never loses data
// to a serialization problem.
package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/diazpablogon/footballstats/internal/dataset"
)

// Store writes and reads the per-league-season data directory.
type Store struct {
	root   string
	logger *slog.Logger
}

// New creates a Store rooted at dir.
func New(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{root: dir, logger: logger}
}

// Root returns the data directory root.
func (s *Store) Root() string { return s.root }

// LeagueDir returns the directory for one league season.
func (s *Store) LeagueDir(seasonLabel, leagueKey string) string {
	return filepath.Join(s.root, seasonLabel, leagueKey)
}

// SaveFrame writes a frame under dir as <name>.parquet, falling back to
// <name>.csv. It returns the path actually written.
func (s *Store) SaveFrame(dir, name string, f *dataset.Frame) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	path := filepath.Join(dir, name+".parquet")
	if err := writeFrameParquet(path, f); err != nil {
		s.logger.Warn("Could not write parquet; falling back to CSV", "path", path, "error", err)
		csvPath := filepath.Join(dir, name+".csv")
		if err := writeFrameCSV(csvPath, f); err != nil {
			return "", err
		}
		return csvPath, nil
	}
	return path, nil
}

func writeFrameParquet(path string, f *dataset.Frame) error {
	// All frame columns are optional strings: upstream tables are ragged and
	// typed interpretation happens downstream, not at persistence time.
	group := parquet.Group{}
	for _, col := range f.Columns {
		group[col] = parquet.Optional(parquet.String())
	}
	schema := parquet.NewSchema(strings.TrimSuffix(filepath.Base(path), ".parquet"), group)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	writer := parquet.NewGenericWriter[map[string]any](out, schema)
	rows := make([]map[string]any, 0, len(f.Rows))
	for _, row := range f.Rows {
		record := make(map[string]any, len(row))
		for _, col := range f.Columns {
			if v, ok := row.Get(col); ok {
				record[col] = v
			}
		}
		rows = append(rows, record)
	}

	if _, err := writer.Write(rows); err != nil {
		writer.Close()
		out.Close()
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		out.Close()
		os.Remove(path)
		return fmt.Errorf("close %s: %w", path, err)
	}
	return out.Close()
}

// ListSeasons returns the season labels present in the data directory.
func (s *Store) ListSeasons() ([]string, error) {
	return listDirs(s.root)
}

// ListLeagues returns the league keys present for one season.
func (s *Store) ListLeagues(seasonLabel string) ([]string, error) {
	return listDirs(filepath.Join(s.root, seasonLabel))
}

func listDirs(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
