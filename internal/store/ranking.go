package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/parquet-go/parquet-go"

	"github.com/diazpablogon/footballstats/internal/dataset"
	"github.com/diazpablogon/footballstats/internal/ranking"
)

// rankingHeader is the CSV column order, matching the Parquet field names.
var rankingHeader = []string{"Pos", "Team", "MP", "W", "D", "L", "GF", "GA", "GD", "Pts"}

// SaveRanking writes a standings table under dir as Ranking.parquet, falling
// back to Ranking.csv. An empty table still produces a file so a degraded
// league season leaves a well-formed artifact behind.
func (s *Store) SaveRanking(dir string, table ranking.Table) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	path := filepath.Join(dir, "Ranking.parquet")
	if err := writeRankingParquet(path, table); err != nil {
		s.logger.Warn("Could not write parquet; falling back to CSV", "path", path, "error", err)
		csvPath := filepath.Join(dir, "Ranking.csv")
		if err := writeRankingCSV(csvPath, table); err != nil {
			return "", err
		}
		return csvPath, nil
	}
	return path, nil
}

// LoadRanking reads the standings table for one league season, trying
// Parquet first and then the CSV fallback.
func (s *Store) LoadRanking(seasonLabel, leagueKey string) (ranking.Table, error) {
	dir := s.LeagueDir(seasonLabel, leagueKey)

	parquetPath := filepath.Join(dir, "Ranking.parquet")
	if _, err := os.Stat(parquetPath); err == nil {
		rows, err := parquet.ReadFile[ranking.Standing](parquetPath)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", parquetPath, err)
		}
		return ranking.Table(rows), nil
	}

	csvPath := filepath.Join(dir, "Ranking.csv")
	if _, err := os.Stat(csvPath); err != nil {
		return nil, fmt.Errorf("no ranking for %s/%s: %w", seasonLabel, leagueKey, os.ErrNotExist)
	}
	return readRankingCSV(csvPath)
}

func writeRankingParquet(path string, table ranking.Table) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	writer := parquet.NewGenericWriter[ranking.Standing](out)
	if len(table) > 0 {
		if _, err := writer.Write(table); err != nil {
			writer.Close()
			out.Close()
			os.Remove(path)
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := writer.Close(); err != nil {
		out.Close()
		os.Remove(path)
		return fmt.Errorf("close %s: %w", path, err)
	}
	return out.Close()
}

func writeRankingCSV(path string, table ranking.Table) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write(rankingHeader); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, s := range table {
		record := []string{
			strconv.Itoa(s.Position), s.Team,
			strconv.Itoa(s.Played), strconv.Itoa(s.Wins), strconv.Itoa(s.Draws), strconv.Itoa(s.Losses),
			strconv.Itoa(s.GoalsFor), strconv.Itoa(s.GoalsAgainst), strconv.Itoa(s.GoalDiff), strconv.Itoa(s.Points),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}

func readRankingCSV(path string) (ranking.Table, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer in.Close()

	records, err := csv.NewReader(in).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) <= 1 {
		return ranking.Table{}, nil
	}

	atoi := func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	}

	table := make(ranking.Table, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != len(rankingHeader) {
			continue
		}
		table = append(table, ranking.Standing{
			Position: atoi(rec[0]), Team: rec[1],
			Played: atoi(rec[2]), Wins: atoi(rec[3]), Draws: atoi(rec[4]), Losses: atoi(rec[5]),
			GoalsFor: atoi(rec[6]), GoalsAgainst: atoi(rec[7]), GoalDiff: atoi(rec[8]), Points: atoi(rec[9]),
		})
	}
	return table, nil
}

func writeFrameCSV(path string, f *dataset.Frame) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write(f.Columns); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	record := make([]string, len(f.Columns))
	for _, row := range f.Rows {
		for i, col := range f.Columns {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}

// LoadFrame reads a saved frame back, trying Parquet then CSV. Used by the
// rank subcommand to recompute standings from an already-fetched schedule.
func LoadFrame(path string) (*dataset.Frame, error) {
	if filepath.Ext(path) == ".csv" {
		return readFrameCSV(path)
	}

	rows, err := parquet.ReadFile[map[string]any](path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	frame := dataset.New()
	for _, raw := range rows {
		row := dataset.Row{}
		for col, v := range raw {
			if s, ok := v.(string); ok {
				row[col] = s
			} else if v != nil {
				row[col] = fmt.Sprint(v)
			}
		}
		frame.Append(row)
	}
	sort.Strings(frame.Columns)
	return frame, nil
}

func readFrameCSV(path string) (*dataset.Frame, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer in.Close()

	records, err := csv.NewReader(in).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return dataset.New(), nil
	}

	frame := dataset.New(records[0]...)
	for _, rec := range records[1:] {
		row := dataset.Row{}
		for i, col := range frame.Columns {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		frame.Rows = append(frame.Rows, row)
	}
	return frame, nil
}
