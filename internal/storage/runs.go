package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Run is the summary of one simulation session.
type Run struct {
	ID              int64
	Cols            int
	Rows            int
	Generations     int
	PeakPopulation  int
	FinalPopulation int
	Wrap            bool
	CreatedAt       time.Time
}

// RunTracker accumulates a Run while a simulation is stepped.
type RunTracker struct {
	run Run
}

// NewRunTracker starts tracking a run on a cols x rows board.
func NewRunTracker(cols, rows int, wrap bool) *RunTracker {
	return &RunTracker{run: Run{Cols: cols, Rows: rows, Wrap: wrap}}
}

// Observe records one generation with the given population.
func (t *RunTracker) Observe(population int) {
	t.run.Generations++
	t.run.FinalPopulation = population
	t.run.PeakPopulation = max(t.run.PeakPopulation, population)
}

// Resize updates the board size and topology recorded for the run.
func (t *RunTracker) Resize(cols, rows int, wrap bool) {
	t.run.Cols, t.run.Rows, t.run.Wrap = cols, rows, wrap
}

// Run returns the accumulated run.
func (t *RunTracker) Run() Run { return t.run }

// RunStats contains aggregated statistics over all runs.
type RunStats struct {
	Count          int
	TotalGens      int64
	LongestRun     int
	PeakPopulation int
	LastPlayed     time.Time
}

// RecordRun stores a run. Returns the ID of the inserted record.
func (s *Store) RecordRun(r Run) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (board_cols, board_rows, generations, peak_population, final_population, wrap)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Cols, r.Rows, r.Generations, r.PeakPopulation, r.FinalPopulation, r.Wrap,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the N longest runs.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, board_cols, board_rows, generations, peak_population, final_population, wrap, created_at
		 FROM runs
		 ORDER BY generations DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			createdAt any
		)
		if err := rows.Scan(
			&r.ID, &r.Cols, &r.Rows, &r.Generations,
			&r.PeakPopulation, &r.FinalPopulation, &r.Wrap, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Stats retrieves aggregated statistics over all recorded runs.
func (s *Store) Stats() (*RunStats, error) {
	stats := &RunStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(generations), 0), COALESCE(MAX(generations), 0), COALESCE(MAX(peak_population), 0)
		 FROM runs`,
	).Scan(&stats.Count, &stats.TotalGens, &stats.LongestRun, &stats.PeakPopulation)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}
