package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-life/internal/life"
)

// BoardInfo is a saved board without its cell data.
type BoardInfo struct {
	ID         int64
	Name       string
	Cols       int
	Rows       int
	SmokeSteps int
	Wrap       bool
	Generation int
	Population int
	CreatedAt  time.Time
}

// Board is a saved board including cells and trails.
type Board struct {
	BoardInfo
	Cells []uint8
	Fade  []uint8
}

// Snapshot converts the saved board back into an engine snapshot.
func (b Board) Snapshot() life.Snapshot {
	return life.Snapshot{
		Cols:       b.Cols,
		Rows:       b.Rows,
		Generation: b.Generation,
		SmokeSteps: b.SmokeSteps,
		Wrap:       b.Wrap,
		Alive:      b.Population,
		Cells:      b.Cells,
		Fade:       b.Fade,
	}
}

// Restore loads the board into e. The engine takes the board's size, smoke
// ceiling and topology; the generation restarts at 0.
func (b Board) Restore(e *life.Engine) {
	e.Restore(b.Snapshot())
}

// SaveBoard stores snap under name, replacing any board with that name.
// Returns the ID of the stored record.
func (s *Store) SaveBoard(name string, snap life.Snapshot) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("storage: board name is empty")
	}
	if len(snap.Cells) != snap.Cols*snap.Rows || len(snap.Fade) != len(snap.Cells) {
		return 0, fmt.Errorf("storage: board %q has inconsistent dimensions", name)
	}

	_, err := s.db.Exec(
		`INSERT INTO boards (name, cols, rows, smoke_steps, wrap, generation, population, cells, fade)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			cols = excluded.cols,
			rows = excluded.rows,
			smoke_steps = excluded.smoke_steps,
			wrap = excluded.wrap,
			generation = excluded.generation,
			population = excluded.population,
			cells = excluded.cells,
			fade = excluded.fade,
			created_at = CURRENT_TIMESTAMP`,
		name, snap.Cols, snap.Rows, snap.SmokeSteps, snap.Wrap,
		snap.Generation, snap.Alive, snap.Cells, snap.Fade,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save board: %w", err)
	}

	// LastInsertId is not reliable for the update branch of an upsert.
	var id int64
	if err := s.db.QueryRow("SELECT id FROM boards WHERE name = ?", name).Scan(&id); err != nil {
		return 0, fmt.Errorf("storage: cannot get board ID: %w", err)
	}
	return id, nil
}

// LoadBoard retrieves a board by name.
// Returns ErrBoardNotFound if no board has that name.
func (s *Store) LoadBoard(name string) (Board, error) {
	var (
		b         Board
		createdAt any
	)
	err := s.db.QueryRow(
		`SELECT id, name, cols, rows, smoke_steps, wrap, generation, population, cells, fade, created_at
		 FROM boards
		 WHERE name = ?`,
		name,
	).Scan(
		&b.ID, &b.Name, &b.Cols, &b.Rows, &b.SmokeSteps, &b.Wrap,
		&b.Generation, &b.Population, &b.Cells, &b.Fade, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Board{}, fmt.Errorf("%w: %s", ErrBoardNotFound, name)
	}
	if err != nil {
		return Board{}, fmt.Errorf("storage: cannot load board: %w", err)
	}
	b.CreatedAt = parseTime(createdAt)
	return b, nil
}

// ListBoards returns all saved boards, newest first.
func (s *Store) ListBoards() ([]BoardInfo, error) {
	rows, err := s.db.Query(
		`SELECT id, name, cols, rows, smoke_steps, wrap, generation, population, created_at
		 FROM boards
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query boards: %w", err)
	}
	defer rows.Close()

	var boards []BoardInfo
	for rows.Next() {
		var (
			b         BoardInfo
			createdAt any
		)
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Cols, &b.Rows, &b.SmokeSteps, &b.Wrap,
			&b.Generation, &b.Population, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		b.CreatedAt = parseTime(createdAt)
		boards = append(boards, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return boards, nil
}

// DeleteBoard removes a board by name.
// Returns ErrBoardNotFound if no board has that name.
func (s *Store) DeleteBoard(name string) error {
	res, err := s.db.Exec("DELETE FROM boards WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete board: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete board: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrBoardNotFound, name)
	}
	return nil
}
