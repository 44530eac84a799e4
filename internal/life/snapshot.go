package life

import "github.com/vovakirdan/tui-life/internal/core"

// Snapshot is a copy of the board at one point in time. Unlike the slices
// returned by Cells and Fade, a Snapshot never changes; Epoch lets the
// holder detect that the engine has moved on.
type Snapshot struct {
	Cols       int
	Rows       int
	Generation int
	SmokeSteps int
	Wrap       bool
	Alive      int // population
	Cells      []uint8
	Fade       []uint8
	Epoch      uint64
}

// Snapshot copies the current board.
func (e *Engine) Snapshot() Snapshot {
	cells := make([]uint8, len(e.alive))
	copy(cells, e.alive)
	fade := make([]uint8, len(e.fade))
	copy(fade, e.fade)

	return Snapshot{
		Cols:       e.cols,
		Rows:       e.rows,
		Generation: e.generation,
		SmokeSteps: e.smokeSteps,
		Wrap:       e.wrap,
		Alive:      e.CountAlive(),
		Cells:      cells,
		Fade:       fade,
		Epoch:      e.epoch,
	}
}

// Epoch increments whenever buffer identity changes (Step, SetSize, Restore).
func (e *Engine) Epoch() uint64 { return e.epoch }

// Stale reports whether s was taken before the most recent Step, SetSize
// or Restore.
func (e *Engine) Stale(s Snapshot) bool {
	return s.Epoch != e.epoch
}

// Restore replaces the board with the contents of s. Cells are copied into
// a board of the snapshot's (clamped) size, trails are clamped to the
// snapshot's smoke ceiling, and the generation restarts at 0.
func (e *Engine) Restore(s Snapshot) {
	e.SetSmokeSteps(s.SmokeSteps)
	e.allocate(core.Clamp(s.Cols, MinCols, MaxCols), core.Clamp(s.Rows, MinRows, MaxRows))

	smoke := uint8(e.smokeSteps)
	keep := core.NewRect(0, 0, e.cols, e.rows).Overlap(core.NewRect(0, 0, s.Cols, s.Rows))
	for y := 0; y < keep.H; y++ {
		for x := 0; x < keep.W; x++ {
			src, dst := y*s.Cols+x, y*e.cols+x
			if src < len(s.Cells) {
				e.alive[dst] = s.Cells[src] & 1
			}
			if src < len(s.Fade) && e.alive[dst] == 0 {
				e.fade[dst] = min(s.Fade[src], smoke)
			}
		}
	}
	e.wrap = s.Wrap
	e.generation = 0
	e.epoch++
}
