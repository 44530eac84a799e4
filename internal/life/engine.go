// Package life implements Conway's Game of Life with a decaying "smoke"
// trail behind dying cells. The engine contains no rendering or input code;
// a presenter drives it and reads its state.
//
// An Engine is not safe for concurrent use. Callers must serialize all
// operations, including Step.
package life

import (
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/seed"
)

// Board and trail limits.
const (
	MinCols  = 10
	MaxCols  = 400
	MinRows  = 10
	MaxRows  = 300
	MinSmoke = 0
	MaxSmoke = 50
)

// Engine owns the board state and evolves it one generation at a time.
//
// The alive and fade grids are flat row-major slices of length cols*rows,
// each paired with a scratch buffer. Step fills the scratch buffers from the
// current generation only and then swaps them in, so no cell observes
// another cell's update from the same generation.
type Engine struct {
	cols, rows int

	alive, next    []uint8
	fade, fadeNext []uint8
	smokeSteps     int
	generation     int
	wrap           bool
	epoch          uint64
	rng            *rand.Rand
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithSeed makes Randomize deterministic.
func WithSeed(s int64) Option {
	return func(e *Engine) {
		e.rng = seed.NewRNG(s)
	}
}

// WithWrap sets the default topology used by Advance.
func WithWrap(wrap bool) Option {
	return func(e *Engine) {
		e.wrap = wrap
	}
}

// New creates an empty board. Dimensions and smokeSteps are clamped into
// range rather than rejected.
func New(cols, rows, smokeSteps int, opts ...Option) *Engine {
	e := &Engine{
		smokeSteps: core.Clamp(smokeSteps, MinSmoke, MaxSmoke),
	}
	e.allocate(core.Clamp(cols, MinCols, MaxCols), core.Clamp(rows, MinRows, MaxRows))
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = seed.NewRNG(time.Now().UnixNano())
	}
	return e
}

func (e *Engine) allocate(cols, rows int) {
	n := cols * rows
	e.cols, e.rows = cols, rows
	e.alive = make([]uint8, n)
	e.next = make([]uint8, n)
	e.fade = make([]uint8, n)
	e.fadeNext = make([]uint8, n)
}

// Cols returns the board width.
func (e *Engine) Cols() int { return e.cols }

// Rows returns the board height.
func (e *Engine) Rows() int { return e.rows }

// Generation returns the number of steps since the last clear, fill or resize.
func (e *Engine) Generation() int { return e.generation }

// SmokeSteps returns the current trail length ceiling.
func (e *Engine) SmokeSteps() int { return e.smokeSteps }

// Wrap returns the topology Advance uses.
func (e *Engine) Wrap() bool { return e.wrap }

// SetWrap changes the topology Advance uses.
func (e *Engine) SetWrap(wrap bool) { e.wrap = wrap }

// Cells exposes the current alive grid. The slice is replaced by Step and
// SetSize; a retained handle goes stale after either call. Writes must keep
// values in {0, 1}.
func (e *Engine) Cells() []uint8 { return e.alive }

// Fade exposes the current decay grid, with the same staleness rules as Cells.
func (e *Engine) Fade() []uint8 { return e.fade }

// Index returns the flat index of (x, y).
func (e *Engine) Index(x, y int) int { return y*e.cols + x }

// InBounds reports whether (x, y) lies on the board.
func (e *Engine) InBounds(x, y int) bool {
	return x >= 0 && x < e.cols && y >= 0 && y < e.rows
}

// Alive reports whether the cell at (x, y) is live. Off-board cells are dead.
func (e *Engine) Alive(x, y int) bool {
	return e.InBounds(x, y) && e.alive[e.Index(x, y)] == 1
}

// neighbors counts live cells among the 8 surrounding positions.
func (e *Engine) neighbors(x, y int, wrap bool) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if wrap {
				if nx < 0 {
					nx = e.cols - 1
				} else if nx >= e.cols {
					nx = 0
				}
				if ny < 0 {
					ny = e.rows - 1
				} else if ny >= e.rows {
					ny = 0
				}
			} else if nx < 0 || nx >= e.cols || ny < 0 || ny >= e.rows {
				continue
			}
			n += int(e.alive[ny*e.cols+nx])
		}
	}
	return n
}

// Step advances the simulation by one generation using the given topology.
// Live cells survive with 2 or 3 neighbours; dead cells are born with 3.
func (e *Engine) Step(wrap bool) {
	smoke := uint8(e.smokeSteps)
	for y := 0; y < e.rows; y++ {
		for x := 0; x < e.cols; x++ {
			i := y*e.cols + x
			was := e.alive[i] == 1
			nb := e.neighbors(x, y, wrap)
			now := nb == 3 || (was && nb == 2)

			switch {
			case now:
				e.next[i] = 1
				e.fadeNext[i] = 0
			case was:
				e.next[i] = 0
				e.fadeNext[i] = smoke
			default:
				e.next[i] = 0
				f := min(e.fade[i], smoke)
				if f > 0 {
					f--
				}
				e.fadeNext[i] = f
			}
		}
	}
	e.alive, e.next = e.next, e.alive
	e.fade, e.fadeNext = e.fadeNext, e.fade
	e.generation++
	e.epoch++
}

// Advance steps once using the stored topology.
func (e *Engine) Advance() {
	e.Step(e.wrap)
}

// Fill sets every cell from gen, clears all trails and resets the generation.
func (e *Engine) Fill(gen seed.Generator) {
	for y := 0; y < e.rows; y++ {
		for x := 0; x < e.cols; x++ {
			i := y*e.cols + x
			e.alive[i] = 0
			if gen(x, y) {
				e.alive[i] = 1
			}
			e.fade[i] = 0
		}
	}
	e.generation = 0
}

// Randomize makes each cell alive independently with probability p.
// Callers are expected to clamp p to their own density range; values
// outside [0, 1] are clamped here.
func (e *Engine) Randomize(p float64) {
	e.Fill(seed.Uniform(e.rng, core.ClampF(p, 0, 1)))
}

// Clear kills every cell, removes all trails and resets the generation.
func (e *Engine) Clear() {
	clear(e.alive)
	clear(e.fade)
	e.generation = 0
}

// CountAlive returns the population.
func (e *Engine) CountAlive() int {
	n := 0
	for _, v := range e.alive {
		n += int(v)
	}
	return n
}

// SetSize resizes the board. Dimensions are clamped; an unchanged size is a
// no-op. With preserve, the overlapping top-left region keeps its cells and
// trails (re-clamped to the current ceiling); everything else starts dead.
// The generation resets either way.
func (e *Engine) SetSize(cols, rows int, preserve bool) {
	cols = core.Clamp(cols, MinCols, MaxCols)
	rows = core.Clamp(rows, MinRows, MaxRows)
	if cols == e.cols && rows == e.rows {
		return
	}

	oldCols := e.cols
	oldAlive, oldFade := e.alive, e.fade
	keep := core.NewRect(0, 0, e.cols, e.rows).Overlap(core.NewRect(0, 0, cols, rows))

	e.allocate(cols, rows)
	if preserve {
		smoke := uint8(e.smokeSteps)
		for y := 0; y < keep.H; y++ {
			for x := 0; x < keep.W; x++ {
				src, dst := y*oldCols+x, y*cols+x
				e.alive[dst] = oldAlive[src]
				e.fade[dst] = min(oldFade[src], smoke)
			}
		}
	}
	e.generation = 0
	e.epoch++
}

// SetSmokeSteps changes the trail ceiling and clamps existing trails down
// to it in both the current and scratch buffers.
func (e *Engine) SetSmokeSteps(steps int) {
	e.smokeSteps = core.Clamp(steps, MinSmoke, MaxSmoke)
	smoke := uint8(e.smokeSteps)
	for i := range e.fade {
		e.fade[i] = min(e.fade[i], smoke)
		e.fadeNext[i] = min(e.fadeNext[i], smoke)
	}
}

// Stamp sets the cells at anchor+offset alive with no trail.
// Offsets that land off the board are dropped.
func (e *Engine) Stamp(points []core.Point, anchorX, anchorY int) {
	for _, p := range points {
		x, y := anchorX+p.X, anchorY+p.Y
		if !e.InBounds(x, y) {
			continue
		}
		i := y*e.cols + x
		e.alive[i] = 1
		e.fade[i] = 0
	}
}

// StampPattern stamps a registered pattern. Unknown names are ignored.
func (e *Engine) StampPattern(name string, anchorX, anchorY int) {
	p, ok := registry.Lookup(name)
	if !ok {
		return
	}
	e.Stamp(p.Points, anchorX, anchorY)
}

// Toggle flips the cell at (x, y) and returns its new state. Killing a cell
// starts a full-strength trail; reviving it clears the trail.
func (e *Engine) Toggle(x, y int) bool {
	if !e.InBounds(x, y) {
		return false
	}
	i := e.Index(x, y)
	alive := e.alive[i] == 0
	e.Paint(x, y, alive)
	return alive
}

// Paint sets the cell at (x, y) to the given state. A live cell that is
// painted dead leaves a trail; a dead cell painted dead is unchanged.
func (e *Engine) Paint(x, y int, alive bool) {
	if !e.InBounds(x, y) {
		return
	}
	i := e.Index(x, y)
	switch {
	case alive:
		e.alive[i] = 1
		e.fade[i] = 0
	case e.alive[i] == 1:
		e.alive[i] = 0
		e.fade[i] = uint8(e.smokeSteps)
	}
}

// Intensity returns the trail strength of cell i in [0, 1). Live cells and
// boards with trails disabled report 0.
func (e *Engine) Intensity(i int) float64 {
	if e.smokeSteps == 0 || e.alive[i] == 1 || e.fade[i] == 0 {
		return 0
	}
	f := min(int(e.fade[i]), e.smokeSteps)
	return float64(f) / float64(e.smokeSteps+1)
}
