package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	cfg := config.DefaultLifeConfig()
	cfg.Simulation.Speed = 10
	engine := life.New(20, 20, 3, life.WithSeed(7), life.WithWrap(true))
	return NewModel(engine, Options{
		Config:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 30, Seed: 7},
		Store:   store,
		Logger:  log.New(io.Discard),
		Name:    "test",
	})
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, expected Model", next)
		}
	}
	return m
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionTogglePlay},
		{runes("s"), core.ActionStep},
		{runes("n"), core.ActionStep},
		{runes("N"), core.ActionNoise},
		{runes("r"), core.ActionRandomize},
		{runes("+"), core.ActionFaster},
		{runes("]"), core.ActionMoreSmoke},
		{runes("k"), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionToggleCell},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionNextPattern},
		{runes(">"), core.ActionGrow},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionSave},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("z"), core.ActionNone},
	}

	for _, tc := range tests {
		if got := keys.Action(tc.msg); got != tc.want {
			t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestToggleAndEraseAtCursor(t *testing.T) {
	m := newTestModel(t, nil)
	c := m.Cursor()

	m = send(t, m, runes("x"))
	if !m.Engine().Alive(c.X, c.Y) {
		t.Fatal("x should bring the cursor cell to life")
	}

	m = send(t, m, runes("d"))
	e := m.Engine()
	if e.Alive(c.X, c.Y) {
		t.Fatal("d should kill the cursor cell")
	}
	if got := e.Fade()[e.Index(c.X, c.Y)]; got != 3 {
		t.Errorf("erased cell fade = %d, expected 3", got)
	}
}

func TestCursorStaysOnBoard(t *testing.T) {
	m := newTestModel(t, nil)
	for range 50 {
		m = send(t, m, runes("h"), runes("k"))
	}
	if c := m.Cursor(); c != core.P(0, 0) {
		t.Errorf("cursor = %v, expected (0,0)", c)
	}
	for range 50 {
		m = send(t, m, runes("l"), runes("j"))
	}
	if c := m.Cursor(); c != core.P(19, 19) {
		t.Errorf("cursor = %v, expected (19,19)", c)
	}
}

func TestStepOnlyWhilePaused(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, runes("s"))
	if g := m.Engine().Generation(); g != 1 {
		t.Fatalf("generation = %d after step, expected 1", g)
	}

	m = send(t, m, runes(" "), runes("s"))
	if !m.Running() {
		t.Fatal("space should start the simulation")
	}
	if g := m.Engine().Generation(); g != 1 {
		t.Errorf("step while running changed generation to %d", g)
	}
}

func TestTickAdvancesWhileRunning(t *testing.T) {
	m := newTestModel(t, nil)
	start := time.Unix(1000, 0)

	// Paused: ticks never step.
	m = send(t, m, TickMsg(start), TickMsg(start.Add(time.Second)))
	if g := m.Engine().Generation(); g != 0 {
		t.Fatalf("paused model stepped to generation %d", g)
	}

	m = send(t, m, runes(" "))
	m = send(t, m, TickMsg(start.Add(time.Second+250*time.Millisecond)))
	if g := m.Engine().Generation(); g != 2 {
		t.Errorf("generation = %d after 250ms at 10 gen/s, expected 2", g)
	}

	// A long stall is capped by the catch-up bound.
	m = send(t, m, TickMsg(start.Add(10*time.Second)))
	if g := m.Engine().Generation(); g != 2+5 {
		t.Errorf("generation = %d after stall, expected 7", g)
	}
}

func TestSpeedAndSmokeKeys(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, runes("+"), runes("+"))
	if m.Speed() != 12 {
		t.Errorf("speed = %d, expected 12", m.Speed())
	}
	for range 100 {
		m = send(t, m, runes("-"))
	}
	if m.Speed() != core.MinRate {
		t.Errorf("speed = %d, expected %d", m.Speed(), core.MinRate)
	}

	m = send(t, m, runes("]"))
	if s := m.Engine().SmokeSteps(); s != 4 {
		t.Errorf("smoke = %d, expected 4", s)
	}
	for range 10 {
		m = send(t, m, runes("["))
	}
	if s := m.Engine().SmokeSteps(); s != 0 {
		t.Errorf("smoke = %d, expected 0", s)
	}
}

func TestWrapRandomizeClear(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, runes("w"))
	if m.Engine().Wrap() {
		t.Error("w should switch to bounded topology")
	}

	m = send(t, m, runes("r"))
	if m.Engine().CountAlive() == 0 {
		t.Error("r should populate the board")
	}

	m = send(t, m, runes("c"))
	if m.Engine().CountAlive() != 0 {
		t.Error("c should clear the board")
	}

	m = send(t, m, runes("s"), runes("N"))
	if g := m.Engine().Generation(); g != 0 {
		t.Errorf("noise fill should reset the generation, got %d", g)
	}
}

func TestPatternCycleAndStamp(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, runes("p"))
	if m.Engine().CountAlive() != 0 {
		t.Fatal("stamp with no pattern selected should do nothing")
	}

	for m.Pattern() != life.PatternGlider {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	m = send(t, m, runes("h"), runes("h"), runes("h"), runes("p"))
	if got := m.Engine().CountAlive(); got != 5 {
		t.Errorf("population after glider stamp = %d, expected 5", got)
	}
}

func TestGrowAndShrinkPreserve(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, runes("x"))
	c := m.Cursor()

	m = send(t, m, runes(">"))
	e := m.Engine()
	if e.Cols() != 30 || e.Rows() != 25 {
		t.Fatalf("grown board = %dx%d, expected 30x25", e.Cols(), e.Rows())
	}
	if !e.Alive(c.X, c.Y) {
		t.Error("grow should preserve cells")
	}

	m = send(t, m, runes("<"), runes("<"))
	e = m.Engine()
	if e.Cols() != life.MinCols || e.Rows() != 15 {
		t.Errorf("shrunk board = %dx%d, expected %dx15", e.Cols(), e.Rows(), life.MinCols)
	}
	if cur := m.Cursor(); cur.X >= e.Cols() || cur.Y >= e.Rows() {
		t.Errorf("cursor %v left the board", cur)
	}
}

func TestSaveBrowseLoad(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "life.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m = send(t, m, runes("x"), tea.KeyMsg{Type: tea.KeyCtrlS})
	if _, err := store.LoadBoard("test"); err != nil {
		t.Fatalf("board was not saved: %v", err)
	}

	m = send(t, m, runes("c"))
	if m.Engine().CountAlive() != 0 {
		t.Fatal("clear failed")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	if !strings.Contains(m.View(), "test") {
		t.Error("browser should list the saved board")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Engine().CountAlive() != 1 {
		t.Errorf("loaded population = %d, expected 1", m.Engine().CountAlive())
	}
}

func TestQuitRecordsRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "life.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m = send(t, m, runes("r"), runes("s"), runes("s"), runes("s"))

	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("quitting view = %q, expected empty", v)
	}

	runs, err := store.TopRuns(1)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Generations != 3 {
		t.Errorf("recorded runs = %+v", runs)
	}
}

func TestViewShowsStatus(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	v := m.View()
	for _, want := range []string{"gen 0", "pop 0", "20x20", "10 gen/s", "smoke 3", "wrap", "paused"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSeedBoard(t *testing.T) {
	cfg := config.DefaultLifeConfig()

	e := life.New(20, 20, 3, life.WithSeed(1))
	SeedBoard(e, cfg)
	if got := e.CountAlive(); got != 5 {
		t.Fatalf("glider start: alive = %d, expected 5", got)
	}
	// Glider offsets (1,0) (2,1) (0,2) (1,2) (2,2) anchored at (1,1).
	for _, p := range []core.Point{core.P(2, 1), core.P(3, 2), core.P(1, 3), core.P(2, 3), core.P(3, 3)} {
		if !e.Alive(p.X, p.Y) {
			t.Errorf("glider start: cell %v should be alive", p)
		}
	}

	cfg.Board.Start = config.StartEmpty
	e = life.New(20, 20, 3, life.WithSeed(1))
	SeedBoard(e, cfg)
	if got := e.CountAlive(); got != 0 {
		t.Errorf("empty start: alive = %d, expected 0", got)
	}

	cfg.Board.Start = config.StartRandom
	cfg.Simulation.Density = 0.5
	e = life.New(20, 20, 3, life.WithSeed(1))
	SeedBoard(e, cfg)
	if got := e.CountAlive(); got < 100 || got > 300 {
		t.Errorf("random start: alive = %d, expected roughly half of 400", got)
	}
}

func TestViewDrawsPatternPreview(t *testing.T) {
	m := newTestModel(t, nil)
	for m.Pattern() != life.PatternGlider {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	m.View()

	c := m.cursor
	// Glider offsets relative to the cursor; the origin stays at 0,0 on a 20x20 board.
	for _, off := range []core.Point{core.P(1, 0), core.P(2, 1), core.P(0, 2), core.P(1, 2), core.P(2, 2)} {
		p := c.Add(off)
		if got := m.screen.GetCell(p.X, p.Y); got.Rune != '░' || got.Color != core.ColorCyan {
			t.Errorf("preview cell %v = %+v, expected cyan shade", p, got)
		}
	}
	if got := m.screen.GetCell(c.X, c.Y); got.Color != core.ColorBrightYellow {
		t.Errorf("cursor cell = %+v, expected bright yellow", got)
	}
	if m.Engine().CountAlive() != 0 {
		t.Error("drawing the preview must not change the board")
	}
}
