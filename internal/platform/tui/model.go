package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/seed"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// Resize increments for the grow and shrink keys.
const (
	growCols = 10
	growRows = 5
)

// Options configures a Model.
type Options struct {
	Config  config.LifeConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // optional; saving and browsing are disabled without it
	Logger  *log.Logger
	Name    string // board name used by save; a timestamped name when empty
}

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	runningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	pausedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	flashStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("14"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for the simulator screen. It owns the
// engine for its session and drives it from key presses and frame ticks.
type Model struct {
	engine  *life.Engine
	cfg     config.LifeConfig
	runtime core.RuntimeConfig
	screen  *core.Screen
	pacer   *core.Pacer
	fps     *core.FPSMeter
	tracker *storage.RunTracker
	store   *storage.Store
	logger  *log.Logger
	keys    KeyMap
	help    help.Model
	style   BoardStyle
	name    string

	width, height int
	cursor        core.Point
	origin        core.Point // board cell shown at the top-left of the view
	patterns      []string   // "" selects no pattern
	patternIdx    int
	running       bool
	noiseFills    int64
	flash         string

	browser  *BrowserModel
	quitting bool
}

// NewModel creates a presenter for engine.
func NewModel(engine *life.Engine, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		d := core.DefaultConfig()
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = d.ScreenW, d.ScreenH
	}

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	m := Model{
		engine:   engine,
		cfg:      opts.Config,
		runtime:  opts.Runtime,
		screen:   core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		pacer:    core.NewPacer(opts.Config.Simulation.Speed, opts.Config.Simulation.MaxCatchUp),
		fps:      &core.FPSMeter{},
		tracker:  storage.NewRunTracker(engine.Cols(), engine.Rows(), engine.Wrap()),
		store:    opts.Store,
		logger:   opts.Logger,
		keys:     DefaultKeyMap(),
		help:     h,
		style:    StyleFromConfig(opts.Config.Display),
		name:     opts.Name,
		width:    opts.Runtime.ScreenW,
		height:   opts.Runtime.ScreenH,
		cursor:   core.P(engine.Cols()/2, engine.Rows()/2),
		patterns: append([]string{""}, registry.Names()...),
	}
	m.follow()
	return m
}

// SeedBoard fills a fresh engine according to cfg.Board.Start. The glider
// start falls back to a random fill when no glider pattern is registered.
func SeedBoard(e *life.Engine, cfg config.LifeConfig) {
	switch cfg.Board.Start {
	case config.StartEmpty:
	case config.StartRandom:
		e.Randomize(cfg.Simulation.Density)
	default:
		if !registry.Exists(life.PatternGlider) {
			e.Randomize(cfg.Simulation.Density)
			return
		}
		e.StampPattern(life.PatternGlider, 1, 1)
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.browser != nil {
		return m.updateBrowser(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.apply(m.keys.Action(msg))

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.follow()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleTick advances the simulation by however many generations the
// pacer allows for this frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for range m.pacer.Steps(now, m.running) {
		m.advance()
	}
	m.fps.Frame(now)
	return m, tickCmd(m.runtime.TickRate)
}

func (m *Model) advance() {
	m.engine.Advance()
	m.tracker.Observe(m.engine.CountAlive())
}

// apply performs a single presenter action.
func (m Model) apply(action core.Action) (tea.Model, tea.Cmd) {
	m.flash = ""
	e := m.engine

	switch action {
	case core.ActionQuit:
		m.recordRun()
		m.quitting = true
		return m, tea.Quit

	case core.ActionTogglePlay:
		m.running = !m.running

	case core.ActionStep:
		if !m.running {
			m.advance()
		}

	case core.ActionRandomize:
		e.Randomize(m.cfg.Simulation.Density)

	case core.ActionNoise:
		m.noiseFills++
		sim := m.cfg.Simulation
		e.Fill(seed.Perlin(m.noiseSeed(), sim.NoiseScale, sim.NoiseLevel))

	case core.ActionClear:
		e.Clear()

	case core.ActionToggleWrap:
		e.SetWrap(!e.Wrap())
		m.tracker.Resize(e.Cols(), e.Rows(), e.Wrap())

	case core.ActionToggleGrid:
		m.style.ShowGrid = !m.style.ShowGrid

	case core.ActionFaster:
		m.pacer.SetRate(m.pacer.Rate() + 1)

	case core.ActionSlower:
		m.pacer.SetRate(m.pacer.Rate() - 1)

	case core.ActionMoreSmoke:
		e.SetSmokeSteps(e.SmokeSteps() + 1)

	case core.ActionLessSmoke:
		e.SetSmokeSteps(e.SmokeSteps() - 1)

	case core.ActionUp:
		m.moveCursor(0, -1)
	case core.ActionDown:
		m.moveCursor(0, 1)
	case core.ActionLeft:
		m.moveCursor(-1, 0)
	case core.ActionRight:
		m.moveCursor(1, 0)

	case core.ActionToggleCell:
		e.Toggle(m.cursor.X, m.cursor.Y)

	case core.ActionEraseCell:
		e.Paint(m.cursor.X, m.cursor.Y, false)

	case core.ActionNextPattern:
		m.patternIdx = (m.patternIdx + 1) % len(m.patterns)

	case core.ActionStamp:
		if name := m.Pattern(); name != "" {
			e.StampPattern(name, m.cursor.X, m.cursor.Y)
		} else {
			m.flash = "no pattern selected (tab)"
		}

	case core.ActionGrow:
		m.resize(e.Cols()+growCols, e.Rows()+growRows)

	case core.ActionShrink:
		m.resize(e.Cols()-growCols, e.Rows()-growRows)

	case core.ActionSave:
		m.save()

	case core.ActionBrowse:
		if m.store == nil {
			m.flash = "no board database"
			break
		}
		b := NewBrowserModel(m.store, m.width, m.height)
		m.browser = &b
		m.running = false

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.follow()
	}

	return m, nil
}

func (m *Model) moveCursor(dx, dy int) {
	m.cursor.X = core.Clamp(m.cursor.X+dx, 0, m.engine.Cols()-1)
	m.cursor.Y = core.Clamp(m.cursor.Y+dy, 0, m.engine.Rows()-1)
	m.follow()
}

func (m *Model) resize(cols, rows int) {
	m.engine.SetSize(cols, rows, m.cfg.Board.PreserveOnResize)
	m.tracker.Resize(m.engine.Cols(), m.engine.Rows(), m.engine.Wrap())
	m.moveCursor(0, 0)
}

func (m *Model) noiseSeed() int64 {
	if m.runtime.Seed != 0 {
		return m.runtime.Seed + m.noiseFills
	}
	return time.Now().UnixNano()
}

func (m *Model) save() {
	if m.store == nil {
		m.flash = "no board database"
		return
	}
	name := m.name
	if name == "" {
		name = "board-" + time.Now().Format("20060102-150405")
	}
	if _, err := m.store.SaveBoard(name, m.engine.Snapshot()); err != nil {
		m.logger.Warn("could not save board", "name", name, "error", err)
		m.flash = "save failed"
		return
	}
	m.logger.Debug("board saved", "name", name)
	m.flash = "saved " + name
}

func (m *Model) recordRun() {
	run := m.tracker.Run()
	if m.store == nil || run.Generations == 0 {
		return
	}
	if _, err := m.store.RecordRun(run); err != nil {
		m.logger.Warn("could not record run", "error", err)
	}
}

// updateBrowser routes messages to the open board browser and applies its
// selection when it closes.
func (m Model) updateBrowser(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = wsm.Width, wsm.Height
		m.screen.Resize(wsm.Width, wsm.Height)
		m.help.Width = wsm.Width
	}
	if tick, ok := msg.(TickMsg); ok {
		// Keep the frame loop alive; the simulation is paused while browsing.
		return m.handleTick(time.Time(tick))
	}

	b, cmd := m.browser.Update(msg)
	if b.IsQuitting() {
		m.browser = nil
		return m.apply(core.ActionQuit)
	}
	if !b.Done() {
		m.browser = &b
		return m, cmd
	}

	m.browser = nil
	if name := b.Selected(); name != "" {
		m.load(name)
	}
	return m, cmd
}

func (m *Model) load(name string) {
	board, err := m.store.LoadBoard(name)
	if err != nil {
		m.logger.Warn("could not load board", "name", name, "error", err)
		m.flash = "load failed"
		return
	}
	board.Restore(m.engine)
	m.tracker.Resize(m.engine.Cols(), m.engine.Rows(), m.engine.Wrap())
	m.name = name
	m.moveCursor(0, 0)
	m.flash = "loaded " + name
}

// boardArea returns the screen rectangle available to the board.
func (m Model) boardArea() core.Rect {
	reserved := 1 + strings.Count(m.help.View(m.keys), "\n") + 1
	return core.NewRect(0, 0, max(m.width, 1), max(m.height-reserved, 1))
}

// follow scrolls the view so that the cursor stays visible.
func (m *Model) follow() {
	area := m.boardArea()
	if m.cursor.X < m.origin.X {
		m.origin.X = m.cursor.X
	} else if m.cursor.X >= m.origin.X+area.W {
		m.origin.X = m.cursor.X - area.W + 1
	}
	if m.cursor.Y < m.origin.Y {
		m.origin.Y = m.cursor.Y
	} else if m.cursor.Y >= m.origin.Y+area.H {
		m.origin.Y = m.cursor.Y - area.H + 1
	}
	m.origin.X = core.Clamp(m.origin.X, 0, max(m.engine.Cols()-area.W, 0))
	m.origin.Y = core.Clamp(m.origin.Y, 0, max(m.engine.Rows()-area.H, 0))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.browser != nil {
		return m.browser.View()
	}

	area := m.boardArea()
	m.screen.Resize(area.W, area.H)
	m.screen.Clear()
	DrawBoard(m.screen, m.engine, area, m.origin, m.style)
	m.drawOverlay()

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// drawOverlay draws the pattern preview and the cursor over the board.
func (m Model) drawOverlay() {
	view := core.NewRect(m.origin.X, m.origin.Y, m.screen.Width(), m.screen.Height())

	if name := m.Pattern(); name != "" {
		if p, ok := registry.Lookup(name); ok {
			b := p.Bounds()
			b.X += m.cursor.X
			b.Y += m.cursor.Y
			if view.Intersects(b) {
				for _, off := range p.Points {
					pt := m.cursor.Add(off)
					if !view.Contains(pt.X, pt.Y) || !m.engine.InBounds(pt.X, pt.Y) || m.engine.Alive(pt.X, pt.Y) {
						continue
					}
					m.screen.SetCell(pt.X-m.origin.X, pt.Y-m.origin.Y, '░', core.ColorCyan)
				}
			}
		}
	}

	sx, sy := m.cursor.X-m.origin.X, m.cursor.Y-m.origin.Y
	r := '+'
	if m.engine.Alive(m.cursor.X, m.cursor.Y) {
		r = m.style.Alive
	}
	m.screen.SetCell(sx, sy, r, core.ColorBrightYellow)
}

func (m Model) statusLine() string {
	e := m.engine

	state := pausedStyle.Render("paused")
	if m.running {
		state = runningStyle.Render("running")
	}

	topology := "bounded"
	if e.Wrap() {
		topology = "wrap"
	}

	pattern := m.Pattern()
	if pattern == "" {
		pattern = "none"
	}

	info := fmt.Sprintf("gen %d  pop %d  %dx%d  %d gen/s  smoke %d  %s  pattern %s  %d fps",
		e.Generation(), e.CountAlive(), e.Cols(), e.Rows(), m.pacer.Rate(),
		e.SmokeSteps(), topology, pattern, m.fps.FPS())

	line := state + "  " + statusStyle.Render(info)
	if m.flash != "" {
		line += "  " + flashStyle.Render(m.flash)
	}
	return line
}

// Engine returns the engine driven by the model.
func (m Model) Engine() *life.Engine { return m.engine }

// Running reports whether the simulation is playing.
func (m Model) Running() bool { return m.running }

// Cursor returns the board cell under the cursor.
func (m Model) Cursor() core.Point { return m.cursor }

// Pattern returns the selected pattern name, or "" when none is selected.
func (m Model) Pattern() string { return m.patterns[m.patternIdx] }

// Speed returns the current tempo in generations per second.
func (m Model) Speed() int { return m.pacer.Rate() }

// Run starts the Bubble Tea program with the given model.
func Run(m Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
