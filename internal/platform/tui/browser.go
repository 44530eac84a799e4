package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/storage"
)

// BrowserKeyMap defines the key bindings for the board browser.
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Load   key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Load, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Load, k.Delete},
		{k.Back, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Load: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "load"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel lists saved boards and lets the user pick one to load.
// It runs inside the simulator Model, which applies the selection.
type BrowserModel struct {
	store    *storage.Store
	boards   []storage.BoardInfo
	table    table.Model
	help     help.Model
	keys     BrowserKeyMap
	width    int
	height   int
	selected string
	done     bool
	quitting bool
	err      error
}

// NewBrowserModel creates a browser over the boards in store.
func NewBrowserModel(store *storage.Store, width, height int) BrowserModel {
	m := BrowserModel{
		store:  store,
		keys:   DefaultBrowserKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadBoards()
	return m
}

// createTable creates a new table sized to the window.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Size", Width: 9},
		{Title: "Pop", Width: 7},
		{Title: "Gen", Width: 7},
		{Title: "Saved", Width: 14},
	}

	// Give any extra width to the name column
	if extra := m.width - 4 - 67; extra > 0 {
		columns[0].Width += min(extra, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadBoards reloads the board list from the store.
func (m *BrowserModel) loadBoards() {
	m.boards, m.err = nil, nil
	if m.store != nil {
		m.boards, m.err = m.store.ListBoards()
	}

	rows := make([]table.Row, len(m.boards))
	for i, b := range m.boards {
		rows[i] = table.Row{
			b.Name,
			fmt.Sprintf("%dx%d", b.Cols, b.Rows),
			fmt.Sprintf("%d", b.Population),
			fmt.Sprintf("%d", b.Generation),
			b.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.SetCursor(min(m.table.Cursor(), max(len(rows)-1, 0)))
}

// current returns the highlighted board name, or "" when the list is empty.
func (m BrowserModel) current() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.boards) {
		return ""
	}
	return m.boards[i].Name
}

// Init initializes the browser.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (BrowserModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.done = true
			return m, nil

		case key.Matches(msg, m.keys.Load):
			if name := m.current(); name != "" {
				m.selected = name
				m.done = true
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if name := m.current(); name != "" {
				m.err = m.store.DeleteBoard(name)
				if m.err == nil {
					m.loadBoards()
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadBoards()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("SAVED BOARDS"))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	switch {
	case m.err != nil:
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString(errStyle.Render("Error: " + m.err.Error()))
	case len(m.boards) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No saved boards yet.\nPress ctrl+s on the board to save one.")))
	default:
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Done reports whether the browser has closed.
func (m BrowserModel) Done() bool { return m.done }

// Selected returns the board chosen for loading, or "" if none was.
func (m BrowserModel) Selected() string { return m.selected }

// IsQuitting returns true if user wants to quit entirely.
func (m BrowserModel) IsQuitting() bool { return m.quitting }
