package listview

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// defaultWidth and defaultHeight are used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model adapts a View to Bubble Tea. It owns the list State and renders the
// list into a buffer sized to the window.
type Model[T Item] struct {
	// view is the list being displayed
	view *View[T]

	// state is the selection and scroll position
	state *State

	// keys maps key presses to navigation
	keys KeyMap

	// help renders the key binding footer
	help     help.Model
	showHelp bool

	// width and height are the window size in cells
	width  int
	height int

	// pageSize is the number of entries drawn by the last render
	pageSize int
}

// NewModel creates a model for view with an initial size of width by height.
// The first item is selected when the list is not empty.
func NewModel[T Item](view *View[T], width, height int) *Model[T] {
	keys := DefaultKeyMap()
	if view.Config.Axis == Horizontal {
		keys = HorizontalKeyMap()
	}
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	m := &Model[T]{
		view:     view,
		state:    NewState(),
		keys:     keys,
		help:     help.New(),
		showHelp: true,
		width:    width,
		height:   height,
		pageSize: 1,
	}
	m.state.SetItemCount(view.ItemCount)
	m.state.SetInfinite(view.Config.InfiniteScrolling)
	m.state.SelectFirst()
	return m
}

// Init initializes the model (required for tea.Model interface).
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles keyboard and resize messages.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKeyMsg processes keyboard input for navigation.
func (m *Model[T]) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Next):
		m.state.SelectNext()
	case key.Matches(msg, m.keys.Previous):
		m.state.SelectPrevious()
	case key.Matches(msg, m.keys.PageDown):
		m.state.SelectBy(m.pageSize)
	case key.Matches(msg, m.keys.PageUp):
		m.state.SelectBy(-m.pageSize)
	case key.Matches(msg, m.keys.First):
		m.state.SelectFirst()
	case key.Matches(msg, m.keys.Last):
		m.state.SelectLast()
	case key.Matches(msg, m.keys.Deselect):
		m.state.Deselect()
	}
	return nil
}

// View renders the list and the help footer.
func (m *Model[T]) View() string {
	footer := ""
	listHeight := m.height
	if m.showHelp {
		footer = m.help.View(m.keys)
		listHeight = max(m.height-lipgloss.Height(footer), 0)
	}

	buf := NewBuffer(NewRect(0, 0, m.width, listHeight))
	entries := m.view.Render(buf.Area, buf, m.state)
	m.pageSize = max(len(entries)-1, 1)

	if footer == "" {
		return buf.String()
	}
	return lipgloss.JoinVertical(lipgloss.Left, buf.String(), footer)
}

// SetShowHelp toggles the help footer.
func (m *Model[T]) SetShowHelp(show bool) {
	m.showHelp = show
}

// State returns the list state.
func (m *Model[T]) State() *State {
	return m.state
}

// ItemCount returns the total number of items in the list.
func (m *Model[T]) ItemCount() int {
	return m.view.ItemCount
}

// Selected returns the currently selected item index and whether one is selected.
func (m *Model[T]) Selected() (int, bool) {
	return m.state.Selected()
}

// Height returns the window height.
func (m *Model[T]) Height() int {
	return m.height
}

// Width returns the window width.
func (m *Model[T]) Width() int {
	return m.width
}
