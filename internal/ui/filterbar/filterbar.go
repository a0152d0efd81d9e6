// Package filterbar is the one-line filter input under the playlist.
package filterbar

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/keymap"
	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// Height is the fixed height of the bar.
const Height = 1

// Model wraps a text input. The app owns whether it is active.
type Model struct {
	input  textinput.Model
	active bool
	width  int
}

// New creates an inactive filter bar.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter..."
	ti.CharLimit = 256
	return Model{input: ti}
}

// Active reports whether the input has focus.
func (m Model) Active() bool { return m.active }

// Value returns the current text.
func (m Model) Value() string { return m.input.Value() }

// SetWidth sets the rendered width.
func (m *Model) SetWidth(width int) {
	m.width = width
	m.input.Width = max(width-2, 1)
}

// Start focuses the input, keeping the filter currently applied.
func (m *Model) Start(text string) tea.Cmd {
	m.active = true
	m.input.SetValue(text)
	m.input.CursorEnd()
	return m.input.Focus()
}

// Reset blurs and clears the input.
func (m *Model) Reset() {
	m.active = false
	m.input.Blur()
	m.input.SetValue("")
}

// Update handles keys while the input is active. Every edit emits Changed so
// the playlist narrows as the user types.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.Reset()
			return m, func() tea.Msg { return ActionMsg(Done{Canceled: true}) }
		case tea.KeyEnter:
			text := m.input.Value()
			m.active = false
			m.input.Blur()
			return m, func() tea.Msg { return ActionMsg(Done{Text: text}) }
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		changed := func() tea.Msg { return ActionMsg(Changed{Text: after}) }
		return m, tea.Batch(cmd, changed)
	}
	return m, cmd
}

// View renders the bar: the live input while editing, the applied filter
// otherwise, or a hint when nothing is filtered.
func (m Model) View() string {
	if m.width <= 0 {
		return ""
	}
	if m.active {
		return m.input.View()
	}
	s := styles.T().S()
	if v := m.input.Value(); v != "" {
		return s.Muted.Render("/") + s.Base.Render(render.TruncateAndPad(v, m.width-1))
	}
	return s.Subtle.Render(render.TruncateAndPad(hint(), m.width))
}

func hint() string {
	keys := keymap.Default()
	return keys.Primary(keymap.ActionFilter) + " filter   " +
		keys.Primary(keymap.ActionHelp) + " help"
}
