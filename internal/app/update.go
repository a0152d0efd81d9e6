package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/ui/action"
	"github.com/llehouerou/reel/internal/ui/filterbar"
	"github.com/llehouerou/reel/internal/ui/helpbindings"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case TickMsg:
		m.Session.Tick(time.Time(msg))
		m.refresh()
		return m, TickCmd(m.opts.Tick)

	case TrackChangedMsg:
		m.refresh()
		m.Panel.JumpCurrent()
		return m, tea.Batch(
			tea.SetWindowTitle(windowTitle(msg.Title)),
			m.NotifyTrackCmd(msg.Title),
			m.WatchSessionEvents(),
		)

	case StateChangedMsg, ModeChangedMsg:
		m.refresh()
		return m, m.WatchSessionEvents()

	case SessionErrorMsg:
		m.logger.Debug("session error", "op", msg.Operation, "path", msg.Path, "err", msg.Err)
		return m, m.WatchSessionEvents()

	case SessionClosedMsg:
		return m, nil

	case action.Msg:
		return m.handleUIAction(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Cursor blink and other input internals.
	if m.Filter.Active() {
		var cmd tea.Cmd
		m.Filter, cmd = m.Filter.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleUIAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case filterbar.Changed:
		m.Session.SetFilter(a.Text)
		m.refresh()
		m.Panel.JumpStart()
	case filterbar.Done:
		if a.Canceled {
			m.Session.SetFilter("")
		}
		m.refresh()
		m.Panel.SetFocused(true)
	case helpbindings.Close:
		m.ShowHelp = false
	}
	return m, nil
}

// resize distributes the terminal height between the components.
func (m *Model) resize() {
	m.Panel.SetSize(m.Width, m.panelHeight())
	m.Help.SetSize(m.Width, m.panelHeight())
	m.Filter.SetWidth(m.Width)
}
