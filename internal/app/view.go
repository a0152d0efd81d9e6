package app

import (
	"strings"

	"github.com/llehouerou/reel/internal/ui/filterbar"
	"github.com/llehouerou/reel/internal/ui/headerbar"
	"github.com/llehouerou/reel/internal/ui/playerbar"
	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// statusHeight is the single status line under the player bar.
const statusHeight = 1

func (m Model) panelHeight() int {
	return max(m.Height-headerbar.Height-filterbar.Height-playerbar.Height-statusHeight, 0)
}

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	header := headerbar.Render(headerbar.State{
		Folder:   m.snap.Folder,
		Count:    m.snap.Count,
		Scanning: m.snap.Scanning,
		Checking: m.snap.Checking,
	}, m.Width)

	body := m.Panel.View()
	if m.ShowHelp {
		body = m.Help.View()
	}

	return strings.Join([]string{
		header,
		body,
		m.Filter.View(),
		playerbar.Render(playerbar.NewState(m.snap), m.Width),
		m.renderStatus(),
	}, "\n")
}

// renderStatus shows the last app error, or else the session status.
func (m Model) renderStatus() string {
	s := styles.T().S()
	if m.ErrorMsg != "" {
		return s.Error.Render(render.TruncateAndPad(m.ErrorMsg, m.Width))
	}
	return s.Muted.Render(render.TruncateAndPad(m.snap.Status, m.Width))
}
