package playlistpanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

const playingSymbol = "\u25B6" // ▶

// View renders the panel.
func (m Model) View() string {
	if m.Empty() {
		return ""
	}

	innerWidth := m.InnerWidth()
	header := m.renderHeader(innerWidth)
	lines := m.renderList(innerWidth, m.BodyHeight())

	content := header + "\n" + render.Separator(innerWidth) + "\n" + lines
	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

func (m Model) renderHeader(innerWidth int) string {
	s := styles.T().S()
	left := fmt.Sprintf("Playlist (%d)", m.total)
	if m.filter != "" {
		left = fmt.Sprintf("Playlist (%d/%d) /%s", len(m.keys), m.total, m.filter)
	}
	right := fmt.Sprintf("%d played", len(m.played))

	left = render.Truncate(left, max(innerWidth-lipgloss.Width(right)-1, 0))
	return render.Row(s.Header.Render(left), s.Muted.Render(right), innerWidth)
}

func (m Model) renderList(innerWidth, height int) string {
	if len(m.keys) == 0 {
		msg := "Empty folder"
		if m.filter != "" {
			msg = "No match for " + m.filter
		}
		lines := []string{styles.T().S().Subtle.Render(render.TruncateAndPad(msg, innerWidth))}
		for len(lines) < height {
			lines = append(lines, render.EmptyLine(innerWidth))
		}
		return strings.Join(lines, "\n")
	}

	lines := make([]string, 0, height)
	for i := range height {
		idx := m.offset + i
		if idx >= len(m.keys) {
			lines = append(lines, render.EmptyLine(innerWidth))
			continue
		}
		lines = append(lines, m.renderLine(idx, innerWidth))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderLine(idx, width int) string {
	key := m.keys[idx]
	prefix := "  "
	if key == m.current {
		prefix = playingSymbol + " "
	}
	line := prefix + render.TruncateAndPad(key, width-2)
	return m.lineStyle(idx, key).Render(line)
}

func (m Model) lineStyle(idx int, key string) lipgloss.Style {
	s := styles.T().S()
	_, played := m.played[key]
	isCursor := idx == m.pos && m.IsFocused()
	isPlaying := key == m.current

	switch {
	case isCursor && isPlaying:
		return s.Cursor.Inherit(s.Playing)
	case isCursor && played:
		return s.Cursor.Inherit(s.Muted)
	case isCursor:
		return s.Cursor
	case isPlaying:
		return s.Playing
	case played:
		return s.Muted
	default:
		return s.Base
	}
}
