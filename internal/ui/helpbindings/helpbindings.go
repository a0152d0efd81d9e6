// Package helpbindings renders a scrollable list of the key bindings.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/reel/internal/keymap"
	"github.com/llehouerou/reel/internal/ui"
	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

var categoryLabels = map[string]string{
	"global":   "Global",
	"playback": "Playback",
	"playlist": "Playlist",
}

// Model holds the state for the help view.
type Model struct {
	ui.Frame
	lines        []string
	scrollOffset int
}

// New creates a help view listing every binding context.
func New() Model {
	m := Model{}
	m.lines = buildLines(keymap.Contexts)
	return m
}

// Update handles scrolling and closing.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		m.scrollOffset = min(m.scrollOffset+1, m.maxScroll())
	case "k", "up":
		m.scrollOffset = max(m.scrollOffset-1, 0)
	case "g", "home":
		m.scrollOffset = 0
	case "G", "end":
		m.scrollOffset = m.maxScroll()
	}
	return m, nil
}

// View renders the visible part of the binding list inside a panel.
func (m Model) View() string {
	if m.Empty() {
		return ""
	}
	innerWidth := m.InnerWidth()
	height := m.visibleHeight()

	footer := "?/esc close"
	if m.maxScroll() > 0 {
		footer = "j/k scroll · " + footer
	}

	out := make([]string, 0, height+ui.HeaderHeight)
	out = append(out,
		render.Row(styles.T().S().Title.Render("Help"), styles.T().S().Subtle.Render(footer), innerWidth),
		render.Separator(innerWidth),
	)
	for i := range height {
		idx := m.scrollOffset + i
		if idx >= len(m.lines) {
			out = append(out, render.EmptyLine(innerWidth))
			continue
		}
		out = append(out, padStyled(m.lines[idx], innerWidth))
	}

	return styles.PanelStyle(true).Width(innerWidth).Render(strings.Join(out, "\n"))
}

// padStyled fits an already styled line to width.
func padStyled(line string, width int) string {
	if w := lipgloss.Width(line); w < width {
		return line + strings.Repeat(" ", width-w)
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

func buildLines(contexts []string) []string {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	headerStyle := styles.T().S().Header

	keyWidth := 0
	for _, b := range keymap.All {
		keyWidth = max(keyWidth, lipgloss.Width(keyLabel(b)))
	}

	var lines []string
	for _, ctx := range contexts {
		bindings := keymap.ByContext(ctx)
		if len(bindings) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		label := categoryLabels[ctx]
		if label == "" {
			label = ctx
		}
		lines = append(lines, headerStyle.Render(label))
		for _, b := range bindings {
			lines = append(lines, keyStyle.Render(render.Pad(keyLabel(b), keyWidth))+"  "+descStyle.Render(b.Description))
		}
	}
	return lines
}

func keyLabel(b keymap.Binding) string {
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		keys[i] = k
	}
	return strings.Join(keys, ", ")
}

func (m Model) visibleHeight() int {
	return max(m.BodyHeight(), 1)
}

func (m Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}
