// Package playlistpanel renders the scrollable list of playlist entries.
package playlistpanel

import (
	"slices"

	"github.com/llehouerou/reel/internal/ui"
)

// Model holds the visible keys and the cursor over them.
type Model struct {
	ui.Frame
	keys    []string
	played  map[string]struct{}
	current string
	total   int
	filter  string

	pos    int
	offset int
}

// New creates an empty, focused panel.
func New() Model {
	m := Model{played: map[string]struct{}{}}
	m.SetFocused(true)
	return m
}

// Contents is what the panel displays.
type Contents struct {
	Keys    []string // visible keys, in display order
	Current string   // key playing now
	History []string // keys played in this pass
	Total   int      // playlist size before filtering
	Filter  string
}

// SetContents replaces the displayed keys. The cursor stays on the same key
// when it is still visible.
func (m *Model) SetContents(c Contents) {
	selected, hadSelection := m.Selected()

	m.keys = c.Keys
	m.current = c.Current
	m.total = c.Total
	m.filter = c.Filter
	clear(m.played)
	for _, k := range c.History {
		m.played[k] = struct{}{}
	}

	if hadSelection {
		if idx := slices.Index(m.keys, selected); idx >= 0 {
			m.pos = idx
		}
	}
	m.clamp()
}

// SetSize sets the panel dimensions and keeps the cursor visible.
func (m *Model) SetSize(width, height int) {
	m.Frame.SetSize(width, height)
	m.clamp()
}

// Len returns the number of visible keys.
func (m Model) Len() int { return len(m.keys) }

// Selected returns the key under the cursor.
func (m Model) Selected() (string, bool) {
	if m.pos < 0 || m.pos >= len(m.keys) {
		return "", false
	}
	return m.keys[m.pos], true
}

// Cursor returns the cursor index and the first visible index.
func (m Model) Cursor() (pos, offset int) { return m.pos, m.offset }

// Move moves the cursor by delta entries.
func (m *Model) Move(delta int) {
	m.pos += delta
	m.clamp()
}

// JumpStart moves the cursor to the first entry.
func (m *Model) JumpStart() {
	m.pos = 0
	m.offset = 0
}

// JumpEnd moves the cursor to the last entry.
func (m *Model) JumpEnd() {
	m.pos = len(m.keys) - 1
	m.clamp()
}

// JumpCurrent moves the cursor to the playing entry and centers it.
// Returns false when the playing entry is not visible.
func (m *Model) JumpCurrent() bool {
	idx := slices.Index(m.keys, m.current)
	if idx < 0 {
		return false
	}
	m.pos = idx
	m.offset = max(idx-m.BodyHeight()/2, 0)
	m.clamp()
	return true
}

// clamp bounds the cursor and scrolls so it stays ScrollMargin entries away
// from the panel edges.
func (m *Model) clamp() {
	n := len(m.keys)
	if n == 0 {
		m.pos, m.offset = 0, 0
		return
	}
	m.pos = min(max(m.pos, 0), n-1)

	height := m.BodyHeight()
	if height <= 0 {
		return
	}
	margin := min(ui.ScrollMargin, (height-1)/2)
	if m.pos < m.offset+margin {
		m.offset = m.pos - margin
	}
	if m.pos >= m.offset+height-margin {
		m.offset = m.pos - height + margin + 1
	}
	m.offset = min(max(m.offset, 0), max(n-height, 0))
}
