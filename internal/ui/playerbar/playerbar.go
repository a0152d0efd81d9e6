// Package playerbar renders the now-playing bar: title, progress, volume
// and the auto-play flags.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/reel/internal/player"
	"github.com/llehouerou/reel/internal/session"
	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// Height is the bar height: two content rows plus borders.
const Height = 4

const (
	playSymbol  = "\u25B6" // ▶
	pauseSymbol = "\u23F8" // ⏸
	stopSymbol  = "\u25A0" // ■
)

// State holds everything needed to render the bar.
type State struct {
	Title    string
	Player   player.State
	Position time.Duration
	Duration time.Duration
	Volume   int
	Plays    int

	Loop            bool
	Shuffle         bool
	WithReplacement bool
}

// NewState extracts the bar state from a session snapshot.
func NewState(snap session.Snapshot) State {
	return State{
		Title:           snap.Title,
		Player:          snap.State,
		Position:        snap.Position,
		Duration:        snap.Duration,
		Volume:          snap.Volume,
		Plays:           snap.Plays,
		Loop:            snap.Loop,
		Shuffle:         snap.Shuffle,
		WithReplacement: snap.WithReplacement,
	}
}

// Render returns the bar for the given total width.
func Render(s State, width int) string {
	innerWidth := max(width-6, 0) // border + padding

	flags := renderFlags(s)
	title := s.Title
	if title == "" {
		title = "Nothing playing"
	}
	titleWidth := max(innerWidth-lipgloss.Width(flags)-1, 0)
	top := render.Row(titleStyle().Render(render.Truncate(title, titleWidth)), flags, innerWidth)

	right := fmt.Sprintf("vol %3d%%", s.Volume)
	if s.Plays > 1 {
		right = fmt.Sprintf("played %dx  ", s.Plays) + right
	}
	volume := mutedStyle().Render(right)
	bar := RenderProgressBar(s.Position, s.Duration, innerWidth-lipgloss.Width(volume)-2, s.Player)
	bottom := render.Row(bar, volume, innerWidth)

	return barStyle().Padding(0, 2).Width(width - 2).Render(top + "\n" + bottom)
}

func renderFlags(s State) string {
	flag := func(label string, on bool) string {
		if on {
			return styles.T().S().FlagOn.Render(label)
		}
		return styles.T().S().FlagOff.Render(label)
	}
	return strings.Join([]string{
		flag("loop", s.Loop),
		flag("shuffle", s.Shuffle),
		flag("repeat", s.WithReplacement),
	}, " ")
}

func statusSymbol(st player.State) string {
	switch st {
	case player.Playing:
		return playSymbol
	case player.Paused:
		return pauseSymbol
	default:
		return stopSymbol
	}
}

func barStyle() lipgloss.Style {
	return styles.PanelStyle(false)
}

func titleStyle() lipgloss.Style {
	return styles.T().S().Title
}

func mutedStyle() lipgloss.Style {
	return styles.T().S().Muted
}
