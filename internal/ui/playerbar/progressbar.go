package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/reel/internal/player"
	"github.com/llehouerou/reel/internal/ui"
	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

const (
	filledBlock = "━"
	emptyBlock  = "─"
)

// RenderProgressBar renders a progress bar with surrounding times.
// Format: ▶  1:23  ━━━━━─────  4:56
func RenderProgressBar(position, duration time.Duration, width int, st player.State) string {
	status := statusSymbol(st)
	posStr := render.Duration(position)
	durStr := render.Duration(duration)

	fixedWidth := lipgloss.Width(status) + 2 + lipgloss.Width(posStr) + 2 + 2 + lipgloss.Width(durStr)
	barWidth := width - fixedWidth
	if barWidth < ui.MinProgressBarWidth {
		return status + "  " + posStr + " / " + durStr
	}

	var ratio float64
	if duration > 0 {
		ratio = float64(position) / float64(duration)
	}
	filled := min(max(int(float64(barWidth)*ratio), 0), barWidth)

	s := styles.T().S()
	bar := s.Playing.Render(strings.Repeat(filledBlock, filled)) +
		s.Subtle.Render(strings.Repeat(emptyBlock, barWidth-filled))
	return status + "  " + posStr + "  " + bar + "  " + durStr
}
