// Package headerbar renders the single-line title bar.
package headerbar

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// Height is the fixed height of the header bar.
const Height = 1

// State is what the header shows.
type State struct {
	Folder   string
	Count    int
	Scanning bool
	Checking bool
}

var (
	appStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Render returns the header for the given width.
func Render(s State, width int) string {
	if width < 20 {
		return ""
	}
	st := styles.T().S()

	var right string
	switch {
	case s.Checking:
		right = st.Warning.Render("checking duplicates")
	case s.Scanning:
		right = st.Warning.Render("scanning " + humanize.Comma(int64(s.Count)))
	default:
		right = st.Muted.Render(humanize.Comma(int64(s.Count)) + " items")
	}

	prefix := appStyle.Render("reel") + separatorStyle.Render(" │ ")
	folderWidth := max(width-lipgloss.Width(prefix)-lipgloss.Width(right)-1, 0)
	folder := s.Folder
	if folder == "" {
		folder = "no folder"
	}
	left := prefix + st.Base.Render(render.Truncate(folder, folderWidth))
	return render.Row(left, right, width)
}
