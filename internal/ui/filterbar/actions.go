package filterbar

import "github.com/llehouerou/reel/internal/ui/action"

// Changed reports the current filter text after an edit.
type Changed struct {
	Text string
}

// ActionType implements action.Action.
func (Changed) ActionType() string { return "filterbar.changed" }

// Done reports that editing ended. Canceled is set when the filter was
// cleared with esc rather than confirmed with enter.
type Done struct {
	Text     string
	Canceled bool
}

// ActionType implements action.Action.
func (Done) ActionType() string { return "filterbar.done" }

// ActionMsg creates an action.Msg for a filterbar action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "filterbar", Action: a}
}
