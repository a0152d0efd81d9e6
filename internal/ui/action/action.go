// Package action defines how UI components report user intents to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is an intent emitted by a UI component.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the component that emitted it.
type Msg struct {
	Source string // "filterbar", "helpbindings"
	Action Action
}

var _ tea.Msg = Msg{}
