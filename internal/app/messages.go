package app

import (
	"time"

	"github.com/llehouerou/reel/internal/session"
)

// TickMsg drives Session.Tick and redraws the progress bar.
type TickMsg time.Time

// TrackChangedMsg is sent when a different item starts playing.
type TrackChangedMsg session.TrackChange

// StateChangedMsg is sent when the player state changes.
type StateChangedMsg session.StateChange

// ModeChangedMsg is sent when loop, shuffle or replacement is toggled.
type ModeChangedMsg session.ModeChange

// SessionErrorMsg is sent when a session operation fails.
type SessionErrorMsg session.ErrorEvent

// SessionClosedMsg is sent once the session shuts its subscriptions.
type SessionClosedMsg struct{}
