package session

import "github.com/llehouerou/reel/internal/player"

// StateChange is emitted when the player state changes.
type StateChange struct {
	Previous player.State
	Current  player.State
}

// TrackChange is emitted when a different item starts playing.
//
// Emitted by Next, Previous, PlayKey and auto-advance, only after the
// player accepted the file. Failed attempts emit ErrorEvent instead.
type TrackChange struct {
	Key   string
	Path  string
	Title string
}

// ModeChange is emitted when loop, shuffle or replacement is toggled.
type ModeChange struct {
	Loop            bool
	Shuffle         bool
	WithReplacement bool
}

// ErrorEvent is emitted when an operation fails.
type ErrorEvent struct {
	Operation string // e.g. "play", "delete"
	Path      string
	Err       error
}
