// internal/player/state.go
package player

// State represents the playback state machine.
//
//	Stopped --play--> Playing --pause--> Paused
//	   ^                 |                  |
//	   +------stop-------+------stop--------+
//
// Toggle() cycles Playing <-> Paused and is a no-op when Stopped.
// A file playing to its end moves the backend back to Stopped.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
