// internal/player/interface.go
package player

import (
	"errors"
	"time"
)

var (
	// ErrUnsupportedFormat is returned by backends that cannot decode a file.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrNoBackend is returned when a requested backend is not built in.
	ErrNoBackend = errors.New("playback backend not available")
)

// Interface defines the player contract for dependency injection and testing.
//
// Play replaces whatever is loaded. FinishedChan receives once each time a
// file plays to its end; it is not signalled by Stop or by Play replacing
// the current file.
type Interface interface {
	Play(path string) error
	Stop()
	Toggle()
	Seek(delta time.Duration)
	SetVolume(percent int)
	Volume() int
	State() State
	Position() time.Duration
	Duration() time.Duration
	FinishedChan() <-chan struct{}
	Close() error
}

// dropFinished discards an end signal left over from the previous file.
func dropFinished(ch chan struct{}) {
	select {
	case <-ch:
	default:
	}
}

// clampVolume bounds a volume to 0..100 percent.
func clampVolume(percent int) int {
	return max(0, min(percent, 100))
}
