package session

import (
	"time"

	"github.com/llehouerou/reel/internal/player"
)

// Snapshot is an immutable view of the session for readers outside the
// owning goroutine.
type Snapshot struct {
	Folder   string
	Key      string
	Path     string
	Title    string
	State    player.State
	Position time.Duration
	Duration time.Duration
	Volume   int
	Plays    int // times the current item was played, this one included

	Loop            bool
	Shuffle         bool
	WithReplacement bool

	Filter   string
	Count    int // playlist entries
	Selected int // entries eligible under the filter
	Played   int // history length
	Scanning bool
	Checking bool // duplicate check running
	Status   string
}

// Snapshot returns the last published view. Safe for concurrent use.
func (s *Session) Snapshot() Snapshot {
	s.snapMu.Lock()
	defer s.snapMu.Unlock()
	return s.snap
}

// publish refreshes the snapshot and reports player state transitions,
// including the ones the backend made on its own at end of media.
func (s *Session) publish() {
	snap := Snapshot{
		Folder:          s.folder,
		Key:             s.current,
		Path:            s.path,
		Title:           s.heading,
		State:           s.player.State(),
		Position:        s.player.Position(),
		Duration:        s.player.Duration(),
		Volume:          s.player.Volume(),
		Plays:           s.plays,
		Loop:            s.engine.Loop(),
		Shuffle:         s.engine.Shuffle(),
		WithReplacement: s.engine.WithReplacement(),
		Filter:          s.filter,
		Count:           s.playlist.Len(),
		Selected:        len(s.engine.SelectionSet()),
		Played:          len(s.engine.History()),
		Scanning:        s.scanning,
		Checking:        s.dupesRun != "",
		Status:          s.status,
	}

	prev := s.snap.State
	s.snapMu.Lock()
	s.snap = snap
	s.snapMu.Unlock()

	if prev != snap.State {
		s.emit(func(sub *Subscription) {
			sub.sendState(StateChange{Previous: prev, Current: snap.State})
		})
	}
}
