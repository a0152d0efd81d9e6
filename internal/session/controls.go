package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/llehouerou/reel/internal/actions"
	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/search"
)

// volumeStep is the change applied by VolumeUp and VolumeDown.
const volumeStep = 5

// TogglePause pauses or resumes. When nothing is loaded it starts playback.
func (s *Session) TogglePause() {
	if !s.player.State().IsActive() {
		s.Next()
		return
	}
	s.player.Toggle()
	s.publish()
}

// Seek moves the playback position by delta.
func (s *Session) Seek(delta time.Duration) {
	if !s.player.State().IsActive() {
		return
	}
	s.player.Seek(delta)
	s.publish()
}

// VolumeUp raises the volume by one step.
func (s *Session) VolumeUp() { s.setVolume(s.player.Volume() + volumeStep) }

// VolumeDown lowers the volume by one step.
func (s *Session) VolumeDown() { s.setVolume(s.player.Volume() - volumeStep) }

func (s *Session) setVolume(v int) {
	s.player.SetVolume(v)
	if s.store != nil {
		s.store.SaveVolume(s.player.Volume())
	}
	s.setStatus(fmt.Sprintf("Volume %d%%", s.player.Volume()))
	s.publish()
}

// ToggleLoop flips looping and returns the new value.
func (s *Session) ToggleLoop() bool {
	s.engine.SetLoop(!s.engine.Loop())
	s.modeChanged()
	return s.engine.Loop()
}

// ToggleShuffle flips shuffled picks and returns the new value.
func (s *Session) ToggleShuffle() bool {
	s.engine.SetShuffle(!s.engine.Shuffle())
	s.modeChanged()
	return s.engine.Shuffle()
}

// ToggleReplacement flips picking with replacement and returns the new value.
func (s *Session) ToggleReplacement() bool {
	s.engine.SetWithReplacement(!s.engine.WithReplacement())
	s.modeChanged()
	return s.engine.WithReplacement()
}

func (s *Session) modeChanged() {
	change := ModeChange{
		Loop:            s.engine.Loop(),
		Shuffle:         s.engine.Shuffle(),
		WithReplacement: s.engine.WithReplacement(),
	}
	s.emit(func(sub *Subscription) { sub.sendMode(change) })
	s.publish()
}

// SetFilter restricts the engine to keys matching text.
// Blank text clears the filter.
func (s *Session) SetFilter(text string) {
	s.filter = strings.TrimSpace(text)
	s.engine.SetSelectionSet(search.Filter(text, s.playlist.Keys()))
	s.publish()
}

// Filter returns the active filter text.
func (s *Session) Filter() string { return s.filter }

// Delete removes key from the playlist and moves its file into the
// holding directory. Deleting the item playing advances to the next one.
func (s *Session) Delete(key string) error {
	path, ok := s.playlist.Path(key)
	if !ok {
		return fmt.Errorf("%q not in playlist", key)
	}

	playing := s.forget(key)
	if playing {
		s.player.Stop()
		s.current, s.path, s.heading, s.plays = "", "", "", 0
	}
	run, err := s.registry.Start(s.ctx, s.queue, actions.Delete, s.request(path))
	if err != nil {
		s.setStatus(errmsg.FormatWith(errmsg.OpFileDelete, key, err))
		return err
	}
	s.deletes[run] = key

	if playing {
		s.Next()
	}
	s.publish()
	return nil
}

// CheckDuplicates starts a duplicate check on the opened folder.
func (s *Session) CheckDuplicates() error {
	if s.folder == "" {
		return fmt.Errorf("no folder opened")
	}
	if s.dupesRun != "" {
		return fmt.Errorf("duplicate check already running")
	}
	run, err := s.registry.Start(s.ctx, s.queue, actions.CheckDuplicates, s.request(""))
	if err != nil {
		s.setStatus(errmsg.Format(errmsg.OpDuplicateCheck, err))
		return err
	}
	s.dupesRun = run
	s.setStatus("Checking duplicates")
	s.publish()
	return nil
}
