package session

import (
	"github.com/llehouerou/reel/internal/errmsg"
)

// Next plays the next item chosen by the engine.
// A file the player rejects is skipped once; returns false if nothing
// could be played.
func (s *Session) Next() bool {
	for attempt := 0; attempt < 2; attempt++ {
		path, ok := s.engine.Next()
		if !ok {
			s.player.Stop()
			s.setStatus("Nothing left to play")
			return false
		}
		key, _ := s.engine.Current()
		if s.play(key, path) {
			return true
		}
	}
	return false
}

// Previous steps back to the item played before the current one.
func (s *Session) Previous() bool {
	path, ok := s.engine.Previous()
	if !ok {
		return false
	}
	key, _ := s.engine.Current()
	return s.play(key, path)
}

// PlayKey plays a playlist entry directly. The engine history is untouched.
func (s *Session) PlayKey(key string) bool {
	path, ok := s.playlist.Path(key)
	if !ok {
		return false
	}
	return s.play(key, path)
}

func (s *Session) play(key, path string) bool {
	if err := s.player.Play(path); err != nil {
		s.logger.Warn("playback failed", "key", key, "path", path, "err", err)
		s.setStatus(errmsg.FormatWith(errmsg.OpPlaybackStart, key, err))
		s.emit(func(sub *Subscription) {
			sub.sendError(ErrorEvent{Operation: "play", Path: path, Err: err})
		})
		return false
	}

	s.played = true
	s.current, s.path = key, path
	s.heading = s.title(path)
	s.logger.Info("playing", "key", key, "path", path)

	s.plays = 0
	if s.store != nil {
		n, err := s.store.RecordPlay(s.ctx, path)
		if err != nil {
			s.logger.Warn(errmsg.Format(errmsg.OpStatsRecord, err), "path", path)
		}
		s.plays = n
	}

	change := TrackChange{Key: key, Path: path, Title: s.heading}
	s.emit(func(sub *Subscription) { sub.sendTrack(change) })
	s.publish()
	return true
}

// forget drops key from the playlist and the engine.
// Returns true if key was the item playing.
func (s *Session) forget(key string) bool {
	if !s.playlist.Remove(key) {
		return false
	}
	s.engine.Remove(key)
	return key == s.current
}

// forgetPath drops the entry whose locator is path.
func (s *Session) forgetPath(path string) bool {
	key, ok := s.playlist.NameOf(path)
	if !ok {
		return false
	}
	return s.forget(key)
}
