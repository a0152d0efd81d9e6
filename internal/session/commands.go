package session

import (
	"time"

	"github.com/llehouerou/reel/internal/msgqueue"
	"github.com/llehouerou/reel/internal/player"
)

// Command tags accepted from other goroutines through Post.
const (
	TagCmdNext       = "cmd.next"
	TagCmdPrevious   = "cmd.previous"
	TagCmdToggle     = "cmd.toggle"
	TagCmdPlay       = "cmd.play"
	TagCmdPause      = "cmd.pause"
	TagCmdStop       = "cmd.stop"
	TagCmdSeek       = "cmd.seek"
	TagCmdSetLoop    = "cmd.loop"
	TagCmdSetShuffle = "cmd.shuffle"
	TagCmdVolume     = "cmd.volume"
)

// Seek is the payload of TagCmdSeek.
type Seek struct {
	Delta time.Duration
}

// Post queues a command for the owning context without blocking.
// It is safe to call from any goroutine. Returns false if the queue is full
// or closed.
func (s *Session) Post(tag string, payload any) bool {
	return s.queue.TryPut(msgqueue.Message{Tag: tag, Payload: payload})
}

func (s *Session) handleCommand(m msgqueue.Message) {
	switch m.Tag {
	case TagCmdNext:
		s.Next()
	case TagCmdPrevious:
		s.Previous()
	case TagCmdToggle:
		s.TogglePause()
	case TagCmdPlay:
		switch {
		case s.player.State() == player.Paused:
			s.player.Toggle()
		case !s.player.State().IsActive():
			s.Next()
		}
	case TagCmdPause:
		if s.player.State() == player.Playing {
			s.player.Toggle()
		}
	case TagCmdStop:
		s.player.Stop()
	case TagCmdSeek:
		if p, ok := m.Payload.(Seek); ok {
			s.Seek(p.Delta)
		}
	case TagCmdSetLoop:
		if on, ok := m.Payload.(bool); ok {
			s.engine.SetLoop(on)
			s.modeChanged()
		}
	case TagCmdSetShuffle:
		if on, ok := m.Payload.(bool); ok {
			s.engine.SetShuffle(on)
			s.modeChanged()
		}
	case TagCmdVolume:
		if v, ok := m.Payload.(int); ok {
			s.setVolume(v)
		}
	default:
		s.logger.Warn("unknown command", "tag", m.Tag)
	}
}
