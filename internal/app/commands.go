package app

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickCmd returns a command that sends TickMsg after d.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchSessionEvents returns a command that waits for the next session event
// and converts it to a message. Handlers re-arm it after each event.
func (m Model) WatchSessionEvents() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	sub := m.sub
	return func() tea.Msg {
		select {
		case e := <-sub.TrackChanged:
			return TrackChangedMsg(e)
		case e := <-sub.StateChanged:
			return StateChangedMsg(e)
		case e := <-sub.ModeChanged:
			return ModeChangedMsg(e)
		case e := <-sub.Error:
			return SessionErrorMsg(e)
		case <-sub.Done:
			return SessionClosedMsg{}
		}
	}
}

// NotifyTrackCmd shows the now-playing notification off the UI goroutine.
func (m Model) NotifyTrackCmd(title string) tea.Cmd {
	n := m.opts.Notifier
	if n == nil {
		return nil
	}
	folder := filepath.Base(m.snap.Folder)
	logger := m.logger
	return func() tea.Msg {
		if err := n.Show(title, folder); err != nil {
			logger.Debug("notification failed", "err", err)
		}
		return nil
	}
}
