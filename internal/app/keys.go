package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/keymap"
)

// handleKeyMsg routes keys to the filter input or the help view when they
// have focus, and resolves them to actions otherwise.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Filter.Active() {
		var cmd tea.Cmd
		m.Filter, cmd = m.Filter.Update(msg)
		return m, cmd
	}
	if m.ShowHelp {
		var cmd tea.Cmd
		m.Help, cmd = m.Help.Update(msg)
		return m, cmd
	}

	m.ErrorMsg = ""
	act := m.keys.Resolve(msg.String())
	if act == "" {
		return m, nil
	}
	cmd := m.runAction(act)
	m.refresh()
	return m, cmd
}

func (m *Model) runAction(act keymap.Action) tea.Cmd {
	switch act {
	case keymap.ActionQuit:
		return tea.Quit
	case keymap.ActionHelp:
		m.ShowHelp = true
	case keymap.ActionFilter:
		m.Panel.SetFocused(false)
		return m.Filter.Start(m.Session.Filter())
	case keymap.ActionClearFilter:
		m.Filter.Reset()
		m.Session.SetFilter("")
	default:
		if !m.handlePlaybackAction(act) {
			m.handlePlaylistAction(act)
		}
	}
	return nil
}

func (m *Model) handlePlaybackAction(act keymap.Action) bool {
	s := m.Session
	switch act {
	case keymap.ActionPlayPause:
		s.TogglePause()
	case keymap.ActionNext:
		s.Next()
	case keymap.ActionPrevious:
		s.Previous()
	case keymap.ActionSeekForward:
		s.Seek(m.opts.SeekSmall)
	case keymap.ActionSeekBack:
		s.Seek(-m.opts.SeekSmall)
	case keymap.ActionSeekForwardLong:
		s.Seek(m.opts.SeekLong)
	case keymap.ActionSeekBackLong:
		s.Seek(-m.opts.SeekLong)
	case keymap.ActionVolumeUp:
		s.VolumeUp()
	case keymap.ActionVolumeDown:
		s.VolumeDown()
	case keymap.ActionToggleLoop:
		s.ToggleLoop()
	case keymap.ActionToggleShuffle:
		s.ToggleShuffle()
	case keymap.ActionToggleReplacement:
		s.ToggleReplacement()
	default:
		return false
	}
	return true
}

func (m *Model) handlePlaylistAction(act keymap.Action) {
	switch act {
	case keymap.ActionMoveUp:
		m.Panel.Move(-1)
	case keymap.ActionMoveDown:
		m.Panel.Move(1)
	case keymap.ActionJumpStart:
		m.Panel.JumpStart()
	case keymap.ActionJumpEnd:
		m.Panel.JumpEnd()
	case keymap.ActionJumpCurrent:
		m.Panel.JumpCurrent()
	case keymap.ActionSelect:
		if key, ok := m.Panel.Selected(); ok {
			m.Session.PlayKey(key)
		}
	case keymap.ActionDelete:
		if key, ok := m.Panel.Selected(); ok {
			if err := m.Session.Delete(key); err != nil {
				m.ErrorMsg = errmsg.FormatWith(errmsg.OpFileDelete, key, err)
			}
		}
	case keymap.ActionDuplicates:
		if err := m.Session.CheckDuplicates(); err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpDuplicateCheck, err)
		}
	}
}
