package session

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/reel/internal/actions"
	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/msgqueue"
	"github.com/llehouerou/reel/internal/search"
)

// handle dispatches one queued message. Results from runs the session no
// longer tracks are dropped.
func (s *Session) handle(m msgqueue.Message) {
	if strings.HasPrefix(m.Tag, "cmd.") {
		s.handleCommand(m)
		return
	}
	if !s.tracked(m.Run) {
		s.logger.Debug("dropping stale message", "tag", m.Tag, "run", m.Run)
		return
	}

	switch p := m.Payload.(type) {
	case actions.FolderItem:
		s.addItem(p)
	case actions.FolderDuplicate:
		s.dupeNames++
		s.logger.Info("duplicate name", "name", p.Name, "paths", p.Paths)
	case actions.FolderEnd:
		s.folderEnd(p)
	case actions.FolderRemoved:
		s.removed(p.Path)
	case actions.DupesProgress:
		s.setStatus(fmt.Sprintf("Checking duplicates: %s files", humanize.Comma(int64(p.Processed))))
	case actions.DupesRemoved:
		s.logger.Info("duplicate removed", "path", p.Path, "original", p.Original, "hash", p.Hash)
		s.removed(p.Path)
	case actions.DupesNames:
		s.logger.Info("same name, different content", "name", p.Name, "paths", p.Paths)
	case actions.DupesEnd:
		s.dupesRun = ""
		s.setStatus(fmt.Sprintf("Duplicates: %d of %s files moved, %s reclaimed",
			p.Removed, humanize.Comma(int64(p.Processed)), humanize.Bytes(uint64(p.Reclaimed)))) //nolint:gosec // never negative
	case actions.DeleteDone:
		delete(s.deletes, m.Run)
		s.setStatus("Deleted " + p.Path)
	case actions.DeleteFailed:
		key := s.deletes[m.Run]
		delete(s.deletes, m.Run)
		s.setStatus(errmsg.FormatWith(errmsg.OpFileDelete, key, p.Err))
	case actions.ActionError:
		s.actionError(m.Run, p)
	case nil:
		if m.Tag == actions.TagFolderStart {
			s.scanning = true
		}
	default:
		s.logger.Warn("unhandled message", "tag", m.Tag)
	}
}

func (s *Session) tracked(run string) bool {
	if run == "" {
		return false
	}
	switch run {
	case s.scanRun, s.watchRun, s.dupesRun:
		return true
	}
	_, ok := s.deletes[run]
	return ok
}

func (s *Session) addItem(item actions.FolderItem) {
	if !s.playlist.Add(item.Name, item.Path) {
		return
	}
	if s.filter == "" || search.Matches(s.filter, item.Name) {
		s.engine.AddToSelection(item.Name)
	}

	// Waiting for a batch before starting avoids always opening on the
	// first file the walk finds.
	if !s.played && s.cfg.AutostartAfter > 0 && s.playlist.Len() == s.cfg.AutostartAfter {
		s.engine.Reset()
		s.Next()
	}
}

func (s *Session) folderEnd(end actions.FolderEnd) {
	s.scanning = false
	s.setStatus(fmt.Sprintf("Found %s items in %s", humanize.Comma(int64(end.Count)), s.folder))
	if s.dupeNames > 0 {
		s.logger.Info("scan found duplicate names", "count", s.dupeNames)
	}
	if !s.played {
		s.engine.Reset()
		s.Next()
	}
}

func (s *Session) removed(path string) {
	if s.forgetPath(path) {
		s.logger.Info("playing item removed from disk", "path", path)
		s.player.Stop()
		s.current, s.path, s.heading, s.plays = "", "", "", 0
		s.Next()
	}
}

func (s *Session) actionError(run string, e actions.ActionError) {
	switch run {
	case s.scanRun:
		s.scanning = false
	case s.dupesRun:
		s.dupesRun = ""
	}
	delete(s.deletes, run)
	s.setStatus(errmsg.Format(errmsg.ForAction(e.Action), e.Err))
	s.emit(func(sub *Subscription) {
		sub.sendError(ErrorEvent{Operation: e.Action, Err: e.Err})
	})
}
