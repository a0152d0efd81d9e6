package actions

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchFolder reports files appearing in or leaving req.Base until ctx is
// cancelled. New subdirectories are watched as they appear; the holding
// directory is never watched.
func WatchFolder(ctx context.Context, run *Run, req Request) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	fw := &folderWatcher{run: run, req: req, w: w}
	if err := fw.addTree(req.Base, false); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			fw.handle(event)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			run.Log.Warn("watch error", "err", err)
		}
	}
}

type folderWatcher struct {
	run *Run
	req Request
	w   *fsnotify.Watcher
}

func (fw *folderWatcher) handle(event fsnotify.Event) {
	if fw.req.inDeleted(event.Name) {
		return
	}

	switch {
	case event.Has(fsnotify.Create):
		info, err := os.Stat(event.Name)
		if err != nil {
			return
		}
		if info.IsDir() {
			// Files moved in with the directory produce no events of their own
			if err := fw.addTree(event.Name, true); err != nil {
				fw.run.Log.Warn("watch subdirectory", "path", event.Name, "err", err)
			}
			return
		}
		fw.emitItem(event.Name)

	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		name := filepath.Base(event.Name)
		fw.run.Emit(TagFolderRemoved, FolderRemoved{Name: name, Path: event.Name})
	}
}

func (fw *folderWatcher) emitItem(path string) {
	name := filepath.Base(path)
	if IsIgnored(name, fw.req.ignored()) {
		return
	}
	fw.run.Emit(TagFolderItem, FolderItem{Name: name, Path: path})
}

// addTree watches root and its subdirectories. With report set, files
// already inside are emitted as items.
func (fw *folderWatcher) addTree(root string, report bool) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil //nolint:nilerr // intentionally skipping errors
		}
		if !d.IsDir() {
			if report {
				fw.emitItem(path)
			}
			return nil
		}
		if fw.req.inDeleted(path) {
			return filepath.SkipDir
		}
		if err := fw.w.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}
