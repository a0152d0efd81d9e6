package actions

import (
	"context"
	"os"
	"path/filepath"
	"sort"
)

// ScanFolder walks req.Base and reports every playable file.
//
// Files are keyed by base name. A later file whose name was already seen is
// not reported as an item; all such names are listed in FolderDuplicate
// messages before the closing FolderEnd.
func ScanFolder(ctx context.Context, run *Run, req Request) error {
	run.Emit(TagFolderStart, nil)

	ignored := req.ignored()
	names := make(map[string]string)
	duplicates := make(map[string][]string)
	count := 0

	err := filepath.WalkDir(req.Base, func(path string, d os.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			// Unreadable entries are skipped, the walk goes on
			return nil //nolint:nilerr // intentionally skipping errors
		}
		if d.IsDir() {
			if req.inDeleted(path) {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		if IsIgnored(name, ignored) {
			return nil
		}

		if original, seen := names[name]; seen {
			if original != path {
				if len(duplicates[name]) == 0 {
					duplicates[name] = append(duplicates[name], original)
				}
				duplicates[name] = append(duplicates[name], path)
			}
			return nil
		}

		names[name] = path
		count++
		run.Emit(TagFolderItem, FolderItem{Name: name, Path: path})
		return nil
	})
	if err != nil {
		return err
	}

	dupNames := make([]string, 0, len(duplicates))
	for name := range duplicates {
		dupNames = append(dupNames, name)
	}
	sort.Strings(dupNames)
	for _, name := range dupNames {
		run.Emit(TagFolderDuplicate, FolderDuplicate{Name: name, Paths: duplicates[name]})
	}

	run.Log.Info("folder scanned", "base", req.Base, "items", count, "duplicate_names", len(dupNames))
	run.Emit(TagFolderEnd, FolderEnd{Count: count})
	return nil
}
