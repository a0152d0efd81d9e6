package actions

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// StageDelete moves req.Path into the holding directory under req.Base,
// keeping its position relative to Base. Nothing is removed for good.
func StageDelete(_ context.Context, run *Run, req Request) error {
	dest, err := stage(req, req.Path)
	if err != nil {
		run.Emit(TagDeleteFailed, DeleteFailed{Path: req.Path, Err: err})
		return nil
	}
	run.Log.Info("staged delete", "path", req.Path, "dest", dest)
	run.Emit(TagDeleteDone, DeleteDone{Path: req.Path, Dest: dest})
	return nil
}

// stage moves path into the holding directory and returns where it went.
func stage(req Request, path string) (string, error) {
	if path == "" {
		return "", errors.New("no path to delete")
	}
	if req.inDeleted(path) {
		return "", fmt.Errorf("%s is already staged", path)
	}

	rel, err := filepath.Rel(req.Base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = filepath.Base(path)
	}

	dest := freeName(filepath.Join(req.deletedPath(), rel))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("create holding directory: %w", err)
	}
	if err := os.Rename(path, dest); err != nil {
		return "", fmt.Errorf("move to holding directory: %w", err)
	}
	return dest, nil
}

// freeName returns path, or path with a " (n)" suffix if it is taken.
func freeName(path string) string {
	if _, err := os.Lstat(path); errors.Is(err, os.ErrNotExist) {
		return path
	}
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", stem, n, ext)
		if _, err := os.Lstat(candidate); errors.Is(err, os.ErrNotExist) {
			return candidate
		}
	}
}
