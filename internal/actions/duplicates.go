package actions

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
)

const progressEvery = 100

// FindDuplicates walks req.Base, hashing every file. Later files with the
// same content as an earlier one are staged for deletion. Files that only
// share a base name are reported, not touched.
func FindDuplicates(ctx context.Context, run *Run, req Request) error {
	found := make(map[string]string) // hash -> first path
	filenames := make(map[string][]string)
	var end DupesEnd

	err := filepath.WalkDir(req.Base, func(path string, d os.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			return nil //nolint:nilerr // intentionally skipping errors
		}
		if d.IsDir() {
			if req.inDeleted(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		sum, size, err := hashFile(path)
		if err != nil {
			run.Log.Warn("hash failed", "path", path, "err", err)
			return nil
		}

		if original, seen := found[sum]; seen && sameContent(original, path) {
			dest, err := stage(req, path)
			if err != nil {
				run.Log.Warn("could not stage duplicate", "path", path, "err", err)
			} else {
				end.Removed++
				end.Reclaimed += size
				run.Emit(TagDupesRemoved, DupesRemoved{
					Path:     path,
					Dest:     dest,
					Original: original,
					Hash:     sum,
					Size:     size,
				})
			}
		} else if !seen {
			found[sum] = path
		}

		filenames[d.Name()] = append(filenames[d.Name()], path)

		end.Processed++
		if end.Processed%progressEvery == 0 {
			run.Emit(TagDupesProgress, DupesProgress{Processed: end.Processed})
		}
		return nil
	})
	if err != nil {
		return err
	}

	names := make([]string, 0, len(filenames))
	for name, paths := range filenames {
		if len(paths) > 1 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		run.Emit(TagDupesNames, DupesNames{Name: name, Paths: filenames[name]})
	}

	run.Log.Info("duplicate check done", "base", req.Base,
		"processed", end.Processed, "removed", end.Removed, "reclaimed", end.Reclaimed)
	run.Emit(TagDupesEnd, end)
	return nil
}

func hashFile(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	h := xxhash.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return "", 0, err
	}
	return fmt.Sprintf("%016x", h.Sum64()), n, nil
}

// sameContent compares two files byte for byte.
func sameContent(a, b string) bool {
	fa, err := os.Open(a)
	if err != nil {
		return false
	}
	defer fa.Close()
	fb, err := os.Open(b)
	if err != nil {
		return false
	}
	defer fb.Close()

	bufA := make([]byte, 64*1024)
	bufB := make([]byte, 64*1024)
	for {
		na, errA := io.ReadFull(fa, bufA)
		nb, errB := io.ReadFull(fb, bufB)
		if na != nb || !bytes.Equal(bufA[:na], bufB[:nb]) {
			return false
		}
		doneA := errA == io.EOF || errA == io.ErrUnexpectedEOF
		doneB := errB == io.EOF || errB == io.ErrUnexpectedEOF
		if doneA || doneB {
			return doneA && doneB
		}
		if errA != nil || errB != nil {
			return false
		}
	}
}
