package actions

import (
	"path/filepath"
	"slices"
	"strings"
)

// DefaultIgnored are extensions never added to the playlist.
var DefaultIgnored = []string{
	"nfo", "txt", "exe", "pdf", "gif", "css", "js", "html", "srt",
	"png", "jpg", "jpeg", "webm",
}

// DefaultDeletedDir is the holding directory for staged deletes.
const DefaultDeletedDir = "deleted"

// IsIgnored reports whether name has one of the ignored extensions.
// A name without a dot is matched as a whole.
func IsIgnored(name string, ignored []string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		ext = name
	}
	ext = strings.ToLower(ext)
	return slices.ContainsFunc(ignored, func(e string) bool {
		return strings.EqualFold(strings.TrimPrefix(e, "."), ext)
	})
}

func (req Request) ignored() []string {
	if req.Ignored == nil {
		return DefaultIgnored
	}
	return req.Ignored
}

func (req Request) deletedPath() string {
	dir := req.DeletedDir
	if dir == "" {
		dir = DefaultDeletedDir
	}
	return filepath.Join(req.Base, dir)
}

// inDeleted reports whether path is the holding directory or inside it.
func (req Request) inDeleted(path string) bool {
	deleted := req.deletedPath()
	return path == deleted || strings.HasPrefix(path, deleted+string(filepath.Separator))
}
