package player

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// ReadTitle returns the embedded title of a media file, or its base name
// without extension when the file has no readable tag.
func ReadTitle(path string) string {
	fallback := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	f, err := os.Open(path)
	if err != nil {
		return fallback
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return fallback
	}

	title := strings.TrimSpace(m.Title())
	if title == "" {
		return fallback
	}
	if artist := strings.TrimSpace(m.Artist()); artist != "" {
		return artist + " - " + title
	}
	return title
}
