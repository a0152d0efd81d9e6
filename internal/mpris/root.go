//go:build linux

package mpris

// rootAdapter answers org.mpris.MediaPlayer2. The terminal owns the window
// and the process lifetime, so raise and quit are refused.
type rootAdapter struct{}

var mimeTypes = []string{
	"video/mp4", "video/x-matroska", "video/webm",
	"audio/mpeg", "audio/flac", "audio/ogg", "audio/wav",
}

func (rootAdapter) Raise() error                { return nil }
func (rootAdapter) Quit() error                 { return nil }
func (rootAdapter) CanQuit() (bool, error)      { return false, nil }
func (rootAdapter) CanRaise() (bool, error)     { return false, nil }
func (rootAdapter) HasTrackList() (bool, error) { return false, nil }
func (rootAdapter) Identity() (string, error)   { return "Reel", nil }

func (rootAdapter) SupportedUriSchemes() ([]string, error) { //nolint:revive // interface name
	return []string{"file"}, nil
}

func (rootAdapter) SupportedMimeTypes() ([]string, error) {
	return mimeTypes, nil
}
