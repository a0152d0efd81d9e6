package player

import "fmt"

// Backend names accepted by New.
const (
	BackendAuto = "auto"
	BackendMPV  = "mpv"
	BackendBeep = "beep"
)

// New returns the playback backend named by kind.
// "auto" prefers libmpv and falls back to the audio-only beep backend.
func New(kind string) (Interface, error) {
	switch kind {
	case BackendMPV:
		return newMPV()
	case BackendBeep:
		return NewAudio(), nil
	case BackendAuto, "":
		if p, err := newMPV(); err == nil {
			return p, nil
		}
		return NewAudio(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q: %w", kind, ErrNoBackend)
	}
}
