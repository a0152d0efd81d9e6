//go:build linux

package mpris

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/reel/internal/player"
	"github.com/llehouerou/reel/internal/session"
)

// playerAdapter answers org.mpris.MediaPlayer2.Player, including the
// optional loop and shuffle properties.
type playerAdapter struct {
	ctrl Controller
}

// post turns a dropped command into an error for the D-Bus caller.
func (p *playerAdapter) post(tag string, payload any) error {
	if !p.ctrl.Post(tag, payload) {
		return fmt.Errorf("mpris: command %s dropped", tag)
	}
	return nil
}

func (p *playerAdapter) snap() session.Snapshot { return p.ctrl.Snapshot() }

// Commands.

func (p *playerAdapter) Next() error      { return p.post(session.TagCmdNext, nil) }
func (p *playerAdapter) Previous() error  { return p.post(session.TagCmdPrevious, nil) }
func (p *playerAdapter) Pause() error     { return p.post(session.TagCmdPause, nil) }
func (p *playerAdapter) PlayPause() error { return p.post(session.TagCmdToggle, nil) }
func (p *playerAdapter) Stop() error      { return p.post(session.TagCmdStop, nil) }
func (p *playerAdapter) Play() error      { return p.post(session.TagCmdPlay, nil) }

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	return p.post(session.TagCmdSeek, session.Seek{Delta: micros(offset)})
}

// SetPosition is relative to the position seen now; the session only
// knows relative seeks.
func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	return p.post(session.TagCmdSeek, session.Seek{Delta: micros(position) - p.snap().Position})
}

func (p *playerAdapter) OpenUri(string) error { return nil } //nolint:revive // interface name

func (p *playerAdapter) SetRate(float64) error { return nil }

func (p *playerAdapter) SetVolume(v float64) error {
	return p.post(session.TagCmdVolume, int(v*100+0.5))
}

// SetLoopStatus maps both Track and Playlist to looping the playlist.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	return p.post(session.TagCmdSetLoop, status != types.LoopStatusNone)
}

func (p *playerAdapter) SetShuffle(shuffle bool) error {
	return p.post(session.TagCmdSetShuffle, shuffle)
}

// Properties.

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.snap().State), nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) { return metadata(p.snap()), nil }

func (p *playerAdapter) Volume() (float64, error) { return float64(p.snap().Volume) / 100, nil }

func (p *playerAdapter) Position() (int64, error) { return p.snap().Position.Microseconds(), nil }

func (p *playerAdapter) Rate() (float64, error)        { return 1, nil }
func (p *playerAdapter) MinimumRate() (float64, error) { return 1, nil }
func (p *playerAdapter) MaximumRate() (float64, error) { return 1, nil }

func (p *playerAdapter) CanGoNext() (bool, error)     { return p.snap().Selected > 0, nil }
func (p *playerAdapter) CanGoPrevious() (bool, error) { return p.snap().Played > 1, nil }
func (p *playerAdapter) CanPlay() (bool, error)       { return p.snap().Count > 0, nil }
func (p *playerAdapter) CanPause() (bool, error)      { return true, nil }
func (p *playerAdapter) CanSeek() (bool, error)       { return true, nil }
func (p *playerAdapter) CanControl() (bool, error)    { return true, nil }

func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	if p.snap().Loop {
		return types.LoopStatusPlaylist, nil
	}
	return types.LoopStatusNone, nil
}

func (p *playerAdapter) Shuffle() (bool, error) { return p.snap().Shuffle, nil }

func micros(v types.Microseconds) time.Duration {
	return time.Duration(v) * time.Microsecond
}

func playbackStatus(s player.State) types.PlaybackStatus {
	switch s {
	case player.Playing:
		return types.PlaybackStatusPlaying
	case player.Paused:
		return types.PlaybackStatusPaused
	default:
		return types.PlaybackStatusStopped
	}
}

func metadata(snap session.Snapshot) types.Metadata {
	if snap.Path == "" {
		return types.Metadata{}
	}
	title := snap.Title
	if title == "" {
		title = snap.Key
	}
	return types.Metadata{
		TrackId: trackID(snap.Path),
		Length:  types.Microseconds(snap.Duration.Microseconds()),
		Title:   title,
		Url:     "file://" + snap.Path,
	}
}

// trackID derives a stable D-Bus object path from the file path.
func trackID(path string) dbus.ObjectPath {
	return dbus.ObjectPath(fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", xxhash.Sum64String(path)))
}
