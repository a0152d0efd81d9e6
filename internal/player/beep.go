package player

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
	extOGG  = ".ogg"
)

// speakerRate is the fixed output rate; every stream is resampled to it.
const speakerRate beep.SampleRate = 44100

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(speakerRate, speakerRate.N(time.Second/10))
	})
	return speakerErr
}

// Audio is the audio-only backend built on beep.
type Audio struct {
	mu       sync.Mutex
	state    State
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	percent  int

	// gen identifies the loaded stream; end-of-stream callbacks from an older
	// stream are ignored. The callback runs on the speaker goroutine with the
	// speaker lock held, so it touches only atomics and the channel.
	gen      atomic.Uint64
	ended    atomic.Bool
	finished chan struct{}
}

// NewAudio creates a stopped beep backend at full volume.
func NewAudio() *Audio {
	return &Audio{
		percent:  100,
		finished: make(chan struct{}, 1),
	}
}

// CanPlay reports whether the beep backend decodes the file's extension.
func CanPlay(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3, extFLAC, extWAV, extOGG:
		return true
	}
	return false
}

func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !CanPlay(path) {
		return nil, beep.Format{}, fmt.Errorf("%s: %w", ext, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case extMP3:
		streamer, format, err = mp3.Decode(f)
	case extFLAC:
		streamer, format, err = flac.Decode(f)
	case extWAV:
		streamer, format, err = wav.Decode(f)
	case extOGG:
		streamer, format, err = vorbis.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return closeBoth{streamer, f}, format, nil
}

// closeBoth closes the decoder and the file under it. Decoders that already
// close their reader make the second Close a harmless error.
type closeBoth struct {
	beep.StreamSeekCloser
	file io.Closer
}

func (c closeBoth) Close() error {
	err := c.StreamSeekCloser.Close()
	_ = c.file.Close()
	return err
}

func (a *Audio) Play(path string) error {
	streamer, format, err := decode(path)
	if err != nil {
		return err
	}
	if err := initSpeaker(); err != nil {
		streamer.Close()
		return fmt.Errorf("init speaker: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()

	var source beep.Streamer = streamer
	if format.SampleRate != speakerRate {
		source = beep.Resample(4, format.SampleRate, speakerRate, streamer)
	}

	a.streamer = streamer
	a.format = format
	a.ctrl = &beep.Ctrl{Streamer: source}
	a.volume = &effects.Volume{Streamer: a.ctrl, Base: 2}
	a.applyVolumeLocked()
	a.ended.Store(false)
	a.state = Playing

	gen := a.gen.Add(1)
	dropFinished(a.finished)
	speaker.Play(beep.Seq(a.volume, beep.Callback(func() {
		if a.gen.Load() != gen {
			return
		}
		a.ended.Store(true)
		select {
		case a.finished <- struct{}{}:
		default:
		}
	})))
	return nil
}

func (a *Audio) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
}

func (a *Audio) stopLocked() {
	if a.streamer == nil {
		a.state = Stopped
		return
	}
	a.gen.Add(1)
	speaker.Clear()
	a.streamer.Close()
	a.streamer = nil
	a.ctrl = nil
	a.volume = nil
	a.state = Stopped
}

func (a *Audio) Toggle() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ctrl == nil || a.ended.Load() {
		return
	}

	switch a.state {
	case Playing:
		speaker.Lock()
		a.ctrl.Paused = true
		speaker.Unlock()
		a.state = Paused
	case Paused:
		speaker.Lock()
		a.ctrl.Paused = false
		speaker.Unlock()
		a.state = Playing
	case Stopped:
	}
}

// Seek moves by delta, clamped to the stream bounds.
func (a *Audio) Seek(delta time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.streamer == nil || a.ended.Load() {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	target := a.streamer.Position() + a.format.SampleRate.N(delta)
	target = max(0, min(target, a.streamer.Len()-1))
	_ = a.streamer.Seek(target)
}

func (a *Audio) SetVolume(percent int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.percent = clampVolume(percent)
	a.applyVolumeLocked()
}

func (a *Audio) applyVolumeLocked() {
	if a.volume == nil {
		return
	}
	speaker.Lock()
	a.volume.Volume = levelToVolume(a.percent)
	a.volume.Silent = a.percent == 0
	speaker.Unlock()
}

// levelToVolume maps a percentage to beep's base-2 gain:
// 100 -> 0, 50 -> -1, 25 -> -2.
func levelToVolume(percent int) float64 {
	if percent <= 0 {
		return -10
	}
	if percent >= 100 {
		return 0
	}
	return math.Log2(float64(percent) / 100)
}

func (a *Audio) Volume() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.percent
}

func (a *Audio) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ended.Load() {
		return Stopped
	}
	return a.state
}

func (a *Audio) Position() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.streamer == nil {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return a.format.SampleRate.D(a.streamer.Position())
}

func (a *Audio) Duration() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.streamer == nil {
		return 0
	}
	return a.format.SampleRate.D(a.streamer.Len())
}

func (a *Audio) FinishedChan() <-chan struct{} { return a.finished }

func (a *Audio) Close() error {
	a.Stop()
	return nil
}
