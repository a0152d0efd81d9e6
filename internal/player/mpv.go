//go:build libmpv

package player

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	mpv "github.com/gen2brain/go-mpv"
)

const (
	mpvPause    = "pause"
	mpvVolume   = "volume"
	mpvPosition = "time-pos"
	mpvDuration = "duration"
)

// Video plays any file libmpv understands, video included.
type Video struct {
	mu       sync.Mutex
	client   *mpv.Mpv
	state    State
	volume   int
	finished chan struct{}

	closeOnce sync.Once
	loopDone  sync.WaitGroup
}

func newMPV() (Interface, error) {
	client := mpv.New()
	if client == nil {
		return nil, errors.New("create libmpv instance")
	}

	_ = client.SetOptionString("terminal", "no")
	_ = client.SetOptionString("keep-open", "no")
	_ = client.SetOptionString("force-window", "yes")
	_ = client.SetOptionString("input-default-bindings", "no")

	if err := client.Initialize(); err != nil {
		client.TerminateDestroy()
		return nil, fmt.Errorf("initialize libmpv: %w", err)
	}
	_ = client.RequestEvent(mpv.EventEnd, true)

	v := &Video{
		client:   client,
		volume:   100,
		finished: make(chan struct{}, 1),
	}
	v.loopDone.Add(1)
	go v.eventLoop()
	return v, nil
}

func (v *Video) Play(path string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.client.Command([]string{"loadfile", path, "replace"}); err != nil {
		return fmt.Errorf("load %q: %w", path, err)
	}
	dropFinished(v.finished)
	if err := v.client.SetPropertyString(mpvPause, "no"); err != nil {
		return fmt.Errorf("start playback: %w", err)
	}
	v.state = Playing
	return nil
}

func (v *Video) Stop() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == Stopped {
		return
	}
	_ = v.client.Command([]string{"stop"})
	v.state = Stopped
}

func (v *Video) Toggle() {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch v.state {
	case Playing:
		if v.client.SetPropertyString(mpvPause, "yes") == nil {
			v.state = Paused
		}
	case Paused:
		if v.client.SetPropertyString(mpvPause, "no") == nil {
			v.state = Playing
		}
	case Stopped:
	}
}

func (v *Video) Seek(delta time.Duration) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == Stopped {
		return
	}
	secs := fmt.Sprintf("%.3f", delta.Seconds())
	_ = v.client.Command([]string{"seek", secs, "relative"})
}

func (v *Video) SetVolume(percent int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.volume = clampVolume(percent)
	_ = v.client.SetProperty(mpvVolume, mpv.FormatDouble, float64(v.volume))
}

func (v *Video) Volume() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.volume
}

func (v *Video) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *Video) Position() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.seconds(mpvPosition)
}

func (v *Video) Duration() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.seconds(mpvDuration)
}

func (v *Video) FinishedChan() <-chan struct{} { return v.finished }

func (v *Video) Close() error {
	v.closeOnce.Do(func() {
		v.client.Wakeup()
		v.client.TerminateDestroy()
		v.loopDone.Wait()
	})
	return nil
}

func (v *Video) eventLoop() {
	defer v.loopDone.Done()

	for {
		event := v.client.WaitEvent(0.5)
		if event == nil {
			continue
		}

		switch event.EventID {
		case mpv.EventShutdown:
			return
		case mpv.EventEnd:
			if event.EndFile().Reason != mpv.EndFileEOF {
				continue
			}
			v.mu.Lock()
			v.state = Stopped
			v.mu.Unlock()
			select {
			case v.finished <- struct{}{}:
			default:
			}
		}
	}
}

// seconds reads a time property; unavailable properties read as zero.
// Caller must hold v.mu.
func (v *Video) seconds(property string) time.Duration {
	if v.state == Stopped {
		return 0
	}
	value, err := v.client.GetProperty(property, mpv.FormatDouble)
	if err != nil {
		return 0
	}
	secs, ok := value.(float64)
	if !ok || math.IsNaN(secs) || secs < 0 {
		return 0
	}
	return time.Duration(secs * float64(time.Second))
}
