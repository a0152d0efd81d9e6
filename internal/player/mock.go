// internal/player/mock.go
package player

import (
	"sync"
	"time"
)

// Mock is a test double for Interface.
type Mock struct {
	mu        sync.Mutex
	state     State
	position  time.Duration
	duration  time.Duration
	volume    int
	playErr   map[string]error
	playCalls []string
	seekCalls []time.Duration
	finished  chan struct{}
	closed    bool
}

// NewMock creates a stopped mock at full volume.
func NewMock() *Mock {
	return &Mock{
		volume:   100,
		playErr:  make(map[string]error),
		finished: make(chan struct{}, 1),
	}
}

func (m *Mock) Play(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls = append(m.playCalls, path)
	dropFinished(m.finished)
	if err := m.playErr[path]; err != nil {
		m.state = Stopped
		return err
	}
	m.state = Playing
	m.position = 0
	return nil
}

func (m *Mock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Stopped
}

func (m *Mock) Toggle() {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch m.state {
	case Playing:
		m.state = Paused
	case Paused:
		m.state = Playing
	case Stopped:
	}
}

func (m *Mock) Seek(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, d)
	m.position = max(0, m.position+d)
}

func (m *Mock) SetVolume(percent int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clampVolume(percent)
}

func (m *Mock) Volume() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) FinishedChan() <-chan struct{} { return m.finished }

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.state = Stopped
	return nil
}

// Test helpers

// SetPlayError makes Play fail for path.
func (m *Mock) SetPlayError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr[path] = err
}

// SetDuration sets the value returned by Duration.
func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = d
}

// Finish simulates the current file playing to its end.
func (m *Mock) Finish() {
	m.mu.Lock()
	m.state = Stopped
	m.mu.Unlock()
	select {
	case m.finished <- struct{}{}:
	default:
	}
}

// PlayCalls returns the paths passed to Play, in order.
func (m *Mock) PlayCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.playCalls))
	copy(out, m.playCalls)
	return out
}

// SeekCalls returns the deltas passed to Seek, in order.
func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.seekCalls))
	copy(out, m.seekCalls)
	return out
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

var _ Interface = (*Mock)(nil)
