package state

import (
	"sync"
	"time"
)

const volumeDebounce = 500 * time.Millisecond

// debounced calls save with the latest value once no new value arrived for
// delay.
type debounced[T any] struct {
	delay time.Duration
	save  func(T)

	mu      sync.Mutex
	timer   *time.Timer
	pending *T
}

func newDebounced[T any](delay time.Duration, save func(T)) *debounced[T] {
	return &debounced[T]{delay: delay, save: save}
}

// Set records v and restarts the quiet period.
func (d *debounced[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = &v
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.Flush)
}

// Flush saves the pending value now, if any.
func (d *debounced[T]) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	pending := d.pending
	d.pending = nil
	d.mu.Unlock()

	if pending != nil {
		d.save(*pending)
	}
}
