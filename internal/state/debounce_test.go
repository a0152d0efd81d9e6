package state

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type saves struct {
	mu  sync.Mutex
	got []int
}

func (s *saves) add(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, v)
}

func (s *saves) values() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.got...)
}

func TestDebounced_SavesLatestOnce(t *testing.T) {
	var s saves
	d := newDebounced(20*time.Millisecond, s.add)

	d.Set(1)
	d.Set(2)
	d.Set(3)

	assert.Eventually(t, func() bool { return len(s.values()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, []int{3}, s.values())
}

func TestDebounced_Flush(t *testing.T) {
	var s saves
	d := newDebounced(time.Hour, s.add)

	d.Flush()
	assert.Empty(t, s.values(), "nothing pending")

	d.Set(7)
	d.Flush()
	d.Flush()
	assert.Equal(t, []int{7}, s.values())
}
