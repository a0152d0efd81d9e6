//go:build !windows

package stderr

import (
	"sync"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapture(t *testing.T) {
	var mu sync.Mutex
	var lines []string

	c, err := Start(func(line string) {
		mu.Lock()
		lines = append(lines, line)
		mu.Unlock()
	})
	require.NoError(t, err)

	_, err = syscall.Write(2, []byte("[ao/alsa] underrun\n\n  \nsecond line\n"))
	require.NoError(t, err)
	c.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"[ao/alsa] underrun", "second line"}, lines)
}

func TestNilCapture(t *testing.T) {
	var c *Capture
	assert.NotPanics(t, func() { c.Stop() })
}
