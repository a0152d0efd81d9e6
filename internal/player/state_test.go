package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState(t *testing.T) {
	assert.Equal(t, "Stopped", Stopped.String())
	assert.Equal(t, "Playing", Playing.String())
	assert.Equal(t, "Paused", Paused.String())
	assert.Equal(t, "Unknown", State(99).String())

	assert.False(t, Stopped.IsActive())
	assert.True(t, Playing.IsActive())
	assert.True(t, Paused.IsActive())
}

func TestClampVolume(t *testing.T) {
	for in, want := range map[int]int{-5: 0, 0: 0, 55: 55, 100: 100, 140: 100} {
		assert.Equal(t, want, clampVolume(in), "clampVolume(%d)", in)
	}
}
