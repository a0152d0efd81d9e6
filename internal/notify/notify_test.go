package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	sent   []Notification
	nextID uint32
	err    error
}

func (r *recorder) Notify(n Notification) (uint32, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.sent = append(r.sent, n)
	if n.ReplacesID != 0 {
		return n.ReplacesID, nil
	}
	r.nextID++
	return r.nextID, nil
}

func (r *recorder) Close(uint32) error { return nil }

func TestUrgencyValues(t *testing.T) {
	assert.Equal(t, Urgency(0), UrgencyLow)
	assert.Equal(t, Urgency(1), UrgencyNormal)
	assert.Equal(t, Urgency(2), UrgencyCritical)
}

func TestNowPlaying_ReplacesPrevious(t *testing.T) {
	r := &recorder{}
	p := NewNowPlaying(r)

	require.NoError(t, p.Show("first.mkv", "videos"))
	require.NoError(t, p.Show("second.mkv", "videos"))

	require.Len(t, r.sent, 2)
	assert.Zero(t, r.sent[0].ReplacesID)
	assert.Equal(t, uint32(1), r.sent[1].ReplacesID)
	assert.Equal(t, "second.mkv", r.sent[1].Title)
	assert.Equal(t, UrgencyLow, r.sent[1].Urgency)
}

func TestNowPlaying_ErrorKeepsID(t *testing.T) {
	r := &recorder{}
	p := NewNowPlaying(r)
	require.NoError(t, p.Show("first.mkv", ""))

	r.err = errors.New("no server")
	assert.Error(t, p.Show("second.mkv", ""))

	r.err = nil
	require.NoError(t, p.Show("third.mkv", ""))
	assert.Equal(t, uint32(1), r.sent[len(r.sent)-1].ReplacesID)
}

func TestStubNotifier(t *testing.T) {
	var s stubNotifier
	id, err := s.Notify(Notification{Title: "x"})
	assert.NoError(t, err)
	assert.Zero(t, id)
	assert.NoError(t, s.Close(1))
}
