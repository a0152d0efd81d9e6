// Package notify provides desktop notifications via D-Bus.
package notify

import "sync"

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string // summary, required
	Body       string
	Icon       string  // image path or icon name
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// nowPlayingTimeout keeps the bubble short: a new item replaces it anyway.
const nowPlayingTimeout = 4000

// NowPlaying shows one notification per started item, each replacing the
// previous one. Safe for concurrent use.
type NowPlaying struct {
	n  Notifier
	mu sync.Mutex
	id uint32
}

// NewNowPlaying wraps n.
func NewNowPlaying(n Notifier) *NowPlaying {
	return &NowPlaying{n: n}
}

// Show replaces the previous now-playing notification.
func (p *NowPlaying) Show(title, body string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	id, err := p.n.Notify(Notification{
		Title:      title,
		Body:       body,
		Icon:       "media-playback-start",
		Timeout:    nowPlayingTimeout,
		ReplacesID: p.id,
		Urgency:    UrgencyLow,
	})
	if err != nil {
		return err
	}
	p.id = id
	return nil
}
