//go:build !linux

package notify

// New returns a notifier that does nothing outside Linux.
func New() Notifier {
	return &stubNotifier{}
}

type stubNotifier struct{}

func (*stubNotifier) Notify(Notification) (uint32, error) { return 0, nil }

func (*stubNotifier) Close(uint32) error { return nil }
