//go:build !linux

package mpris

// Adapter does nothing outside Linux.
type Adapter struct{}

func New(Controller) (*Adapter, error) { return &Adapter{}, nil }

func (*Adapter) Close() error { return nil }
