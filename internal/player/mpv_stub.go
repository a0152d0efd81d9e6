//go:build !libmpv

package player

import "fmt"

func newMPV() (Interface, error) {
	return nil, fmt.Errorf("mpv: %w (build with -tags libmpv)", ErrNoBackend)
}
