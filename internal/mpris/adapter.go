//go:build linux

package mpris

import "github.com/quarckster/go-mpris-server/pkg/server"

const busName = "reel"

// Adapter owns the MPRIS server for one session.
type Adapter struct {
	server *server.Server
}

// New registers reel on the session bus and serves requests in the
// background.
func New(ctrl Controller) (*Adapter, error) {
	srv := server.NewServer(busName, rootAdapter{}, &playerAdapter{ctrl: ctrl})
	go func() {
		_ = srv.Listen()
	}()
	return &Adapter{server: srv}, nil
}

// Close releases the bus name.
func (a *Adapter) Close() error {
	return a.server.Stop()
}
