// Package mpris exposes a session on the D-Bus MPRIS interface so desktop
// media keys and applets can drive it.
package mpris

import "github.com/llehouerou/reel/internal/session"

// Controller is the part of the session the adapter uses. Commands are
// posted to the owning goroutine; reads come from the published snapshot.
type Controller interface {
	Post(tag string, payload any) bool
	Snapshot() session.Snapshot
}
