//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	notifyDest  = "org.freedesktop.Notifications"
	notifyPath  = "/org/freedesktop/Notifications"
	notifyIface = "org.freedesktop.Notifications"

	appName = "Reel"
)

type dbusNotifier struct {
	obj dbus.BusObject
}

// New creates a Notifier on the session bus.
// Without a session bus it returns a notifier that does nothing.
func New() Notifier {
	conn, err := dbus.SessionBus()
	if err != nil {
		return &stubNotifier{}
	}
	return &dbusNotifier{obj: conn.Object(notifyDest, notifyPath)}
}

// Notify calls
// Notify(app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout).
func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant("reel"),
	}

	call := n.obj.Call(notifyIface+".Notify", 0,
		appName, notif.ReplacesID, notif.Icon, notif.Title, notif.Body,
		[]string{}, hints, notif.Timeout)
	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (n *dbusNotifier) Close(id uint32) error {
	return n.obj.Call(notifyIface+".CloseNotification", 0, id).Err
}

type stubNotifier struct{}

func (*stubNotifier) Notify(Notification) (uint32, error) { return 0, nil }

func (*stubNotifier) Close(uint32) error { return nil }
