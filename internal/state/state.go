// Package state persists play statistics and the last session settings in
// SQLite. It never stores navigation history: the auto-play engine always
// starts fresh.
package state

import (
	"context"
	"database/sql"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/llehouerou/reel/internal/db"
)

const dbFile = "reel/reel.db"

// Manager owns the state database.
type Manager struct {
	db     *sql.DB
	now    func() time.Time
	volume *debounced[int]
}

// Open opens the database under the XDG data directory.
func Open() (*Manager, error) {
	path, err := xdg.DataFile(filepath.FromSlash(dbFile))
	if err != nil {
		return nil, err
	}
	return OpenPath(path)
}

// OpenPath opens the database at path, creating it if needed.
func OpenPath(path string) (*Manager, error) {
	conn, err := db.Open(context.Background(), path, migrations)
	if err != nil {
		return nil, err
	}
	m := &Manager{db: conn, now: time.Now}
	m.volume = newDebounced(volumeDebounce, func(v int) {
		if err := saveVolume(conn, v); err != nil {
			slog.Warn("save volume", "volume", v, "err", err)
		}
	})
	return m, nil
}

// Close writes any debounced value and closes the database.
func (m *Manager) Close() error {
	m.volume.Flush()
	return m.db.Close()
}

func (m *Manager) DB() *sql.DB {
	return m.db
}
