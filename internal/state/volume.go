package state

import (
	"database/sql"
	"errors"

	"github.com/llehouerou/reel/internal/db"
)

// SessionState is what survives between runs.
type SessionState struct {
	Folder string
	Volume *int // nil when never saved
}

// GetSession returns the saved folder and volume.
func (m *Manager) GetSession() (SessionState, error) {
	var folder sql.Null[string]
	var volume sql.Null[int]

	row := m.db.QueryRow(`SELECT folder, volume FROM session_state WHERE id = 1`)
	err := row.Scan(&folder, &volume)
	if errors.Is(err, sql.ErrNoRows) {
		return SessionState{}, nil
	}
	if err != nil {
		return SessionState{}, err
	}

	return SessionState{Folder: folder.V, Volume: db.Ptr(volume)}, nil
}

// SaveFolder persists the opened folder.
func (m *Manager) SaveFolder(folder string) error {
	_, err := m.db.Exec(`
		INSERT INTO session_state (id, folder) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET folder = excluded.folder
	`, folder)
	return err
}

// SaveVolume persists the volume after a short quiet period, so holding a
// volume key writes once.
func (m *Manager) SaveVolume(volume int) {
	m.volume.Set(volume)
}

func saveVolume(conn *sql.DB, volume int) error {
	_, err := conn.Exec(`
		INSERT INTO session_state (id, volume) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET volume = excluded.volume
	`, volume)
	return err
}
