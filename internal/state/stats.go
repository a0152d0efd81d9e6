package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/llehouerou/reel/internal/db"
)

// FileStats is the play record of one file.
type FileStats struct {
	Path         string
	CreatedAt    time.Time
	LastAccessed time.Time
	AccessCount  int
}

// RecordPlay counts one play of path and returns its play count.
func (m *Manager) RecordPlay(ctx context.Context, path string) (int, error) {
	now := m.now().Unix()
	var count int
	err := db.WithTx(ctx, m.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO files (path, created_at, last_accessed, access_count)
			VALUES (?, ?, ?, 1)
			ON CONFLICT(path) DO UPDATE SET
				last_accessed = excluded.last_accessed,
				access_count = access_count + 1
			RETURNING access_count
		`, path, now, now).Scan(&count)
		if err != nil {
			return fmt.Errorf("record play of %s: %w", path, err)
		}
		return nil
	})
	return count, err
}

// Stats returns the play record of path. ok is false for a file never
// played.
func (m *Manager) Stats(ctx context.Context, path string) (stats FileStats, ok bool, err error) {
	var created, accessed int64
	row := m.db.QueryRowContext(ctx, `
		SELECT created_at, last_accessed, access_count FROM files WHERE path = ?
	`, path)
	err = row.Scan(&created, &accessed, &stats.AccessCount)
	if errors.Is(err, sql.ErrNoRows) {
		return FileStats{}, false, nil
	}
	if err != nil {
		return FileStats{}, false, err
	}

	stats.Path = path
	stats.CreatedAt = time.Unix(created, 0)
	stats.LastAccessed = time.Unix(accessed, 0)
	return stats, true, nil
}

// MostPlayed returns up to limit records, most played first.
func (m *Manager) MostPlayed(ctx context.Context, limit int) ([]FileStats, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT path, created_at, last_accessed, access_count FROM files
		ORDER BY access_count DESC, last_accessed DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FileStats
	for rows.Next() {
		var s FileStats
		var created, accessed int64
		if err := rows.Scan(&s.Path, &created, &accessed, &s.AccessCount); err != nil {
			return nil, err
		}
		s.CreatedAt = time.Unix(created, 0)
		s.LastAccessed = time.Unix(accessed, 0)
		out = append(out, s)
	}
	return out, rows.Err()
}
