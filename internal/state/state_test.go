package state

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/reel/internal/db"
)

func setupTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := OpenPath(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestOpenPath_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "reel.db")

	m, err := OpenPath(path)
	require.NoError(t, err)
	defer m.Close()

	version, err := db.Version(context.Background(), m.DB())
	require.NoError(t, err)
	assert.Equal(t, migrations[len(migrations)-1].Version, version)
}

func TestMigrations_Idempotent(t *testing.T) {
	m := setupTestManager(t)
	ctx := context.Background()

	require.NoError(t, db.Migrate(ctx, m.DB(), migrations))
	require.NoError(t, db.Migrate(ctx, m.DB(), migrations))
}

func TestSaveVolume_LogsWriteFailure(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	m, err := OpenPath(db.Memory)
	require.NoError(t, err)
	m.SaveVolume(40)
	require.NoError(t, m.DB().Close())

	m.volume.Flush()

	assert.Contains(t, buf.String(), "save volume")
	assert.Contains(t, buf.String(), "volume=40")
}

func TestRecordPlay(t *testing.T) {
	m := setupTestManager(t)
	ctx := context.Background()
	t0 := time.Unix(1_700_000_000, 0)
	m.now = func() time.Time { return t0 }

	n, err := m.RecordPlay(ctx, "/media/a.mp4")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	m.now = func() time.Time { return t0.Add(time.Hour) }
	n, err = m.RecordPlay(ctx, "/media/a.mp4")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	stats, ok, err := m.Stats(ctx, "/media/a.mp4")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, stats.AccessCount)
	assert.Equal(t, t0, stats.CreatedAt)
	assert.Equal(t, t0.Add(time.Hour), stats.LastAccessed)
}

func TestStats_Unknown(t *testing.T) {
	m := setupTestManager(t)

	_, ok, err := m.Stats(context.Background(), "/never/played")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMostPlayed(t *testing.T) {
	m := setupTestManager(t)
	ctx := context.Background()

	for _, p := range []string{"/a", "/b", "/b", "/c", "/c", "/c"} {
		_, err := m.RecordPlay(ctx, p)
		require.NoError(t, err)
	}

	top, err := m.MostPlayed(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "/c", top[0].Path)
	assert.Equal(t, 3, top[0].AccessCount)
	assert.Equal(t, "/b", top[1].Path)
}

func TestRecordPlay_CancelledContext(t *testing.T) {
	m := setupTestManager(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.RecordPlay(ctx, "/a")
	assert.Error(t, err)
}

func TestGetSession_Empty(t *testing.T) {
	m := setupTestManager(t)

	s, err := m.GetSession()

	require.NoError(t, err)
	assert.Equal(t, "", s.Folder)
	assert.Nil(t, s.Volume)
}

func TestSaveFolder(t *testing.T) {
	m := setupTestManager(t)

	require.NoError(t, m.SaveFolder("/media/one"))
	require.NoError(t, m.SaveFolder("/media/two"))

	s, err := m.GetSession()
	require.NoError(t, err)
	assert.Equal(t, "/media/two", s.Folder)
	assert.Nil(t, s.Volume)
}

func TestSaveVolume_FlushedOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reel.db")
	m, err := OpenPath(path)
	require.NoError(t, err)

	require.NoError(t, m.SaveFolder("/media"))
	m.SaveVolume(70)
	m.SaveVolume(65)
	require.NoError(t, m.Close())

	m, err = OpenPath(path)
	require.NoError(t, err)
	defer m.Close()

	s, err := m.GetSession()
	require.NoError(t, err)
	require.NotNil(t, s.Volume)
	assert.Equal(t, 65, *s.Volume)
	assert.Equal(t, "/media", s.Folder)
}
