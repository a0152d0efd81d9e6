package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/reel/internal/config"
	"github.com/llehouerou/reel/internal/state"
)

func TestWriteMostPlayed(t *testing.T) {
	m, err := state.OpenPath(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, writeMostPlayed(ctx, m, 5, &out))
	assert.Equal(t, "nothing played yet\n", out.String())

	for _, p := range []string{"/m/a.mkv", "/m/b.mkv", "/m/b.mkv"} {
		_, err := m.RecordPlay(ctx, p)
		require.NoError(t, err)
	}

	out.Reset()
	require.NoError(t, writeMostPlayed(ctx, m, 1, &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[0]), "2 "))
	assert.True(t, strings.HasSuffix(lines[0], "/m/b.mkv"))
}

func TestSessionConfig_SavedVolumeWins(t *testing.T) {
	vol := 30
	cfg := &config.Config{Volume: &vol}

	sc := sessionConfig(cfg, state.SessionState{})
	assert.Equal(t, 30, sc.Volume)
	assert.True(t, sc.Loop)
	assert.Equal(t, "deleted", sc.DeletedDir)

	saved := 70
	sc = sessionConfig(cfg, state.SessionState{Volume: &saved})
	assert.Equal(t, 70, sc.Volume)
}

func TestStartFolder(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	missing := filepath.Join(dir, "gone")

	got, err := startFolder([]string{"/from/arg"}, &config.Config{DefaultFolder: dir}, state.SessionState{})
	require.NoError(t, err)
	assert.Equal(t, "/from/arg", got)

	got, err = startFolder(nil, &config.Config{DefaultFolder: dir}, state.SessionState{Folder: other})
	require.NoError(t, err)
	assert.Equal(t, dir, got, "config default before saved folder")

	got, err = startFolder(nil, &config.Config{DefaultFolder: missing}, state.SessionState{Folder: other})
	require.NoError(t, err)
	assert.Equal(t, other, got, "missing default falls through")

	wd, err := os.Getwd()
	require.NoError(t, err)
	got, err = startFolder(nil, &config.Config{}, state.SessionState{})
	require.NoError(t, err)
	assert.Equal(t, wd, got)
}

func TestRun_Help(t *testing.T) {
	err := run([]string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}
