package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/reel/internal/actions"
	"github.com/llehouerou/reel/internal/msgqueue"
)

func TestReport(t *testing.T) {
	q := msgqueue.New(16)
	q.Put(msgqueue.Message{Tag: actions.TagDupesRemoved, Payload: actions.DupesRemoved{
		Path: "/m/b.mkv", Original: "/m/a.mkv", Size: 2048,
	}})
	q.Put(msgqueue.Message{Tag: actions.TagDupesNames, Payload: actions.DupesNames{
		Name: "c.mkv", Paths: []string{"/m/c.mkv", "/m/x/c.mkv"},
	}})
	q.Put(msgqueue.Message{Tag: actions.TagDupesEnd, Payload: actions.DupesEnd{
		Processed: 1500, Removed: 1, Reclaimed: 2048,
	}})

	var out bytes.Buffer
	require.NoError(t, report(context.Background(), q, &out))

	text := out.String()
	assert.Contains(t, text, "removed  /m/b.mkv (same as /m/a.mkv, 2.0 kB)")
	assert.Contains(t, text, "c.mkv: 2 files differ")
	assert.Contains(t, text, "/m/x/c.mkv")
	assert.Contains(t, text, "1,500 files checked, 1 removed, 2.0 kB reclaimed")
}

func TestReport_ActionError(t *testing.T) {
	q := msgqueue.New(4)
	boom := errors.New("boom")
	q.Put(msgqueue.Message{Tag: actions.TagActionError, Payload: actions.ActionError{
		Action: actions.CheckDuplicates, Err: boom,
	}})

	err := report(context.Background(), q, &bytes.Buffer{})

	assert.ErrorIs(t, err, boom)
}

func TestReport_Canceled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := report(ctx, msgqueue.New(4), &bytes.Buffer{})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.mkv"), []byte("same"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.mkv"), []byte("same"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.mkv"), []byte("other"), 0o600))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), dir, false, &out))

	assert.Contains(t, out.String(), "3 files checked, 1 removed")
	_, err := os.Stat(filepath.Join(dir, "b.mkv"))
	assert.True(t, os.IsNotExist(err), "duplicate moved away")
	_, err = os.Stat(filepath.Join(dir, "a.mkv"))
	assert.NoError(t, err, "first copy kept")
}

func TestRun_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	err := run(context.Background(), file, false, &bytes.Buffer{})

	assert.ErrorContains(t, err, "not a directory")
}
