package actions

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/reel/internal/msgqueue"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// collect polls q until a message tagged until (or action.error) arrives.
func collect(t *testing.T, q *msgqueue.Queue, until string) []msgqueue.Message {
	t.Helper()
	var out []msgqueue.Message
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		m, ok := q.Poll()
		if !ok {
			time.Sleep(time.Millisecond)
			continue
		}
		out = append(out, m)
		if m.Tag == until || m.Tag == TagActionError {
			return out
		}
	}
	t.Fatalf("timed out waiting for %s, got %d messages", until, len(out))
	return nil
}

func byTag(msgs []msgqueue.Message, tag string) []msgqueue.Message {
	var out []msgqueue.Message
	for _, m := range msgs {
		if m.Tag == tag {
			out = append(out, m)
		}
	}
	return out
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry(nil)
	noop := func(context.Context, *Run, Request) error { return nil }

	require.NoError(t, r.Register("a", noop))
	err := r.Register("a", noop)

	require.ErrorIs(t, err, ErrDuplicateAction)
	fn, ok := r.Lookup("a")
	assert.True(t, ok)
	assert.NotNil(t, fn)
}

func TestRegistry_MustRegisterPanicsOnDuplicate(t *testing.T) {
	r := NewRegistry(nil)
	noop := func(context.Context, *Run, Request) error { return nil }
	r.MustRegister("a", noop)

	assert.Panics(t, func() { r.MustRegister("a", noop) })
}

func TestDefault_Names(t *testing.T) {
	r := Default(nil)

	assert.Equal(t, []string{CheckDuplicates, Delete, OpenFolder, Watch}, r.Names())
}

func TestRegistry_StartUnknown(t *testing.T) {
	r := NewRegistry(nil)

	_, err := r.Start(context.Background(), msgqueue.New(4), "nope", Request{})

	require.ErrorIs(t, err, ErrUnknownAction)
}

func TestRegistry_StartReportsErrors(t *testing.T) {
	r := NewRegistry(nil)
	boom := assert.AnError
	r.MustRegister("fail", func(context.Context, *Run, Request) error { return boom })
	q := msgqueue.New(4)

	id, err := r.Start(context.Background(), q, "fail", Request{})
	require.NoError(t, err)

	msgs := collect(t, q, TagActionError)
	last := msgs[len(msgs)-1]
	assert.Equal(t, TagActionError, last.Tag)
	assert.Equal(t, id, last.Run)
	assert.ErrorIs(t, last.Payload.(ActionError).Err, boom)
}

func TestIsIgnored(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"movie.mkv", false},
		{"notes.txt", true},
		{"COVER.JPG", true},
		{"subs.srt", true},
		{"README", false},
		{"nfo", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsIgnored(tt.name, DefaultIgnored))
		})
	}
}

func TestScanFolder(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "a.mkv"), "a")
	writeFile(t, filepath.Join(base, "notes.txt"), "skip")
	writeFile(t, filepath.Join(base, "sub", "b.mp4"), "b")
	writeFile(t, filepath.Join(base, "sub", "a.mkv"), "same name")
	writeFile(t, filepath.Join(base, "deleted", "old.mkv"), "staged")

	q := msgqueue.New(64)
	id, err := Default(nil).Start(context.Background(), q, OpenFolder, Request{Base: base})
	require.NoError(t, err)

	msgs := collect(t, q, TagFolderEnd)

	assert.Equal(t, TagFolderStart, msgs[0].Tag)
	for _, m := range msgs {
		assert.Equal(t, id, m.Run)
	}

	items := byTag(msgs, TagFolderItem)
	require.Len(t, items, 2)
	assert.Equal(t, FolderItem{Name: "a.mkv", Path: filepath.Join(base, "a.mkv")}, items[0].Payload)
	assert.Equal(t, FolderItem{Name: "b.mp4", Path: filepath.Join(base, "sub", "b.mp4")}, items[1].Payload)

	dups := byTag(msgs, TagFolderDuplicate)
	require.Len(t, dups, 1)
	assert.Equal(t, FolderDuplicate{
		Name:  "a.mkv",
		Paths: []string{filepath.Join(base, "a.mkv"), filepath.Join(base, "sub", "a.mkv")},
	}, dups[0].Payload)

	assert.Equal(t, FolderEnd{Count: 2}, msgs[len(msgs)-1].Payload)
}

func TestScanFolder_CustomIgnored(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "a.mkv"), "a")
	writeFile(t, filepath.Join(base, "b.txt"), "b")

	q := msgqueue.New(64)
	_, err := Default(nil).Start(context.Background(), q, OpenFolder, Request{Base: base, Ignored: []string{"mkv"}})
	require.NoError(t, err)

	items := byTag(collect(t, q, TagFolderEnd), TagFolderItem)
	require.Len(t, items, 1)
	assert.Equal(t, "b.txt", items[0].Payload.(FolderItem).Name)
}

func TestScanFolder_Cancelled(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "a.mkv"), "a")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	q := msgqueue.New(64)
	_, err := Default(nil).Start(ctx, q, OpenFolder, Request{Base: base})
	require.NoError(t, err)

	msgs := collect(t, q, TagFolderEnd)
	last := msgs[len(msgs)-1]
	require.Equal(t, TagActionError, last.Tag)
	assert.ErrorIs(t, last.Payload.(ActionError).Err, context.Canceled)
}

func TestStageDelete(t *testing.T) {
	base := t.TempDir()
	src := filepath.Join(base, "show", "ep1.mkv")
	writeFile(t, src, "ep1")

	q := msgqueue.New(8)
	_, err := Default(nil).Start(context.Background(), q, Delete, Request{Base: base, Path: src})
	require.NoError(t, err)

	msgs := collect(t, q, TagDeleteDone)
	done := msgs[len(msgs)-1].Payload.(DeleteDone)

	want := filepath.Join(base, DefaultDeletedDir, "show", "ep1.mkv")
	assert.Equal(t, want, done.Dest)
	assert.NoFileExists(t, src)
	assert.FileExists(t, want)
}

func TestStageDelete_NameCollision(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "deleted", "a.mkv"), "older")
	src := filepath.Join(base, "a.mkv")
	writeFile(t, src, "newer")

	dest, err := stage(Request{Base: base}, src)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "deleted", "a (1).mkv"), dest)
}

func TestStageDelete_Missing(t *testing.T) {
	base := t.TempDir()

	q := msgqueue.New(8)
	_, err := Default(nil).Start(context.Background(), q, Delete,
		Request{Base: base, Path: filepath.Join(base, "ghost.mkv")})
	require.NoError(t, err)

	msgs := collect(t, q, TagDeleteFailed)
	failed := msgs[len(msgs)-1]
	assert.Equal(t, TagDeleteFailed, failed.Tag)
	assert.Error(t, failed.Payload.(DeleteFailed).Err)
}

func TestStage_CustomDeletedDir(t *testing.T) {
	base := t.TempDir()
	src := filepath.Join(base, "a.mkv")
	writeFile(t, src, "a")

	dest, err := stage(Request{Base: base, DeletedDir: ".trash"}, src)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, ".trash", "a.mkv"), dest)
}

func TestFindDuplicates(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "a.mkv"), "same bytes")
	writeFile(t, filepath.Join(base, "copy", "b.mkv"), "same bytes")
	writeFile(t, filepath.Join(base, "other", "a.mkv"), "different")

	q := msgqueue.New(64)
	_, err := Default(nil).Start(context.Background(), q, CheckDuplicates, Request{Base: base})
	require.NoError(t, err)

	msgs := collect(t, q, TagDupesEnd)

	removed := byTag(msgs, TagDupesRemoved)
	require.Len(t, removed, 1)
	r := removed[0].Payload.(DupesRemoved)
	assert.Equal(t, filepath.Join(base, "a.mkv"), r.Original)
	assert.Equal(t, filepath.Join(base, "copy", "b.mkv"), r.Path)
	assert.NoFileExists(t, r.Path)
	assert.FileExists(t, r.Dest)

	names := byTag(msgs, TagDupesNames)
	require.Len(t, names, 1)
	assert.Equal(t, "a.mkv", names[0].Payload.(DupesNames).Name)

	end := msgs[len(msgs)-1].Payload.(DupesEnd)
	assert.Equal(t, 3, end.Processed)
	assert.Equal(t, 1, end.Removed)
	assert.Equal(t, int64(len("same bytes")), end.Reclaimed)
}

func TestSameContent(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	c := filepath.Join(dir, "c")
	writeFile(t, a, "hello")
	writeFile(t, b, "hello")
	writeFile(t, c, "hello!")

	assert.True(t, sameContent(a, b))
	assert.False(t, sameContent(a, c))
	assert.False(t, sameContent(a, filepath.Join(dir, "missing")))
}

func TestWatchFolder(t *testing.T) {
	base := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := msgqueue.New(64)
	_, err := Default(nil).Start(ctx, q, Watch, Request{Base: base})
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // let the watcher register

	path := filepath.Join(base, "new.mkv")
	writeFile(t, path, "x")

	var item FolderItem
	require.Eventually(t, func() bool {
		m, ok := q.Poll()
		if ok && m.Tag == TagFolderItem {
			item = m.Payload.(FolderItem)
			return true
		}
		return false
	}, 5*time.Second, 5*time.Millisecond)
	assert.Equal(t, FolderItem{Name: "new.mkv", Path: path}, item)

	require.NoError(t, os.Remove(path))

	require.Eventually(t, func() bool {
		m, ok := q.Poll()
		return ok && m.Tag == TagFolderRemoved && m.Payload.(FolderRemoved).Name == "new.mkv"
	}, 5*time.Second, 5*time.Millisecond)
}
