package errmsg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Empty(t, Format(OpFileDelete, nil))
	assert.Equal(t,
		"Failed to delete file: file not found",
		Format(OpFileDelete, errors.New("file not found")))
	assert.Equal(t,
		"Failed to start playback: no audio device",
		Format(OpPlaybackStart, errors.New("no audio device")))
}

func TestFormat_WrappedError(t *testing.T) {
	err := errors.Join(errors.New("scan aborted"), errors.New("permission denied"))

	assert.Equal(t,
		"Failed to scan folder: scan aborted\npermission denied",
		Format(OpFolderScan, err))
}

func TestFormatWith(t *testing.T) {
	busy := errors.New("busy")

	assert.Empty(t, FormatWith(OpFileDelete, "clip.mp4", nil))
	assert.Equal(t, Format(OpFileDelete, busy), FormatWith(OpFileDelete, "", busy),
		"empty context falls back to Format")
	assert.Equal(t,
		"Failed to start playback 'clip.mkv': unsupported format",
		FormatWith(OpPlaybackStart, "clip.mkv", errors.New("unsupported format")))
}

func TestForAction(t *testing.T) {
	cases := map[string]Op{
		"open_folder":      OpFolderScan,
		"watch":            OpFolderWatch,
		"delete":           OpFileDelete,
		"check_duplicates": OpDuplicateCheck,
		"custom":           Op("run custom"),
	}
	for name, want := range cases {
		assert.Equal(t, want, ForAction(name), name)
	}
}
