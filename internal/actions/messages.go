package actions

// Message tags. Folder messages come from both open_folder and watch.
const (
	TagFolderStart     = "folder.start"
	TagFolderItem      = "folder.item"
	TagFolderDuplicate = "folder.duplicate"
	TagFolderEnd       = "folder.end"
	TagFolderRemoved   = "folder.removed"

	TagDupesProgress = "dupes.progress"
	TagDupesRemoved  = "dupes.removed"
	TagDupesNames    = "dupes.names"
	TagDupesEnd      = "dupes.end"

	TagDeleteDone   = "delete.done"
	TagDeleteFailed = "delete.failed"

	TagActionError = "action.error"
)

// FolderItem is a playable file found in the opened folder.
type FolderItem struct {
	Name string // base name, used as the playlist key
	Path string
}

// FolderDuplicate lists files sharing a base name; only the first was
// reported as an item.
type FolderDuplicate struct {
	Name  string
	Paths []string
}

// FolderEnd closes a scan.
type FolderEnd struct {
	Count int
}

// FolderRemoved is a file that disappeared from the watched folder.
type FolderRemoved struct {
	Name string
	Path string
}

// DupesProgress is sent every progressEvery hashed files.
type DupesProgress struct {
	Processed int
}

// DupesRemoved is a file with the same content as Original, moved away.
type DupesRemoved struct {
	Path     string
	Dest     string
	Original string
	Hash     string
	Size     int64
}

// DupesNames lists files sharing a base name but not content.
type DupesNames struct {
	Name  string
	Paths []string
}

// DupesEnd closes a duplicate check.
type DupesEnd struct {
	Processed int
	Removed   int
	Reclaimed int64
}

// DeleteDone is a file moved into the holding directory.
type DeleteDone struct {
	Path string
	Dest string
}

// DeleteFailed is a staged delete that could not be performed.
type DeleteFailed struct {
	Path string
	Err  error
}

// ActionError is sent when an action returns an error.
type ActionError struct {
	Action string
	Err    error
}
