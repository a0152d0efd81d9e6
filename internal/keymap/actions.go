// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit   Action = "quit"
	ActionFilter Action = "filter"
	ActionHelp   Action = "help"

	// Playback actions
	ActionPlayPause       Action = "play_pause"
	ActionNext            Action = "next"
	ActionPrevious        Action = "previous"
	ActionSeekForward     Action = "seek_forward"
	ActionSeekBack        Action = "seek_back"
	ActionSeekForwardLong Action = "seek_forward_long"
	ActionSeekBackLong    Action = "seek_back_long"
	ActionVolumeUp        Action = "volume_up"
	ActionVolumeDown      Action = "volume_down"

	// Engine modes
	ActionToggleLoop        Action = "toggle_loop"
	ActionToggleShuffle     Action = "toggle_shuffle"
	ActionToggleReplacement Action = "toggle_replacement"

	// Playlist panel
	ActionMoveUp      Action = "move_up"
	ActionMoveDown    Action = "move_down"
	ActionJumpStart   Action = "jump_start"
	ActionJumpEnd     Action = "jump_end"
	ActionJumpCurrent Action = "jump_current"
	ActionSelect      Action = "select"       // enter - play selected
	ActionDelete      Action = "delete"       // x - staged delete
	ActionDuplicates  Action = "duplicates"   // D - duplicate check
	ActionClearFilter Action = "clear_filter" // esc
)
