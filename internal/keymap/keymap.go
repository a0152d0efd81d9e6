// Package keymap defines key bindings for the application.
package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "playlist"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionFilter, []string{"/"}, "Filter playlist", "global"},
	{ActionClearFilter, []string{"esc"}, "Clear filter", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionNext, []string{"d", "pgdown"}, "Next item", "playback"},
	{ActionPrevious, []string{"a", "pgup"}, "Previous item", "playback"},
	{ActionSeekForward, []string{"right"}, "Seek forward", "playback"},
	{ActionSeekBack, []string{"left"}, "Seek back", "playback"},
	{ActionSeekForwardLong, []string{"ctrl+right"}, "Seek forward (long)", "playback"},
	{ActionSeekBackLong, []string{"ctrl+left"}, "Seek back (long)", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},
	{ActionToggleLoop, []string{"L"}, "Toggle loop", "playback"},
	{ActionToggleShuffle, []string{"S"}, "Toggle shuffle", "playback"},
	{ActionToggleReplacement, []string{"W"}, "Toggle replacement", "playback"},

	// Playlist panel
	{ActionMoveUp, []string{"k", "up"}, "Move up", "playlist"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "playlist"},
	{ActionJumpStart, []string{"g", "home"}, "First item", "playlist"},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", "playlist"},
	{ActionJumpCurrent, []string{"c"}, "Jump to playing item", "playlist"},
	{ActionSelect, []string{"enter"}, "Play selected", "playlist"},
	{ActionDelete, []string{"x"}, "Delete selected", "playlist"},
	{ActionDuplicates, []string{"D"}, "Check duplicates", "playlist"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Contexts lists the binding contexts in help order.
var Contexts = []string{"global", "playback", "playlist"}
