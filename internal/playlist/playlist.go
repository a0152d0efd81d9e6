package playlist

import (
	"slices"
	"sort"
)

// Entry is a single playable item: the display name shown in the playlist
// panel and the path handed to the player.
type Entry struct {
	Name string
	Path string
}

// Playlist maps display names to paths, keeping insertion order.
type Playlist struct {
	entries []Entry
	index   map[string]int // name -> position in entries
}

// New creates a new empty playlist.
func New() *Playlist {
	return &Playlist{
		entries: make([]Entry, 0),
		index:   make(map[string]int),
	}
}

// Add appends an entry.
// Returns false if the name is already present; the first path is kept.
func (p *Playlist) Add(name, path string) bool {
	if _, exists := p.index[name]; exists {
		return false
	}
	p.index[name] = len(p.entries)
	p.entries = append(p.entries, Entry{Name: name, Path: path})
	return true
}

// Remove removes the entry with the given name.
// Returns false if the name is unknown.
func (p *Playlist) Remove(name string) bool {
	i, ok := p.index[name]
	if !ok {
		return false
	}
	p.entries = slices.Delete(p.entries, i, i+1)
	delete(p.index, name)
	for j := i; j < len(p.entries); j++ {
		p.index[p.entries[j].Name] = j
	}
	return true
}

// Path returns the path stored under name.
func (p *Playlist) Path(name string) (string, bool) {
	i, ok := p.index[name]
	if !ok {
		return "", false
	}
	return p.entries[i].Path, true
}

// Has reports whether name is in the playlist.
func (p *Playlist) Has(name string) bool {
	_, ok := p.index[name]
	return ok
}

// NameOf returns the display name stored for path.
func (p *Playlist) NameOf(path string) (string, bool) {
	for _, e := range p.entries {
		if e.Path == path {
			return e.Name, true
		}
	}
	return "", false
}

// Keys returns a copy of all names in insertion order.
func (p *Playlist) Keys() []string {
	keys := make([]string, len(p.entries))
	for i, e := range p.entries {
		keys[i] = e.Name
	}
	return keys
}

// Sorted returns all names in lexical order, as shown in the playlist panel.
func (p *Playlist) Sorted() []string {
	keys := p.Keys()
	sort.Strings(keys)
	return keys
}

// Entries returns a copy of all entries.
func (p *Playlist) Entries() []Entry {
	result := make([]Entry, len(p.entries))
	copy(result, p.entries)
	return result
}

// Len returns the number of entries.
func (p *Playlist) Len() int {
	return len(p.entries)
}

// Clear removes all entries.
func (p *Playlist) Clear() {
	p.entries = p.entries[:0]
	clear(p.index)
}
