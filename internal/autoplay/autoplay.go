// Package autoplay decides what plays next from a playlist.
//
// The engine keeps a back history and a redo stack so that stepping back and
// forward again replays the same items, and it can restrict picks to a
// filtered subset of the playlist. It is not safe for concurrent use: the
// owning context serializes all calls.
package autoplay

import (
	"math/rand/v2"
	"slices"
	"time"
)

// View is the read-only playlist the engine resolves keys against.
type View interface {
	Path(key string) (string, bool)
	Keys() []string
	Len() int
}

// AutoPlay plays a list of keys with history and redo support.
type AutoPlay struct {
	playlist View
	rng      *rand.Rand

	selected []string // nil = no filter, whole playlist eligible
	remains  []string
	history  []string
	redo     []string

	loop            bool
	shuffle         bool
	withReplacement bool
}

// Option configures an AutoPlay.
type Option func(*AutoPlay)

// WithRand sets the random source used for shuffled picks.
func WithRand(r *rand.Rand) Option {
	return func(a *AutoPlay) { a.rng = r }
}

// WithSeed seeds a PCG source. A zero seed keeps the time-seeded default.
func WithSeed(seed uint64) Option {
	return func(a *AutoPlay) {
		if seed != 0 {
			a.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		}
	}
}

// WithLoop sets whether an exhausted pass restarts automatically.
func WithLoop(loop bool) Option {
	return func(a *AutoPlay) { a.loop = loop }
}

// WithShuffle sets random (true) or stored (false) pick order.
func WithShuffle(shuffle bool) Option {
	return func(a *AutoPlay) { a.shuffle = shuffle }
}

// WithReplacement allows the same key to be picked again within a pass.
func WithReplacement(with bool) Option {
	return func(a *AutoPlay) { a.withReplacement = with }
}

// New creates an engine over the given playlist.
// Defaults: loop on, shuffle on, without replacement.
func New(playlist View, opts ...Option) *AutoPlay {
	now := uint64(time.Now().UnixNano()) //nolint:gosec // seed only
	a := &AutoPlay{
		playlist: playlist,
		rng:      rand.New(rand.NewPCG(now, now>>1)),
		loop:     true,
		shuffle:  true,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Loop reports whether looping is enabled.
func (a *AutoPlay) Loop() bool { return a.loop }

// SetLoop enables or disables looping.
func (a *AutoPlay) SetLoop(loop bool) { a.loop = loop }

// Shuffle reports whether shuffled picks are enabled.
func (a *AutoPlay) Shuffle() bool { return a.shuffle }

// SetShuffle enables or disables shuffled picks.
func (a *AutoPlay) SetShuffle(shuffle bool) { a.shuffle = shuffle }

// WithReplacement reports whether keys may recur within a pass.
func (a *AutoPlay) WithReplacement() bool { return a.withReplacement }

// SetWithReplacement enables or disables picking with replacement.
func (a *AutoPlay) SetWithReplacement(with bool) { a.withReplacement = with }

// Reset starts a new pass from the current selection and clears history.
func (a *AutoPlay) Reset() {
	a.remains = a.SelectionSet()
	a.history = nil
	a.redo = nil
}

// SetSelectionSet installs a filter. A nil selection clears the filter.
//
// Keys already played in this pass are not made eligible again, and history
// is kept so Previous still works after the filter changes.
func (a *AutoPlay) SetSelectionSet(selection []string) {
	if selection == nil {
		a.selected = nil
	} else {
		a.selected = slices.Clone(selection)
		if a.selected == nil {
			a.selected = []string{}
		}
	}
	a.playlistGrew()
}

// SelectionSet returns a copy of the active selection, or of every playlist
// key when no filter is set.
func (a *AutoPlay) SelectionSet() []string {
	if a.selected == nil {
		return a.playlist.Keys()
	}
	return slices.Clone(a.selected)
}

// Filtered reports whether a selection set is active.
func (a *AutoPlay) Filtered() bool {
	return a.selected != nil
}

// AddToSelection makes a newly added key eligible for the current pass.
func (a *AutoPlay) AddToSelection(key string) {
	if a.selected != nil {
		a.selected = append(a.selected, key)
	}
	a.remains = append(a.remains, key)
}

// playlistGrew rebuilds remains from the selection minus played keys.
func (a *AutoPlay) playlistGrew() {
	played := make(map[string]struct{}, len(a.history))
	for _, k := range a.history {
		played[k] = struct{}{}
	}
	sel := a.SelectionSet()
	a.remains = sel[:0]
	for _, k := range sel {
		if _, ok := played[k]; !ok {
			a.remains = append(a.remains, k)
		}
	}
}

// Next returns the locator of the next item to play.
// Returns false when nothing is left: the pass is exhausted with looping off,
// or there is nothing eligible at all.
func (a *AutoPlay) Next() (string, bool) {
	for len(a.redo) > 0 {
		key := a.redo[len(a.redo)-1]
		a.redo = a.redo[:len(a.redo)-1]
		if path, ok := a.playlist.Path(key); ok {
			a.history = append(a.history, key)
			return path, true
		}
	}

	didReset := false
	for {
		if len(a.remains) == 0 {
			// One reset per call: a selection made only of stale keys
			// would otherwise spin forever.
			if !a.loop || didReset {
				return "", false
			}
			a.Reset()
			didReset = true
			if len(a.remains) == 0 {
				return "", false
			}
		}

		idx := a.pick()
		key := a.remains[idx]
		path, ok := a.playlist.Path(key)
		if !ok || !a.withReplacement {
			a.remains = slices.Delete(a.remains, idx, idx+1)
		}
		if !ok {
			continue
		}

		a.history = append(a.history, key)
		return path, true
	}
}

func (a *AutoPlay) pick() int {
	if a.shuffle {
		return a.rng.IntN(len(a.remains))
	}
	return 0
}

// Previous steps back to the item played before the current one.
// The current item goes onto the redo stack so Next replays it.
// Stale keys passed over on the way are dropped from history. Returns false,
// leaving state untouched, when no earlier entry is still in the playlist.
func (a *AutoPlay) Previous() (string, bool) {
	last := len(a.history) - 1
	for i := last - 1; i >= 0; i-- {
		path, ok := a.playlist.Path(a.history[i])
		if !ok {
			continue
		}
		a.redo = append(a.redo, a.history[last])
		a.history = a.history[:i+1]
		return path, true
	}
	return "", false
}

// Remove forgets a key that left the playlist.
// The key is purged from history, the pass pool, the redo stack and the
// selection; an unknown key is a no-op.
func (a *AutoPlay) Remove(key string) {
	match := func(k string) bool { return k == key }
	a.history = slices.DeleteFunc(a.history, match)
	a.remains = slices.DeleteFunc(a.remains, match)
	a.redo = slices.DeleteFunc(a.redo, match)
	if a.selected != nil {
		a.selected = slices.DeleteFunc(a.selected, match)
	}
}

// Current returns the key of the item currently playing.
func (a *AutoPlay) Current() (string, bool) {
	if len(a.history) == 0 {
		return "", false
	}
	return a.history[len(a.history)-1], true
}

// History returns the played keys, oldest first.
func (a *AutoPlay) History() []string { return slices.Clone(a.history) }

// Remaining returns the keys not yet played in this pass.
func (a *AutoPlay) Remaining() []string { return slices.Clone(a.remains) }

// Upcoming returns the redo stack in the order Next will replay it.
func (a *AutoPlay) Upcoming() []string {
	out := slices.Clone(a.redo)
	slices.Reverse(out)
	return out
}
