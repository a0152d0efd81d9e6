package autoplay

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/reel/internal/playlist"
)

func abc() *playlist.Playlist {
	p := playlist.New()
	p.Add("a", "/a")
	p.Add("b", "/b")
	p.Add("c", "/c")
	return p
}

func sequential(p View, loop bool) *AutoPlay {
	a := New(p, WithShuffle(false), WithReplacement(false), WithLoop(loop))
	a.Reset()
	return a
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func TestNew_Defaults(t *testing.T) {
	a := New(abc())

	assert.True(t, a.Loop())
	assert.True(t, a.Shuffle())
	assert.False(t, a.WithReplacement())
	assert.False(t, a.Filtered())
	_, ok := a.Current()
	assert.False(t, ok, "Current() on empty history")
}

func TestNext_SequentialNoLoop(t *testing.T) {
	a := sequential(abc(), false)

	for _, want := range []string{"/a", "/b", "/c"} {
		got, ok := a.Next()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := a.Next()
	assert.False(t, ok, "4th Next() should return nothing without loop")
	_, ok = a.Next()
	assert.False(t, ok, "exhaustion is terminal until Reset")
}

func TestNext_SequentialLoopResetsPass(t *testing.T) {
	a := sequential(abc(), true)

	for range 3 {
		_, ok := a.Next()
		require.True(t, ok)
	}

	got, ok := a.Next()
	require.True(t, ok, "4th Next() should start a new pass")
	assert.Contains(t, []string{"/a", "/b", "/c"}, got)
	assert.Equal(t, []string{"a"}, a.History(), "reset clears history")
}

func TestNext_ResetAfterExhaustionWithoutLoop(t *testing.T) {
	a := sequential(abc(), false)
	for range 3 {
		a.Next()
	}

	a.Reset()

	got, ok := a.Next()
	require.True(t, ok)
	assert.Equal(t, "/a", got)
}

func TestNext_EmptyPlaylist(t *testing.T) {
	for _, loop := range []bool{true, false} {
		a := New(playlist.New(), WithLoop(loop))
		a.Reset()

		for range 3 {
			_, ok := a.Next()
			assert.False(t, ok, "loop=%v", loop)
		}
	}
}

func TestNext_LoopNeverRunsDry(t *testing.T) {
	for size := 1; size <= 5; size++ {
		p := playlist.New()
		for i := range size {
			p.Add(string(rune('a'+i)), "/"+string(rune('a'+i)))
		}
		a := New(p, WithRand(seeded(uint64(size))))
		a.Reset()

		for i := range 50 {
			_, ok := a.Next()
			require.True(t, ok, "size=%d call=%d", size, i)
		}
	}
}

func TestNext_NoDuplicateWithinPass(t *testing.T) {
	p := playlist.New()
	for i := range 20 {
		name := string(rune('A' + i))
		p.Add(name, "/"+name)
	}
	a := New(p, WithRand(seeded(7)), WithLoop(false))
	a.Reset()

	seen := make(map[string]bool)
	for range 20 {
		got, ok := a.Next()
		require.True(t, ok)
		assert.False(t, seen[got], "duplicate %s within a pass", got)
		seen[got] = true
	}
	_, ok := a.Next()
	assert.False(t, ok)
}

func TestNext_ShuffleDeterministicWithSeed(t *testing.T) {
	run := func() []string {
		a := New(abc(), WithRand(seeded(42)))
		a.Reset()
		var out []string
		for range 6 {
			got, _ := a.Next()
			out = append(out, got)
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestWithSeed(t *testing.T) {
	run := func() []string {
		a := New(abc(), WithSeed(99))
		a.Reset()
		var out []string
		for range 3 {
			got, _ := a.Next()
			out = append(out, got)
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestNext_WithReplacementKeepsRemains(t *testing.T) {
	a := New(abc(), WithShuffle(false), WithReplacement(true), WithLoop(false))
	a.Reset()

	for range 5 {
		got, ok := a.Next()
		require.True(t, ok)
		assert.Equal(t, "/a", got, "sequential with replacement always picks index 0")
	}
	assert.Len(t, a.Remaining(), 3)
}

func TestPreviousNext_Scenario(t *testing.T) {
	a := sequential(abc(), false)

	got, _ := a.Next()
	assert.Equal(t, "/a", got)
	got, _ = a.Next()
	assert.Equal(t, "/b", got)
	assert.Equal(t, []string{"a", "b"}, a.History())

	got, ok := a.Previous()
	require.True(t, ok)
	assert.Equal(t, "/a", got)
	assert.Equal(t, []string{"a"}, a.History())
	assert.Equal(t, []string{"b"}, a.Upcoming())

	got, ok = a.Next()
	require.True(t, ok)
	assert.Equal(t, "/b", got)
	assert.Equal(t, []string{"a", "b"}, a.History())
	assert.Empty(t, a.Upcoming())
}

func TestPrevious_UndoRedoSymmetry(t *testing.T) {
	p := playlist.New()
	for i := range 10 {
		name := string(rune('a' + i))
		p.Add(name, "/"+name)
	}
	a := New(p, WithRand(seeded(3)), WithLoop(false))
	a.Reset()

	var played []string
	for range 7 {
		got, ok := a.Next()
		require.True(t, ok)
		played = append(played, got)
	}

	// Walk all the way back: stops above the very first item.
	var back []string
	for {
		got, ok := a.Previous()
		if !ok {
			break
		}
		back = append(back, got)
	}
	require.Len(t, back, len(played)-1)
	for i, got := range back {
		assert.Equal(t, played[len(played)-2-i], got)
	}

	// Walk forward again: replays exactly what was stepped back from.
	for i := 1; i < len(played); i++ {
		got, ok := a.Next()
		require.True(t, ok)
		assert.Equal(t, played[i], got)
	}
	assert.Empty(t, a.Upcoming())
}

func TestPrevious_NextPreviousNextSameLocator(t *testing.T) {
	a := New(abc(), WithRand(seeded(11)))
	a.Reset()
	a.Next()

	first, _ := a.Next()
	_, ok := a.Previous()
	require.True(t, ok)
	again, _ := a.Next()

	assert.Equal(t, first, again)
}

func TestPrevious_InsufficientHistory(t *testing.T) {
	a := sequential(abc(), false)

	_, ok := a.Previous()
	assert.False(t, ok, "empty history")

	a.Next()
	_, ok = a.Previous()
	assert.False(t, ok, "single entry")
	assert.Equal(t, []string{"a"}, a.History(), "state untouched")
	assert.Empty(t, a.Upcoming())
}

func TestSetSelectionSet_EmptyNoLoop(t *testing.T) {
	a := sequential(abc(), false)

	a.SetSelectionSet([]string{})

	_, ok := a.Next()
	assert.False(t, ok)
	assert.True(t, a.Filtered())
}

func TestSetSelectionSet_EmptyWithLoop(t *testing.T) {
	a := sequential(abc(), true)

	a.SetSelectionSet([]string{})

	_, ok := a.Next()
	assert.False(t, ok, "empty selection has nothing to loop over")
}

func TestSetSelectionSet_ExcludesPlayed(t *testing.T) {
	a := sequential(abc(), false)
	a.Next() // a

	a.SetSelectionSet([]string{"a", "c"})

	assert.Equal(t, []string{"c"}, a.Remaining())
	got, ok := a.Next()
	require.True(t, ok)
	assert.Equal(t, "/c", got)
	_, ok = a.Next()
	assert.False(t, ok)
}

func TestSetSelectionSet_KeepsHistory(t *testing.T) {
	a := sequential(abc(), false)
	a.Next()
	a.Next()

	a.SetSelectionSet([]string{"c"})

	got, ok := a.Previous()
	require.True(t, ok)
	assert.Equal(t, "/a", got)
}

func TestSetSelectionSet_NilClearsFilter(t *testing.T) {
	a := sequential(abc(), false)
	a.SetSelectionSet([]string{"b"})
	a.Next()

	a.SetSelectionSet(nil)

	assert.False(t, a.Filtered())
	assert.Equal(t, []string{"a", "c"}, a.Remaining())
}

func TestSetSelectionSet_CopiesInput(t *testing.T) {
	a := sequential(abc(), false)
	sel := []string{"a", "b"}

	a.SetSelectionSet(sel)
	sel[0] = "c"

	assert.Equal(t, []string{"a", "b"}, a.SelectionSet())
}

func TestSelectionSet_ReturnsCopy(t *testing.T) {
	a := sequential(abc(), false)

	all := a.SelectionSet()
	assert.Equal(t, []string{"a", "b", "c"}, all)
	all[0] = "zzz"
	assert.Equal(t, []string{"a", "b", "c"}, a.SelectionSet())

	a.SetSelectionSet([]string{"b"})
	sel := a.SelectionSet()
	sel[0] = "zzz"
	assert.Equal(t, []string{"b"}, a.SelectionSet())
}

func TestAddToSelection(t *testing.T) {
	p := playlist.New()
	p.Add("a", "/a")
	a := New(p, WithShuffle(false), WithLoop(false))
	a.Reset()

	p.Add("b", "/b")
	a.AddToSelection("b")

	assert.Equal(t, []string{"a", "b"}, a.Remaining())
	assert.False(t, a.Filtered(), "no filter stays no filter")
}

func TestAddToSelection_ActiveFilter(t *testing.T) {
	p := abc()
	a := New(p, WithShuffle(false), WithLoop(false))
	a.SetSelectionSet([]string{})

	p.Add("d", "/d")
	a.AddToSelection("d")

	assert.Equal(t, []string{"d"}, a.SelectionSet())
	got, ok := a.Next()
	require.True(t, ok)
	assert.Equal(t, "/d", got)
}

func TestRemove_UnknownKey(t *testing.T) {
	a := sequential(abc(), false)
	a.Next()
	a.Next()

	assert.NotPanics(t, func() { a.Remove("zzz") })
	assert.Len(t, a.History(), 2)
}

func TestRemove_PurgesEverywhere(t *testing.T) {
	p := abc()
	a := sequential(p, false)
	a.Next() // a
	a.Next() // b
	a.Previous()

	p.Remove("b")
	a.Remove("b")

	assert.Equal(t, []string{"a"}, a.History())
	assert.Empty(t, a.Upcoming(), "removed key is not replayed")
	got, ok := a.Next()
	require.True(t, ok)
	assert.Equal(t, "/c", got)
}

func TestRemove_FromRemains(t *testing.T) {
	p := abc()
	a := sequential(p, false)

	p.Remove("a")
	a.Remove("a")

	assert.Equal(t, []string{"b", "c"}, a.Remaining())
}

func TestNext_SkipsStaleKeys(t *testing.T) {
	p := abc()
	a := sequential(p, false)

	p.Remove("a") // owner forgot to notify the engine

	got, ok := a.Next()
	require.True(t, ok)
	assert.Equal(t, "/b", got)
}

func TestPrevious_SkipsStaleEntries(t *testing.T) {
	p := abc()
	a := sequential(p, false)
	a.Next()
	a.Next()
	a.Next()

	p.Remove("b")

	got, ok := a.Previous()
	require.True(t, ok)
	assert.Equal(t, "/a", got)
	assert.Equal(t, []string{"a"}, a.History())
	assert.Equal(t, []string{"c"}, a.Upcoming())
}

func TestPrevious_OnlyStaleEntriesLeavesState(t *testing.T) {
	p := abc()
	a := sequential(p, false)
	a.Next()
	a.Next()

	p.Remove("a")

	_, ok := a.Previous()
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b"}, a.History())
	assert.Empty(t, a.Upcoming())
}

func TestNext_StaleSelectionWithLoopTerminates(t *testing.T) {
	a := New(abc(), WithLoop(true))
	a.SetSelectionSet([]string{"ghost"})

	_, ok := a.Next()
	assert.False(t, ok)
}

func TestCurrent(t *testing.T) {
	a := sequential(abc(), false)
	a.Next()
	a.Next()

	key, ok := a.Current()
	require.True(t, ok)
	assert.Equal(t, "b", key)

	a.Previous()
	key, _ = a.Current()
	assert.Equal(t, "a", key)
}

func TestSetters(t *testing.T) {
	a := New(abc())

	a.SetLoop(false)
	a.SetShuffle(false)
	a.SetWithReplacement(true)

	assert.False(t, a.Loop())
	assert.False(t, a.Shuffle())
	assert.True(t, a.WithReplacement())
}
