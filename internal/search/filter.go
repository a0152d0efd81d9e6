// Package search turns filter text into selection sets of playlist keys.
package search

// Filter returns the keys matching query, in the order given.
// A blank query returns nil: no filter is active.
func Filter(query string, keys []string) []string {
	q := ParseQuery(query)
	if q.Blank() {
		return nil
	}

	hit := make([]bool, len(keys))
	matches := NewIndex(keys).Search(q)
	for _, m := range matches {
		hit[m.Index] = true
	}

	result := make([]string, 0, len(matches))
	for i, k := range keys {
		if hit[i] {
			result = append(result, k)
		}
	}
	return result
}

// Matches reports whether a single key matches query.
// A blank query matches everything.
func Matches(query, key string) bool {
	q := ParseQuery(query)
	return q.Blank() || q.Match(key) > 0
}
