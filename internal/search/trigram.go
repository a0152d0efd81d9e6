package search

import (
	"cmp"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/gosimple/unidecode"
)

// minCoverage is the share of a word's trigrams an entry must contain.
const minCoverage = 0.4

// Match is an index entry that matched a query.
type Match struct {
	Index int
	Score float64
}

// trigramSet holds hashed trigrams.
type trigramSet map[uint64]struct{}

// Query is a parsed search string. Every word must match.
type Query struct {
	words []string
	sets  []trigramSet
}

// ParseQuery normalizes q and splits it into words.
func ParseQuery(q string) Query {
	words := strings.Fields(normalize(q))
	sets := make([]trigramSet, len(words))
	for i, w := range words {
		sets[i] = trigrams(w)
	}
	return Query{words: words, sets: sets}
}

// Blank reports whether the query has no words.
func (q Query) Blank() bool { return len(q.words) == 0 }

// score rates a normalized text against the query; 0 is no match.
func (q Query) score(text string, set trigramSet) float64 {
	total := 0.0
	for i, word := range q.words {
		// Trigrams say little about one or two letters.
		if len([]rune(word)) <= 2 {
			if !strings.Contains(text, word) {
				return 0
			}
			total++
			continue
		}

		c := coverage(q.sets[i], set)
		if c < minCoverage {
			return 0
		}
		if strings.Contains(text, word) {
			c += 0.5
		}
		total += c
	}
	return total / float64(len(q.words))
}

// Match rates a raw text against the query.
func (q Query) Match(text string) float64 {
	if q.Blank() {
		return 0
	}
	n := normalize(text)
	return q.score(n, trigrams(n))
}

// Index holds pre-computed trigrams for a growing list of texts.
type Index struct {
	texts []string
	sets  []trigramSet
}

// NewIndex indexes texts in order.
func NewIndex(texts []string) *Index {
	idx := &Index{
		texts: make([]string, 0, len(texts)),
		sets:  make([]trigramSet, 0, len(texts)),
	}
	for _, t := range texts {
		idx.Add(t)
	}
	return idx
}

// Add appends a text; its match index is the previous Len.
func (idx *Index) Add(text string) {
	n := normalize(text)
	idx.texts = append(idx.texts, n)
	idx.sets = append(idx.sets, trigrams(n))
}

// Len returns the number of indexed texts.
func (idx *Index) Len() int { return len(idx.texts) }

// Search returns the matching entries, best first and stable on ties.
// A blank query matches every entry with a zero score.
func (idx *Index) Search(q Query) []Match {
	if q.Blank() {
		all := make([]Match, len(idx.texts))
		for i := range all {
			all[i].Index = i
		}
		return all
	}

	var out []Match
	for i, text := range idx.texts {
		if s := q.score(text, idx.sets[i]); s > 0 {
			out = append(out, Match{Index: i, Score: s})
		}
	}
	slices.SortStableFunc(out, func(a, b Match) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return out
}

// normalize lowercases, folds accents to ASCII and turns file name
// separators into spaces.
func normalize(s string) string {
	s = strings.ToLower(unidecode.Unidecode(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '.', '-':
			return ' '
		}
		return r
	}, s)
}

// trigrams hashes every three-rune window of s padded with two spaces on
// each side. Windows made only of spaces are skipped.
func trigrams(s string) trigramSet {
	if s == "" {
		return nil
	}
	r := []rune("  " + s + "  ")
	set := make(trigramSet, len(r))
	for i := 0; i+3 <= len(r); i++ {
		tri := string(r[i : i+3])
		if strings.TrimSpace(tri) == "" {
			continue
		}
		set[xxhash.Sum64String(tri)] = struct{}{}
	}
	return set
}

// coverage is |query ∩ item| / |query|. Unlike Jaccard it does not punish
// short queries against long names.
func coverage(query, item trigramSet) float64 {
	if len(query) == 0 {
		return 0
	}
	hits := 0
	for h := range query {
		if _, ok := item[h]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(query))
}
