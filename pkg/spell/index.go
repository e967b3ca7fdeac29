package spell

import (
	"sort"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Entry is a single dictionary record fed into the builder.
type Entry struct {
	Word      string
	Frequency int
}

// Index is the completed deletion index: every accepted dictionary word is
// reachable through each of its deletion variants, including the word
// itself as the 0-deletion variant. An Index is built exactly once and
// never mutated afterwards, so any number of goroutines may probe it
// concurrently without locking.
type Index struct {
	maxDistance int
	variants    map[string][]string
	freqs       map[string]int
	words       *patricia.Trie
}

func newWordTrie() *patricia.Trie {
	return patricia.NewTrie()
}

func (ix *Index) insertWord(word string, freq int) {
	ix.words.Insert(patricia.Prefix(word), freq)
}

// MaxDistance returns the deletion budget the index was built with.
// Queries must be probed with the same value or lookups can miss matches.
func (ix *Index) MaxDistance() int {
	return ix.maxDistance
}

// Contains reports whether word is an exact dictionary entry.
func (ix *Index) Contains(word string) bool {
	return ix.words.Get(patricia.Prefix(word)) != nil
}

// Frequency returns the occurrence count recorded for word, or 0 if the
// word is not in the dictionary.
func (ix *Index) Frequency(word string) int {
	return ix.freqs[word]
}

// Candidates returns the dictionary words that can produce variant within
// the deletion budget. The returned slice is owned by the index and must
// not be modified.
func (ix *Index) Candidates(variant string) []string {
	return ix.variants[variant]
}

// WordCount returns the number of indexed dictionary words.
func (ix *Index) WordCount() int {
	return len(ix.freqs)
}

// VariantCount returns the number of distinct deletion variants.
func (ix *Index) VariantCount() int {
	return len(ix.variants)
}

// WordsWithPrefix returns the dictionary entries whose words start with
// prefix, alphabetically. An empty prefix lists the whole dictionary.
// limit 0 means unlimited.
func (ix *Index) WordsWithPrefix(prefix string, limit int) []Entry {
	var out []Entry
	ix.words.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		out = append(out, Entry{Word: string(p), Frequency: item.(int)})
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Word < out[j].Word })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Stats returns statistics about the index contents.
func (ix *Index) Stats() map[string]int {
	maxFreq := 0
	for _, freq := range ix.freqs {
		if freq > maxFreq {
			maxFreq = freq
		}
	}
	return map[string]int{
		"totalWords":   len(ix.freqs),
		"variantCount": len(ix.variants),
		"maxDistance":  ix.maxDistance,
		"maxFrequency": maxFreq,
	}
}
