package spell

import (
	"fmt"
	"sort"
	"strings"
)

// Suggestion is a ranked correction candidate: a dictionary word, its
// exact edit distance from the query and its occurrence frequency.
// Suggestions are produced at query time only, never stored.
type Suggestion struct {
	Word      string
	Distance  int
	Frequency int
}

// Suggest returns ranked corrections for query, blocking until the build
// gate opens. The first receive waits for Build to finish; afterwards the
// closed-channel receive costs nothing, so repeated queries pay no
// synchronization. An empty result is a normal outcome, not an error.
func (c *Checker) Suggest(query string, limit int) ([]Suggestion, error) {
	<-c.ready
	if c.index == nil {
		if c.buildErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, c.buildErr)
		}
		return nil, ErrUnavailable
	}
	return Lookup(query, c.index, limit), nil
}

// WordsWithPrefix lists dictionary entries starting with prefix,
// alphabetically. Like Suggest it blocks until the build gate opens.
func (c *Checker) WordsWithPrefix(prefix string, limit int) ([]Entry, error) {
	<-c.ready
	if c.index == nil {
		if c.buildErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, c.buildErr)
		}
		return nil, ErrUnavailable
	}
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	return c.index.WordsWithPrefix(prefix, limit), nil
}

// Lookup probes the index with every deletion variant of query, computes
// the exact Damerau-Levenshtein distance for each candidate and returns
// those within the index's deletion budget, ranked.
//
// The variant overlap only bounds candidates to "within k deletions of a
// common subsequence": it over-approximates the true edit neighborhood,
// so each hit is re-checked with the exact distance before it is kept.
//
// Ordering is fully deterministic: distance ascending, then frequency
// descending, then the word itself. limit 0 means unlimited.
func Lookup(query string, index *Index, limit int) []Suggestion {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	maxDistance := index.MaxDistance()
	seen := make(map[string]struct{})
	var results []Suggestion

	for variant := range Deletes(query, maxDistance) {
		for _, candidate := range index.Candidates(variant) {
			if _, done := seen[candidate]; done {
				continue
			}
			seen[candidate] = struct{}{}

			dist := BoundedDistance(query, candidate, maxDistance)
			if dist < 0 {
				continue
			}
			results = append(results, Suggestion{
				Word:      candidate,
				Distance:  dist,
				Frequency: index.Frequency(candidate),
			})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		if results[i].Frequency != results[j].Frequency {
			return results[i].Frequency > results[j].Frequency
		}
		return results[i].Word < results[j].Word
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
