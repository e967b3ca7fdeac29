package spell

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/remeh/sizedwaitgroup"
)

const defaultChunkSize = 2000

var (
	// ErrUnavailable is returned by Suggest when the build failed or was
	// cancelled. A partial index is never exposed.
	ErrUnavailable = errors.New("spell: index not available")

	// ErrAlreadyBuilt is returned by Build after the first call; the index
	// is constructed once per process.
	ErrAlreadyBuilt = errors.New("spell: index already built")
)

// Checker owns the deletion index and gates queries on its completion.
// Build runs once; Suggest blocks until the gate opens and is lock-free
// afterwards because the installed index is immutable.
type Checker struct {
	maxDistance int
	chunkSize   int

	ready    chan struct{}
	index    *Index
	buildErr error
	once     sync.Once
}

// NewChecker creates a Checker for the given deletion budget. A negative
// maxDistance is a configuration error and is rejected here, at build
// time, rather than surfacing per query.
func NewChecker(maxDistance, chunkSize int) (*Checker, error) {
	if maxDistance < 0 {
		return nil, fmt.Errorf("spell: max distance must be >= 0, got %d", maxDistance)
	}
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	return &Checker{
		maxDistance: maxDistance,
		chunkSize:   chunkSize,
		ready:       make(chan struct{}),
	}, nil
}

// Ready is closed exactly once, after Build has either installed the
// completed index or recorded its failure.
func (c *Checker) Ready() <-chan struct{} {
	return c.ready
}

// Build constructs the index from entries and opens the readiness gate.
// Malformed entries are skipped and logged; an empty entry list is valid
// and yields an index that matches nothing. If ctx is cancelled the
// partial results are discarded and queries report ErrUnavailable.
func (c *Checker) Build(ctx context.Context, entries []Entry) error {
	first := false
	c.once.Do(func() {
		first = true
		defer close(c.ready)

		index, err := c.buildIndex(ctx, entries)
		if err != nil {
			c.buildErr = err
			log.Errorf("Index build failed: %v", err)
			return
		}
		c.index = index
		log.Debugf("Index built: %d words, %d variants, k=%d",
			index.WordCount(), index.VariantCount(), c.maxDistance)
	})
	if !first {
		return ErrAlreadyBuilt
	}
	return c.buildErr
}

// Stats returns index statistics, or a minimal map while no index is
// installed.
func (c *Checker) Stats() map[string]int {
	select {
	case <-c.ready:
	default:
		return map[string]int{"ready": 0}
	}
	if c.index == nil {
		return map[string]int{"ready": 0}
	}
	stats := c.index.Stats()
	stats["ready"] = 1
	return stats
}

// buildIndex partitions the entries, builds one partial mapping per chunk
// on a bounded worker pool and merges the partials. Set union is
// associative and commutative, so the merged index does not depend on
// chunk completion order.
func (c *Checker) buildIndex(ctx context.Context, entries []Entry) (*Index, error) {
	entries = dedupeEntries(entries)
	chunks := partition(entries, c.chunkSize)

	partials := make([]*partialIndex, len(chunks))
	swg := sizedwaitgroup.New(runtime.NumCPU())
	for i, chunk := range chunks {
		if ctx.Err() != nil {
			break
		}
		swg.Add()
		go func(i int, chunk []Entry) {
			defer swg.Done()
			partials[i] = buildPartial(ctx, chunk, c.maxDistance)
		}(i, chunk)
	}
	swg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("index build aborted: %w", err)
	}
	return mergePartials(partials, c.maxDistance), nil
}

// partialIndex is the per-chunk result. Chunks hold disjoint word sets
// after deduplication, so merging candidate lists by append preserves set
// semantics.
type partialIndex struct {
	variants map[string][]string
	freqs    map[string]int
	skipped  int
}

func buildPartial(ctx context.Context, chunk []Entry, maxDistance int) *partialIndex {
	p := &partialIndex{
		variants: make(map[string][]string),
		freqs:    make(map[string]int, len(chunk)),
	}
	for _, entry := range chunk {
		if ctx.Err() != nil {
			return p
		}
		if !utils.IsValidWord(entry.Word) {
			log.Debugf("Skipping malformed dictionary entry: %q", entry.Word)
			p.skipped++
			continue
		}
		freq := entry.Frequency
		if freq < 1 {
			freq = 1
		}
		p.freqs[entry.Word] = freq
		for variant := range Deletes(entry.Word, maxDistance) {
			p.variants[variant] = append(p.variants[variant], entry.Word)
		}
	}
	return p
}

func mergePartials(partials []*partialIndex, maxDistance int) *Index {
	index := &Index{
		maxDistance: maxDistance,
		variants:    make(map[string][]string),
		freqs:       make(map[string]int),
		words:       newWordTrie(),
	}
	skipped := 0
	for _, p := range partials {
		if p == nil {
			continue
		}
		skipped += p.skipped
		for variant, words := range p.variants {
			index.variants[variant] = append(index.variants[variant], words...)
		}
		for word, freq := range p.freqs {
			index.freqs[word] = freq
			index.insertWord(word, freq)
		}
	}
	if skipped > 0 {
		log.Warnf("Skipped %d malformed dictionary entries", skipped)
	}
	return index
}

// dedupeEntries keeps one entry per word, preferring the higher frequency.
// Disjoint chunks are what make the append-based merge a true set union.
func dedupeEntries(entries []Entry) []Entry {
	seen := make(map[string]int, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if at, dup := seen[entry.Word]; dup {
			if entry.Frequency > out[at].Frequency {
				out[at].Frequency = entry.Frequency
			}
			continue
		}
		seen[entry.Word] = len(out)
		out = append(out, entry)
	}
	return out
}

func partition(entries []Entry, chunkSize int) [][]Entry {
	var chunks [][]Entry
	for len(entries) > chunkSize {
		chunks = append(chunks, entries[:chunkSize])
		entries = entries[chunkSize:]
	}
	if len(entries) > 0 {
		chunks = append(chunks, entries)
	}
	return chunks
}
