package index

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/mike-arbuzov/findmyangel-backend/core"
)

// Entry is one identity→vector pair submitted to the index.
type Entry struct {
	LinkedInURL string
	Vector      []float32
}

// snapshot is one immutable published version of the index. Readers resolve
// the current snapshot once and never observe a mix of two versions.
type snapshot struct {
	entries   []Entry // sorted by LinkedInURL
	dimension int
	version   uint64
}

// Flat is a brute-force exact vector index over the profile corpus.
//
// Exactness is a contract: Query returns the true cosine top-K over the
// indexed set, which approximate structures cannot guarantee at these corpus
// sizes without extra machinery. The corpus is in the low tens of thousands,
// so a linear scan is cheap.
//
// Writers are serialized; readers are lock-free against an atomically
// published snapshot. Build replaces the whole snapshot, UpsertOne and Remove
// copy-on-write a new one.
type Flat struct {
	mu      sync.Mutex // serializes Build/UpsertOne/Remove
	current atomic.Pointer[snapshot]
	logger  *slog.Logger
}

// NewFlat creates an empty index.
func NewFlat() *Flat {
	f := &Flat{logger: slog.Default().With("component", "vector-index")}
	f.current.Store(&snapshot{})
	return f
}

// Build replaces the entire index atomically from the caller's perspective.
// The new snapshot is constructed and validated in full before it is
// published; on error the previously published snapshot stays untouched.
func (f *Flat) Build(entries []Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	next := &snapshot{
		entries: make([]Entry, 0, len(entries)),
		version: f.current.Load().version + 1,
	}
	for _, e := range entries {
		if err := validateEntry(e, &next.dimension); err != nil {
			return err
		}
		next.entries = append(next.entries, e)
	}
	sortEntries(next.entries)

	f.current.Store(next)
	f.logger.Debug("index rebuilt", "vectors", len(next.entries), "version", next.version)
	return nil
}

// UpsertOne inserts or replaces a single identity's vector without a full
// rebuild. Safe to call concurrently with any number of readers.
func (f *Flat) UpsertOne(linkedInURL string, vector []float32) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	cur := f.current.Load()

	e := Entry{LinkedInURL: linkedInURL, Vector: vector}
	dim := cur.dimension
	if err := validateEntry(e, &dim); err != nil {
		return err
	}

	next := &snapshot{
		entries:   make([]Entry, len(cur.entries), len(cur.entries)+1),
		dimension: dim,
		version:   cur.version + 1,
	}
	copy(next.entries, cur.entries)

	i := sort.Search(len(next.entries), func(i int) bool {
		return next.entries[i].LinkedInURL >= linkedInURL
	})
	if i < len(next.entries) && next.entries[i].LinkedInURL == linkedInURL {
		next.entries[i] = e
	} else {
		next.entries = append(next.entries, Entry{})
		copy(next.entries[i+1:], next.entries[i:])
		next.entries[i] = e
	}

	f.current.Store(next)
	return nil
}

// Remove drops an identity from the index. Removing an unknown identity is
// a no-op.
func (f *Flat) Remove(linkedInURL string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	cur := f.current.Load()
	i := sort.Search(len(cur.entries), func(i int) bool {
		return cur.entries[i].LinkedInURL >= linkedInURL
	})
	if i >= len(cur.entries) || cur.entries[i].LinkedInURL != linkedInURL {
		return
	}

	next := &snapshot{
		entries:   make([]Entry, 0, len(cur.entries)-1),
		dimension: cur.dimension,
		version:   cur.version + 1,
	}
	next.entries = append(next.entries, cur.entries[:i]...)
	next.entries = append(next.entries, cur.entries[i+1:]...)

	f.current.Store(next)
}

// Query returns up to k identities ranked by descending cosine similarity to
// the query vector, ties broken by ascending identity string. The result is
// computed against a single snapshot.
func (f *Flat) Query(vector []float32, k int) ([]core.SimilarityMatch, error) {
	if k <= 0 {
		return nil, nil
	}

	cur := f.current.Load()
	if len(cur.entries) == 0 {
		return nil, nil
	}
	if len(vector) != cur.dimension {
		return nil, fmt.Errorf("%w: query has %d, index has %d", ErrDimensionMismatch, len(vector), cur.dimension)
	}

	matches := make([]core.SimilarityMatch, 0, len(cur.entries))
	for _, e := range cur.entries {
		matches = append(matches, core.SimilarityMatch{
			LinkedInURL: e.LinkedInURL,
			Similarity:  CosineSimilarity(vector, e.Vector),
		})
	}

	// entries are pre-sorted by URL, and the sort is stable, so equal
	// similarities keep ascending identity order
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches, nil
}

// Len returns the number of indexed vectors.
func (f *Flat) Len() int {
	return len(f.current.Load().entries)
}

// Version returns the published snapshot version, incremented on every
// successful mutation.
func (f *Flat) Version() uint64 {
	return f.current.Load().version
}

func validateEntry(e Entry, dimension *int) error {
	if e.LinkedInURL == "" {
		return ErrEmptyIdentity
	}
	if len(e.Vector) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyVector, e.LinkedInURL)
	}
	if *dimension == 0 {
		*dimension = len(e.Vector)
	}
	if len(e.Vector) != *dimension {
		return fmt.Errorf("%w: %s has %d, index has %d", ErrDimensionMismatch, e.LinkedInURL, len(e.Vector), *dimension)
	}
	return nil
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LinkedInURL < entries[j].LinkedInURL
	})
}
