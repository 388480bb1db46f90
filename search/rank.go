package search

import (
	"math"
	"sort"

	"github.com/mike-arbuzov/findmyangel-backend/core"
)

// Candidate pairs a retrieved record with its raw index similarity.
type Candidate struct {
	Record     *core.ProfileRecord
	Similarity float32
}

// ScoreFunc maps a raw cosine similarity to the 0-100 relevance score shown
// to the end user. The normalization policy is swappable: a different corpus
// or embedding space may need re-calibrated bounds.
type ScoreFunc func(similarity float32) int

// LinearClamp is the default score normalization:
// round(max(0, similarity) * 100), clamped to [0, 100].
func LinearClamp(similarity float32) int {
	if similarity <= 0 {
		return 0
	}
	score := int(math.Round(float64(similarity) * 100))
	if score > 100 {
		score = 100
	}
	return score
}

// Rank combines vector similarity with filter admissibility into the final
// ordered, scored result list:
//
//  1. Discard candidates not admitted by the filters.
//  2. Normalize similarity via score (LinearClamp by default).
//  3. Sort descending by score, ties by ascending record identity.
//  4. Truncate to maxResults.
//
// The second return value is the admitted count before truncation, so the
// caller can distinguish "27 matched, showing 10" from "10 matched,
// showing 10". Zero admitted candidates yields an empty slice, not an error.
func Rank(candidates []Candidate, filters *core.Filters, maxResults int, score ScoreFunc) ([]*core.SearchResult, int) {
	if score == nil {
		score = LinearClamp
	}

	results := make([]*core.SearchResult, 0, len(candidates))
	for _, c := range candidates {
		if !Admits(c.Record, filters) {
			continue
		}
		results = append(results, &core.SearchResult{
			Record:     c.Record,
			Score:      score(c.Similarity),
			Similarity: c.Similarity,
		})
	}
	totalFound := len(results)

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Record.LinkedInURL < results[j].Record.LinkedInURL
	})

	if maxResults >= 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, totalFound
}
