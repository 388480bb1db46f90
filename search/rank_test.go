package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mike-arbuzov/findmyangel-backend/core"
)

func TestLinearClamp(t *testing.T) {
	tests := []struct {
		name       string
		similarity float32
		want       int
	}{
		{"perfect match", 1.0, 100},
		{"negative floors to zero", -0.5, 0},
		{"zero stays zero", 0, 0},
		{"midpoint", 0.5, 50},
		{"rounds half up", 0.875, 88},
		{"rounds down", 0.432, 43},
		{"above one clamps", 1.2, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LinearClamp(tt.similarity))
		})
	}
}

func rankCandidate(slug string, similarity float32, investor bool) Candidate {
	return Candidate{
		Record: &core.ProfileRecord{
			LinkedInURL: "https://www.linkedin.com/in/" + slug,
			Name:        slug,
			IsInvestor:  investor,
		},
		Similarity: similarity,
	}
}

func TestRank(t *testing.T) {
	t.Run("ordered by descending score", func(t *testing.T) {
		candidates := []Candidate{
			rankCandidate("low", 0.2, true),
			rankCandidate("high", 0.9, true),
			rankCandidate("mid", 0.5, true),
		}
		results, total := Rank(candidates, nil, 10, nil)
		require.Len(t, results, 3)
		assert.Equal(t, 3, total)
		assert.Equal(t, "high", results[0].Record.Name)
		assert.Equal(t, "mid", results[1].Record.Name)
		assert.Equal(t, "low", results[2].Record.Name)
	})

	t.Run("filters applied before counting", func(t *testing.T) {
		investor := true
		candidates := []Candidate{
			rankCandidate("yes-1", 0.9, true),
			rankCandidate("no-1", 0.8, false),
			rankCandidate("yes-2", 0.7, true),
			rankCandidate("no-2", 0.6, false),
		}
		results, total := Rank(candidates, &core.Filters{IsInvestor: &investor}, 10, nil)
		require.Len(t, results, 2)
		assert.Equal(t, 2, total)
		for _, r := range results {
			assert.True(t, r.Record.IsInvestor)
		}
	})

	t.Run("total counts admitted before truncation", func(t *testing.T) {
		candidates := []Candidate{
			rankCandidate("a", 0.9, true),
			rankCandidate("b", 0.8, true),
			rankCandidate("c", 0.7, true),
		}
		results, total := Rank(candidates, nil, 2, nil)
		assert.Len(t, results, 2)
		assert.Equal(t, 3, total)
	})

	t.Run("ties broken by ascending identity", func(t *testing.T) {
		candidates := []Candidate{
			rankCandidate("charlie", 0.5, true),
			rankCandidate("alpha", 0.5, true),
			rankCandidate("bravo", 0.5, true),
		}
		results, _ := Rank(candidates, nil, 10, nil)
		require.Len(t, results, 3)
		assert.Equal(t, "alpha", results[0].Record.Name)
		assert.Equal(t, "bravo", results[1].Record.Name)
		assert.Equal(t, "charlie", results[2].Record.Name)
	})

	t.Run("scores monotonically non-increasing", func(t *testing.T) {
		candidates := []Candidate{
			rankCandidate("a", 0.91, true),
			rankCandidate("b", 0.13, true),
			rankCandidate("c", 0.77, true),
			rankCandidate("d", -0.4, true),
		}
		results, _ := Rank(candidates, nil, 10, nil)
		for i := 1; i < len(results); i++ {
			assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
		}
	})

	t.Run("scores stay in range", func(t *testing.T) {
		candidates := []Candidate{
			rankCandidate("a", -1.0, true),
			rankCandidate("b", 1.0, true),
			rankCandidate("c", 0.33, true),
		}
		results, _ := Rank(candidates, nil, 10, nil)
		for _, r := range results {
			assert.GreaterOrEqual(t, r.Score, 0)
			assert.LessOrEqual(t, r.Score, 100)
		}
	})

	t.Run("no admitted candidates yields empty slice", func(t *testing.T) {
		investor := true
		candidates := []Candidate{rankCandidate("a", 0.9, false)}
		results, total := Rank(candidates, &core.Filters{IsInvestor: &investor}, 10, nil)
		assert.NotNil(t, results)
		assert.Empty(t, results)
		assert.Zero(t, total)
	})

	t.Run("custom score func", func(t *testing.T) {
		constant := func(float32) int { return 42 }
		candidates := []Candidate{rankCandidate("a", 0.1, true)}
		results, _ := Rank(candidates, nil, 10, constant)
		require.Len(t, results, 1)
		assert.Equal(t, 42, results[0].Score)
	})
}
