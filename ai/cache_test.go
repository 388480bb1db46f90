package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingEmbedder is a minimal Embedder stub tracking delegated calls.
// Defined locally because ai/mock imports this package.
type countingEmbedder struct {
	textCalls  int
	batchCalls int
	batchSizes []int
	fail       bool
	short      bool
}

func (e *countingEmbedder) EmbedText(_ context.Context, text string) ([]float32, error) {
	e.textCalls++
	if e.fail {
		return nil, errors.New("embedder down")
	}
	return []float32{float32(len(text)), 1}, nil
}

func (e *countingEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	e.batchCalls++
	e.batchSizes = append(e.batchSizes, len(texts))
	if e.fail {
		return nil, errors.New("embedder down")
	}
	n := len(texts)
	if e.short {
		n--
	}
	out := make([][]float32, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, []float32{float32(len(texts[i])), 1})
	}
	return out, nil
}

func TestNewCachingEmbedder(t *testing.T) {
	inner := &countingEmbedder{}

	t.Run("zero size returns inner unchanged", func(t *testing.T) {
		embedder, err := NewCachingEmbedder(inner, 0)
		require.NoError(t, err)
		assert.Same(t, Embedder(inner), embedder)
	})

	t.Run("positive size wraps", func(t *testing.T) {
		embedder, err := NewCachingEmbedder(inner, 16)
		require.NoError(t, err)
		assert.IsType(t, &CachingEmbedder{}, embedder)
	})
}

func TestCachingEmbedderEmbedText(t *testing.T) {
	inner := &countingEmbedder{}
	embedder, err := NewCachingEmbedder(inner, 16)
	require.NoError(t, err)
	ctx := context.Background()

	first, err := embedder.EmbedText(ctx, "fintech angels")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.textCalls)

	second, err := embedder.EmbedText(ctx, "fintech angels")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.textCalls, "second identical call must hit the cache")
	assert.Equal(t, first, second)

	_, err = embedder.EmbedText(ctx, "different query")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.textCalls)
}

func TestCachingEmbedderEmbedTextError(t *testing.T) {
	inner := &countingEmbedder{fail: true}
	embedder, err := NewCachingEmbedder(inner, 16)
	require.NoError(t, err)

	_, err = embedder.EmbedText(context.Background(), "query")
	assert.Error(t, err)

	// errors are not cached
	inner.fail = false
	_, err = embedder.EmbedText(context.Background(), "query")
	assert.NoError(t, err)
	assert.Equal(t, 2, inner.textCalls)
}

func TestCachingEmbedderEmbedTexts(t *testing.T) {
	ctx := context.Background()

	t.Run("only misses delegated", func(t *testing.T) {
		inner := &countingEmbedder{}
		embedder, err := NewCachingEmbedder(inner, 16)
		require.NoError(t, err)

		_, err = embedder.EmbedTexts(ctx, []string{"a", "b", "c"})
		require.NoError(t, err)
		require.Equal(t, []int{3}, inner.batchSizes)

		results, err := embedder.EmbedTexts(ctx, []string{"a", "d", "c"})
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, []int{3, 1}, inner.batchSizes, "only the one miss goes to the inner embedder")
		for _, r := range results {
			assert.NotNil(t, r)
		}
	})

	t.Run("full cache hit skips inner call", func(t *testing.T) {
		inner := &countingEmbedder{}
		embedder, err := NewCachingEmbedder(inner, 16)
		require.NoError(t, err)

		_, err = embedder.EmbedTexts(ctx, []string{"a", "b"})
		require.NoError(t, err)
		_, err = embedder.EmbedTexts(ctx, []string{"b", "a"})
		require.NoError(t, err)
		assert.Equal(t, 1, inner.batchCalls)
	})

	t.Run("order preserved", func(t *testing.T) {
		inner := &countingEmbedder{}
		embedder, err := NewCachingEmbedder(inner, 16)
		require.NoError(t, err)

		// "aa" cached first so the second call mixes hits and misses
		_, err = embedder.EmbedTexts(ctx, []string{"aa"})
		require.NoError(t, err)

		results, err := embedder.EmbedTexts(ctx, []string{"b", "aa", "cccc"})
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, float32(1), results[0][0])
		assert.Equal(t, float32(2), results[1][0])
		assert.Equal(t, float32(4), results[2][0])
	})

	t.Run("count mismatch from inner is an error", func(t *testing.T) {
		inner := &countingEmbedder{short: true}
		embedder, err := NewCachingEmbedder(inner, 16)
		require.NoError(t, err)

		_, err = embedder.EmbedTexts(ctx, []string{"a", "b"})
		assert.ErrorContains(t, err, "embedding result mismatch")
	})

	t.Run("inner failure propagates", func(t *testing.T) {
		inner := &countingEmbedder{fail: true}
		embedder, err := NewCachingEmbedder(inner, 16)
		require.NoError(t, err)

		_, err = embedder.EmbedTexts(ctx, []string{"a"})
		assert.Error(t, err)
	})
}
