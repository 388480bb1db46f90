package ai

import (
	"context"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachingEmbedder wraps an Embedder with an LRU cache keyed by input text.
// Identical inputs within the cache window (one index rebuild, typically) hit
// the cache instead of the embedding service. Callers must treat returned
// vectors as read-only.
//
// Caching is an optimization, not a correctness requirement: every miss is a
// plain delegated call that is safe to repeat.
type CachingEmbedder struct {
	inner  Embedder
	cache  *lru.Cache[string, []float32]
	logger *slog.Logger
}

var _ Embedder = (*CachingEmbedder)(nil)

// NewCachingEmbedder wraps inner with an LRU cache of the given capacity.
// A capacity of zero or less returns inner unchanged.
func NewCachingEmbedder(inner Embedder, size int) (Embedder, error) {
	if size <= 0 {
		return inner, nil
	}

	cache, err := lru.New[string, []float32](size)
	if err != nil {
		return nil, err
	}

	return &CachingEmbedder{
		inner:  inner,
		cache:  cache,
		logger: slog.Default().With("component", "caching-embedder"),
	}, nil
}

// EmbedText returns the cached vector for text, delegating on a miss.
func (c *CachingEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if vec, ok := c.cache.Get(text); ok {
		return vec, nil
	}

	vec, err := c.inner.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}
	c.cache.Add(text, vec)
	return vec, nil
}

// EmbedTexts resolves cached inputs locally and batches the rest through the
// inner embedder, preserving input order.
func (c *CachingEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	results := make([][]float32, len(texts))

	missing := make([]string, 0, len(texts))
	missingIdx := make([]int, 0, len(texts))
	for i, text := range texts {
		if vec, ok := c.cache.Get(text); ok {
			results[i] = vec
			continue
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) == 0 {
		return results, nil
	}
	c.logger.Debug("embedding cache misses", "misses", len(missing), "total", len(texts))

	embedded, err := c.inner.EmbedTexts(ctx, missing)
	if err != nil {
		return nil, err
	}
	if len(embedded) != len(missing) {
		return nil, fmt.Errorf("embedding result mismatch: expected %d, received %d", len(missing), len(embedded))
	}

	for i, vec := range embedded {
		c.cache.Add(missing[i], vec)
		results[missingIdx[i]] = vec
	}
	return results, nil
}
