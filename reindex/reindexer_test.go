package reindex

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mike-arbuzov/findmyangel-backend/ai/mock"
	"github.com/mike-arbuzov/findmyangel-backend/core"
	"github.com/mike-arbuzov/findmyangel-backend/index"
	"github.com/mike-arbuzov/findmyangel-backend/storage"
	"github.com/mike-arbuzov/findmyangel-backend/storage/badger"
)

func seedProfiles(t *testing.T, repo storage.ProfileRepository, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		_, err := repo.Upsert(ctx, &core.ProfileRecord{
			LinkedInURL: fmt.Sprintf("https://www.linkedin.com/in/profile-%03d", i),
			Name:        fmt.Sprintf("Profile %d", i),
			IsInvestor:  true,
			Vector:      []float32{0, 0, 1}, // stale vector from the old model
		})
		require.NoError(t, err)
	}
}

func fastConfig() *Config {
	return &Config{
		BatchSize:      3,
		ReportInterval: 5,
		MaxRetries:     2,
		RetryDelay:     time.Millisecond,
	}
}

func TestProfileIterator(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	seedProfiles(t, repo, 7)
	ctx := context.Background()

	t.Run("visits every profile in batches", func(t *testing.T) {
		it := NewProfileIterator(repo, 3)
		var batchSizes []int
		seen := 0
		err := it.ForEach(ctx, func(records []*core.ProfileRecord) error {
			batchSizes = append(batchSizes, len(records))
			seen += len(records)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 7, seen)
		assert.Equal(t, []int{3, 3, 1}, batchSizes)
	})

	t.Run("stops on callback error", func(t *testing.T) {
		it := NewProfileIterator(repo, 3)
		wanted := errors.New("stop here")
		calls := 0
		err := it.ForEach(ctx, func([]*core.ProfileRecord) error {
			calls++
			return wanted
		})
		assert.Equal(t, wanted, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		it := NewProfileIterator(repo, 3)
		err := it.ForEach(cancelled, func([]*core.ProfileRecord) error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("invalid batch size falls back to default", func(t *testing.T) {
		it := NewProfileIterator(repo, 0)
		assert.Equal(t, DefaultBatchSize, it.batchSize)
	})
}

func TestBatchProcessor(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	seedProfiles(t, repo, 2)
	ctx := context.Background()

	t.Run("embeds from searchable text and persists", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(_ context.Context, texts []string) ([][]float32, error) {
			for _, text := range texts {
				assert.Contains(t, text, "Name:")
			}
			out := make([][]float32, len(texts))
			for i := range texts {
				out[i] = []float32{1, 0, 0}
			}
			return out, nil
		}

		records, err := repo.All(ctx)
		require.NoError(t, err)

		bp := NewBatchProcessor(repo, embedder, 2, time.Millisecond)
		require.NoError(t, bp.Process(ctx, records))

		refreshed, err := repo.All(ctx)
		require.NoError(t, err)
		for _, record := range refreshed {
			assert.Equal(t, []float32{1, 0, 0}, record.Vector)
		}
	})

	t.Run("retries transient failures", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		attempts := 0
		embedder.EmbedTextsFunc = func(_ context.Context, texts []string) ([][]float32, error) {
			attempts++
			if attempts == 1 {
				return nil, errors.New("transient")
			}
			out := make([][]float32, len(texts))
			for i := range texts {
				out[i] = []float32{0, 1, 0}
			}
			return out, nil
		}

		records, err := repo.All(ctx)
		require.NoError(t, err)

		bp := NewBatchProcessor(repo, embedder, 3, time.Millisecond)
		require.NoError(t, bp.Process(ctx, records))
		assert.Equal(t, 2, attempts)
	})

	t.Run("count mismatch is fatal", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(_ context.Context, texts []string) ([][]float32, error) {
			return [][]float32{{1}}, nil // always one short
		}

		records, err := repo.All(ctx)
		require.NoError(t, err)
		require.Greater(t, len(records), 1)

		bp := NewBatchProcessor(repo, embedder, 1, time.Millisecond)
		err = bp.Process(ctx, records)
		assert.ErrorContains(t, err, "embedding count mismatch")
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		bp := NewBatchProcessor(repo, mock.NewMockEmbedder(), 1, time.Millisecond)
		assert.NoError(t, bp.Process(ctx, nil))
	})
}

func TestReindexerRun(t *testing.T) {
	ctx := context.Background()

	t.Run("re-embeds everything and rebuilds the index", func(t *testing.T) {
		repo, backend, err := badger.NewMemoryRepository()
		require.NoError(t, err)
		defer func() {
			repo.Close()
			backend.Close()
		}()
		seedProfiles(t, repo, 8)

		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(_ context.Context, texts []string) ([][]float32, error) {
			out := make([][]float32, len(texts))
			for i := range texts {
				out[i] = []float32{1, 0, 0} // the new model's output
			}
			return out, nil
		}

		idx := index.NewFlat()
		var progress bytes.Buffer
		reindexer := NewReindexer(repo, embedder, idx, fastConfig(), &progress)
		require.NoError(t, reindexer.Run(ctx))

		assert.Equal(t, 8, idx.Len())
		records, err := repo.All(ctx)
		require.NoError(t, err)
		for _, record := range records {
			assert.Equal(t, []float32{1, 0, 0}, record.Vector)
		}
		assert.Contains(t, progress.String(), "Reindexing complete")
	})

	t.Run("empty store is a no-op", func(t *testing.T) {
		repo, backend, err := badger.NewMemoryRepository()
		require.NoError(t, err)
		defer func() {
			repo.Close()
			backend.Close()
		}()

		idx := index.NewFlat()
		var progress bytes.Buffer
		reindexer := NewReindexer(repo, mock.NewMockEmbedder(), idx, fastConfig(), &progress)
		require.NoError(t, reindexer.Run(ctx))
		assert.Contains(t, progress.String(), "No profiles found")
		assert.Zero(t, idx.Len())
	})

	t.Run("failed run keeps the old index", func(t *testing.T) {
		repo, backend, err := badger.NewMemoryRepository()
		require.NoError(t, err)
		defer func() {
			repo.Close()
			backend.Close()
		}()
		seedProfiles(t, repo, 4)

		idx := index.NewFlat()
		require.NoError(t, idx.Build([]index.Entry{
			{LinkedInURL: "https://www.linkedin.com/in/old", Vector: []float32{1, 2}},
		}))

		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(context.Context, []string) ([][]float32, error) {
			return nil, errors.New("embedding service down")
		}

		var progress bytes.Buffer
		reindexer := NewReindexer(repo, embedder, idx, fastConfig(), &progress)
		require.Error(t, reindexer.Run(ctx))

		assert.Equal(t, 1, idx.Len(), "the previously published snapshot must keep serving")
	})

	t.Run("nil config uses defaults", func(t *testing.T) {
		repo, backend, err := badger.NewMemoryRepository()
		require.NoError(t, err)
		defer func() {
			repo.Close()
			backend.Close()
		}()

		var progress bytes.Buffer
		reindexer := NewReindexer(repo, mock.NewMockEmbedder(), index.NewFlat(), nil, &progress)
		assert.Equal(t, DefaultBatchSize, reindexer.config.BatchSize)
	})
}
