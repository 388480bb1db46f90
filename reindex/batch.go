package reindex

import (
	"context"
	"fmt"
	"time"

	"github.com/mike-arbuzov/findmyangel-backend/ai"
	"github.com/mike-arbuzov/findmyangel-backend/core"
	"github.com/mike-arbuzov/findmyangel-backend/storage"
)

// BatchProcessor handles embedding generation for batches of profile records.
type BatchProcessor struct {
	repo           storage.ProfileRepository
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for embedding API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.ProfileRepository, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process generates embeddings for a batch of profiles from their searchable
// text and updates them in the store.
func (bp *BatchProcessor) Process(ctx context.Context, records []*core.ProfileRecord) error {
	if len(records) == 0 {
		return nil
	}

	texts := make([]string, len(records))
	for i, record := range records {
		texts[i] = core.SearchableText(record)
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)

	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(embeddings) != len(records) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(records), len(embeddings))
	}

	for i := range records {
		records[i].Vector = embeddings[i]
	}

	_, err = bp.repo.Upsert(ctx, records...)
	if err != nil {
		return fmt.Errorf("failed to update profiles: %w", err)
	}

	return nil
}
