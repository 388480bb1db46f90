package ingestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mike-arbuzov/findmyangel-backend/ai"
	"github.com/mike-arbuzov/findmyangel-backend/core"
)

// embeddingWorker turns profile records into vectors.
type embeddingWorker struct {
	embedder ai.Embedder
	logger   *slog.Logger
}

func newEmbeddingWorker(embedder ai.Embedder, logger *slog.Logger) (*embeddingWorker, error) {
	if embedder == nil {
		return nil, fmt.Errorf("embedder required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &embeddingWorker{
		embedder: embedder,
		logger:   logger.With("worker", "embeddings"),
	}, nil
}

// embedBatch populates the Vector field on each record from its searchable
// text. Records are modified in place; nothing is stored or indexed here.
func (w *embeddingWorker) embedBatch(ctx context.Context, records []*core.ProfileRecord) error {
	if len(records) == 0 {
		return nil
	}

	texts := make([]string, len(records))
	for i, record := range records {
		texts[i] = core.SearchableText(record)
	}

	w.logger.Debug("generating embeddings for profile records", "records", len(texts))
	vectors, err := w.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		w.logger.Error("error generating embeddings", "err", err)
		return err
	}

	if len(vectors) != len(records) {
		return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(records), len(vectors))
	}

	for i := range vectors {
		records[i].Vector = vectors[i]
	}
	return nil
}
