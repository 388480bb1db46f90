package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/mike-arbuzov/findmyangel-backend/ai"
	"github.com/mike-arbuzov/findmyangel-backend/core"
	"github.com/mike-arbuzov/findmyangel-backend/index"
	"github.com/mike-arbuzov/findmyangel-backend/storage"
)

// defaultBatchSize is how many records go into one embedding request during
// bulk loads.
const defaultBatchSize = 64

// Pipeline is the ingestion boundary: it accepts profile records from the
// external collaborator, persists them, embeds their searchable text and
// keeps the vector index in step with the store.
//
// Upsert is synchronous end to end: when it returns, the record's fresh
// vector is queryable. A stale vector after an upsert is a correctness bug,
// not an optimization detail.
type Pipeline struct {
	profileRepository storage.ProfileRepository
	vectorIndex       *index.Flat
	worker            *embeddingWorker
	pool              *ants.Pool
	batchSize         int
	logger            *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent batch embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many records are embedded per request during bulk
// loads. Default is 64.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	profileRepository storage.ProfileRepository,
	vectorIndex *index.Flat,
	provider ai.AIProvider,
	opts ...Option,
) (*Pipeline, error) {
	if profileRepository == nil {
		return nil, ErrProfileRepositoryRequired
	}
	if vectorIndex == nil {
		return nil, ErrIndexRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		profileRepository: profileRepository,
		vectorIndex:       vectorIndex,
		pool:              pool,
		batchSize:         defaultBatchSize,
		logger:            slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	worker, err := newEmbeddingWorker(provider.Embedder(), p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}
	p.worker = worker

	return p, nil
}

// Release frees the worker pool.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// Upsert ingests profile records: normalizes identities, persists the
// records, re-embeds their searchable text and updates the vector index.
// Existing records with the same identity are replaced, and their old
// vectors with them.
func (p *Pipeline) Upsert(ctx context.Context, records ...*core.ProfileRecord) error {
	if len(records) == 0 {
		return nil
	}

	if err := normalizeAll(records); err != nil {
		return err
	}
	if err := p.worker.embedBatch(ctx, records); err != nil {
		return err
	}

	if _, err := p.profileRepository.Upsert(ctx, records...); err != nil {
		return err
	}

	for _, record := range records {
		if err := p.vectorIndex.UpsertOne(record.LinkedInURL, record.Vector); err != nil {
			return err
		}
	}

	p.logger.Info("upserted profile records", "records", len(records))
	return nil
}

// BulkLoad ingests an entire corpus: all records are embedded (batches run
// concurrently on the worker pool), persisted, and then published to the
// index as one atomic rebuild. If any batch fails, nothing is stored or
// published and the previously served index stays untouched.
func (p *Pipeline) BulkLoad(ctx context.Context, records []*core.ProfileRecord) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	if err := normalizeAll(records); err != nil {
		return err
	}
	records = dedupeByURL(records)
	if err := p.embedAll(ctx, records); err != nil {
		return err
	}

	if _, err := p.profileRepository.Upsert(ctx, records...); err != nil {
		return err
	}

	if err := p.vectorIndex.Build(indexEntries(records)); err != nil {
		return err
	}

	p.logger.Info("bulk loaded profile corpus", "records", len(records))
	return nil
}

// RebuildFromStore re-publishes the index from the persisted corpus,
// embedding only records that have no stored vector. Used at startup so a
// restart doesn't re-embed an unchanged corpus.
func (p *Pipeline) RebuildFromStore(ctx context.Context) error {
	records, err := p.profileRepository.All(ctx)
	if err != nil {
		return err
	}

	missing := make([]*core.ProfileRecord, 0)
	for _, record := range records {
		if len(record.Vector) == 0 {
			missing = append(missing, record)
		}
	}
	if len(missing) > 0 {
		p.logger.Info("embedding records without stored vectors", "records", len(missing))
		if err := p.embedAll(ctx, missing); err != nil {
			return err
		}
		if _, err := p.profileRepository.Upsert(ctx, missing...); err != nil {
			return err
		}
	}

	if err := p.vectorIndex.Build(indexEntries(records)); err != nil {
		return err
	}

	p.logger.Info("index rebuilt from store", "records", len(records))
	return nil
}

// Delete removes a profile from the store and the index.
func (p *Pipeline) Delete(ctx context.Context, linkedInURL string) error {
	normalized, err := core.NormalizeLinkedInURL(linkedInURL)
	if err != nil {
		return err
	}

	if err := p.profileRepository.Delete(ctx, core.IDFromContent(normalized)); err != nil {
		return err
	}
	p.vectorIndex.Remove(normalized)
	return nil
}

// embedAll embeds records in batches, running batches concurrently on the
// worker pool. Fails if any batch fails.
func (p *Pipeline) embedAll(ctx context.Context, records []*core.ProfileRecord) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for start := 0; start < len(records); start += p.batchSize {
		end := min(start+p.batchSize, len(records))
		batch := records[start:end]

		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			if err := p.worker.embedBatch(ctx, batch); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		})
		if err != nil {
			wg.Done()
			return err
		}
	}
	wg.Wait()

	return firstErr
}

func normalizeAll(records []*core.ProfileRecord) error {
	for _, record := range records {
		normalized, err := core.NormalizeLinkedInURL(record.LinkedInURL)
		if err != nil {
			return fmt.Errorf("record %q: %w", record.Name, err)
		}
		record.LinkedInURL = normalized
		if err := core.ValidateProfileRecord(record); err != nil {
			return err
		}
	}
	return nil
}

// dedupeByURL keeps the last record for each identity, matching the
// last-write-wins semantics of Upsert.
func dedupeByURL(records []*core.ProfileRecord) []*core.ProfileRecord {
	seen := make(map[string]int, len(records))
	out := make([]*core.ProfileRecord, 0, len(records))
	for _, record := range records {
		if i, ok := seen[record.LinkedInURL]; ok {
			out[i] = record
			continue
		}
		seen[record.LinkedInURL] = len(out)
		out = append(out, record)
	}
	return out
}

func indexEntries(records []*core.ProfileRecord) []index.Entry {
	entries := make([]index.Entry, len(records))
	for i, record := range records {
		entries[i] = index.Entry{LinkedInURL: record.LinkedInURL, Vector: record.Vector}
	}
	return entries
}
