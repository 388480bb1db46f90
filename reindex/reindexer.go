// Copyright 2026 Mike Arbuzov
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reindex

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mike-arbuzov/findmyangel-backend/ai"
	"github.com/mike-arbuzov/findmyangel-backend/core"
	"github.com/mike-arbuzov/findmyangel-backend/index"
	"github.com/mike-arbuzov/findmyangel-backend/storage"
)

// Config holds configuration for the reindexing operation.
type Config struct {
	// BatchSize is the number of profiles to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of profiles)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed operations
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Reindexer re-embeds every stored profile with the configured embedder and
// rebuilds the in-memory vector index from the fresh vectors. Used after an
// embedding model change, when persisted vectors no longer match what the
// query path produces.
type Reindexer struct {
	repo      storage.ProfileRepository
	embedder  ai.Embedder
	vectorIdx *index.Flat
	config    *Config
	progress  io.Writer
	processor *BatchProcessor
	iterator  *ProfileIterator
}

// NewReindexer creates a new reindexer.
// progress: where to write progress output (typically os.Stderr)
func NewReindexer(repo storage.ProfileRepository, embedder ai.Embedder, vectorIdx *index.Flat, config *Config, progress io.Writer) *Reindexer {
	if config == nil {
		config = DefaultConfig()
	}

	processor := NewBatchProcessor(repo, embedder, config.MaxRetries, config.RetryDelay)
	iterator := NewProfileIterator(repo, config.BatchSize)

	return &Reindexer{
		repo:      repo,
		embedder:  embedder,
		vectorIdx: vectorIdx,
		config:    config,
		progress:  progress,
		processor: processor,
		iterator:  iterator,
	}
}

// Run executes the reindexing operation.
// Every profile in the store is re-embedded, persisted, and collected into a
// replacement index snapshot that is published atomically at the end. The
// old snapshot keeps serving queries until the swap, so a failed run never
// degrades search.
func (r *Reindexer) Run(ctx context.Context) error {
	totalProfiles, err := r.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count profiles: %w", err)
	}

	if totalProfiles == 0 {
		fmt.Fprintf(r.progress, "No profiles found in store (0 profiles)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting reindexing of %d profiles (batch size: %d)\n",
		totalProfiles, r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, totalProfiles, r.config.ReportInterval)
	tracker.Start()

	processed := 0
	entries := make([]index.Entry, 0, totalProfiles)

	err = r.iterator.ForEach(ctx, func(records []*core.ProfileRecord) error {
		if err := r.processor.Process(ctx, records); err != nil {
			return fmt.Errorf("failed to process batch: %w", err)
		}

		for _, record := range records {
			entries = append(entries, index.Entry{
				LinkedInURL: record.LinkedInURL,
				Vector:      record.Vector,
			})
		}

		processed += len(records)
		tracker.Update(processed)

		return nil
	})

	if err != nil {
		return err
	}

	if r.vectorIdx != nil {
		if err := r.vectorIdx.Build(entries); err != nil {
			return fmt.Errorf("failed to rebuild vector index: %w", err)
		}
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reindexing complete. Processed %d profiles in %v (%.1f profiles/sec)\n",
		processed, elapsed.Round(time.Second), float64(processed)/elapsed.Seconds())

	return nil
}
