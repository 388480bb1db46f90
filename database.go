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

package findmyangel

import (
	"context"
	"io"
	"log/slog"

	"github.com/mike-arbuzov/findmyangel-backend/ai"
	"github.com/mike-arbuzov/findmyangel-backend/ai/openai"
	"github.com/mike-arbuzov/findmyangel-backend/index"
	"github.com/mike-arbuzov/findmyangel-backend/ingestion"
	"github.com/mike-arbuzov/findmyangel-backend/reindex"
	"github.com/mike-arbuzov/findmyangel-backend/search"
	"github.com/mike-arbuzov/findmyangel-backend/server"
	"github.com/mike-arbuzov/findmyangel-backend/storage"
	"github.com/mike-arbuzov/findmyangel-backend/storage/badger"
)

// Database bundles the storage backend, the in-memory vector index and the
// AI provider behind a single open/close lifecycle.
type Database struct {
	backend     *badger.Backend
	profileRepo storage.ProfileRepository
	vectorIndex *index.Flat
	provider    ai.AIProvider
	logger      *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	inMemory bool
}

// WithAIConfig overrides the default AI provider configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithInMemoryStorage opens the backend without touching disk. Used by
// tests and throwaway runs.
func WithInMemoryStorage() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	profileRepo, err := badger.NewProfileRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		profileRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:     backend,
		profileRepo: profileRepo,
		vectorIndex: index.NewFlat(),
		provider:    provider,
		logger:      slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	if err := db.profileRepo.Close(); err != nil {
		db.logger.Error("error closing profile repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) ProfileRepository() storage.ProfileRepository {
	return db.profileRepo
}

func (db *Database) VectorIndex() *index.Flat {
	return db.vectorIndex
}

// LoadIndex populates the vector index from vectors already persisted in
// the store. Records without vectors are skipped; use an ingestion
// pipeline's RebuildFromStore to embed them first.
func (db *Database) LoadIndex(ctx context.Context) error {
	records, err := db.profileRepo.All(ctx)
	if err != nil {
		return err
	}

	entries := make([]index.Entry, 0, len(records))
	skipped := 0
	for _, record := range records {
		if len(record.Vector) == 0 {
			skipped++
			continue
		}
		entries = append(entries, index.Entry{
			LinkedInURL: record.LinkedInURL,
			Vector:      record.Vector,
		})
	}
	if skipped > 0 {
		db.logger.Warn("profiles without vectors excluded from index", "count", skipped)
	}

	if err := db.vectorIndex.Build(entries); err != nil {
		return err
	}
	db.logger.Info("vector index loaded", "profiles", len(entries))
	return nil
}

func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.profileRepo, db.vectorIndex, db.provider, opts...)
}

func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(db.profileRepo, db.vectorIndex, db.provider, opts...)
}

func (db *Database) NewServer(opts ...server.Option) (*server.Server, error) {
	searcher, err := db.NewSearcher()
	if err != nil {
		return nil, err
	}
	return server.NewServer(searcher, db.profileRepo, db.vectorIndex, opts...)
}

// NewReindexer builds a reindexer that re-embeds every stored profile and
// swaps in a fresh index snapshot when done.
func (db *Database) NewReindexer(config *reindex.Config, progress io.Writer) *reindex.Reindexer {
	return reindex.NewReindexer(db.profileRepo, db.provider.Embedder(), db.vectorIndex, config, progress)
}
