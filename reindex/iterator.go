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

	"github.com/mike-arbuzov/findmyangel-backend/core"
	"github.com/mike-arbuzov/findmyangel-backend/storage"
)

const (
	// DefaultBatchSize is the default number of profiles to fetch in each batch
	DefaultBatchSize = 100
)

// ProfileIterator iterates over all stored profiles in batches, paging
// through the repository in LinkedIn URL order.
type ProfileIterator struct {
	repo      storage.ProfileRepository
	batchSize int
}

// NewProfileIterator creates a new profile iterator.
// batchSize: number of profiles to fetch in each batch (must be > 0)
func NewProfileIterator(repo storage.ProfileRepository, batchSize int) *ProfileIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &ProfileIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach iterates over all profiles, calling fn for each batch.
// Iteration stops on first error from fn or when all profiles are processed.
// Context cancellation is checked between batches.
//
// Pages are fetched by skip/limit over the URL ordering, so profiles
// upserted mid-iteration may be seen or skipped depending on where their
// URL sorts relative to the cursor.
func (it *ProfileIterator) ForEach(ctx context.Context, fn func([]*core.ProfileRecord) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	skip := 0
	for {
		batch, err := it.repo.List(ctx, skip, it.batchSize)
		if err != nil {
			return err
		}
		if len(batch) == 0 {
			return nil
		}

		if err := fn(batch); err != nil {
			return err
		}

		skip += len(batch)

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}
