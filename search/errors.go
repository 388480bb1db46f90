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


package search

import "errors"

// Boundary errors. Each maps to a distinct user-visible message; callers
// match them with errors.Is.
var (
	// ErrEmptyQuery indicates the query was empty after trimming whitespace.
	// Input error: fully recoverable by resubmitting.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrInvalidFilters indicates malformed request parameters, e.g. a
	// negative max_results. Input error: fully recoverable by resubmitting.
	ErrInvalidFilters = errors.New("invalid filters")

	// ErrEmbeddingUnavailable indicates the embedding provider failed.
	// The query fails entirely; the engine never degrades to substring
	// matching, because a mixed-quality ranking would be worse than a
	// clear failure.
	ErrEmbeddingUnavailable = errors.New("embedding unavailable")

	// ErrTimeout indicates the caller-supplied deadline elapsed before
	// embedding completed. The index state is unaffected.
	ErrTimeout = errors.New("search timed out")

	// ErrInternal indicates an internal invariant violation, e.g. an
	// index/store identity mismatch. Fatal to the single request only.
	ErrInternal = errors.New("internal search error")
)

// Constructor errors
var (
	// ErrProfileRepositoryRequired is returned when a profile repository is not provided.
	ErrProfileRepositoryRequired = errors.New("profile repository required")

	// ErrIndexRequired is returned when a vector index is not provided.
	ErrIndexRequired = errors.New("vector index required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")
)
