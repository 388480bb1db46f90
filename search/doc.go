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


// Package search provides the profile search and ranking engine.
//
// The Searcher type runs each query through four stages:
//   - Embedding of the query text via the ai.Embedder
//   - Exact nearest-neighbor retrieval from the vector index, over-fetched
//     beyond max_results because filters may reject most of the pool
//   - Structured filter admission (Admits)
//   - Score normalization, deterministic ordering and truncation (Rank)
//
// Queries are independent read-only operations; any number may run
// concurrently against the same repository and index.
package search
