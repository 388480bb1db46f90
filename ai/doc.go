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


// Package ai defines the capability interfaces for text embedding.
//
// The Embedder interface abstracts over embedding backends so a remote API
// (ai/openai), a local model, or a deterministic test stub (ai/mock) can be
// substituted without touching the search engine. CachingEmbedder wraps any
// Embedder with an LRU cache for rebuild-time deduplication of identical
// inputs.
package ai
