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


// Package index provides the nearest-neighbor structure over profile vectors.
//
// The Flat index is exact: Query returns the true cosine top-K over the
// indexed set, with deterministic tie-breaking by ascending identity string.
// Mutations publish a fresh immutable snapshot by atomic pointer swap, so an
// in-flight query runs entirely against one version and never observes a
// torn read.
// A failed rebuild leaves the previously published snapshot serving.
package index
