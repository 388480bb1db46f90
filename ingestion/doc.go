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


// Package ingestion accepts profile records from the extraction collaborator
// and keeps the record store and vector index consistent with each other.
//
// The Pipeline offers two paths: Upsert for incremental single-record
// replacement (synchronous re-embed and re-index) and BulkLoad for full
// corpus loads, which embed in concurrent batches and publish the index as
// one atomic rebuild. A failed bulk load never unpublishes the previously
// served index.
package ingestion
