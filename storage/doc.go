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


// Package storage provides the storage abstraction layer for the profile corpus.
//
// This package defines the repository interface that decouples storage
// implementation from the search engine. It allows different storage
// backends (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// # Constructor Return Type Pattern
//
// This package follows a strict "return interface" pattern for all public
// constructors to enforce abstraction and enable multiple storage backend
// implementations:
//
//	repo, err := badger.NewProfileRepository(backend)  // returns storage.ProfileRepository
//
// Internal package constructors may return concrete types since they're
// only used within the implementation package.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines. The search query path is
// strictly read-only against the repository.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and
// timeout support. Pass context.Background() for operations without
// specific timeout requirements.
package storage
