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


package mock

import "github.com/mike-arbuzov/findmyangel-backend/ai"

// MockProvider is a test double for ai.AIProvider.
type MockProvider struct {
	embedder *MockEmbedder
}

// NewMockProvider creates a new mock provider with a default mock embedder.
//
// Returns ai.AIProvider interface for consistency with production constructors.
// Use GetMockEmbedder() to access the concrete type for test assertions.
func NewMockProvider() ai.AIProvider {
	return &MockProvider{
		embedder: NewMockEmbedder(),
	}
}

// NewMockProviderWithEmbedder creates a mock provider with a custom mock
// embedder. This allows full control over embedding behavior in tests.
func NewMockProviderWithEmbedder(embedder *MockEmbedder) ai.AIProvider {
	return &MockProvider{
		embedder: embedder,
	}
}

// Embedder returns the mock embedder.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockEmbedder returns the underlying mock embedder for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}
