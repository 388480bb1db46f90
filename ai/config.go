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


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for AI service providers.
type Config struct {
	// EmbeddingHost is the base URL for the embedding service API.
	// Example: "https://api.openai.com/v1", or "http://localhost:11434/v1"
	// for a local OpenAI-compatible server.
	EmbeddingHost string

	// EmbeddingModel is the model identifier to use for text embeddings.
	// Example: "text-embedding-3-small", "embeddinggemma"
	EmbeddingModel string

	// APIToken authenticates against the embedding service.
	// Local OpenAI-compatible servers typically accept any value.
	APIToken string

	// CacheSize is the number of embedding results kept in the LRU cache
	// wrapped around the embedder. Zero disables caching.
	// Default: 4096
	CacheSize int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithHost sets the embedding service host URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithAPIToken sets the embedding service API token.
func WithAPIToken(token string) ConfigOption {
	return func(c *Config) {
		c.APIToken = token
	}
}

// WithCacheSize sets the embedding cache capacity. Zero disables caching.
func WithCacheSize(size int) ConfigOption {
	return func(c *Config) {
		c.CacheSize = size
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services.
func DefaultConfig() *Config {
	return &Config{
		EmbeddingHost:  "http://localhost:11434/v1",
		EmbeddingModel: "text-embedding-3-small",
		APIToken:       "none",
		CacheSize:      4096,
	}
}

// NewConfig creates a Config with the default values and applies the provided
// options. This is the recommended way to create a Config with custom settings.
//
// Example:
//
//	cfg := NewConfig(
//	    WithHost("https://api.openai.com"),
//	    WithEmbeddingModel("text-embedding-3-small"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to the host if missing, which is
// required by most OpenAI-compatible APIs (OpenAI, Ollama, LocalAI, vLLM).
func (c *Config) Normalize() {
	if c.EmbeddingHost != "" && !strings.HasSuffix(c.EmbeddingHost, "/v1") {
		c.EmbeddingHost = strings.TrimSuffix(c.EmbeddingHost, "/")
		c.EmbeddingHost = c.EmbeddingHost + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.EmbeddingHost == "" {
		return errors.New("ai config: EmbeddingHost is required")
	}
	if c.EmbeddingModel == "" {
		return errors.New("ai config: EmbeddingModel is required")
	}
	if c.CacheSize < 0 {
		return errors.New("ai config: CacheSize cannot be negative")
	}
	return nil
}
