package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
	assert.Equal(t, "none", cfg.APIToken)
	assert.Equal(t, 4096, cfg.CacheSize)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(
		WithHost("https://api.openai.com"),
		WithEmbeddingModel("text-embedding-3-large"),
		WithAPIToken("sk-test"),
		WithCacheSize(128),
	)
	assert.Equal(t, "https://api.openai.com", cfg.EmbeddingHost)
	assert.Equal(t, "text-embedding-3-large", cfg.EmbeddingModel)
	assert.Equal(t, "sk-test", cfg.APIToken)
	assert.Equal(t, 128, cfg.CacheSize)
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		expected string
	}{
		{"missing v1 suffix added", "https://api.openai.com", "https://api.openai.com/v1"},
		{"trailing slash collapsed", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"existing v1 untouched", "http://localhost:11434/v1", "http://localhost:11434/v1"},
		{"empty host untouched", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{EmbeddingHost: tt.host}
			cfg.Normalize()
			assert.Equal(t, tt.expected, cfg.EmbeddingHost)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, NewConfig().Validate())
	})

	t.Run("missing host", func(t *testing.T) {
		cfg := NewConfig(WithHost(""))
		cfg.EmbeddingHost = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing model", func(t *testing.T) {
		cfg := NewConfig(WithEmbeddingModel(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative cache size", func(t *testing.T) {
		cfg := NewConfig(WithCacheSize(-1))
		assert.Error(t, cfg.Validate())
	})

	t.Run("validate normalizes host", func(t *testing.T) {
		cfg := NewConfig(WithHost("https://api.openai.com"))
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "https://api.openai.com/v1", cfg.EmbeddingHost)
	})
}
