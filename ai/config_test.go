package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, cfg.EmbeddingHost, cfg.ChatHost)
}

func TestNewConfigOptions(t *testing.T) {
	cfg := NewConfig(
		WithEmbeddingHost("http://embed:9100/v1"),
		WithChatHost("http://chat:9200/v1"),
		WithEmbeddingModel("text-embedding-3-small"),
		WithChatModel("gpt-4o-mini"),
		WithToken("sk-test"),
	)

	assert.Equal(t, "http://embed:9100/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://chat:9200/v1", cfg.ChatHost)
	assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
	assert.Equal(t, "gpt-4o-mini", cfg.ChatModel)
	assert.Equal(t, "sk-test", cfg.Token)
	require.NoError(t, cfg.Validate())
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"adds v1 suffix", "http://localhost:11434", "http://localhost:11434/v1"},
		{"strips trailing slash first", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"keeps existing v1", "http://localhost:11434/v1", "http://localhost:11434/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(WithHost(tt.host))
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.EmbeddingHost)
			assert.Equal(t, tt.want, cfg.ChatHost)
		})
	}

	t.Run("empty token defaults to none", func(t *testing.T) {
		cfg := NewConfig(WithToken(""))
		cfg.Normalize()
		assert.Equal(t, "none", cfg.Token)
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing embedding host", func(c *Config) { c.EmbeddingHost = "" }},
		{"missing chat host", func(c *Config) { c.ChatHost = "" }},
		{"missing embedding model", func(c *Config) { c.EmbeddingModel = "" }},
		{"missing chat model", func(c *Config) { c.ChatModel = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
