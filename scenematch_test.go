package scenematch

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/scenematch/ai"
	"github.com/poiesic/scenematch/catalog"
	catmock "github.com/poiesic/scenematch/catalog/mock"
)

func TestNewEngine(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		_, err := NewEngine("")
		assert.ErrorIs(t, err, catalog.ErrMissingAPIKey)
	})

	t.Run("with tmdb key", func(t *testing.T) {
		engine, err := NewEngine("test-key")
		require.NoError(t, err)
		require.NotNil(t, engine)
		assert.NoError(t, engine.Close())
	})

	t.Run("with custom catalog and cache", func(t *testing.T) {
		engine, err := NewEngine("",
			WithCatalog(catmock.NewMockProvider()),
			WithCachePath(filepath.Join(t.TempDir(), "cache")),
		)
		require.NoError(t, err)
		require.NotNil(t, engine)
		assert.NotNil(t, engine.Searcher())
		assert.NotNil(t, engine.Catalog())
		assert.NoError(t, engine.Close())
	})

	t.Run("invalid ai config", func(t *testing.T) {
		_, err := NewEngine("test-key", WithAIConfig(&ai.Config{}))
		assert.Error(t, err)
	})
}
