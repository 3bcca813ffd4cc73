// Copyright 2025 Poiesic Systems
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


package scenematch

import (
	"context"
	"log/slog"

	"github.com/poiesic/scenematch/ai"
	"github.com/poiesic/scenematch/ai/openai"
	"github.com/poiesic/scenematch/catalog"
	"github.com/poiesic/scenematch/catalog/tmdb"
	"github.com/poiesic/scenematch/core"
	"github.com/poiesic/scenematch/search"
	"github.com/poiesic/scenematch/storage"
	"github.com/poiesic/scenematch/storage/badger"
)

// Engine wires the movie catalog, AI provider, embedding cache, and
// search pipeline into a single entry point.
type Engine struct {
	catalog  catalog.Provider
	provider ai.AIProvider
	cache    storage.EmbeddingCache
	searcher *search.Searcher
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig   *ai.Config
	cachePath  string
	catalog    catalog.Provider
	searchOpts []search.Option
}

// WithAIConfig sets the AI provider configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(config *ai.Config) EngineOption {
	return func(o *engineOptions) {
		o.aiConfig = config
	}
}

// WithCachePath enables a persistent embedding cache at the given path.
// Without it, embeddings are recomputed on every search.
func WithCachePath(path string) EngineOption {
	return func(o *engineOptions) {
		o.cachePath = path
	}
}

// WithCatalog overrides the movie catalog, replacing the TMDB client.
func WithCatalog(provider catalog.Provider) EngineOption {
	return func(o *engineOptions) {
		o.catalog = provider
	}
}

// WithSearchOptions passes options through to the search pipeline.
func WithSearchOptions(opts ...search.Option) EngineOption {
	return func(o *engineOptions) {
		o.searchOpts = append(o.searchOpts, opts...)
	}
}

// NewEngine creates an engine over the TMDB catalog. tmdbAPIKey may be
// empty only when WithCatalog supplies a different provider.
func NewEngine(tmdbAPIKey string, opts ...EngineOption) (*Engine, error) {
	// Apply options
	options := &engineOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	catalogProvider := options.catalog
	if catalogProvider == nil {
		client, err := tmdb.NewClient(tmdb.Config{APIKey: tmdbAPIKey})
		if err != nil {
			return nil, err
		}
		catalogProvider = client
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		return nil, err
	}

	var cache storage.EmbeddingCache
	searchOpts := options.searchOpts
	if options.cachePath != "" {
		cache, err = badger.NewEmbeddingCache(options.cachePath)
		if err != nil {
			provider.Close()
			return nil, err
		}
		searchOpts = append(searchOpts,
			search.WithEmbeddingCache(cache, options.aiConfig.EmbeddingModel))
	}

	searcher, err := search.NewSearcher(catalogProvider, provider, searchOpts...)
	if err != nil {
		if cache != nil {
			cache.Close()
		}
		provider.Close()
		return nil, err
	}

	return &Engine{
		catalog:  catalogProvider,
		provider: provider,
		cache:    cache,
		searcher: searcher,
		logger:   slog.Default(),
	}, nil
}

// SearchFilmsByScene finds movies matching a free-text scene description.
func (e *Engine) SearchFilmsByScene(ctx context.Context, query, locale string) ([]core.FinalResult, error) {
	return e.searcher.SearchFilmsByScene(ctx, query, locale)
}

// Searcher exposes the underlying search pipeline, e.g. for monitored
// searches.
func (e *Engine) Searcher() *search.Searcher {
	return e.searcher
}

// Catalog exposes the movie catalog provider.
func (e *Engine) Catalog() catalog.Provider {
	return e.catalog
}

// Close releases the search pipeline, AI provider, and embedding cache.
func (e *Engine) Close() error {
	e.searcher.Release()

	if err := e.provider.Close(); err != nil {
		e.logger.Error("error closing AI provider", "err", err)
	}

	if e.cache != nil {
		if err := e.cache.Close(); err != nil {
			e.logger.Error("error closing embedding cache", "err", err)
			return err
		}
	}
	return nil
}
