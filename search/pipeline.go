package search

import (
	"context"
	"log/slog"
	"runtime"
	"strings"

	"github.com/poiesic/scenematch/ai"
	"github.com/poiesic/scenematch/catalog"
	"github.com/poiesic/scenematch/core"
	"github.com/poiesic/scenematch/storage"
)

// defaultMaxResults caps how many results a search returns.
const defaultMaxResults = 5

// Searcher runs the full scene matching pipeline: scene analysis, query
// canonicalization, candidate retrieval, embedding scoring, language
// model reranking, and result formatting.
type Searcher struct {
	analyzer  ai.SceneAnalyzer
	retriever *Retriever
	scorer    *Scorer
	rerank    *RerankStage
	formatter *Formatter

	maxResults    int
	minVoteCount  int
	maxCandidates int
	minSimilarity float64
	poolSize      int
	cache         storage.EmbeddingCache
	modelLabel    string
	logger        *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithMinSimilarity sets the minimum fused similarity for a candidate
// to survive scoring. Default is 0.20.
func WithMinSimilarity(minSimilarity float64) Option {
	return func(s *Searcher) error {
		s.minSimilarity = minSimilarity
		return nil
	}
}

// WithMinVoteCount sets the vote count floor for retrieved candidates.
// Default is 300.
func WithMinVoteCount(votes int) Option {
	return func(s *Searcher) error {
		s.minVoteCount = votes
		return nil
	}
}

// WithMaxCandidates caps how many candidates reach scoring.
// Default is 30.
func WithMaxCandidates(maxCandidates int) Option {
	return func(s *Searcher) error {
		s.maxCandidates = maxCandidates
		return nil
	}
}

// WithMaxResults caps how many results a search returns.
// Default is 5.
func WithMaxResults(maxResults int) Option {
	return func(s *Searcher) error {
		if maxResults < 1 {
			maxResults = defaultMaxResults
		}
		s.maxResults = maxResults
		return nil
	}
}

// WithEmbeddingCache enables embedding caching. modelLabel namespaces
// cache keys; use the embedding model name.
func WithEmbeddingCache(cache storage.EmbeddingCache, modelLabel string) Option {
	return func(s *Searcher) error {
		s.cache = cache
		s.modelLabel = modelLabel
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent scoring.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Searcher) error {
		if size < 1 {
			size = 1
		}
		s.poolSize = size
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	catalogProvider catalog.Provider,
	provider ai.AIProvider,
	opts ...Option,
) (*Searcher, error) {
	if catalogProvider == nil {
		return nil, ErrCatalogRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	s := &Searcher{
		analyzer:      provider.SceneAnalyzer(),
		maxResults:    defaultMaxResults,
		minVoteCount:  defaultMinVoteCount,
		maxCandidates: defaultMaxCandidates,
		minSimilarity: defaultMinSimilarity,
		poolSize:      poolSize,
		logger:        slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	// Build stages after options are applied (so they get final config)
	scorer, err := NewScorer(provider.Embedder(), s.cache, s.modelLabel, s.poolSize, s.minSimilarity, s.logger)
	if err != nil {
		return nil, err
	}

	s.retriever = NewRetriever(catalogProvider, s.minVoteCount, s.maxCandidates, s.logger)
	s.scorer = scorer
	s.rerank = NewRerankStage(provider.Reranker(), s.logger)
	s.formatter = NewFormatter(catalogProvider, s.logger)

	return s, nil
}

// Release releases resources including the scoring worker pool.
// The searcher should not be used after calling Release.
func (s *Searcher) Release() {
	if s.scorer != nil {
		s.scorer.Release()
	}
}

// SearchFilmsByScene finds movies matching a free-text scene description.
// Returns up to the configured maximum results, best match first. A query
// no movie matches returns an empty slice, not an error.
func (s *Searcher) SearchFilmsByScene(ctx context.Context, query, locale string) ([]core.FinalResult, error) {
	return s.SearchFilmsBySceneWithMonitor(ctx, query, locale, nil)
}

// SearchFilmsBySceneWithMonitor runs a search with monitoring.
// The monitor receives callbacks at each stage of the pipeline.
func (s *Searcher) SearchFilmsBySceneWithMonitor(ctx context.Context, query, locale string, monitor SearchMonitor) ([]core.FinalResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	monitor.Start(query)

	// 1. Analyze the scene into structured terms.
	scene := s.analyzer.Analyze(ctx, query)
	monitor.AfterSceneAnalysis(scene)

	// 2. Canonicalize for embedding comparison.
	canonical := Canonicalize(scene, query)
	monitor.AfterCanonicalization(canonical)

	// 3. Retrieve candidates from the catalog.
	candidates, err := s.retriever.Retrieve(ctx, scene, query, canonical, locale)
	if err != nil {
		s.logger.Error("candidate retrieval failed", "query", query, "err", err)
		return nil, err
	}
	monitor.AfterRetrieval(candidates)

	if len(candidates) == 0 {
		s.logger.Info("no candidates for query", "query", query)
		monitor.Finish([]core.FinalResult{})
		return []core.FinalResult{}, nil
	}

	// 4. Score by embedding similarity.
	scored, err := s.scorer.Score(ctx, canonical, candidates)
	if err != nil {
		s.logger.Error("scoring failed", "query", query, "err", err)
		return nil, err
	}
	monitor.AfterScoring(scored)

	// 5. Rerank the top candidates. Best-effort.
	scored = s.rerank.Apply(ctx, query, scored)
	monitor.AfterRerank(scored)

	if len(scored) > s.maxResults {
		scored = scored[:s.maxResults]
	}

	// 6. Format with artwork and ratings.
	results := s.formatter.Format(ctx, scored, locale)
	monitor.Finish(results)

	return results, nil
}
