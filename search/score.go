package search

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/scenematch/ai"
	"github.com/poiesic/scenematch/core"
	"github.com/poiesic/scenematch/storage"
)

const (
	// Fused score weights. Overview text carries most of the scene
	// signal, keywords sharpen it, the title rarely describes a scene.
	overviewWeight = 0.6
	keywordWeight  = 0.3
	titleWeight    = 0.1

	// defaultMinSimilarity drops candidates with no meaningful semantic
	// relation to the query.
	defaultMinSimilarity = 0.20

	// maxKeywordEmbeddings bounds per-candidate embedding calls.
	maxKeywordEmbeddings = 5
)

// Scorer ranks candidates by embedding similarity against the query.
type Scorer struct {
	embedder      ai.Embedder
	cache         storage.EmbeddingCache
	modelLabel    string
	pool          *ants.Pool
	minSimilarity float64
	logger        *slog.Logger
}

// NewScorer creates a scorer. cache may be nil to disable caching;
// modelLabel namespaces cache keys per embedding model.
func NewScorer(embedder ai.Embedder, cache storage.EmbeddingCache, modelLabel string, poolSize int, minSimilarity float64, logger *slog.Logger) (*Scorer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if poolSize < 1 {
		poolSize = 1
	}
	if minSimilarity <= 0 {
		minSimilarity = defaultMinSimilarity
	}
	if modelLabel == "" {
		modelLabel = "default"
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	return &Scorer{
		embedder:      embedder,
		cache:         cache,
		modelLabel:    modelLabel,
		pool:          pool,
		minSimilarity: minSimilarity,
		logger:        logger.With("component", "scorer"),
	}, nil
}

// Release releases the worker pool.
// The scorer should not be used after calling Release.
func (s *Scorer) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}

// Score computes fused similarity scores for all candidates and returns
// them sorted by score descending, filtered by the minimum similarity.
//
// When the query itself cannot be embedded, whether the provider errors
// or fails closed with an empty vector, the whole batch degrades to
// lexical scoring so the search still returns ranked results. Embedding
// failures for individual candidates drop only those candidates.
func (s *Scorer) Score(ctx context.Context, query string, candidates []core.MovieCandidate) ([]core.ScoredMovie, error) {
	if len(candidates) == 0 {
		return []core.ScoredMovie{}, nil
	}

	queryVector, err := s.embedText(ctx, query)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		s.logger.Warn("query embedding failed, using lexical scoring", "err", err)
		return s.scoreLexical(query, candidates), nil
	}
	if len(queryVector) == 0 {
		s.logger.Warn("query embedding empty, using lexical scoring")
		return s.scoreLexical(query, candidates), nil
	}

	scored := make([]core.ScoredMovie, len(candidates))
	valid := make([]bool, len(candidates))

	var wg sync.WaitGroup
	for i := range candidates {
		i := i
		wg.Add(1)
		task := func() {
			defer wg.Done()
			score, err := s.scoreCandidate(ctx, queryVector, candidates[i])
			if err != nil {
				s.logger.Warn("skipping candidate after embedding failure",
					"movieID", candidates[i].ID, "err", err)
				return
			}
			scored[i] = core.ScoredMovie{Movie: candidates[i], EmbeddingScore: score}
			valid[i] = true
		}
		if err := s.pool.Submit(task); err != nil {
			// Pool exhausted or released; run inline rather than drop.
			task()
		}
	}
	wg.Wait()

	results := make([]core.ScoredMovie, 0, len(candidates))
	for i, ok := range valid {
		if ok && scored[i].EmbeddingScore >= s.minSimilarity {
			results = append(results, scored[i])
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].EmbeddingScore > results[j].EmbeddingScore
	})
	return results, nil
}

// scoreCandidate fuses overview, keyword, and title similarities.
func (s *Scorer) scoreCandidate(ctx context.Context, queryVector []float32, candidate core.MovieCandidate) (float64, error) {
	var overviewSim float64
	if candidate.Overview != "" {
		vec, err := s.embedText(ctx, candidate.Overview)
		if err != nil {
			return 0, err
		}
		overviewSim = CosineSimilarity(queryVector, vec)
	}

	var maxKeywordSim float64
	keywords := candidate.Keywords
	if len(keywords) > maxKeywordEmbeddings {
		keywords = keywords[:maxKeywordEmbeddings]
	}
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		vec, err := s.embedText(ctx, keyword)
		if err != nil {
			return 0, err
		}
		if sim := CosineSimilarity(queryVector, vec); sim > maxKeywordSim {
			maxKeywordSim = sim
		}
	}

	var titleSim float64
	if candidate.Title != "" {
		vec, err := s.embedText(ctx, candidate.Title)
		if err != nil {
			return 0, err
		}
		titleSim = CosineSimilarity(queryVector, vec)
	}

	return overviewWeight*overviewSim + keywordWeight*maxKeywordSim + titleWeight*titleSim, nil
}

// scoreLexical ranks the batch with SimpleScore. No similarity floor is
// applied beyond requiring a nonzero score.
func (s *Scorer) scoreLexical(query string, candidates []core.MovieCandidate) []core.ScoredMovie {
	results := make([]core.ScoredMovie, 0, len(candidates))
	for _, candidate := range candidates {
		score := SimpleScore(candidate, query)
		if score <= 0 {
			continue
		}
		results = append(results, core.ScoredMovie{
			Movie:          candidate,
			EmbeddingScore: float64(score) / 100,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].EmbeddingScore > results[j].EmbeddingScore
	})
	return results
}

// embedText embeds text through the cache when one is configured.
// Cache failures are logged and never fail the embedding.
func (s *Scorer) embedText(ctx context.Context, text string) ([]float32, error) {
	if s.cache == nil {
		return s.embedder.EmbedText(ctx, text)
	}

	key := core.EmbeddingCacheKey(s.modelLabel, text)
	if record, err := s.cache.GetEmbedding(ctx, key); err == nil {
		return record.Vector, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		s.logger.Debug("embedding cache read failed", "err", err)
	}

	vector, err := s.embedder.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}

	// Fail-closed providers return an empty vector instead of an error.
	// Those are never cached.
	if len(vector) == 0 {
		return vector, nil
	}

	record := &core.EmbeddingRecord{ID: key, Model: s.modelLabel, Vector: vector}
	if err := s.cache.PutEmbedding(ctx, record); err != nil {
		s.logger.Debug("embedding cache write failed", "err", err)
	}
	return vector, nil
}
