package search

import (
	"context"
	"log/slog"

	"github.com/poiesic/scenematch/ai"
	"github.com/poiesic/scenematch/core"
)

const (
	// rerankTopK caps how many candidates are sent to the language model.
	rerankTopK = 5

	// Blend weights. The embedding score stays dominant over the
	// model's self-reported confidence.
	rerankEmbeddingWeight  = 0.7
	rerankConfidenceWeight = 0.3
)

// RerankStage reorders the top scored candidates using a language model.
// The stage is strictly best-effort: any reranker failure or malformed
// decision leaves the input ordering untouched.
type RerankStage struct {
	reranker ai.Reranker
	logger   *slog.Logger
}

// NewRerankStage creates a rerank stage.
func NewRerankStage(reranker ai.Reranker, logger *slog.Logger) *RerankStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &RerankStage{
		reranker: reranker,
		logger:   logger.With("component", "rerank"),
	}
}

// Apply reranks the top candidates against the original query.
func (r *RerankStage) Apply(ctx context.Context, query string, scored []core.ScoredMovie) []core.ScoredMovie {
	top := len(scored)
	if top > rerankTopK {
		top = rerankTopK
	}
	if top == 0 {
		return scored
	}

	rerankables := make([]ai.RerankCandidate, top)
	for i := 0; i < top; i++ {
		rerankables[i] = ai.RerankCandidate{
			Title:    scored[i].Movie.Title,
			Year:     core.YearFromDate(scored[i].Movie.ReleaseDate),
			Overview: scored[i].Movie.Overview,
		}
	}

	decision, err := r.reranker.Rerank(ctx, query, rerankables)
	if err != nil {
		r.logger.Warn("rerank failed, keeping embedding order", "err", err)
		return scored
	}
	if !validDecision(decision, top) {
		r.logger.Warn("rerank returned unusable ordering, keeping embedding order",
			"order", decision.Order)
		return scored
	}

	result := make([]core.ScoredMovie, 0, len(scored))
	used := make([]bool, top)

	for pos, idx := range decision.Order {
		i := idx - 1
		used[i] = true

		movie := scored[i]
		confidence := 50
		if pos < len(decision.Confidences) {
			confidence = clampConfidence(decision.Confidences[pos])
		}
		movie.EmbeddingScore = rerankEmbeddingWeight*movie.EmbeddingScore +
			rerankConfidenceWeight*float64(confidence)/100
		if pos == 0 && decision.Explanation != "" {
			movie.Explanation = decision.Explanation
		}
		result = append(result, movie)
	}

	// Top candidates the model skipped keep their original scores and
	// relative order, after the reranked ones.
	for i := 0; i < top; i++ {
		if !used[i] {
			result = append(result, scored[i])
		}
	}

	return append(result, scored[top:]...)
}

// validDecision checks that the order is non-empty and every index is a
// unique 1-based reference into the reranked window.
func validDecision(decision ai.RerankDecision, top int) bool {
	if len(decision.Order) == 0 || len(decision.Order) > top {
		return false
	}
	seen := make(map[int]bool, len(decision.Order))
	for _, idx := range decision.Order {
		if idx < 1 || idx > top || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}

func clampConfidence(confidence int) int {
	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}
