package search

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aimock "github.com/poiesic/scenematch/ai/mock"
	"github.com/poiesic/scenematch/core"
	"github.com/poiesic/scenematch/storage/badger"
)

// directionalEmbedder maps text onto axis vectors so similarities are
// exact: anything mentioning icebergs points one way, racing another.
func directionalEmbedder() *aimock.MockEmbedder {
	embedder := aimock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		lower := strings.ToLower(text)
		switch {
		case strings.Contains(lower, "iceberg"):
			return []float32{1, 0, 0}, nil
		case strings.Contains(lower, "racing") || strings.Contains(lower, "cars"):
			return []float32{0, 1, 0}, nil
		default:
			return []float32{0, 0, 1}, nil
		}
	}
	return embedder
}

func newTestScorer(t *testing.T, embedder *aimock.MockEmbedder) *Scorer {
	t.Helper()
	scorer, err := NewScorer(embedder, nil, "test-model", 2, defaultMinSimilarity, nil)
	require.NoError(t, err)
	t.Cleanup(scorer.Release)
	return scorer
}

var scoreTestCandidates = []core.MovieCandidate{
	{
		ID:       597,
		Title:    "Titanic",
		Overview: "A luxury ship strikes an iceberg and sinks.",
		Keywords: []string{"iceberg", "shipwreck"},
	},
	{
		ID:       9340,
		Title:    "Street Racers",
		Overview: "Fast cars racing through the city.",
		Keywords: []string{"racing"},
	},
}

func TestScore_RanksByFusedSimilarity(t *testing.T) {
	scorer := newTestScorer(t, directionalEmbedder())

	scored, err := scorer.Score(context.Background(), "ship hits an iceberg", scoreTestCandidates)
	require.NoError(t, err)
	require.NotEmpty(t, scored)

	assert.Equal(t, 597, scored[0].Movie.ID)
	// Overview and keyword both align: 0.6 + 0.3 weights at similarity 1.
	assert.InDelta(t, 0.9, scored[0].EmbeddingScore, 1e-9)

	// The racing movie is orthogonal to the query and falls below the floor.
	for _, movie := range scored {
		assert.NotEqual(t, 9340, movie.Movie.ID)
	}
}

func TestScore_MinSimilarityFloor(t *testing.T) {
	scorer := newTestScorer(t, directionalEmbedder())

	scored, err := scorer.Score(context.Background(), "racing cars", scoreTestCandidates)
	require.NoError(t, err)

	for _, movie := range scored {
		assert.GreaterOrEqual(t, movie.EmbeddingScore, defaultMinSimilarity)
	}
}

func TestScore_EmptyOverviewScoresViaTitleAndKeywords(t *testing.T) {
	embedder := directionalEmbedder()
	scorer := newTestScorer(t, embedder)

	candidates := []core.MovieCandidate{{
		ID:       1,
		Title:    "Iceberg",
		Keywords: []string{"iceberg"},
	}}

	scored, err := scorer.Score(context.Background(), "iceberg collision", candidates)
	require.NoError(t, err)
	require.Len(t, scored, 1)
	// Keyword 0.3 plus title 0.1 at similarity 1, no overview term.
	assert.InDelta(t, 0.4, scored[0].EmbeddingScore, 1e-9)
}

func TestScore_QueryEmbeddingFailureFallsBackToLexical(t *testing.T) {
	embedder := aimock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("embedding host unreachable")
	}
	scorer := newTestScorer(t, embedder)

	scored, err := scorer.Score(context.Background(), "titanic iceberg", scoreTestCandidates)
	require.NoError(t, err)

	require.NotEmpty(t, scored)
	assert.Equal(t, 597, scored[0].Movie.ID)
	assert.Greater(t, scored[0].EmbeddingScore, 0.0)
}

func TestScore_EmptyQueryVectorFallsBackToLexical(t *testing.T) {
	embedder := aimock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{}, nil
	}
	scorer := newTestScorer(t, embedder)

	scored, err := scorer.Score(context.Background(), "titanic iceberg", scoreTestCandidates)
	require.NoError(t, err)

	require.NotEmpty(t, scored)
	assert.Equal(t, 597, scored[0].Movie.ID)
	assert.Greater(t, scored[0].EmbeddingScore, 0.0)
}

func TestScore_EmptyVectorNotCached(t *testing.T) {
	cache, err := badger.NewMemoryCache()
	require.NoError(t, err)
	defer cache.Close()

	embedder := aimock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{}, nil
	}

	scorer, err := NewScorer(embedder, cache, "test-model", 2, defaultMinSimilarity, nil)
	require.NoError(t, err)
	defer scorer.Release()

	ctx := context.Background()
	_, err = scorer.Score(ctx, "iceberg ship", scoreTestCandidates)
	require.NoError(t, err)

	// Once the provider recovers, the same query must embed for real
	// instead of being served a stale empty vector.
	embedder.EmbedTextFunc = directionalEmbedder().EmbedTextFunc

	scored, err := scorer.Score(ctx, "iceberg ship", scoreTestCandidates)
	require.NoError(t, err)

	require.NotEmpty(t, scored)
	assert.Equal(t, 597, scored[0].Movie.ID)
	assert.InDelta(t, 0.9, scored[0].EmbeddingScore, 1e-9)
}

func TestScore_CandidateEmbeddingFailureSkipsCandidate(t *testing.T) {
	embedder := aimock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		if strings.Contains(strings.ToLower(text), "racing") {
			return nil, errors.New("transient failure")
		}
		return []float32{1, 0, 0}, nil
	}
	scorer := newTestScorer(t, embedder)

	scored, err := scorer.Score(context.Background(), "iceberg", scoreTestCandidates)
	require.NoError(t, err)

	require.Len(t, scored, 1)
	assert.Equal(t, 597, scored[0].Movie.ID)
}

func TestScore_EmptyCandidates(t *testing.T) {
	scorer := newTestScorer(t, directionalEmbedder())

	scored, err := scorer.Score(context.Background(), "anything", nil)
	require.NoError(t, err)
	assert.Empty(t, scored)
}

func TestScore_UsesEmbeddingCache(t *testing.T) {
	cache, err := badger.NewMemoryCache()
	require.NoError(t, err)
	defer cache.Close()

	embedder := directionalEmbedder()
	scorer, err := NewScorer(embedder, cache, "test-model", 2, defaultMinSimilarity, nil)
	require.NoError(t, err)
	defer scorer.Release()

	ctx := context.Background()
	_, err = scorer.Score(ctx, "iceberg ship", scoreTestCandidates)
	require.NoError(t, err)

	firstRun := embedder.CallCount()
	require.Greater(t, firstRun, 0)

	// Second run over the same texts should be served from the cache.
	_, err = scorer.Score(ctx, "iceberg ship", scoreTestCandidates)
	require.NoError(t, err)
	assert.Equal(t, firstRun, embedder.CallCount())
}

func TestScore_ContextCancellation(t *testing.T) {
	embedder := aimock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, ctx.Err()
	}
	scorer := newTestScorer(t, embedder)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := scorer.Score(ctx, "iceberg", scoreTestCandidates)
	assert.ErrorIs(t, err, context.Canceled)
}
