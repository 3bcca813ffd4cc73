package ai

import (
	"context"

	"github.com/poiesic/scenematch/core"
)

// Embedder generates vector embeddings from text for semantic similarity scoring.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// SceneAnalyzer turns a free-text scene description into structured scene
// semantics. Implementations must never fail for any input string, including
// the empty string: a query that yields no tags produces an empty
// SceneDescription, which is a valid result, not an error.
// Implementations must be thread-safe for concurrent use.
type SceneAnalyzer interface {
	// Analyze extracts entities, events, environment and themes from the query.
	// The returned SceneDescription always has all four lists non-nil.
	Analyze(ctx context.Context, query string) core.SceneDescription
}

// RerankCandidate is one entry of the shortlist handed to a re-ranker.
type RerankCandidate struct {
	Title    string
	Year     int
	Overview string
}

// RerankDecision is a re-ranker's judgment over a candidate shortlist.
// Order holds 1-based indices into the candidate list, best first.
// Confidences is parallel to Order, each value in [0,100].
// Consumers must validate both before trusting them.
type RerankDecision struct {
	Order       []int
	Confidences []int
	Explanation string
}

// Reranker orders a small candidate shortlist against the original query
// using a secondary, more expensive judgment.
// If an error occurs, callers should fall back to the original ordering.
type Reranker interface {
	// Rerank judges which candidates best match the remembered scene.
	Rerank(ctx context.Context, query string, candidates []RerankCandidate) (RerankDecision, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages Embedder,
// SceneAnalyzer and Reranker instances, ensuring they share configuration
// and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// SceneAnalyzer returns the scene analysis service.
	// The returned SceneAnalyzer is safe for concurrent use.
	SceneAnalyzer() SceneAnalyzer

	// Reranker returns the shortlist re-ranking service.
	// The returned Reranker is safe for concurrent use.
	Reranker() Reranker

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
