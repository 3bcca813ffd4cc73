package mock

import (
	"context"

	"github.com/poiesic/scenematch/ai"
)

// MockReranker is a test double for ai.Reranker.
// It allows custom behavior injection via function fields.
type MockReranker struct {
	// RerankFunc is called by Rerank if set.
	// If nil, uses default identity ordering.
	RerankFunc func(ctx context.Context, query string, candidates []ai.RerankCandidate) (ai.RerankDecision, error)

	callCount int
}

// NewMockReranker creates a mock reranker with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockReranker().
func NewMockReranker() *MockReranker {
	return &MockReranker{}
}

// Rerank returns the identity ordering with uniform confidences by default.
func (m *MockReranker) Rerank(ctx context.Context, query string, candidates []ai.RerankCandidate) (ai.RerankDecision, error) {
	m.callCount++

	if m.RerankFunc != nil {
		return m.RerankFunc(ctx, query, candidates)
	}

	decision := ai.RerankDecision{
		Order:       make([]int, len(candidates)),
		Confidences: make([]int, len(candidates)),
	}
	for i := range candidates {
		decision.Order[i] = i + 1
		decision.Confidences[i] = 50
	}
	return decision, nil
}

// CallCount returns the number of times Rerank was called.
func (m *MockReranker) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockReranker) Reset() {
	m.callCount = 0
	m.RerankFunc = nil
}
