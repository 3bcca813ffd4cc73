package mock

import (
	"context"
	"strings"

	"github.com/poiesic/scenematch/core"
)

// MockSceneAnalyzer is a test double for ai.SceneAnalyzer.
// It allows custom behavior injection via function fields.
type MockSceneAnalyzer struct {
	// AnalyzeFunc is called by Analyze if set.
	// If nil, uses default simple word extraction.
	AnalyzeFunc func(ctx context.Context, query string) core.SceneDescription

	callCount int
}

// NewMockSceneAnalyzer creates a mock scene analyzer with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockAnalyzer().
func NewMockSceneAnalyzer() *MockSceneAnalyzer {
	return &MockSceneAnalyzer{}
}

// Analyze extracts simple mock scene tags from the query.
// Default behavior: the first five words longer than two characters become
// entities; everything else is left empty.
func (m *MockSceneAnalyzer) Analyze(ctx context.Context, query string) core.SceneDescription {
	m.callCount++

	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, query)
	}

	scene := core.EmptyScene()
	for _, word := range strings.Fields(strings.ToLower(query)) {
		word = strings.Trim(word, ".,!?;:\"'()[]{}")
		if len(word) < 3 {
			continue
		}
		scene.Entities = append(scene.Entities, word)
		if len(scene.Entities) >= 5 {
			break
		}
	}
	return scene
}

// CallCount returns the number of times Analyze was called.
func (m *MockSceneAnalyzer) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockSceneAnalyzer) Reset() {
	m.callCount = 0
	m.AnalyzeFunc = nil
}
