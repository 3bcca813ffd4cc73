package search

import (
	"github.com/poiesic/scenematch/core"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterSceneAnalysis(scene core.SceneDescription)
	AfterCanonicalization(canonical string)
	AfterRetrieval(candidates []core.MovieCandidate)
	AfterScoring(scored []core.ScoredMovie)
	AfterRerank(scored []core.ScoredMovie)
	Finish(results []core.FinalResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                             {}
func (n *noopMonitor) AfterSceneAnalysis(_ core.SceneDescription) {}
func (n *noopMonitor) AfterCanonicalization(_ string)             {}
func (n *noopMonitor) AfterRetrieval(_ []core.MovieCandidate)     {}
func (n *noopMonitor) AfterScoring(_ []core.ScoredMovie)          {}
func (n *noopMonitor) AfterRerank(_ []core.ScoredMovie)           {}
func (n *noopMonitor) Finish(_ []core.FinalResult)                {}
