package search

import (
	"strings"

	"github.com/poiesic/scenematch/core"
)

// SimpleScore ranks a candidate against a query with plain substring and
// word-overlap checks. It is the fallback ranking used when the embedding
// service is unreachable. Returns a score in [0, 100], deterministic for
// the same inputs.
func SimpleScore(candidate core.MovieCandidate, query string) int {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return 0
	}

	title := strings.ToLower(candidate.Title)
	overview := strings.ToLower(candidate.Overview)

	score := 0

	// Whole-query containment in title is the strongest signal.
	if strings.Contains(title, query) {
		score += 50
	}

	// Partial word overlap with the title, checked both directions so a
	// one-word title can still match a long query.
	titleOverlap := wordOverlapFraction(title, query)
	if reverse := wordOverlapFraction(query, title); reverse > titleOverlap {
		titleOverlap = reverse
	}
	score += int(titleOverlap * 30)

	if strings.Contains(overview, query) {
		score += 20
	}
	score += int(wordOverlapFraction(overview, query) * 10)

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
