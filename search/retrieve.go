package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/scenematch/catalog"
	"github.com/poiesic/scenematch/core"
)

const (
	// defaultMinVoteCount filters out obscure titles whose overviews and
	// keywords are too thin to score reliably.
	defaultMinVoteCount = 300

	// defaultMaxCandidates caps how many candidates reach the scoring stage.
	defaultMaxCandidates = 30

	// probeAdmitLimit caps how many results a single title probe admits.
	probeAdmitLimit = 3
)

// Retriever gathers candidate movies from the catalog for a scene.
type Retriever struct {
	catalog       catalog.Provider
	minVoteCount  int
	maxCandidates int
	logger        *slog.Logger
}

// NewRetriever creates a retriever over the given catalog.
func NewRetriever(provider catalog.Provider, minVoteCount, maxCandidates int, logger *slog.Logger) *Retriever {
	if logger == nil {
		logger = slog.Default()
	}
	if minVoteCount < 0 {
		minVoteCount = defaultMinVoteCount
	}
	if maxCandidates < 1 {
		maxCandidates = defaultMaxCandidates
	}
	return &Retriever{
		catalog:       provider,
		minVoteCount:  minVoteCount,
		maxCandidates: maxCandidates,
		logger:        logger.With("component", "retriever"),
	}
}

// Retrieve collects unique candidates for the scene. Search terms come
// from the scene tags merged with the content words of the canonical
// query, and the raw query also feeds title probe matching, so a query
// the analyzer cannot tag still drives targeted searches. Individual
// catalog failures are logged and skipped; ErrCatalogUnavailable is
// returned only when every request failed and nothing was retrieved.
func (r *Retriever) Retrieve(ctx context.Context, scene core.SceneDescription, originalQuery, canonicalQuery, locale string) ([]core.MovieCandidate, error) {
	terms := searchTerms(scene, canonicalQuery)

	seen := make(map[int]bool)
	var candidates []core.MovieCandidate
	attempted, failed := 0, 0

	// Title probes first. A probe is a direct title search, so its top
	// results are admitted without the per-term precision gate.
	for _, probeQuery := range matchingProbes(terms, originalQuery) {
		if len(candidates) >= r.maxCandidates {
			break
		}
		attempted++
		page, err := r.catalog.SearchMovies(ctx, probeQuery, 1, locale)
		if err != nil {
			failed++
			r.logger.Warn("title probe failed", "query", probeQuery, "err", err)
			continue
		}
		admitted := 0
		for _, summary := range page.Results {
			if len(candidates) >= r.maxCandidates || admitted >= probeAdmitLimit {
				break
			}
			if seen[summary.ID] || summary.VoteCount < r.minVoteCount {
				continue
			}
			candidate := r.buildCandidate(ctx, summary)
			seen[summary.ID] = true
			candidates = append(candidates, candidate)
			admitted++
		}
	}

	// Per-term keyword search with a verbatim containment gate: a result
	// only counts for a term if the term actually appears in its text.
	for _, term := range terms {
		if len(candidates) >= r.maxCandidates {
			break
		}
		attempted++
		page, err := r.catalog.SearchMovies(ctx, term, 1, locale)
		if err != nil {
			failed++
			r.logger.Warn("term search failed", "term", term, "err", err)
			continue
		}
		for _, summary := range page.Results {
			if len(candidates) >= r.maxCandidates {
				break
			}
			if seen[summary.ID] || summary.VoteCount < r.minVoteCount {
				continue
			}
			candidate := r.buildCandidate(ctx, summary)
			if !strings.Contains(candidate.SearchText(), term) {
				continue
			}
			seen[summary.ID] = true
			candidates = append(candidates, candidate)
		}
	}

	if len(candidates) == 0 && attempted > 0 && failed == attempted {
		return nil, ErrCatalogUnavailable
	}

	// Popularity fallback with a loose term-intersection gate, used only
	// when the targeted searches produced nothing.
	if len(candidates) == 0 {
		fallback, err := r.retrievePopular(ctx, terms, locale)
		if err != nil {
			if attempted == 0 {
				return nil, err
			}
			r.logger.Warn("popularity fallback failed", "err", err)
			return []core.MovieCandidate{}, nil
		}
		candidates = fallback
	}

	r.logger.Debug("retrieved candidates", "count", len(candidates), "terms", len(terms))
	return candidates, nil
}

func (r *Retriever) retrievePopular(ctx context.Context, terms []string, locale string) ([]core.MovieCandidate, error) {
	page, err := r.catalog.GetPopularMovies(ctx, 1, locale)
	if err != nil {
		return nil, ErrCatalogUnavailable
	}

	var candidates []core.MovieCandidate
	for _, summary := range page.Results {
		if len(candidates) >= r.maxCandidates {
			break
		}
		if summary.VoteCount < r.minVoteCount {
			continue
		}
		candidate := r.buildCandidate(ctx, summary)
		if len(terms) > 0 && !anyTermMatches(candidate.SearchText(), terms) {
			continue
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// buildCandidate converts a catalog summary and fetches its keywords.
// Keyword lookup failures degrade to an empty keyword list.
func (r *Retriever) buildCandidate(ctx context.Context, summary catalog.MovieSummary) core.MovieCandidate {
	keywords, err := r.catalog.GetMovieKeywords(ctx, summary.ID)
	if err != nil {
		r.logger.Debug("keyword lookup failed", "movieID", summary.ID, "err", err)
		keywords = nil
	}
	return core.MovieCandidate{
		ID:          summary.ID,
		Title:       summary.Title,
		Overview:    summary.Overview,
		Keywords:    keywords,
		VoteCount:   summary.VoteCount,
		ReleaseDate: summary.ReleaseDate,
	}
}

// searchTerms merges translated scene terms with the content words of
// the canonical query, deduplicated in first-occurrence order. Scene
// terms come first so targeted tags are searched before free-text words.
func searchTerms(scene core.SceneDescription, canonicalQuery string) []string {
	seen := make(map[string]bool)
	var terms []string
	add := func(term string) {
		if len([]rune(term)) < minTermLength || seen[term] {
			return
		}
		seen[term] = true
		terms = append(terms, term)
	}

	for _, term := range scene.AllTerms() {
		add(translateTerm(strings.ToLower(strings.TrimSpace(term))))
	}
	for _, token := range tokenizeAndFilter(canonicalQuery) {
		add(translateTerm(token))
	}
	return terms
}

func anyTermMatches(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
