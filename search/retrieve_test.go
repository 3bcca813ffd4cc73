package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/scenematch/catalog"
	catmock "github.com/poiesic/scenematch/catalog/mock"
	"github.com/poiesic/scenematch/core"
)

func seedCatalog(t *testing.T) *catmock.MockProvider {
	t.Helper()
	provider := catmock.NewMockProvider()

	provider.AddMovie(catalog.MovieDetails{
		MovieSummary: catalog.MovieSummary{
			ID:          597,
			Title:       "Titanic",
			Overview:    "A luxury ship strikes an iceberg and sinks in the ocean.",
			ReleaseDate: "1997-11-18",
			VoteCount:   24000,
			VoteAverage: 7.9,
			PosterPath:  "/titanic.jpg",
		},
	}, []string{"shipwreck", "iceberg", "ocean liner"})

	provider.AddMovie(catalog.MovieDetails{
		MovieSummary: catalog.MovieSummary{
			ID:          330,
			Title:       "Obscure Ship Story",
			Overview:    "A small ship drifts at sea.",
			ReleaseDate: "2011-01-01",
			VoteCount:   12,
		},
	}, []string{"ship"})

	provider.AddMovie(catalog.MovieDetails{
		MovieSummary: catalog.MovieSummary{
			ID:          9340,
			Title:       "Street Racers",
			Overview:    "Fast cars race through the city at night.",
			ReleaseDate: "2015-04-03",
			VoteCount:   8000,
		},
	}, []string{"racing", "cars"})

	return provider
}

func TestRetrieve_TermSearch(t *testing.T) {
	provider := seedCatalog(t)
	retriever := NewRetriever(provider, defaultMinVoteCount, defaultMaxCandidates, nil)

	scene := core.SceneDescription{
		Entities: []string{"ship"},
		Events:   []string{"sinking"},
	}

	candidates, err := retriever.Retrieve(context.Background(), scene, "", "", "")
	require.NoError(t, err)
	require.NotEmpty(t, candidates)

	assert.Equal(t, "Titanic", candidates[0].Title)
	assert.Contains(t, candidates[0].Keywords, "iceberg")
}

func TestRetrieve_VoteCountFloor(t *testing.T) {
	provider := seedCatalog(t)
	retriever := NewRetriever(provider, defaultMinVoteCount, defaultMaxCandidates, nil)

	scene := core.SceneDescription{Entities: []string{"ship"}}

	candidates, err := retriever.Retrieve(context.Background(), scene, "", "", "")
	require.NoError(t, err)

	for _, candidate := range candidates {
		assert.GreaterOrEqual(t, candidate.VoteCount, defaultMinVoteCount,
			"low-vote movie %q should be filtered", candidate.Title)
	}
}

func TestRetrieve_NoDuplicates(t *testing.T) {
	provider := seedCatalog(t)
	retriever := NewRetriever(provider, defaultMinVoteCount, defaultMaxCandidates, nil)

	// "ship" and "iceberg" both match Titanic, and the probe fires too.
	scene := core.SceneDescription{
		Entities: []string{"ship", "iceberg"},
	}

	candidates, err := retriever.Retrieve(context.Background(), scene, "", "", "")
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, candidate := range candidates {
		assert.False(t, seen[candidate.ID], "duplicate candidate %d", candidate.ID)
		seen[candidate.ID] = true
	}
}

func TestRetrieve_PrecisionGate(t *testing.T) {
	provider := catmock.NewMockProvider()
	provider.AddMovie(catalog.MovieDetails{
		MovieSummary: catalog.MovieSummary{
			ID:        1,
			Title:     "Shipment",
			Overview:  "A package gets lost.",
			VoteCount: 5000,
		},
	}, nil)

	// The mock matches "ship" as a substring of "Shipment", and the
	// containment gate also sees "ship" inside "shipment", so it admits.
	// A term absent from all text must not admit anything.
	retriever := NewRetriever(provider, defaultMinVoteCount, defaultMaxCandidates, nil)

	provider.SearchMoviesFunc = func(ctx context.Context, query string, page int, locale string) (*catalog.SearchPage, error) {
		// Catalog returns an irrelevant result for every query.
		return &catalog.SearchPage{Results: []catalog.MovieSummary{{
			ID: 1, Title: "Shipment", Overview: "A package gets lost.", VoteCount: 5000,
		}}}, nil
	}

	scene := core.SceneDescription{Entities: []string{"dragon"}}
	candidates, err := retriever.Retrieve(context.Background(), scene, "", "", "")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestRetrieve_CandidateCap(t *testing.T) {
	provider := seedCatalog(t)
	retriever := NewRetriever(provider, 0, 1, nil)

	scene := core.SceneDescription{Entities: []string{"ship", "iceberg", "ocean"}}

	candidates, err := retriever.Retrieve(context.Background(), scene, "", "", "")
	require.NoError(t, err)
	assert.Len(t, candidates, 1)
}

func TestRetrieve_PopularityFallback(t *testing.T) {
	provider := seedCatalog(t)
	provider.SearchMoviesFunc = func(ctx context.Context, query string, page int, locale string) (*catalog.SearchPage, error) {
		return &catalog.SearchPage{}, nil
	}

	retriever := NewRetriever(provider, defaultMinVoteCount, defaultMaxCandidates, nil)

	scene := core.SceneDescription{Entities: []string{"racing"}}
	candidates, err := retriever.Retrieve(context.Background(), scene, "", "", "")
	require.NoError(t, err)

	require.NotEmpty(t, candidates)
	assert.Equal(t, "Street Racers", candidates[0].Title)
}

func TestRetrieve_FallbackLooseGate(t *testing.T) {
	provider := seedCatalog(t)
	provider.SearchMoviesFunc = func(ctx context.Context, query string, page int, locale string) (*catalog.SearchPage, error) {
		return &catalog.SearchPage{}, nil
	}

	retriever := NewRetriever(provider, defaultMinVoteCount, defaultMaxCandidates, nil)

	// Nothing popular mentions these terms either.
	scene := core.SceneDescription{Entities: []string{"dragon", "castle"}}
	candidates, err := retriever.Retrieve(context.Background(), scene, "", "", "")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestRetrieve_CatalogUnavailable(t *testing.T) {
	provider := catmock.NewMockProvider()
	provider.SearchMoviesFunc = func(ctx context.Context, query string, page int, locale string) (*catalog.SearchPage, error) {
		return nil, errors.New("connection refused")
	}
	provider.GetPopularMoviesFunc = func(ctx context.Context, page int, locale string) (*catalog.SearchPage, error) {
		return nil, errors.New("connection refused")
	}

	retriever := NewRetriever(provider, defaultMinVoteCount, defaultMaxCandidates, nil)

	scene := core.SceneDescription{Entities: []string{"ship"}}
	_, err := retriever.Retrieve(context.Background(), scene, "", "", "")
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestRetrieve_PartialFailureTolerated(t *testing.T) {
	provider := seedCatalog(t)
	provider.SearchMoviesFunc = func(ctx context.Context, query string, page int, locale string) (*catalog.SearchPage, error) {
		if query == "iceberg" {
			return nil, errors.New("timeout")
		}
		// Serve the seeded Titanic summary for everything else.
		return &catalog.SearchPage{Results: []catalog.MovieSummary{{
			ID:          597,
			Title:       "Titanic",
			Overview:    "A luxury ship strikes an iceberg and sinks in the ocean.",
			ReleaseDate: "1997-11-18",
			VoteCount:   24000,
		}}}, nil
	}

	retriever := NewRetriever(provider, defaultMinVoteCount, defaultMaxCandidates, nil)

	scene := core.SceneDescription{Entities: []string{"iceberg", "ship"}}
	candidates, err := retriever.Retrieve(context.Background(), scene, "", "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, candidates)
}

func TestRetrieve_UntaggedQuerySearchesItsWords(t *testing.T) {
	provider := seedCatalog(t)
	retriever := NewRetriever(provider, defaultMinVoteCount, defaultMaxCandidates, nil)

	// The analyzer extracted nothing, so the query's own content words
	// must drive the term searches.
	query := "the titanic sinks in the ocean"
	candidates, err := retriever.Retrieve(context.Background(), core.EmptyScene(), query, query, "")
	require.NoError(t, err)

	require.NotEmpty(t, candidates)
	assert.Equal(t, "Titanic", candidates[0].Title)
	assert.Zero(t, provider.CallCount("GetPopularMovies"),
		"targeted searches should satisfy the query without the popularity fallback")
}

func TestRetrieve_RawQueryFiresTitleProbe(t *testing.T) {
	provider := seedCatalog(t)
	retriever := NewRetriever(provider, defaultMinVoteCount, defaultMaxCandidates, nil)

	// No scene terms and no canonical query: only the raw query text can
	// make the probe fire.
	candidates, err := retriever.Retrieve(context.Background(), core.EmptyScene(),
		"a ship hits an iceberg", "", "")
	require.NoError(t, err)

	require.NotEmpty(t, candidates)
	assert.Equal(t, "Titanic", candidates[0].Title)
}

func TestRetrieve_KeywordLookupFailureDegrades(t *testing.T) {
	provider := seedCatalog(t)
	provider.GetMovieKeywordsFunc = func(ctx context.Context, id int) ([]string, error) {
		return nil, errors.New("keywords endpoint down")
	}

	retriever := NewRetriever(provider, defaultMinVoteCount, defaultMaxCandidates, nil)

	scene := core.SceneDescription{Entities: []string{"ship"}}
	candidates, err := retriever.Retrieve(context.Background(), scene, "", "", "")
	require.NoError(t, err)

	require.NotEmpty(t, candidates)
	assert.Empty(t, candidates[0].Keywords)
}
