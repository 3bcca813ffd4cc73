// Package mock provides an in-memory catalog.Provider for testing.
package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/poiesic/scenematch/catalog"
)

// MockProvider is a configurable in-memory movie catalog.
//
// By default it serves the movies seeded via AddMovie, matching search
// queries by substring against title, overview, and keywords. Behaviors
// can be overridden with the *Func fields for error injection.
type MockProvider struct {
	mu sync.Mutex

	movies   []seeded
	keywords map[int][]string

	SearchMoviesFunc     func(ctx context.Context, query string, page int, locale string) (*catalog.SearchPage, error)
	GetMovieDetailsFunc  func(ctx context.Context, id int, locale string) (*catalog.MovieDetails, error)
	GetMovieKeywordsFunc func(ctx context.Context, id int) ([]string, error)
	GetPopularMoviesFunc func(ctx context.Context, page int, locale string) (*catalog.SearchPage, error)

	callCount map[string]int
}

type seeded struct {
	details catalog.MovieDetails
}

var _ catalog.Provider = (*MockProvider)(nil)

// NewMockProvider creates an empty mock catalog.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		keywords:  make(map[int][]string),
		callCount: make(map[string]int),
	}
}

// AddMovie seeds a movie with its keywords. Popularity order follows
// insertion order.
func (m *MockProvider) AddMovie(details catalog.MovieDetails, keywords []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.movies = append(m.movies, seeded{details: details})
	m.keywords[details.ID] = keywords
}

func (m *MockProvider) SearchMovies(ctx context.Context, query string, page int, locale string) (*catalog.SearchPage, error) {
	m.recordCall("SearchMovies")

	if m.SearchMoviesFunc != nil {
		return m.SearchMoviesFunc(ctx, query, page, locale)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	needle := strings.ToLower(strings.TrimSpace(query))
	var results []catalog.MovieSummary
	for _, s := range m.movies {
		if needle == "" || m.matches(s.details, needle) {
			results = append(results, s.details.MovieSummary)
		}
	}

	return &catalog.SearchPage{
		Page:         1,
		TotalPages:   1,
		TotalResults: len(results),
		Results:      results,
	}, nil
}

func (m *MockProvider) GetMovieDetails(ctx context.Context, id int, locale string) (*catalog.MovieDetails, error) {
	m.recordCall("GetMovieDetails")

	if m.GetMovieDetailsFunc != nil {
		return m.GetMovieDetailsFunc(ctx, id, locale)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.movies {
		if s.details.ID == id {
			details := s.details
			return &details, nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (m *MockProvider) GetMovieKeywords(ctx context.Context, id int) ([]string, error) {
	m.recordCall("GetMovieKeywords")

	if m.GetMovieKeywordsFunc != nil {
		return m.GetMovieKeywordsFunc(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	keywords, ok := m.keywords[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return keywords, nil
}

func (m *MockProvider) GetPopularMovies(ctx context.Context, page int, locale string) (*catalog.SearchPage, error) {
	m.recordCall("GetPopularMovies")

	if m.GetPopularMoviesFunc != nil {
		return m.GetPopularMoviesFunc(ctx, page, locale)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var results []catalog.MovieSummary
	for _, s := range m.movies {
		results = append(results, s.details.MovieSummary)
	}
	return &catalog.SearchPage{
		Page:         1,
		TotalPages:   1,
		TotalResults: len(results),
		Results:      results,
	}, nil
}

func (m *MockProvider) matches(details catalog.MovieDetails, needle string) bool {
	if strings.Contains(strings.ToLower(details.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(details.Overview), needle) {
		return true
	}
	for _, kw := range m.keywords[details.ID] {
		if strings.Contains(strings.ToLower(kw), needle) {
			return true
		}
	}
	return false
}

func (m *MockProvider) recordCall(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount[method]++
}

// CallCount returns the number of calls made to the given method.
func (m *MockProvider) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount[method]
}

// Reset clears call counts and overrides; seeded movies are kept.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = make(map[string]int)
	m.SearchMoviesFunc = nil
	m.GetMovieDetailsFunc = nil
	m.GetMovieKeywordsFunc = nil
	m.GetPopularMoviesFunc = nil
}
