package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/scenematch/catalog"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{})
	assert.ErrorIs(t, err, catalog.ErrMissingAPIKey)

	_, err = NewClient(Config{APIKey: "   "})
	assert.ErrorIs(t, err, catalog.ErrMissingAPIKey)
}

func TestSearchMovies(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "titanic", r.URL.Query().Get("query"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"page": 1,
			"total_pages": 1,
			"total_results": 1,
			"results": [{
				"id": 597,
				"title": "Titanic",
				"overview": "A ship sinks.",
				"release_date": "1997-11-18",
				"poster_path": "/poster.jpg",
				"vote_average": 7.9,
				"vote_count": 24000
			}]
		}`))
	})

	page, err := client.SearchMovies(context.Background(), "titanic", 0, "")
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, 597, page.Results[0].ID)
	assert.Equal(t, "Titanic", page.Results[0].Title)
	assert.Equal(t, 24000, page.Results[0].VoteCount)
}

func TestSearchMovies_LocaleOverride(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tr-TR", r.URL.Query().Get("language"))
		w.Write([]byte(`{"page":1,"results":[]}`))
	})

	_, err := client.SearchMovies(context.Background(), "gemi", 1, "tr-TR")
	require.NoError(t, err)
}

func TestGetMovieDetails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/597", r.URL.Path)
		w.Write([]byte(`{
			"id": 597,
			"title": "Titanic",
			"poster_path": "/poster.jpg",
			"backdrop_path": "/backdrop.jpg",
			"vote_average": 7.9,
			"runtime": 194
		}`))
	})

	details, err := client.GetMovieDetails(context.Background(), 597, "")
	require.NoError(t, err)
	assert.Equal(t, "Titanic", details.Title)
	assert.Equal(t, "/backdrop.jpg", details.BackdropPath)
	assert.Equal(t, 194, details.Runtime)
}

func TestGetMovieDetails_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetMovieDetails(context.Background(), 999999, "")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestGetMovieKeywords(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/597/keywords", r.URL.Path)
		w.Write([]byte(`{"id":597,"keywords":[{"id":1,"name":"shipwreck"},{"id":2,"name":"iceberg"}]}`))
	})

	keywords, err := client.GetMovieKeywords(context.Background(), 597)
	require.NoError(t, err)
	assert.Equal(t, []string{"shipwreck", "iceberg"}, keywords)
}

func TestGetPopularMovies(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/popular", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Write([]byte(`{"page":2,"results":[{"id":1,"title":"Popular Movie"}]}`))
	})

	page, err := client.GetPopularMovies(context.Background(), 2, "")
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Popular Movie", page.Results[0].Title)
}

func TestGet_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	})

	_, err := client.SearchMovies(context.Background(), "titanic", 1, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.NotErrorIs(t, err, catalog.ErrNotFound)
}

func TestGet_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := client.SearchMovies(context.Background(), "titanic", 1, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestGet_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"page":1,"results":[]}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.SearchMovies(ctx, "titanic", 1, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
