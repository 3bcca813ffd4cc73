package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/scenematch/core"
	"github.com/poiesic/scenematch/search"
)

type stubSearcher struct {
	results []core.FinalResult
	err     error
}

func (s *stubSearcher) SearchFilmsByScene(ctx context.Context, query, locale string) ([]core.FinalResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	if strings.TrimSpace(query) == "" {
		return nil, search.ErrEmptyQuery
	}
	return s.results, nil
}

func TestHandleSearch(t *testing.T) {
	stub := &stubSearcher{results: []core.FinalResult{{
		ID:         597,
		Title:      "Titanic",
		Year:       1997,
		MatchScore: 87,
	}}}
	srv := newServer(stub, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/search",
		strings.NewReader(`{"query":"a ship hits an iceberg"}`))
	rec := httptest.NewRecorder()
	srv.mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"Titanic"`)
	assert.Contains(t, rec.Body.String(), `"matchScore":87`)
}

func TestHandleSearch_EmptyQuery(t *testing.T) {
	srv := newServer(&stubSearcher{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/search",
		strings.NewReader(`{"query":"  "}`))
	rec := httptest.NewRecorder()
	srv.mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSearch_BadBody(t *testing.T) {
	srv := newServer(&stubSearcher{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/search",
		strings.NewReader(`not json`))
	rec := httptest.NewRecorder()
	srv.mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSearch_MethodNotAllowed(t *testing.T) {
	srv := newServer(&stubSearcher{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	rec := httptest.NewRecorder()
	srv.mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleSearch_CatalogUnavailable(t *testing.T) {
	srv := newServer(&stubSearcher{err: search.ErrCatalogUnavailable}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/search",
		strings.NewReader(`{"query":"something"}`))
	rec := httptest.NewRecorder()
	srv.mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleSearch_EmptyResults(t *testing.T) {
	srv := newServer(&stubSearcher{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/search",
		strings.NewReader(`{"query":"nothing matches this"}`))
	rec := httptest.NewRecorder()
	srv.mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"results":[]}`, rec.Body.String())
}

func TestHandleHealth(t *testing.T) {
	srv := newServer(&stubSearcher{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
