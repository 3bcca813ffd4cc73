package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/poiesic/scenematch/core"
	"github.com/poiesic/scenematch/search"
)

// sceneSearcher is the part of the engine the HTTP server uses.
type sceneSearcher interface {
	SearchFilmsByScene(ctx context.Context, query, locale string) ([]core.FinalResult, error)
}

type server struct {
	searcher sceneSearcher
	logger   *slog.Logger
	mux      *http.ServeMux
}

func newServer(searcher sceneSearcher, logger *slog.Logger) *server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &server{
		searcher: searcher,
		logger:   logger.With("component", "http-server"),
		mux:      http.NewServeMux(),
	}
	s.mux.HandleFunc("/api/search", s.handleSearch)
	s.mux.HandleFunc("/health", s.handleHealth)
	return s
}

func (s *server) listenAndServe(addr string) error {
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s.mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return httpServer.ListenAndServe()
}

type searchRequest struct {
	Query  string `json:"query"`
	Locale string `json:"locale,omitempty"`
}

type searchResponse struct {
	Results []core.FinalResult `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var request searchRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	results, err := s.searcher.SearchFilmsByScene(r.Context(), request.Query, request.Locale)
	if err != nil {
		switch {
		case errors.Is(err, search.ErrEmptyQuery):
			s.writeError(w, http.StatusBadRequest, "query is required")
		case errors.Is(err, search.ErrCatalogUnavailable):
			s.writeError(w, http.StatusBadGateway, "movie catalog unavailable")
		default:
			s.logger.Error("search failed", "err", err)
			s.writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	if results == nil {
		results = []core.FinalResult{}
	}
	s.writeJSON(w, http.StatusOK, searchResponse{Results: results})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("error writing response", "err", err)
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}
