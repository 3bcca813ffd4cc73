// Package tmdb implements catalog.Provider against The Movie Database v3 API.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/poiesic/scenematch/catalog"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	defaultLocale  = "en-US"

	// Responses are bounded reads; a listing page is well under this.
	maxResponseBytes = 512 * 1024
)

// Client is a TMDB HTTP client implementing catalog.Provider.
type Client struct {
	apiKey  string
	baseURL string
	locale  string
	http    *http.Client
	logger  *slog.Logger
}

var _ catalog.Provider = (*Client)(nil)

// Config holds TMDB client construction parameters.
type Config struct {
	// APIKey is the TMDB v3 API key. Required.
	APIKey string
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string
	// Locale is the default result language, e.g. "en-US" or "tr-TR".
	Locale string
	// Client overrides the HTTP client; the default carries a 30s timeout.
	Client *http.Client
}

// NewClient creates a TMDB catalog client.
func NewClient(cfg Config) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, catalog.ErrMissingAPIKey
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	locale := strings.TrimSpace(cfg.Locale)
	if locale == "" {
		locale = defaultLocale
	}

	httpClient := cfg.Client
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		locale:  locale,
		http:    httpClient,
		logger:  slog.Default().With("component", "tmdb-client"),
	}, nil
}

// SearchMovies runs TMDB /search/movie.
func (c *Client) SearchMovies(ctx context.Context, query string, page int, locale string) (*catalog.SearchPage, error) {
	params := url.Values{
		"api_key":  {c.apiKey},
		"query":    {strings.TrimSpace(query)},
		"page":     {fmt.Sprintf("%d", normalizePage(page))},
		"language": {c.resolveLocale(locale)},
	}

	var response catalog.SearchPage
	if err := c.get(ctx, "/search/movie", params, &response); err != nil {
		return nil, fmt.Errorf("tmdb search: %w", err)
	}
	return &response, nil
}

// GetMovieDetails runs TMDB /movie/{id}.
func (c *Client) GetMovieDetails(ctx context.Context, id int, locale string) (*catalog.MovieDetails, error) {
	params := url.Values{
		"api_key":  {c.apiKey},
		"language": {c.resolveLocale(locale)},
	}

	var details catalog.MovieDetails
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", id), params, &details); err != nil {
		return nil, fmt.Errorf("tmdb details for %d: %w", id, err)
	}
	return &details, nil
}

// keywordsResponse matches TMDB /movie/{id}/keywords.
type keywordsResponse struct {
	Keywords []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"keywords"`
}

// GetMovieKeywords runs TMDB /movie/{id}/keywords and flattens the names.
func (c *Client) GetMovieKeywords(ctx context.Context, id int) ([]string, error) {
	params := url.Values{"api_key": {c.apiKey}}

	var response keywordsResponse
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/keywords", id), params, &response); err != nil {
		return nil, fmt.Errorf("tmdb keywords for %d: %w", id, err)
	}

	keywords := make([]string, 0, len(response.Keywords))
	for _, kw := range response.Keywords {
		keywords = append(keywords, kw.Name)
	}
	return keywords, nil
}

// GetPopularMovies runs TMDB /movie/popular.
func (c *Client) GetPopularMovies(ctx context.Context, page int, locale string) (*catalog.SearchPage, error) {
	params := url.Values{
		"api_key":  {c.apiKey},
		"page":     {fmt.Sprintf("%d", normalizePage(page))},
		"language": {c.resolveLocale(locale)},
	}

	var response catalog.SearchPage
	if err := c.get(ctx, "/movie/popular", params, &response); err != nil {
		return nil, fmt.Errorf("tmdb popular: %w", err)
	}
	return &response, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return catalog.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("tmdb HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) resolveLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return c.locale
	}
	return locale
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
