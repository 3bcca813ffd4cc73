package catalog

import "context"

// Provider is the read-only movie catalog the pipeline consumes.
// Implementations must be thread-safe for concurrent use.
type Provider interface {
	// SearchMovies runs a free-text title/content search against the catalog.
	// locale selects result language ("en-US" style); empty means the
	// provider default.
	SearchMovies(ctx context.Context, query string, page int, locale string) (*SearchPage, error)

	// GetMovieDetails fetches the full record for one catalog entry.
	GetMovieDetails(ctx context.Context, id int, locale string) (*MovieDetails, error)

	// GetMovieKeywords fetches the externally curated tag set for one entry.
	GetMovieKeywords(ctx context.Context, id int) ([]string, error)

	// GetPopularMovies lists globally popular entries, most popular first.
	GetPopularMovies(ctx context.Context, page int, locale string) (*SearchPage, error)
}

// MovieSummary is one row of a catalog listing.
type MovieSummary struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
}

// SearchPage is one page of catalog listing results.
type SearchPage struct {
	Page         int            `json:"page"`
	Results      []MovieSummary `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// MovieDetails is the full catalog record for one movie.
type MovieDetails struct {
	MovieSummary
	Tagline string  `json:"tagline"`
	Runtime int     `json:"runtime"`
	Genres  []Genre `json:"genres"`
}

// Genre is a catalog genre label.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
