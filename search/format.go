package search

import (
	"context"
	"log/slog"
	"math"

	"github.com/poiesic/scenematch/catalog"
	"github.com/poiesic/scenematch/core"
)

const (
	defaultDescription = "No description available."
	defaultExplanation = "Matched based on scene description"
)

// Formatter converts scored movies into presentation-ready results,
// enriching them with artwork and ratings from the catalog.
type Formatter struct {
	catalog catalog.Provider
	logger  *slog.Logger
}

// NewFormatter creates a formatter.
func NewFormatter(provider catalog.Provider, logger *slog.Logger) *Formatter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Formatter{
		catalog: provider,
		logger:  logger.With("component", "formatter"),
	}
}

// Format builds final results. Detail lookups are best-effort; a failed
// lookup falls back to placeholder artwork.
func (f *Formatter) Format(ctx context.Context, scored []core.ScoredMovie, locale string) []core.FinalResult {
	results := make([]core.FinalResult, 0, len(scored))

	for _, movie := range scored {
		result := core.FinalResult{
			ID:          movie.Movie.ID,
			Title:       movie.Movie.Title,
			Year:        core.YearFromDate(movie.Movie.ReleaseDate),
			Description: movie.Movie.Overview,
			MatchScore:  matchScore(movie.EmbeddingScore),
			Explanation: movie.Explanation,
		}

		if result.Description == "" {
			result.Description = defaultDescription
		}
		if result.Explanation == "" {
			result.Explanation = defaultExplanation
		}

		details, err := f.catalog.GetMovieDetails(ctx, movie.Movie.ID, locale)
		if err != nil {
			f.logger.Debug("detail lookup failed", "movieID", movie.Movie.ID, "err", err)
			result.PosterURL = catalog.PosterURL("")
		} else {
			result.PosterURL = catalog.PosterURL(details.PosterPath)
			result.BackdropURL = catalog.BackdropURL(details.BackdropPath)
			result.VoteAverage = details.VoteAverage
		}

		results = append(results, result)
	}

	return results
}

// matchScore maps a similarity in [0, 1] to a percentage, clamped.
func matchScore(score float64) int {
	percent := int(math.Round(score * 100))
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
