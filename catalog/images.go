package catalog

const (
	posterBaseURL   = "https://image.tmdb.org/t/p/w500"
	backdropBaseURL = "https://image.tmdb.org/t/p/w1280"

	placeholderPoster   = "https://via.placeholder.com/500x750?text=No+Poster"
	placeholderBackdrop = "https://via.placeholder.com/1280x720?text=No+Image"
)

// PosterURL resolves a catalog poster path to a full image URL,
// substituting a placeholder when the catalog has no poster.
func PosterURL(posterPath string) string {
	if posterPath == "" {
		return placeholderPoster
	}
	return posterBaseURL + posterPath
}

// BackdropURL resolves a catalog backdrop path to a full image URL.
// Unlike posters, a missing backdrop resolves to empty: results render
// fine without one.
func BackdropURL(backdropPath string) string {
	if backdropPath == "" {
		return ""
	}
	return backdropBaseURL + backdropPath
}
