package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosterURL(t *testing.T) {
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/abc.jpg", PosterURL("/abc.jpg"))
	assert.Equal(t, placeholderPoster, PosterURL(""))
}

func TestBackdropURL(t *testing.T) {
	assert.Equal(t, "https://image.tmdb.org/t/p/w1280/abc.jpg", BackdropURL("/abc.jpg"))
	assert.Equal(t, "", BackdropURL(""))
}
