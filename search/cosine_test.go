package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors", func(t *testing.T) {
		v := []float32{0.5, 0.5, 0.7}
		assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9)
	})

	t.Run("orthogonal vectors", func(t *testing.T) {
		a := []float32{1, 0}
		b := []float32{0, 1}
		assert.InDelta(t, 0.0, CosineSimilarity(a, b), 1e-9)
	})

	t.Run("opposite vectors", func(t *testing.T) {
		a := []float32{1, 0}
		b := []float32{-1, 0}
		assert.InDelta(t, -1.0, CosineSimilarity(a, b), 1e-9)
	})

	t.Run("empty vectors", func(t *testing.T) {
		assert.Zero(t, CosineSimilarity(nil, []float32{1, 2}))
		assert.Zero(t, CosineSimilarity([]float32{1, 2}, nil))
		assert.Zero(t, CosineSimilarity(nil, nil))
	})

	t.Run("mismatched lengths", func(t *testing.T) {
		assert.Zero(t, CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3}))
	})

	t.Run("zero magnitude", func(t *testing.T) {
		assert.Zero(t, CosineSimilarity([]float32{0, 0}, []float32{1, 2}))
	})

	t.Run("symmetric", func(t *testing.T) {
		a := []float32{0.2, 0.8, 0.1}
		b := []float32{0.6, 0.3, 0.9}
		assert.Equal(t, CosineSimilarity(a, b), CosineSimilarity(b, a))
	})
}
