package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poiesic/scenematch/core"
)

func TestCanonicalize(t *testing.T) {
	t.Run("joins terms and appends original query", func(t *testing.T) {
		scene := core.SceneDescription{
			Entities:    []string{"ship", "iceberg"},
			Events:      []string{"sinking"},
			Environment: []string{"ocean"},
			Themes:      []string{"disaster"},
			TimeHint:    core.TimeHintHistorical,
		}

		got := Canonicalize(scene, "a ship hits an iceberg")
		assert.Equal(t, "ship iceberg sinking ocean disaster a ship hits an iceberg", got)
	})

	t.Run("translates turkish terms", func(t *testing.T) {
		scene := core.SceneDescription{
			Entities: []string{"gemi", "buzdağı"},
		}

		got := Canonicalize(scene, "gemi buzdağına çarpıyor")
		assert.Contains(t, got, "ship")
		assert.Contains(t, got, "iceberg")
	})

	t.Run("translates raw query terms the analyzer missed", func(t *testing.T) {
		got := Canonicalize(core.EmptyScene(), "gemi buzdağına çarptı")
		assert.Contains(t, got, "ship")
		assert.Contains(t, got, "iceberg")
		assert.Contains(t, got, "gemi buzdağına çarptı")
	})

	t.Run("raw query translations do not duplicate scene terms", func(t *testing.T) {
		scene := core.SceneDescription{Entities: []string{"ship"}}

		got := Canonicalize(scene, "gemi")
		assert.Equal(t, "ship gemi", got)
	})

	t.Run("deduplicates terms", func(t *testing.T) {
		scene := core.SceneDescription{
			Entities: []string{"ship", "gemi", "SHIP"},
		}

		got := Canonicalize(scene, "")
		assert.Equal(t, "ship", got)
	})

	t.Run("drops short fragments", func(t *testing.T) {
		scene := core.SceneDescription{
			Entities: []string{"it", "ax", "dragon"},
		}

		got := Canonicalize(scene, "")
		assert.Equal(t, "dragon", got)
	})

	t.Run("empty scene falls back to original query", func(t *testing.T) {
		got := Canonicalize(core.EmptyScene(), "  something weird  ")
		assert.Equal(t, "something weird", got)
	})

	t.Run("deterministic", func(t *testing.T) {
		scene := core.SceneDescription{
			Entities: []string{"clown", "balloon"},
			Events:   []string{"chase"},
		}
		first := Canonicalize(scene, "a clown chases a kid")
		second := Canonicalize(scene, "a clown chases a kid")
		assert.Equal(t, first, second)
	})
}
