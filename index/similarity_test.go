package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors", func(t *testing.T) {
		v := []float32{0.5, 0.3, 0.2}
		assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-6)
	})

	t.Run("orthogonal vectors", func(t *testing.T) {
		a := []float32{1, 0}
		b := []float32{0, 1}
		assert.InDelta(t, 0.0, CosineSimilarity(a, b), 1e-6)
	})

	t.Run("opposite vectors", func(t *testing.T) {
		a := []float32{1, 0}
		b := []float32{-1, 0}
		assert.InDelta(t, -1.0, CosineSimilarity(a, b), 1e-6)
	})

	t.Run("magnitude invariant", func(t *testing.T) {
		a := []float32{1, 2, 3}
		b := []float32{10, 20, 30}
		assert.InDelta(t, 1.0, CosineSimilarity(a, b), 1e-6)
	})

	t.Run("length mismatch returns zero", func(t *testing.T) {
		assert.Equal(t, float32(0), CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3}))
	})

	t.Run("zero vector returns zero", func(t *testing.T) {
		assert.Equal(t, float32(0), CosineSimilarity([]float32{0, 0}, []float32{1, 1}))
	})

	t.Run("empty vectors return zero", func(t *testing.T) {
		assert.Equal(t, float32(0), CosineSimilarity(nil, nil))
	})
}
