package mock

import (
	"context"
	"hash/fnv"
	"math"
)

// DefaultDim is the dimensionality of generated vectors when none is set.
const DefaultDim = 384

// MockEmbedder is a test double for ai.Embedder.
// With no funcs injected it derives a stable pseudo-embedding from the text,
// so the same profile text always lands on the same vector.
type MockEmbedder struct {
	// EmbedTextFunc overrides EmbedText when set.
	EmbedTextFunc func(ctx context.Context, text string) ([]float32, error)

	// EmbedTextsFunc overrides EmbedTexts when set.
	EmbedTextsFunc func(ctx context.Context, texts []string) ([][]float32, error)

	// Dim is the dimensionality of generated vectors. Zero means DefaultDim.
	Dim int

	callCount int
}

// NewMockEmbedder creates a mock embedder with default deterministic behavior.
// Note: Returns concrete type to allow test assertions via GetMockEmbedder().
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

// EmbedText returns the injected behavior, or a text-derived pseudo-embedding.
func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	m.callCount++

	if m.EmbedTextFunc != nil {
		return m.EmbedTextFunc(ctx, text)
	}
	return pseudoEmbedding(text, m.dim()), nil
}

// EmbedTexts returns the injected behavior, or one pseudo-embedding per text.
func (m *MockEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	m.callCount++

	if m.EmbedTextsFunc != nil {
		return m.EmbedTextsFunc(ctx, texts)
	}

	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		embeddings[i] = pseudoEmbedding(text, m.dim())
	}
	return embeddings, nil
}

// CallCount returns the number of times any method was called.
func (m *MockEmbedder) CallCount() int {
	return m.callCount
}

// Reset clears the call count and any injected behavior.
func (m *MockEmbedder) Reset() {
	m.callCount = 0
	m.EmbedTextFunc = nil
	m.EmbedTextsFunc = nil
}

func (m *MockEmbedder) dim() int {
	if m.Dim > 0 {
		return m.Dim
	}
	return DefaultDim
}

// pseudoEmbedding expands an FNV hash of the text into a unit vector, so
// distinct texts spread out while repeats collide exactly.
func pseudoEmbedding(text string, dim int) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()

	vector := make([]float32, dim)
	var sumSquares float64
	for i := range vector {
		seed = seed*1664525 + 1013904223 // LCG constants
		vector[i] = float32(seed%1000) / 1000.0
		sumSquares += float64(vector[i]) * float64(vector[i])
	}

	if sumSquares > 0 {
		norm := float32(1.0 / math.Sqrt(sumSquares))
		for i := range vector {
			vector[i] *= norm
		}
	}
	return vector
}
