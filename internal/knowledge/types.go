package knowledge

import (
	"context"
)

// Embedder defines the interface for converting text to vectors.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Dimension() int
}

// Summarizer defines the interface for bounded-length abstractive
// summarization. Implementations must generate deterministically and keep the
// output between minTokens and maxTokens of the provider's own unit.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string, minTokens, maxTokens int) (string, error)
}

// VectorCache persists embeddings across runs, keyed by content hash.
type VectorCache interface {
	Get(ctx context.Context, keys []string) (map[string][]float32, error)
	Put(ctx context.Context, vectors map[string][]float32) error
}
