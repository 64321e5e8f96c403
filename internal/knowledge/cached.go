package knowledge

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
)

// CachedEmbedder wraps an Embedder with a persistent vector cache so that
// repeated runs over the same corpus skip re-embedding. Cache failures
// degrade to the inner embedder, never to an error.
type CachedEmbedder struct {
	inner Embedder
	cache VectorCache
	model string
}

func NewCachedEmbedder(inner Embedder, cache VectorCache, model string) *CachedEmbedder {
	return &CachedEmbedder{
		inner: inner,
		cache: cache,
		model: model,
	}
}

func (c *CachedEmbedder) Dimension() int {
	return c.inner.Dimension()
}

func (c *CachedEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	keys := make([]string, len(texts))
	for i, text := range texts {
		keys[i] = c.key(text)
	}

	hits, err := c.cache.Get(ctx, keys)
	if err != nil {
		log.Printf("embedding cache read failed: %v", err)
		hits = nil
	}

	out := make([][]float32, len(texts))
	var missTexts []string
	var missIdx []int
	for i, key := range keys {
		if vec, ok := hits[key]; ok {
			out[i] = vec
			continue
		}
		missTexts = append(missTexts, texts[i])
		missIdx = append(missIdx, i)
	}

	if len(missTexts) > 0 {
		vecs, err := c.inner.Embed(ctx, missTexts)
		if err != nil {
			return nil, err
		}
		if len(vecs) != len(missTexts) {
			return nil, fmt.Errorf("embedding count mismatch: got %d, expected %d", len(vecs), len(missTexts))
		}

		put := make(map[string][]float32, len(vecs))
		for i, vec := range vecs {
			out[missIdx[i]] = vec
			put[keys[missIdx[i]]] = vec
		}
		if err := c.cache.Put(ctx, put); err != nil {
			log.Printf("embedding cache write failed: %v", err)
		}
	}

	return out, nil
}

func (c *CachedEmbedder) key(text string) string {
	sum := sha256.Sum256([]byte(c.model + "\x00" + text))
	return hex.EncodeToString(sum[:])
}
