package rank

import (
	"context"
	"fmt"
	"math"
	"sort"

	"docsight/internal/knowledge"
	"docsight/internal/section"
)

// Ranker orders sections by semantic relevance to a persona and the job they
// are trying to get done.
type Ranker struct {
	embedder knowledge.Embedder
}

func NewRanker(embedder knowledge.Embedder) *Ranker {
	return &Ranker{embedder: embedder}
}

// Rank scores every section against the persona/job query and returns the
// full list sorted by score descending. Equal scores keep their input order.
// No section is dropped; top-N truncation is caller policy.
func (r *Ranker) Rank(ctx context.Context, sections []section.Section, persona, job string) ([]section.Section, error) {
	if len(sections) == 0 {
		return []section.Section{}, nil
	}

	query := fmt.Sprintf("Persona: %s. Job: %s.", persona, job)
	texts := make([]string, 0, len(sections)+1)
	texts = append(texts, query)
	for _, sec := range sections {
		texts = append(texts, sec.SectionTitle+" "+sec.Text)
	}

	vectors, err := r.embedder.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed sections: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d, expected %d", len(vectors), len(texts))
	}

	queryVec := vectors[0]
	ranked := make([]section.Section, len(sections))
	copy(ranked, sections)
	for i := range ranked {
		ranked[i].Score = float64(CosineSimilarity(queryVec, vectors[i+1]))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked, nil
}

// CosineSimilarity returns the cosine of the angle between two vectors, or 0
// when either vector is empty, zero, or of mismatched length.
func CosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, magA, magB float32
	for i := 0; i < len(a); i++ {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (float32(math.Sqrt(float64(magA))) * float32(math.Sqrt(float64(magB))))
}
