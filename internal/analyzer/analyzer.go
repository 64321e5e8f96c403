package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"docsight/internal/config"
	"docsight/internal/rank"
	"docsight/internal/reader"
	"docsight/internal/refine"
	"docsight/internal/section"
)

const (
	// topRanked sections appear in the extracted_sections output list.
	topRanked = 20
	// topRefined of those are summarized into sub_section_analysis.
	topRefined = 10
)

// ErrNoSections signals that no document yielded any section, which fails the
// whole run.
var ErrNoSections = errors.New("no sections could be extracted from any document")

// DocumentReader yields per-page text lines for one input file.
type DocumentReader interface {
	Read(path string) (*reader.Document, error)
}

// Metadata describes one analysis run.
type Metadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// RankedSection is one entry of the extracted_sections output list.
type RankedSection struct {
	Document       string `json:"document"`
	PageNumber     int    `json:"page_number"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
}

// Result is the full analysis artifact.
type Result struct {
	Metadata           Metadata        `json:"metadata"`
	ExtractedSections  []RankedSection `json:"extracted_sections"`
	SubSectionAnalysis []refine.Result `json:"sub_section_analysis"`
}

// Analyzer wires the three pipeline stages together: extraction completes
// for all documents before ranking begins, ranking before refinement.
type Analyzer struct {
	reader  DocumentReader
	ranker  *rank.Ranker
	refiner *refine.Refiner
}

func New(docReader DocumentReader, ranker *rank.Ranker, refiner *refine.Refiner) *Analyzer {
	return &Analyzer{
		reader:  docReader,
		ranker:  ranker,
		refiner: refiner,
	}
}

// ProcessCollection runs extraction, ranking and refinement over the given
// document paths. A document that fails to open or parse is skipped with a
// diagnostic; zero sections across all documents is fatal.
func (a *Analyzer) ProcessCollection(ctx context.Context, paths []string, q config.Query) (*Result, error) {
	var all []section.Section
	names := make([]string, 0, len(paths))
	for _, path := range paths {
		name := filepath.Base(path)
		names = append(names, name)

		doc, err := a.reader.Read(path)
		if err != nil {
			log.Printf("analyzer: skipping %s: %v", name, err)
			continue
		}
		secs := section.Extract(doc.Name, doc.Pages)
		log.Printf("analyzer: %s: %d sections", name, len(secs))
		all = append(all, secs...)
	}
	if len(all) == 0 {
		return nil, ErrNoSections
	}

	ranked, err := a.ranker.Rank(ctx, all, q.Persona, q.JobToBeDone)
	if err != nil {
		return nil, fmt.Errorf("rank sections: %w", err)
	}

	top := ranked
	if len(top) > topRanked {
		top = top[:topRanked]
	}
	refineInput := top
	if len(refineInput) > topRefined {
		refineInput = refineInput[:topRefined]
	}
	sub := a.refiner.Refine(ctx, refineInput, q.Persona, q.JobToBeDone)
	if err := ctx.Err(); err != nil {
		// Interrupted mid-refinement: no partial output.
		return nil, err
	}

	result := &Result{
		Metadata: Metadata{
			InputDocuments:      names,
			Persona:             q.Persona,
			JobToBeDone:         q.JobToBeDone,
			ProcessingTimestamp: time.Now().Format(time.RFC3339),
		},
		ExtractedSections:  make([]RankedSection, 0, len(top)),
		SubSectionAnalysis: sub,
	}
	for i, sec := range top {
		result.ExtractedSections = append(result.ExtractedSections, RankedSection{
			Document:       sec.Document,
			PageNumber:     sec.PageNumber,
			SectionTitle:   sec.SectionTitle,
			ImportanceRank: i + 1,
		})
	}
	return result, nil
}
