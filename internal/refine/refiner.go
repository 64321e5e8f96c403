package refine

import (
	"context"
	"fmt"
	"log"
	"strings"

	"docsight/internal/knowledge"
	"docsight/internal/section"
)

const (
	minContentChars = 10
	maxContentChars = 1000
	summaryMinUnits = 40
	summaryMaxUnits = 160
)

// Result is one refined sub-section.
type Result struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"`
}

// Refiner produces bounded-length summaries of top-ranked sections.
type Refiner struct {
	summarizer knowledge.Summarizer
}

func NewRefiner(summarizer knowledge.Summarizer) *Refiner {
	return &Refiner{summarizer: summarizer}
}

type dedupKey struct {
	document string
	page     int
	text     string
}

// Refine summarizes each section in the persona/job context. Sections with
// near-empty bodies are skipped, duplicate (document, page, text) entries are
// suppressed within this call, and a failure on one section never aborts the
// batch. The dedup set lives exactly as long as one invocation.
func (r *Refiner) Refine(ctx context.Context, sections []section.Section, persona, job string) []Result {
	preamble := fmt.Sprintf(
		"You are assisting a persona: %s. The task is: %s. Summarize the section focusing on what's most relevant.",
		persona, job,
	)

	seen := make(map[dedupKey]struct{}, len(sections))
	results := make([]Result, 0, len(sections))
	for _, sec := range sections {
		if ctx.Err() != nil {
			break
		}

		content := strings.TrimSpace(sec.Text)
		if len([]rune(content)) < minContentChars {
			continue
		}

		key := dedupKey{document: sec.Document, page: sec.PageNumber, text: content}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		content = truncateAtSentence(content, maxContentChars)

		summary, err := r.summarizer.Summarize(ctx, preamble+"\n\n"+content, summaryMinUnits, summaryMaxUnits)
		if err != nil {
			log.Printf("refine: skipping section %q of %s page %d: %v", sec.SectionTitle, sec.Document, sec.PageNumber, err)
			continue
		}

		results = append(results, Result{
			Document:    sec.Document,
			RefinedText: strings.TrimSpace(summary),
			PageNumber:  sec.PageNumber,
		})
	}
	return results
}

// truncateAtSentence cuts content to at most limit characters, trimming back
// to the last full sentence inside the window when one exists.
func truncateAtSentence(content string, limit int) string {
	runes := []rune(content)
	if len(runes) <= limit {
		return content
	}
	window := string(runes[:limit])
	idx := strings.LastIndex(window, ".")
	if idx <= 0 {
		// No sentence boundary (or nothing before it): raw cut.
		return window
	}
	return window[:idx] + "."
}
