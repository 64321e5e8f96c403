package section

// Section is a titled span of text bounded by two heading lines, or by a
// heading and the end of its page.
type Section struct {
	Document     string  `json:"document"`
	PageNumber   int     `json:"page_number"`
	SectionTitle string  `json:"section_title"`
	Text         string  `json:"text"`
	Score        float64 `json:"score,omitempty"`
}

// Page is one page of reconstructed text lines.
type Page struct {
	Number int
	Lines  []string
}
