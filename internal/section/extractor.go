package section

import (
	"regexp"
	"strings"
	"unicode"
)

// maxBodyChars caps section body text before downstream scoring.
const maxBodyChars = 500

// Title-case candidates must have a stripped length strictly inside this range.
const (
	minTitleLen = 4
	maxTitleLen = 80
)

// numberedHeading matches lines like "1 Overview", "1.2 Methods" or
// "2.3.1) Results": dot-separated integers, an optional ')' or '.', then text.
var numberedHeading = regexp.MustCompile(`^\d+(\.\d+)*[.)]?\s+\S`)

// IsHeading reports whether a raw line looks like a section heading. A line
// qualifies when it carries a numbered prefix or when it is title-cased and
// of plausible heading length.
func IsHeading(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" {
		return false
	}
	if numberedHeading.MatchString(s) {
		return true
	}
	n := len([]rune(s))
	return n > minTitleLen && n < maxTitleLen && isTitleCase(s)
}

// isTitleCase reports whether every word starts with an upper- or title-case
// letter and continues in lowercase. Lines without any cased letter do not
// qualify.
func isTitleCase(s string) bool {
	cased := false
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			cased = true
			prevCased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			cased = true
		default:
			prevCased = false
		}
	}
	return cased
}

// Extract segments every page of a document into sections. A page with no
// heading lines contributes no sections; duplicate titles on the same page
// are suppressed, first occurrence wins.
func Extract(document string, pages []Page) []Section {
	var sections []Section
	for _, page := range pages {
		sections = append(sections, extractPage(document, page)...)
	}
	return sections
}

func extractPage(document string, page Page) []Section {
	var headings []int
	for i, line := range page.Lines {
		if IsHeading(line) {
			headings = append(headings, i)
		}
	}
	if len(headings) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(headings))
	var sections []Section
	for h, idx := range headings {
		title := strings.TrimSpace(page.Lines[idx])
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}

		end := len(page.Lines)
		if h+1 < len(headings) {
			end = headings[h+1]
		}
		body := strings.Join(page.Lines[idx+1:end], " ")

		sections = append(sections, Section{
			Document:     document,
			PageNumber:   page.Number,
			SectionTitle: title,
			Text:         truncateRunes(body, maxBodyChars),
		})
	}
	return sections
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
