package section

import (
	"strings"
	"testing"
)

func TestIsHeading_NumberedPatterns(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"2.1 Results", true},
		{"1 Overview", true},
		{"1. Introduction", true},
		{"2.3.1) Experimental Setup", true},
		{"10.2.4 deeply nested heading", true},
		{"3.", false},   // no text after the prefix
		{"1.2", false},  // bare number
		{"v1.2 release notes", false}, // prefix is not a bare number
	}
	for _, tc := range cases {
		if got := IsHeading(tc.line); got != tc.want {
			t.Errorf("IsHeading(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestIsHeading_TitleCase(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"Background", true},
		{"Future Work And Open Problems", true},
		{"this is not a heading at all because it is far too long to qualify under the title case rule", false},
		{"Ab", false},          // too short
		{"plain lowercase line", false},
		{"MIXED case Line", false},
		{"", false},
		{"   ", false},
		{strings.Repeat("Very Long Title ", 6), false}, // over 80 chars
	}
	for _, tc := range cases {
		if got := IsHeading(tc.line); got != tc.want {
			t.Errorf("IsHeading(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestExtract_NoHeadingsYieldsNoSections(t *testing.T) {
	pages := []Page{
		{Number: 1, Lines: []string{"just some body text", "and another line of it"}},
	}
	if got := Extract("doc.pdf", pages); len(got) != 0 {
		t.Fatalf("expected no sections, got %d", len(got))
	}
}

func TestExtract_BodySpansUntilNextHeading(t *testing.T) {
	pages := []Page{
		{Number: 1, Lines: []string{
			"1. Introduction",
			"first body line",
			"second body line",
			"2. Methods",
			"methods body",
		}},
	}
	secs := Extract("doc.pdf", pages)
	if len(secs) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(secs))
	}
	if secs[0].SectionTitle != "1. Introduction" {
		t.Errorf("unexpected title %q", secs[0].SectionTitle)
	}
	if secs[0].Text != "first body line second body line" {
		t.Errorf("unexpected body %q", secs[0].Text)
	}
	if secs[1].Text != "methods body" {
		t.Errorf("unexpected body %q", secs[1].Text)
	}
	if secs[0].Document != "doc.pdf" || secs[0].PageNumber != 1 {
		t.Errorf("unexpected provenance %q page %d", secs[0].Document, secs[0].PageNumber)
	}
}

func TestExtract_HeadingAsLastLineHasEmptyBody(t *testing.T) {
	pages := []Page{
		{Number: 3, Lines: []string{"some body text without any heading shape", "4. Conclusion"}},
	}
	secs := Extract("doc.pdf", pages)
	if len(secs) != 1 {
		t.Fatalf("expected 1 section, got %d", len(secs))
	}
	if secs[0].Text != "" {
		t.Errorf("expected empty body, got %q", secs[0].Text)
	}
}

func TestExtract_DuplicateTitlesOnPageFirstWins(t *testing.T) {
	pages := []Page{
		{Number: 1, Lines: []string{
			"1. Results",
			"first occurrence body",
			"1. Results",
			"second occurrence body",
		}},
	}
	secs := Extract("doc.pdf", pages)
	if len(secs) != 1 {
		t.Fatalf("expected duplicate title suppressed, got %d sections", len(secs))
	}
	if secs[0].Text != "first occurrence body" {
		t.Errorf("expected first occurrence retained, got body %q", secs[0].Text)
	}
}

func TestExtract_DuplicateTitlesAcrossPagesKept(t *testing.T) {
	pages := []Page{
		{Number: 1, Lines: []string{"1. Results", "page one body"}},
		{Number: 2, Lines: []string{"1. Results", "page two body"}},
	}
	secs := Extract("doc.pdf", pages)
	if len(secs) != 2 {
		t.Fatalf("dedup must be per page, got %d sections", len(secs))
	}
}

func TestExtract_BodyCappedAt500Chars(t *testing.T) {
	long := strings.Repeat("abcde ", 200) // 1200 chars
	pages := []Page{
		{Number: 1, Lines: []string{"1. Introduction", long}},
	}
	secs := Extract("doc.pdf", pages)
	if len(secs) != 1 {
		t.Fatalf("expected 1 section, got %d", len(secs))
	}
	if n := len([]rune(secs[0].Text)); n != 500 {
		t.Errorf("expected body capped at 500 chars, got %d", n)
	}
}
