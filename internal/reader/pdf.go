package reader

import (
	"fmt"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"docsight/internal/section"
)

// Document is the per-page line content of one input file. Name is the
// basename of the source file, not its path.
type Document struct {
	Name  string
	Pages []section.Page
}

// PDFReader extracts per-page text lines from PDF files. It tries the Go
// library first, then falls back to pdftotext if available.
type PDFReader struct {
	FallbackPdftotext bool
}

func (r *PDFReader) Read(path string) (*Document, error) {
	doc, err := readWithLibrary(path)
	if err != nil && r.FallbackPdftotext {
		doc, err = readWithPdftotext(path)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}
	return doc, nil
}

func readWithLibrary(path string) (*Document, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc := &Document{Name: baseName(path)}
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		lines := []string(nil)
		if !page.V.IsNull() {
			rows, err := page.GetTextByRow()
			if err == nil {
				lines = rowsToLines(rows)
			}
		}
		doc.Pages = append(doc.Pages, section.Page{Number: i, Lines: lines})
	}
	return doc, nil
}

func rowsToLines(rows pdflib.Rows) []string {
	var lines []string
	for _, row := range rows {
		var sb strings.Builder
		for _, word := range row.Content {
			sb.WriteString(word.S)
		}
		line := strings.TrimSpace(sb.String())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func readWithPdftotext(path string) (*Document, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}

	doc := &Document{Name: baseName(path)}
	// Form feed is the page separator.
	for i, pageText := range strings.Split(string(out), "\f") {
		var lines []string
		for _, line := range strings.Split(pageText, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				lines = append(lines, line)
			}
		}
		doc.Pages = append(doc.Pages, section.Page{Number: i + 1, Lines: lines})
	}
	return doc, nil
}
