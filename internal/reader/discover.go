package reader

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindPDFs lists the PDF files in dir sorted by name, capped at maxDocs when
// maxDocs is positive. It returns the capped list alongside the total number
// found so the caller can warn about the overflow.
func FindPDFs(dir string, maxDocs int) ([]string, int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)

	total := len(files)
	if maxDocs > 0 && len(files) > maxDocs {
		files = files[:maxDocs]
	}
	return files, total, nil
}

func baseName(path string) string {
	return filepath.Base(path)
}
