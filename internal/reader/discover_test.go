package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("stub"), 0o644))
}

func TestFindPDFs_SortedByName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "charlie.pdf")
	writeFile(t, dir, "alpha.pdf")
	writeFile(t, dir, "bravo.PDF")
	writeFile(t, dir, "notes.txt")

	files, total, err := FindPDFs(dir, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, files, 3)
	assert.Equal(t, "alpha.pdf", filepath.Base(files[0]))
	assert.Equal(t, "bravo.PDF", filepath.Base(files[1]))
	assert.Equal(t, "charlie.pdf", filepath.Base(files[2]))
}

func TestFindPDFs_CapsAtMaxDocs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		writeFile(t, dir, fmt.Sprintf("doc-%02d.pdf", i))
	}

	files, total, err := FindPDFs(dir, 10)
	require.NoError(t, err)
	assert.Equal(t, 12, total, "total reflects everything found")
	assert.Len(t, files, 10, "processing capped at the first 10")
}

func TestFindPDFs_EmptyDir(t *testing.T) {
	files, total, err := FindPDFs(t.TempDir(), 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, files)
}

func TestFindPDFs_MissingDir(t *testing.T) {
	_, _, err := FindPDFs(filepath.Join(t.TempDir(), "nope"), 10)
	require.Error(t, err)
}
