package scan

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m3da1/file-organizer/internal/classify"
	"github.com/m3da1/file-organizer/internal/testutil"
)

func TestScanClassifiesFiles(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFileOfSize("photo.png", 2048)
	f.CreateFileOfSize("notes.txt", 100)
	f.CreateFileOfSize("archive.zip", 512)
	f.CreateFileOfSize("script.py", 64)

	result, err := Scan(f.RootDir, false)
	require.NoError(t, err)
	require.Len(t, result.Files, 4)
	assert.Equal(t, int64(2048+100+512+64), result.TotalSize)

	byName := make(map[string]FileRecord)
	for _, rec := range result.Files {
		byName[filepath.Base(rec.Path)] = rec
	}

	assert.Equal(t, "image/png", byName["photo.png"].ContentType)
	assert.Equal(t, classify.Multimedia, byName["photo.png"].Category)
	assert.Equal(t, int64(2048), byName["photo.png"].Size)

	assert.Equal(t, "text/plain", byName["notes.txt"].ContentType)
	assert.Equal(t, classify.Docs, byName["notes.txt"].Category)

	assert.Equal(t, classify.Compressed, byName["archive.zip"].Category)
	assert.Equal(t, classify.Misc, byName["script.py"].Category)
}

func TestScanUndetectableContentType(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFileOfSize("README", 10)

	result, err := Scan(f.RootDir, false)
	require.NoError(t, err)
	require.Len(t, result.Files, 1)

	assert.Empty(t, result.Files[0].ContentType)
	assert.Equal(t, classify.Misc, result.Files[0].Category)
}

func TestScanEmptyDirectory(t *testing.T) {
	f := testutil.NewFixture(t)

	result, err := Scan(f.RootDir, false)
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.Zero(t, result.TotalSize)
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan("/nonexistent/path/12345", false)
	assert.Error(t, err)
}

func TestScanNonRecursiveIgnoresSubdirectories(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFileOfSize("top.txt", 10)
	f.CreateFileOfSize("sub/nested.txt", 20)

	result, err := Scan(f.RootDir, false)
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.Equal(t, "top.txt", filepath.Base(result.Files[0].Path))
}

func TestScanRecursiveDescends(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFileOfSize("top.txt", 10)
	f.CreateFileOfSize("sub/nested.txt", 20)
	f.CreateFileOfSize("sub/deeper/leaf.png", 30)

	result, err := Scan(f.RootDir, true)
	require.NoError(t, err)
	assert.Len(t, result.Files, 3)
}

func TestScanRecursiveSkipsCategoryDirectories(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFileOfSize("fresh.txt", 10)
	// Files organized by a prior run must not be scanned again.
	f.CreateFileOfSize("Misc/already-sorted.bin", 100)
	f.CreateFileOfSize("Docs/old-notes.txt", 100)
	f.CreateFileOfSize("Multimedia/old-photo.png", 100)
	f.CreateFileOfSize("Compressed/old.zip", 100)
	// A near-miss name is still descended into.
	f.CreateFileOfSize("Miscellaneous/keep.txt", 50)

	result, err := Scan(f.RootDir, true)
	require.NoError(t, err)
	require.Len(t, result.Files, 2)

	names := []string{
		filepath.Base(result.Files[0].Path),
		filepath.Base(result.Files[1].Path),
	}
	assert.ElementsMatch(t, []string{"fresh.txt", "keep.txt"}, names)
}

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{"png", "photo.png", "image/png"},
		{"jpg", "photo.jpg", "image/jpeg"},
		{"uppercase extension", "PHOTO.PNG", "image/png"},
		{"text", "notes.txt", "text/plain"},
		{"pdf", "report.pdf", "application/pdf"},
		{"zip", "backup.zip", "application/zip"},
		{"mkv", "movie.mkv", "video/x-matroska"},
		{"markdown", "readme.md", "text/markdown"},
		{"json", "data.json", "application/json"},
		{"no extension", "Makefile", ""},
		{"trailing dot", "weird.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectContentType(tt.file))
		})
	}
}

func TestGroupByCategory(t *testing.T) {
	result := &ScanResult{
		Files: []FileRecord{
			{Path: "a.png", Category: classify.Multimedia, Size: 100},
			{Path: "b.jpg", Category: classify.Multimedia, Size: 200},
			{Path: "c.txt", Category: classify.Docs, Size: 50},
		},
	}

	grouped := result.GroupByCategory()
	require.Len(t, grouped, len(classify.All()))

	assert.Len(t, grouped[classify.Multimedia].Files, 2)
	assert.Equal(t, int64(300), grouped[classify.Multimedia].TotalSize)
	assert.Len(t, grouped[classify.Docs].Files, 1)
	assert.Equal(t, int64(50), grouped[classify.Docs].TotalSize)

	// Categories without files are present with zero totals, never nil.
	require.NotNil(t, grouped[classify.Compressed])
	assert.Empty(t, grouped[classify.Compressed].Files)
	assert.Zero(t, grouped[classify.Compressed].TotalSize)
}

func TestGroupByCategoryEmpty(t *testing.T) {
	result := &ScanResult{}

	grouped := result.GroupByCategory()
	require.Len(t, grouped, len(classify.All()))
	for _, cat := range classify.All() {
		require.NotNil(t, grouped[cat])
		assert.Empty(t, grouped[cat].Files)
	}
}
