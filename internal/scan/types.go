package scan

import "github.com/m3da1/file-organizer/internal/classify"

// FileRecord describes a single file found during scanning. Records are
// immutable once produced: the move engine only reads them.
type FileRecord struct {
	Path        string
	ContentType string // lowercase MIME string, empty when undetectable
	Category    classify.Category
	Size        int64
}

// ScanResult is the aggregate outcome of a scan.
type ScanResult struct {
	Root      string
	Files     []FileRecord
	TotalSize int64
	Errors    []error // unreadable subdirectories, skipped entries
}

// CategoryTotal holds the per-category slice of a scan result.
type CategoryTotal struct {
	Files     []FileRecord
	TotalSize int64
}

// GroupByCategory groups the scanned files by destination category. Every
// category is present in the result, empty ones included, so callers can
// render the full category list without nil checks.
func (r *ScanResult) GroupByCategory() map[classify.Category]*CategoryTotal {
	grouped := make(map[classify.Category]*CategoryTotal, len(classify.All()))
	for _, cat := range classify.All() {
		grouped[cat] = &CategoryTotal{}
	}

	for _, file := range r.Files {
		total := grouped[file.Category]
		total.Files = append(total.Files, file)
		total.TotalSize += file.Size
	}

	return grouped
}
