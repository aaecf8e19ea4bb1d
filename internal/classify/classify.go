// Package classify maps detected content types to destination categories.
package classify

// Category is one of the fixed destination groupings. Its string value is
// also the name of the destination subfolder under the organized root.
type Category string

const (
	Multimedia Category = "Multimedia"
	Docs       Category = "Docs"
	Compressed Category = "Compressed"
	Misc       Category = "Misc"
)

// All lists every category in display order. The position of a category in
// this slice is its 1-based selection digit in the preview dashboard.
func All() []Category {
	return []Category{Multimedia, Docs, Compressed, Misc}
}

// String returns the category's folder name.
func (c Category) String() string {
	return string(c)
}

// IsCategoryDir reports whether name exactly matches a category folder name.
// The scanner uses this to avoid re-scanning folders created by a prior run.
func IsCategoryDir(name string) bool {
	switch Category(name) {
	case Multimedia, Docs, Compressed, Misc:
		return true
	}
	return false
}

// categoryTable maps known content-type strings to categories. Matching is
// case-sensitive and exact: no wildcards, no prefix rules. Anything absent
// falls back to Misc.
var categoryTable = map[string]Category{
	// Images
	"image/png":     Multimedia,
	"image/jpeg":    Multimedia,
	"image/jpg":     Multimedia,
	"image/gif":     Multimedia,
	"image/webp":    Multimedia,
	"image/svg+xml": Multimedia,
	"image/bmp":     Multimedia,
	"image/tiff":    Multimedia,
	"image/x-icon":  Multimedia,

	// Audio
	"audio/mpeg":  Multimedia,
	"audio/ogg":   Multimedia,
	"audio/wav":   Multimedia,
	"audio/webm":  Multimedia,
	"audio/aac":   Multimedia,
	"audio/flac":  Multimedia,
	"audio/x-m4a": Multimedia,

	// Video
	"video/mp4":        Multimedia,
	"video/mpeg":       Multimedia,
	"video/ogg":        Multimedia,
	"video/webm":       Multimedia,
	"video/x-msvideo":  Multimedia,
	"video/x-matroska": Multimedia,
	"video/quicktime":  Multimedia,

	// Archives
	"application/zip":               Compressed,
	"application/x-rar-compressed":  Compressed,
	"application/x-7z-compressed":   Compressed,
	"application/gzip":              Compressed,
	"application/x-tar":             Compressed,
	"application/x-bzip":            Compressed,
	"application/x-bzip2":           Compressed,
	"application/x-xz":              Compressed,

	// Documents
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         Docs,
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": Docs,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   Docs,
	"application/vnd.ms-excel":      Docs,
	"application/vnd.ms-powerpoint": Docs,
	"application/msword":            Docs,
	"application/pdf":               Docs,
	"text/html":                     Docs,
	"text/csv":                      Docs,
	"text/xml":                      Docs,
	"application/xml":               Docs,
	"text/plain":                    Docs,
	"text/markdown":                 Docs,
	"application/rtf":               Docs,

	// Code and machine-oriented text land in Misc
	"text/css":               Misc,
	"application/json":       Misc,
	"text/x-python":          Misc,
	"text/x-java":            Misc,
	"text/x-c":               Misc,
	"text/x-c++":             Misc,
	"text/x-rust":            Misc,
	"text/javascript":        Misc,
	"application/javascript": Misc,
	"application/typescript": Misc,
	"text/x-go":              Misc,
	"text/x-php":             Misc,
	"text/x-ruby":            Misc,
	"text/x-shellscript":     Misc,
}

// CategoryFor returns the category for a detected content type. An empty
// contentType means the type could not be detected; both that case and any
// unmapped type fall back to Misc.
func CategoryFor(contentType string) Category {
	if contentType == "" {
		return Misc
	}
	if cat, ok := categoryTable[contentType]; ok {
		return cat
	}
	return Misc
}

// KnownTypes returns every content type in the table. Exposed so tests can
// assert the mapping exhaustively without duplicating the table.
func KnownTypes() []string {
	types := make([]string, 0, len(categoryTable))
	for ct := range categoryTable {
		types = append(types, ct)
	}
	return types
}
