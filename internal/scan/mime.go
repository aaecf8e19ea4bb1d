package scan

import (
	"mime"
	"path/filepath"
	"strings"
)

// extensionTypes maps file extensions to content types. The table is the
// source of truth for the formats this tool organizes; it is consulted before
// the platform mime database so detection is identical on every OS.
var extensionTypes = map[string]string{
	// Images
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".ico":  "image/x-icon",

	// Audio
	".mp3":  "audio/mpeg",
	".oga":  "audio/ogg",
	".ogg":  "audio/ogg",
	".wav":  "audio/wav",
	".aac":  "audio/aac",
	".flac": "audio/flac",
	".m4a":  "audio/x-m4a",

	// Video
	".mp4":  "video/mp4",
	".mpeg": "video/mpeg",
	".mpg":  "video/mpeg",
	".ogv":  "video/ogg",
	".webm": "video/webm",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
	".mov":  "video/quicktime",

	// Archives
	".zip": "application/zip",
	".rar": "application/x-rar-compressed",
	".7z":  "application/x-7z-compressed",
	".gz":  "application/gzip",
	".tar": "application/x-tar",
	".bz":  "application/x-bzip",
	".bz2": "application/x-bzip2",
	".xz":  "application/x-xz",

	// Documents
	".xlsx":     "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".pptx":     "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".docx":     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":      "application/vnd.ms-excel",
	".ppt":      "application/vnd.ms-powerpoint",
	".doc":      "application/msword",
	".pdf":      "application/pdf",
	".html":     "text/html",
	".htm":      "text/html",
	".csv":      "text/csv",
	".xml":      "application/xml",
	".txt":      "text/plain",
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".rtf":      "application/rtf",

	// Code
	".css":  "text/css",
	".json": "application/json",
	".py":   "text/x-python",
	".java": "text/x-java",
	".c":    "text/x-c",
	".cpp":  "text/x-c++",
	".cc":   "text/x-c++",
	".rs":   "text/x-rust",
	".js":   "text/javascript",
	".mjs":  "text/javascript",
	".ts":   "application/typescript",
	".go":   "text/x-go",
	".php":  "text/x-php",
	".rb":   "text/x-ruby",
	".sh":   "text/x-shellscript",
}

// DetectContentType guesses a file's content type from its name alone; file
// contents are never read. Returns an empty string when nothing matches.
func DetectContentType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return ""
	}

	if ct, ok := extensionTypes[ext]; ok {
		return ct
	}

	// Fall back to the platform mime database for exotic extensions,
	// stripping any parameters so the classifier sees a bare type.
	ct := mime.TypeByExtension(ext)
	if ct == "" {
		return ""
	}
	if mediaType, _, err := mime.ParseMediaType(ct); err == nil {
		return strings.ToLower(mediaType)
	}
	return strings.ToLower(ct)
}
