// Package scan walks a directory tree and produces classified file records
// for the move engine to consume.
package scan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/m3da1/file-organizer/internal/classify"
)

// Scan walks root and returns a record for every regular file found, in the
// order the filesystem enumerates entries. When recursive is true,
// subdirectories are descended into unless they match a category folder name,
// so files organized by a prior run are not scanned again.
//
// A root that cannot be read is an error; an empty directory is an empty
// result. Unreadable subdirectories are recorded in ScanResult.Errors and
// skipped.
func Scan(root string, recursive bool) (*ScanResult, error) {
	result := &ScanResult{Root: root}

	if err := scanDir(root, recursive, true, result); err != nil {
		return nil, err
	}

	return result, nil
}

func scanDir(dir string, recursive, isRoot bool, result *ScanResult) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if isRoot {
			return fmt.Errorf("read directory %s: %w", dir, err)
		}
		// Subtree failures do not abort the run.
		result.Errors = append(result.Errors, fmt.Errorf("read directory %s: %w", dir, err))
		return nil
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if !recursive {
				continue
			}
			if classify.IsCategoryDir(entry.Name()) {
				continue
			}
			if err := scanDir(path, recursive, false, result); err != nil {
				return err
			}
			continue
		}

		if !entry.Type().IsRegular() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("stat %s: %w", path, err))
			continue
		}

		contentType := DetectContentType(entry.Name())
		result.Files = append(result.Files, FileRecord{
			Path:        path,
			ContentType: contentType,
			Category:    classify.CategoryFor(contentType),
			Size:        info.Size(),
		})
		result.TotalSize += info.Size()
	}

	return nil
}
