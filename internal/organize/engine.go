// Package organize decides and performs the relocation of scanned files into
// their category folders.
package organize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/m3da1/file-organizer/internal/scan"
)

// ConflictPolicy is the rule applied when a destination file already exists.
// It is chosen once per run and applied uniformly.
type ConflictPolicy int

const (
	PolicySkip ConflictPolicy = iota
	PolicyOverwrite
	PolicyRename
)

// ParseConflictPolicy parses a policy name as accepted on the command line.
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch s {
	case "skip":
		return PolicySkip, nil
	case "overwrite":
		return PolicyOverwrite, nil
	case "rename":
		return PolicyRename, nil
	default:
		return PolicySkip, fmt.Errorf("invalid conflict policy %q (want skip, overwrite, or rename)", s)
	}
}

// String returns the policy's command-line name.
func (p ConflictPolicy) String() string {
	switch p {
	case PolicyOverwrite:
		return "overwrite"
	case PolicyRename:
		return "rename"
	default:
		return "skip"
	}
}

// Status tags a move outcome.
type Status int

const (
	StatusMoved Status = iota
	StatusSkipped
	StatusFailed
)

// MoveOutcome is the result of attempting to place one file. Exactly one is
// produced per file record; failed files are never retried.
type MoveOutcome struct {
	Status Status
	Dest   string // resolved destination path, set when Status is StatusMoved
	Err    error  // *MoveError, set when Status is StatusFailed
}

// Engine relocates file records into category folders under Root. With DryRun
// set it takes identical decisions but suppresses every filesystem mutation,
// so a preview is a faithful forecast of a real run.
type Engine struct {
	Root   string
	Policy ConflictPolicy
	DryRun bool
}

// New returns an engine for the given root.
func New(root string, policy ConflictPolicy, dryRun bool) *Engine {
	return &Engine{Root: root, Policy: policy, DryRun: dryRun}
}

// Move resolves the destination for rec under the engine's conflict policy
// and performs the move unless DryRun is set. All filesystem errors are
// captured in the returned outcome; Move never panics and never aborts the
// surrounding run.
func (e *Engine) Move(rec scan.FileRecord) MoveOutcome {
	destDir := filepath.Join(e.Root, rec.Category.String())

	if !e.DryRun {
		if _, err := os.Stat(destDir); os.IsNotExist(err) {
			if err := os.Mkdir(destDir, 0755); err != nil {
				return failed(rec.Path, ReasonCreateDir, err)
			}
		}
	}

	base := filepath.Base(rec.Path)
	if base == "" || base == "." || base == string(filepath.Separator) {
		return failed(rec.Path, ReasonInvalidPath, nil)
	}

	dest := filepath.Join(destDir, base)

	if _, err := os.Stat(dest); err == nil {
		switch e.Policy {
		case PolicySkip:
			return MoveOutcome{Status: StatusSkipped}
		case PolicyOverwrite:
			if !e.DryRun {
				if err := os.Remove(dest); err != nil {
					return failed(rec.Path, ReasonRemove, err)
				}
			}
		case PolicyRename:
			dest = uniqueName(dest)
		}
	}

	if !e.DryRun {
		if err := os.Rename(rec.Path, dest); err != nil {
			return failed(rec.Path, ReasonRename, err)
		}
	}

	return MoveOutcome{Status: StatusMoved, Dest: dest}
}

func failed(path string, reason FailureReason, err error) MoveOutcome {
	return MoveOutcome{Status: StatusFailed, Err: &MoveError{Path: path, Reason: reason, Err: err}}
}

// uniqueName returns the first unused sibling of path formed by appending
// _1, _2, ... to the file stem while preserving the extension.
func uniqueName(path string) string {
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)

	for counter := 1; ; counter++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
