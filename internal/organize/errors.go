package organize

import "fmt"

// FailureReason categorizes why a move failed.
type FailureReason int

const (
	ReasonInvalidPath FailureReason = iota
	ReasonCreateDir
	ReasonRemove
	ReasonRename
	ReasonUnknown
)

// String returns a human-readable failure reason.
func (r FailureReason) String() string {
	switch r {
	case ReasonInvalidPath:
		return "invalid path"
	case ReasonCreateDir:
		return "create category directory"
	case ReasonRemove:
		return "remove existing destination"
	case ReasonRename:
		return "move file"
	default:
		return "unknown error"
	}
}

// MoveError is a per-file failure. It is carried inside a Failed outcome and
// counted in the run statistics; it never aborts the run.
type MoveError struct {
	Path   string
	Reason FailureReason
	Err    error
}

// Error implements the error interface.
func (e *MoveError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Reason, e.Err)
}

// Unwrap exposes the underlying filesystem error.
func (e *MoveError) Unwrap() error {
	return e.Err
}
