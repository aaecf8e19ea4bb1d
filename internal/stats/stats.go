// Package stats accumulates per-run and per-category totals consumed by the
// progress and summary screens.
package stats

import (
	"time"

	"github.com/m3da1/file-organizer/internal/classify"
	"github.com/m3da1/file-organizer/internal/organize"
	"github.com/m3da1/file-organizer/internal/scan"
)

// CategoryTotal tracks files actually moved into one category.
type CategoryTotal struct {
	Count int
	Bytes int64
}

// RunStats is the mutable aggregate for one run. It is mutated only by the
// single processing loop, once per file, and read by rendering.
type RunStats struct {
	Total      int // files processed so far
	Moved      int
	Skipped    int
	Errors     int
	BytesMoved int64

	Categories map[classify.Category]*CategoryTotal
}

// New returns empty run statistics with every category present.
func New() *RunStats {
	categories := make(map[classify.Category]*CategoryTotal, len(classify.All()))
	for _, cat := range classify.All() {
		categories[cat] = &CategoryTotal{}
	}
	return &RunStats{Categories: categories}
}

// Record folds one move outcome into the totals. A file counts toward its
// category only when it was actually moved, so the category counts always
// sum to Moved and Total always equals Moved+Skipped+Errors.
func (s *RunStats) Record(rec scan.FileRecord, outcome organize.MoveOutcome) {
	s.Total++

	switch outcome.Status {
	case organize.StatusMoved:
		s.Moved++
		s.BytesMoved += rec.Size
		total := s.Categories[rec.Category]
		total.Count++
		total.Bytes += rec.Size
	case organize.StatusSkipped:
		s.Skipped++
	case organize.StatusFailed:
		s.Errors++
	}
}

// SuccessRate returns the moved fraction as a percentage, zero when nothing
// was processed.
func (s *RunStats) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Moved) / float64(s.Total) * 100
}

// Throughput derives bytes/second and files/second for the elapsed wall
// clock. Both are zero when elapsed is zero.
func (s *RunStats) Throughput(elapsed time.Duration) (bytesPerSec, filesPerSec float64) {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return 0, 0
	}
	return float64(s.BytesMoved) / secs, float64(s.Moved) / secs
}
