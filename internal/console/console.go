// Package console is the non-interactive front end: a plain table for dry
// runs, a progress bar for real runs, and the recap block both the console
// and dashboard paths print before exiting.
package console

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/m3da1/file-organizer/internal/classify"
	"github.com/m3da1/file-organizer/internal/organize"
	"github.com/m3da1/file-organizer/internal/scan"
	"github.com/m3da1/file-organizer/internal/stats"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	skipMark = color.New(color.FgYellow).Sprint("⊘")
	failMark = color.New(color.FgRed).Sprint("✗")
)

// IsInteractive reports whether stdout is attached to a terminal.
func IsInteractive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Runner drives a run without the dashboard.
type Runner struct {
	Out     io.Writer
	Verbose bool
}

// NewRunner returns a console runner writing to out.
func NewRunner(out io.Writer, verbose bool) *Runner {
	return &Runner{Out: out, Verbose: verbose}
}

// DryRun prints the planned action for every file without touching any of
// them, then returns the would-be statistics.
func (r *Runner) DryRun(result *scan.ScanResult, eng *organize.Engine) *stats.RunStats {
	runStats := stats.New()

	tw := table.NewWriter()
	tw.SetOutputMirror(r.Out)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"File", "Type", "Category", "Action", "Destination"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "File", WidthMax: 40},
		{Name: "Action", Align: text.AlignCenter},
	})

	for _, rec := range result.Files {
		outcome := eng.Move(rec)
		runStats.Record(rec, outcome)

		ctype := rec.ContentType
		if ctype == "" {
			ctype = "unknown"
		}
		tw.AppendRow(table.Row{
			rec.Path,
			ctype,
			string(rec.Category),
			actionLabel(outcome),
			outcome.Dest,
		})
	}

	tw.AppendFooter(table.Row{
		fmt.Sprintf("%d files", runStats.Total), "", "",
		fmt.Sprintf("%d to move", runStats.Moved),
		humanize.Bytes(uint64(runStats.BytesMoved)),
	})
	tw.Render()

	return runStats
}

func actionLabel(outcome organize.MoveOutcome) string {
	switch outcome.Status {
	case organize.StatusMoved:
		return "move"
	case organize.StatusSkipped:
		return "skip"
	default:
		return "error"
	}
}

// Organize moves every scanned file with a console progress bar and returns
// the run statistics and elapsed time.
func (r *Runner) Organize(result *scan.ScanResult, eng *organize.Engine) (*stats.RunStats, time.Duration) {
	runStats := stats.New()
	started := time.Now()

	bar := progressbar.NewOptions(len(result.Files),
		progressbar.OptionSetWriter(r.Out),
		progressbar.OptionSetDescription("organizing"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	for _, rec := range result.Files {
		outcome := eng.Move(rec)
		runStats.Record(rec, outcome)
		_ = bar.Add(1)

		if r.Verbose {
			r.printOutcome(rec, outcome)
		}
	}
	_ = bar.Finish()

	return runStats, time.Since(started)
}

func (r *Runner) printOutcome(rec scan.FileRecord, outcome organize.MoveOutcome) {
	switch outcome.Status {
	case organize.StatusMoved:
		fmt.Fprintf(r.Out, "%s %s → %s\n", okMark, rec.Path, outcome.Dest)
	case organize.StatusSkipped:
		fmt.Fprintf(r.Out, "%s %s (exists)\n", skipMark, rec.Path)
	case organize.StatusFailed:
		fmt.Fprintf(r.Out, "%s %s: %v\n", failMark, rec.Path, outcome.Err)
	}
}

// Recap prints the closing totals block. The dashboard path prints this too
// once the alternate screen has been torn down, so the result survives in
// the scrollback.
func (r *Runner) Recap(runStats *stats.RunStats, elapsed time.Duration, dryRun bool) {
	bold := color.New(color.Bold)

	if dryRun {
		bold.Fprintln(r.Out, "Dry run: nothing was moved")
	} else {
		bold.Fprintln(r.Out, "Done")
	}

	fmt.Fprintf(r.Out, "  %s %d moved (%s)\n", okMark, runStats.Moved,
		humanize.Bytes(uint64(runStats.BytesMoved)))
	if runStats.Skipped > 0 {
		fmt.Fprintf(r.Out, "  %s %d skipped\n", skipMark, runStats.Skipped)
	}
	if runStats.Errors > 0 {
		fmt.Fprintf(r.Out, "  %s %d failed\n", failMark, runStats.Errors)
	}

	for _, cat := range classify.All() {
		total := runStats.Categories[cat]
		if total.Count == 0 {
			continue
		}
		fmt.Fprintf(r.Out, "    %-12s %d files, %s\n", string(cat), total.Count,
			humanize.Bytes(uint64(total.Bytes)))
	}

	if !dryRun && elapsed > 0 {
		bytesPerSec, filesPerSec := runStats.Throughput(elapsed)
		fmt.Fprintf(r.Out, "  %s in %s (%s/s, %.1f files/s)\n",
			humanize.Bytes(uint64(runStats.BytesMoved)),
			elapsed.Round(time.Millisecond),
			humanize.Bytes(uint64(bytesPerSec)),
			filesPerSec)
	}
}
