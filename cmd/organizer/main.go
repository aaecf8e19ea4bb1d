package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/m3da1/file-organizer/internal/console"
	"github.com/m3da1/file-organizer/internal/organize"
	"github.com/m3da1/file-organizer/internal/scan"
	"github.com/m3da1/file-organizer/internal/stats"
	"github.com/m3da1/file-organizer/internal/ui"
)

var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var (
	dryRun      bool
	verbose     bool
	recursive   bool
	interactive bool
	conflict    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "organizer [directory]",
	Short: "Sort a directory's files into category folders",
	Long: `Organizer inspects every file in a directory, classifies it by content
type, and moves it into one of four category folders: Multimedia, Docs,
Compressed, or Misc.`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "show what would happen without moving anything")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print a line for every file processed")
	rootCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "descend into subdirectories")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "show the interactive dashboard")
	rootCmd.Flags().StringVarP(&conflict, "conflict", "c", "skip", "conflict policy: skip, overwrite, or rename")
}

func run(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", root)
		}
		return fmt.Errorf("cannot access %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", root)
	}

	policy, err := organize.ParseConflictPolicy(conflict)
	if err != nil {
		return err
	}

	result, err := scan.Scan(root, recursive)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	if len(result.Files) == 0 {
		fmt.Println("No files to organize.")
		return nil
	}

	if interactive && console.IsInteractive() {
		return runDashboard(result, policy)
	}
	return runConsole(result, policy)
}

// runDashboard drives the full-screen flow. The recap goes to stdout after
// the alternate screen is gone, so it stays readable in the scrollback.
func runDashboard(result *scan.ScanResult, policy organize.ConflictPolicy) error {
	runner := console.NewRunner(os.Stdout, verbose)

	if dryRun {
		// Preview is strictly informational: nothing is moved whether it
		// is confirmed or cancelled.
		proceed, err := ui.RunPreview(result)
		if err != nil {
			return err
		}
		if !proceed {
			fmt.Println("Cancelled.")
			return nil
		}

		runStats := stats.New()
		eng := organize.New(result.Root, policy, true)
		for _, rec := range result.Files {
			runStats.Record(rec, eng.Move(rec))
		}
		runner.Recap(runStats, 0, true)
		return nil
	}

	eng := organize.New(result.Root, policy, false)
	runStats, elapsed, err := ui.RunOrganize(result, eng)
	if err != nil {
		return err
	}

	runner.Recap(runStats, elapsed, false)
	return nil
}

func runConsole(result *scan.ScanResult, policy organize.ConflictPolicy) error {
	runner := console.NewRunner(os.Stdout, verbose)
	eng := organize.New(result.Root, policy, dryRun)

	if dryRun {
		runStats := runner.DryRun(result, eng)
		runner.Recap(runStats, 0, true)
		return nil
	}

	runStats, elapsed := runner.Organize(result, eng)
	runner.Recap(runStats, elapsed, false)
	return nil
}
