// Package ui runs the interactive dashboard.
package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/m3da1/file-organizer/internal/organize"
	"github.com/m3da1/file-organizer/internal/scan"
	"github.com/m3da1/file-organizer/internal/stats"
	"github.com/m3da1/file-organizer/internal/ui/models"
)

// RunPreview shows the preview dashboard and reports whether the user chose
// to go ahead with the run.
func RunPreview(result *scan.ScanResult) (bool, error) {
	app := models.NewPreviewApp(result)

	p := tea.NewProgram(app, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("preview dashboard failed: %w", err)
	}

	return final.(*models.AppModel).Proceed(), nil
}

// RunOrganize moves every scanned file while showing live progress, then
// holds on the summary screen until dismissed. The returned stats cover the
// files processed before the run finished or was cancelled.
func RunOrganize(result *scan.ScanResult, eng *organize.Engine) (*stats.RunStats, time.Duration, error) {
	app := models.NewOrganizeApp(result, eng)

	p := tea.NewProgram(app, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, 0, fmt.Errorf("progress dashboard failed: %w", err)
	}

	done := final.(*models.AppModel)
	return done.Stats(), done.Elapsed(), nil
}
