// Package models contains the bubbletea view models for the interactive
// dashboard: a root model holding the current screen plus one model per
// screen. Screens only move forward: preview runs alone in dry-run mode,
// and a real run goes progress → summary → exit.
package models

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/m3da1/file-organizer/internal/organize"
	"github.com/m3da1/file-organizer/internal/scan"
	"github.com/m3da1/file-organizer/internal/stats"
)

// Screen tags the active screen. Exactly one is active at a time and there
// is no backward transition between screens.
type Screen int

const (
	ScreenPreview Screen = iota
	ScreenProgress
	ScreenSummary
)

// Mode selects which screens a program run visits.
type Mode int

const (
	// ModePreview shows the dry-run dashboard only; no files are ever
	// moved, regardless of how the preview is dismissed.
	ModePreview Mode = iota
	// ModeOrganize runs progress then summary while moving files.
	ModeOrganize
)

// AppModel is the root model for the interactive dashboard.
type AppModel struct {
	mode   Mode
	screen Screen

	preview  *PreviewModel
	progress *ProgressModel
	summary  *SummaryModel

	width  int
	height int
}

// NewPreviewApp builds the dashboard for a dry-run preview.
func NewPreviewApp(result *scan.ScanResult) *AppModel {
	return &AppModel{
		mode:    ModePreview,
		screen:  ScreenPreview,
		preview: NewPreviewModel(result),
	}
}

// NewOrganizeApp builds the dashboard for a real organizing run.
func NewOrganizeApp(result *scan.ScanResult, eng *organize.Engine) *AppModel {
	return &AppModel{
		mode:     ModeOrganize,
		screen:   ScreenProgress,
		progress: NewProgressModel(result, eng),
	}
}

// Init starts the active screen.
func (m *AppModel) Init() tea.Cmd {
	switch m.screen {
	case ScreenPreview:
		return m.preview.Init()
	case ScreenProgress:
		return m.progress.Init()
	}
	return nil
}

// Update routes messages and performs the forward screen transitions.
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Every screen tracks the terminal size.

	case progressFinishedMsg:
		// The last file has been rendered; move to the summary.
		m.summary = NewSummaryModel(m.progress.Stats(), m.progress.Result(), m.progress.Elapsed())
		m.screen = ScreenSummary
		return m, nil
	}

	return m.delegate(msg)
}

func (m *AppModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.screen {
	case ScreenPreview:
		if m.preview != nil {
			m.preview, cmd = m.preview.Update(msg)
		}
	case ScreenProgress:
		if m.progress != nil {
			m.progress, cmd = m.progress.Update(msg)
		}
	case ScreenSummary:
		if m.summary != nil {
			m.summary, cmd = m.summary.Update(msg)
		}
	}

	return m, cmd
}

// View renders the active screen.
func (m *AppModel) View() string {
	switch m.screen {
	case ScreenPreview:
		if m.preview != nil {
			return m.preview.View()
		}
	case ScreenProgress:
		if m.progress != nil {
			return m.progress.View()
		}
	case ScreenSummary:
		if m.summary != nil {
			return m.summary.View()
		}
	}
	return ""
}

// Screen exposes the active screen for the caller and tests.
func (m *AppModel) Screen() Screen {
	return m.screen
}

// Proceed reports whether the preview was confirmed rather than cancelled.
// Only meaningful in ModePreview after the program has finished.
func (m *AppModel) Proceed() bool {
	return m.mode == ModePreview && m.preview.Outcome() == PreviewProceed
}

// Stats exposes the final run statistics. Only meaningful in ModeOrganize.
func (m *AppModel) Stats() *stats.RunStats {
	if m.progress == nil {
		return nil
	}
	return m.progress.Stats()
}

// Elapsed exposes the processing wall-clock time. Only meaningful in
// ModeOrganize.
func (m *AppModel) Elapsed() time.Duration {
	if m.progress == nil {
		return 0
	}
	return m.progress.Elapsed()
}

// progressFinishedMsg is emitted once the progress screen has rendered its
// final frame and the completion pause has passed.
type progressFinishedMsg struct{}
