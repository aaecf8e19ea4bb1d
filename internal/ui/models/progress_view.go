package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/m3da1/file-organizer/internal/organize"
	"github.com/m3da1/file-organizer/internal/scan"
	"github.com/m3da1/file-organizer/internal/stats"
	"github.com/m3da1/file-organizer/internal/ui/components"
	"github.com/m3da1/file-organizer/internal/ui/styles"
)

// completionPause keeps the final 100% frame on screen briefly before the
// summary replaces it.
const completionPause = 500 * time.Millisecond

// recentLines is how many per-file result lines stay visible.
const recentLines = 8

// fileDoneMsg reports the outcome of moving one file.
type fileDoneMsg struct {
	index   int
	outcome organize.MoveOutcome
}

// pauseDoneMsg fires after the completion pause.
type pauseDoneMsg struct{}

// ProgressModel drives the move loop. Files are processed strictly one at a
// time through the command chain, so the statistics fold is single-writer
// and every outcome is rendered before the next move starts. The screen is
// not user-navigable: once processing starts it runs to the end, and a move
// that has started completes or fails on its own.
type ProgressModel struct {
	result *scan.ScanResult
	engine *organize.Engine
	stats  *stats.RunStats

	current int
	done    bool
	recent  []string

	started time.Time
	elapsed time.Duration

	gauge     progress.Model
	spin      spinner.Model
	statusBar *components.StatusBar
	width     int
	height    int
}

// NewProgressModel builds the processing screen for a scan result.
func NewProgressModel(result *scan.ScanResult, eng *organize.Engine) *ProgressModel {
	gauge := progress.New(progress.WithDefaultGradient())
	gauge.Width = 50

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = spin.Style.Foreground(styles.Primary)

	return &ProgressModel{
		result:    result,
		engine:    eng,
		stats:     stats.New(),
		gauge:     gauge,
		spin:      spin,
		statusBar: components.NewStatusBar(),
		width:     80,
		height:    24,
	}
}

// Init starts the clock and kicks off the first move.
func (m *ProgressModel) Init() tea.Cmd {
	m.started = time.Now()
	return tea.Batch(m.spin.Tick, m.processFile(0))
}

// Stats returns the running totals.
func (m *ProgressModel) Stats() *stats.RunStats {
	return m.stats
}

// Result returns the scan the run was built from.
func (m *ProgressModel) Result() *scan.ScanResult {
	return m.result
}

// Elapsed returns the processing wall-clock time. It stops advancing once
// the run has finished.
func (m *ProgressModel) Elapsed() time.Duration {
	if m.done {
		return m.elapsed
	}
	return time.Since(m.started)
}

// processFile moves the file at index and reports the outcome.
func (m *ProgressModel) processFile(index int) tea.Cmd {
	if index >= len(m.result.Files) {
		return nil
	}
	rec := m.result.Files[index]
	return func() tea.Msg {
		return fileDoneMsg{index: index, outcome: m.engine.Move(rec)}
	}
}

func (m *ProgressModel) Update(msg tea.Msg) (*ProgressModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.gauge.Width = msg.Width - 20
		if m.gauge.Width > 60 {
			m.gauge.Width = 60
		}
		return m, nil

	case fileDoneMsg:
		return m.handleFileDone(msg)

	case pauseDoneMsg:
		return m, func() tea.Msg { return progressFinishedMsg{} }

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		gauge, cmd := m.gauge.Update(msg)
		m.gauge = gauge.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m *ProgressModel) handleFileDone(msg fileDoneMsg) (*ProgressModel, tea.Cmd) {
	rec := m.result.Files[msg.index]
	m.stats.Record(rec, msg.outcome)
	m.pushRecent(rec, msg.outcome)
	m.current = msg.index + 1

	cmds := []tea.Cmd{
		m.gauge.SetPercent(float64(m.current) / float64(len(m.result.Files))),
	}

	if m.current >= len(m.result.Files) {
		m.done = true
		m.elapsed = time.Since(m.started)
		cmds = append(cmds, tea.Tick(completionPause, func(time.Time) tea.Msg {
			return pauseDoneMsg{}
		}))
	} else {
		cmds = append(cmds, m.processFile(m.current))
	}

	return m, tea.Batch(cmds...)
}

func (m *ProgressModel) pushRecent(rec scan.FileRecord, outcome organize.MoveOutcome) {
	var line string
	switch outcome.Status {
	case organize.StatusMoved:
		line = fmt.Sprintf("%s %s → %s",
			styles.SuccessStyle.Render("✓"),
			styles.Truncate(rec.Path, 40),
			styles.CategoryStyle(rec.Category).Render(string(rec.Category)))
	case organize.StatusSkipped:
		line = fmt.Sprintf("%s %s",
			styles.WarningStyle.Render("⊘"),
			styles.Truncate(rec.Path, 40))
	case organize.StatusFailed:
		line = fmt.Sprintf("%s %s: %v",
			styles.ErrorStyle.Render("✗"),
			styles.Truncate(rec.Path, 40),
			outcome.Err)
	}

	m.recent = append(m.recent, line)
	if len(m.recent) > recentLines {
		m.recent = m.recent[len(m.recent)-recentLines:]
	}
}

func (m *ProgressModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("🚚 Organizing Files"))
	b.WriteString("\n\n")

	total := len(m.result.Files)
	counter := fmt.Sprintf("%d/%d", m.current, total)
	if m.done {
		b.WriteString(styles.SuccessStyle.Render("done "))
	} else {
		b.WriteString(m.spin.View())
	}
	b.WriteString(fmt.Sprintf(" %s files", counter))
	b.WriteString("\n\n")

	b.WriteString(m.gauge.View())
	b.WriteString("\n\n")

	if len(m.recent) > 0 {
		b.WriteString(styles.PanelStyle.Render(strings.Join(m.recent, "\n")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return b.String()
}

func (m *ProgressModel) renderStatusBar() string {
	m.statusBar.SetScreen("Progress")
	m.statusBar.SetInfo(fmt.Sprintf("%s moved", humanize.Bytes(uint64(m.stats.BytesMoved))))
	m.statusBar.SetShortcuts()
	return m.statusBar.Render(m.width)
}
