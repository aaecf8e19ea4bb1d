package models

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/m3da1/file-organizer/internal/classify"
	"github.com/m3da1/file-organizer/internal/scan"
	"github.com/m3da1/file-organizer/internal/stats"
	"github.com/m3da1/file-organizer/internal/ui/components"
	"github.com/m3da1/file-organizer/internal/ui/styles"
)

// SummaryModel is the final screen: totals, throughput, and the per-category
// breakdown for one finished run. Any of enter, esc, or q dismisses it.
type SummaryModel struct {
	stats   *stats.RunStats
	result  *scan.ScanResult
	elapsed time.Duration

	statusBar *components.StatusBar
	width     int
	height    int
}

// NewSummaryModel builds the summary for a finished run.
func NewSummaryModel(runStats *stats.RunStats, result *scan.ScanResult, elapsed time.Duration) *SummaryModel {
	return &SummaryModel{
		stats:     runStats,
		result:    result,
		elapsed:   elapsed,
		statusBar: components.NewStatusBar(),
		width:     80,
		height:    24,
	}
}

func (m *SummaryModel) Init() tea.Cmd {
	return nil
}

func (m *SummaryModel) Update(msg tea.Msg) (*SummaryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", "q", "ctrl+c":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *SummaryModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("✨ Run Complete"))
	b.WriteString("\n\n")

	b.WriteString(m.renderTotals())
	b.WriteString("\n")
	b.WriteString(m.renderCategories())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return b.String()
}

func (m *SummaryModel) renderTotals() string {
	s := m.stats

	lines := []string{
		fmt.Sprintf("%s %d moved", styles.SuccessStyle.Render("✓"), s.Moved),
		fmt.Sprintf("%s %d skipped", styles.WarningStyle.Render("⊘"), s.Skipped),
		fmt.Sprintf("%s %d failed", styles.ErrorStyle.Render("✗"), s.Errors),
		"",
		fmt.Sprintf("%s relocated in %s",
			styles.FileSizeStyle.Render(humanize.Bytes(uint64(s.BytesMoved))),
			m.elapsed.Round(time.Millisecond)),
	}

	bytesPerSec, filesPerSec := s.Throughput(m.elapsed)
	if bytesPerSec > 0 {
		lines = append(lines, styles.DimStyle.Render(
			fmt.Sprintf("%s/s • %.1f files/s", humanize.Bytes(uint64(bytesPerSec)), filesPerSec)))
	}
	if s.Total > 0 {
		lines = append(lines, styles.DimStyle.Render(
			fmt.Sprintf("%.0f%% success", s.SuccessRate())))
	}

	return styles.PanelStyle.Render(strings.Join(lines, "\n"))
}

func (m *SummaryModel) renderCategories() string {
	var rows []string
	for _, cat := range classify.All() {
		total := m.stats.Categories[cat]
		if total.Count == 0 {
			continue
		}
		name := styles.CategoryStyle(cat).Render(fmt.Sprintf("%-12s", string(cat)))
		rows = append(rows, fmt.Sprintf("%s %4d files  %s",
			name, total.Count, styles.FileSizeStyle.Render(humanize.Bytes(uint64(total.Bytes)))))
	}
	if len(rows) == 0 {
		return styles.DimStyle.Render("nothing was moved")
	}
	return styles.PanelStyle.Render(strings.Join(rows, "\n"))
}

func (m *SummaryModel) renderStatusBar() string {
	m.statusBar.SetScreen("Summary")
	m.statusBar.SetInfo(fmt.Sprintf("%d files processed", m.stats.Total))
	m.statusBar.SetShortcuts(
		components.Shortcut{Key: "enter", Desc: "close"},
	)
	return m.statusBar.Render(m.width)
}
