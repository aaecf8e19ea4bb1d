package models

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/m3da1/file-organizer/internal/classify"
	"github.com/m3da1/file-organizer/internal/scan"
	"github.com/m3da1/file-organizer/internal/ui/components"
	"github.com/m3da1/file-organizer/internal/ui/styles"
)

// PreviewOutcome records how the preview screen was left.
type PreviewOutcome int

const (
	PreviewPending PreviewOutcome = iota
	PreviewProceed
	PreviewCancelled
)

// previewPane tags which pane of the preview is showing.
type previewPane int

const (
	paneOverview previewPane = iota
	paneDetail
)

// PreviewModel shows what a run would do before anything is touched: the
// category breakdown on the overview pane, and per-category file lists on
// the detail pane. Digits 1-4 open a category, esc returns to the overview,
// and esc or q on the overview cancels the whole run.
type PreviewModel struct {
	result *scan.ScanResult
	totals map[classify.Category]*scan.CategoryTotal

	pane     previewPane
	detail   classify.Category
	viewport viewport.Model

	outcome PreviewOutcome

	statusBar *components.StatusBar
	width     int
	height    int
}

// NewPreviewModel builds the preview for a completed scan.
func NewPreviewModel(result *scan.ScanResult) *PreviewModel {
	vp := viewport.New(80, 20)
	return &PreviewModel{
		result:    result,
		totals:    result.GroupByCategory(),
		viewport:  vp,
		statusBar: components.NewStatusBar(),
		width:     80,
		height:    24,
	}
}

func (m *PreviewModel) Init() tea.Cmd {
	return nil
}

// Outcome reports how the screen was dismissed.
func (m *PreviewModel) Outcome() PreviewOutcome {
	return m.outcome
}

func (m *PreviewModel) Update(msg tea.Msg) (*PreviewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 8
		if m.pane == paneDetail {
			m.viewport.SetContent(m.detailContent())
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *PreviewModel) handleKey(msg tea.KeyMsg) (*PreviewModel, tea.Cmd) {
	key := msg.String()

	if m.pane == paneDetail {
		switch key {
		case "esc":
			m.pane = paneOverview
			return m, nil
		case "q", "ctrl+c":
			m.outcome = PreviewCancelled
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch key {
	case "enter":
		m.outcome = PreviewProceed
		return m, tea.Quit
	case "esc", "q", "ctrl+c":
		m.outcome = PreviewCancelled
		return m, tea.Quit
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		cats := classify.All()
		if idx < len(cats) {
			m.openDetail(cats[idx])
		}
		return m, nil
	}

	return m, nil
}

func (m *PreviewModel) openDetail(cat classify.Category) {
	m.pane = paneDetail
	m.detail = cat
	m.viewport.SetContent(m.detailContent())
	m.viewport.GotoTop()
}

func (m *PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("📦 Organize Preview"))
	b.WriteString("\n\n")

	if m.pane == paneDetail {
		b.WriteString(m.renderDetail())
	} else {
		b.WriteString(m.renderOverview())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return b.String()
}

func (m *PreviewModel) renderOverview() string {
	var b strings.Builder

	header := fmt.Sprintf("%d files • %s total",
		len(m.result.Files),
		humanize.Bytes(uint64(m.result.TotalSize)))
	b.WriteString(styles.SubtitleStyle.Render(header))
	b.WriteString("\n\n")

	rows := make([]string, 0, len(classify.All()))
	for i, cat := range classify.All() {
		total := m.totals[cat]
		key := styles.KeyStyle.Render(fmt.Sprintf("[%d]", i+1))
		name := styles.CategoryStyle(cat).Render(fmt.Sprintf("%-12s", string(cat)))
		count := fmt.Sprintf("%4d files", len(total.Files))
		size := styles.FileSizeStyle.Render(humanize.Bytes(uint64(total.TotalSize)))
		bar := styles.Bar(len(total.Files), len(m.result.Files), 24)

		rows = append(rows, fmt.Sprintf("%s %s %s  %s  %s", key, name, count, bar, size))
	}
	b.WriteString(styles.PanelStyle.Render(strings.Join(rows, "\n")))

	if len(m.result.Errors) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.WarningStyle.Render(
			fmt.Sprintf("⚠ %d directories could not be read", len(m.result.Errors))))
	}

	return b.String()
}

func (m *PreviewModel) renderDetail() string {
	var b strings.Builder

	total := m.totals[m.detail]
	header := fmt.Sprintf("%s: %d files, %s",
		styles.CategoryStyle(m.detail).Render(string(m.detail)),
		len(total.Files),
		humanize.Bytes(uint64(total.TotalSize)))
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())

	return b.String()
}

func (m *PreviewModel) detailContent() string {
	nameWidth := m.viewport.Width - 30
	if nameWidth < 20 {
		nameWidth = 20
	}

	var lines []string
	for _, f := range m.result.Files {
		if f.Category != m.detail {
			continue
		}
		name := styles.FileNameStyle.Render(
			fmt.Sprintf("%-*s", nameWidth, styles.Truncate(f.Path, nameWidth)))
		size := styles.FileSizeStyle.Render(fmt.Sprintf("%10s", humanize.Bytes(uint64(f.Size))))
		ctype := f.ContentType
		if ctype == "" {
			ctype = "unknown"
		}
		lines = append(lines, fmt.Sprintf("%s %s  %s", name, size, styles.ContentTypeStyle.Render(ctype)))
	}
	if len(lines) == 0 {
		return styles.DimStyle.Render("no files in this category")
	}
	return strings.Join(lines, "\n")
}

func (m *PreviewModel) renderStatusBar() string {
	m.statusBar.SetScreen("Preview")
	if m.pane == paneDetail {
		m.statusBar.SetInfo(string(m.detail))
		m.statusBar.SetShortcuts(
			components.Shortcut{Key: "↑/↓", Desc: "scroll"},
			components.Shortcut{Key: "esc", Desc: "back"},
			components.Shortcut{Key: "q", Desc: "cancel"},
		)
	} else {
		m.statusBar.SetInfo(fmt.Sprintf("%d files", len(m.result.Files)))
		m.statusBar.SetShortcuts(
			components.Shortcut{Key: "1-4", Desc: "details"},
			components.Shortcut{Key: "enter", Desc: "organize"},
			components.Shortcut{Key: "esc", Desc: "cancel"},
		)
	}
	return m.statusBar.Render(m.width)
}
