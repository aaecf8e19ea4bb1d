package models

import (
	"testing"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m3da1/file-organizer/internal/classify"
	"github.com/m3da1/file-organizer/internal/organize"
	"github.com/m3da1/file-organizer/internal/scan"
	"github.com/m3da1/file-organizer/internal/testutil"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func sampleResult() *scan.ScanResult {
	return &scan.ScanResult{
		Files: []scan.FileRecord{
			{Path: "photo.png", ContentType: "image/png", Category: classify.Multimedia, Size: 100},
			{Path: "notes.txt", ContentType: "text/plain", Category: classify.Docs, Size: 50},
			{Path: "data.bin", Category: classify.Misc, Size: 25},
		},
		TotalSize: 175,
	}
}

// quits reports whether cmd produces tea.QuitMsg, unwrapping batches.
func quits(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if quits(c) {
				return true
			}
		}
		return false
	}
	_, ok := msg.(tea.QuitMsg)
	return ok
}

func TestPreviewDigitOpensDetail(t *testing.T) {
	m := NewPreviewModel(sampleResult())

	m, _ = m.Update(key("2"))

	assert.Equal(t, paneDetail, m.pane)
	assert.Equal(t, classify.Docs, m.detail)
	assert.Contains(t, m.View(), "notes.txt")
}

func TestPreviewEscFromDetailReturnsToOverview(t *testing.T) {
	m := NewPreviewModel(sampleResult())

	m, _ = m.Update(key("1"))
	require.Equal(t, paneDetail, m.pane)

	m, cmd := m.Update(key("esc"))

	assert.Equal(t, paneOverview, m.pane)
	assert.Equal(t, PreviewPending, m.Outcome())
	assert.False(t, quits(cmd))
}

func TestPreviewEscFromOverviewCancels(t *testing.T) {
	m := NewPreviewModel(sampleResult())

	m, cmd := m.Update(key("esc"))

	assert.Equal(t, PreviewCancelled, m.Outcome())
	assert.True(t, quits(cmd))
}

func TestPreviewEnterProceeds(t *testing.T) {
	m := NewPreviewModel(sampleResult())

	m, cmd := m.Update(key("enter"))

	assert.Equal(t, PreviewProceed, m.Outcome())
	assert.True(t, quits(cmd))
}

func TestPreviewQuitFromDetailCancels(t *testing.T) {
	m := NewPreviewModel(sampleResult())

	m, _ = m.Update(key("3"))
	m, cmd := m.Update(key("q"))

	assert.Equal(t, PreviewCancelled, m.Outcome())
	assert.True(t, quits(cmd))
}

func TestPreviewOverviewShowsAllCategories(t *testing.T) {
	// sampleResult leaves Compressed empty; the overview still lists all
	// four categories with their file counts.
	m := NewPreviewModel(sampleResult())

	view := m.View()
	for _, cat := range classify.All() {
		assert.Contains(t, view, string(cat))
	}
	assert.Contains(t, view, "1 files")
	assert.Contains(t, view, "0 files")
}

func TestPreviewEmptyCategoryDetail(t *testing.T) {
	m := NewPreviewModel(sampleResult())

	// Compressed is digit 3 and holds no files.
	m, _ = m.Update(key("3"))

	require.Equal(t, paneDetail, m.pane)
	assert.Contains(t, m.View(), "0 files")
	assert.Contains(t, m.detailContent(), "no files in this category")
}

func TestPreviewOverviewEmptyScan(t *testing.T) {
	m := NewPreviewModel(&scan.ScanResult{})

	view := m.View()
	for _, cat := range classify.All() {
		assert.Contains(t, view, string(cat))
	}
}

// runApp executes the command chain until the queue drains or maxSteps is
// hit. Spinner and gauge animation messages are dropped so the chain stays
// finite.
func runApp(t *testing.T, app *AppModel, maxSteps int) {
	t.Helper()

	queue := []tea.Cmd{app.Init()}
	for steps := 0; len(queue) > 0 && steps < maxSteps; steps++ {
		cmd := queue[0]
		queue = queue[1:]
		if cmd == nil {
			continue
		}

		msg := cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, []tea.Cmd(batch)...)
			continue
		}
		switch msg.(type) {
		case spinner.TickMsg, progress.FrameMsg, nil:
			continue
		}

		_, next := app.Update(msg)
		queue = append(queue, next)
	}
}

func TestOrganizeRunReachesSummary(t *testing.T) {
	fx := testutil.NewFixture(t)
	fx.CreateFile("photo.png", []byte("img"))
	fx.CreateFile("notes.txt", []byte("text"))

	result, err := scan.Scan(fx.RootDir, false)
	require.NoError(t, err)
	require.Len(t, result.Files, 2)

	eng := organize.New(fx.RootDir, organize.PolicySkip, false)
	app := NewOrganizeApp(result, eng)

	runApp(t, app, 100)

	assert.Equal(t, ScreenSummary, app.Screen())

	s := app.Stats()
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 2, s.Moved)
	assert.Zero(t, s.Skipped)
	assert.Zero(t, s.Errors)

	fx.AssertFileExists(fx.Path("Multimedia/photo.png"))
	fx.AssertFileExists(fx.Path("Docs/notes.txt"))
}

func TestProgressIgnoresKeyInput(t *testing.T) {
	fx := testutil.NewFixture(t)
	fx.CreateFile("a.txt", []byte("1"))
	fx.CreateFile("b.txt", []byte("2"))

	result, err := scan.Scan(fx.RootDir, false)
	require.NoError(t, err)

	eng := organize.New(fx.RootDir, organize.PolicySkip, false)
	m := NewProgressModel(result, eng)

	// The screen is not user-navigable; key presses change nothing and
	// never quit.
	for _, k := range []string{"q", "esc", "enter", "1"} {
		var cmd tea.Cmd
		m, cmd = m.Update(key(k))
		assert.False(t, quits(cmd))
	}
	assert.Zero(t, m.Stats().Total)
}

func TestSummaryDismissKeys(t *testing.T) {
	for _, k := range []string{"enter", "esc", "q"} {
		fx := testutil.NewFixture(t)
		fx.CreateFile("a.txt", []byte("1"))

		result, err := scan.Scan(fx.RootDir, false)
		require.NoError(t, err)

		eng := organize.New(fx.RootDir, organize.PolicySkip, false)
		app := NewOrganizeApp(result, eng)
		runApp(t, app, 100)
		require.Equal(t, ScreenSummary, app.Screen())

		_, cmd := app.Update(key(k))
		assert.True(t, quits(cmd), "key %q should dismiss the summary", k)
	}
}

func TestPreviewAppProceed(t *testing.T) {
	app := NewPreviewApp(sampleResult())
	require.Equal(t, ScreenPreview, app.Screen())

	_, cmd := app.Update(key("enter"))

	assert.True(t, app.Proceed())
	assert.True(t, quits(cmd))
}
