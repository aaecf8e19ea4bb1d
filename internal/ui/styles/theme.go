package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/m3da1/file-organizer/internal/classify"
)

// Theme colors
var (
	Primary   = lipgloss.Color("#22D3EE")
	Secondary = lipgloss.Color("#67E8F9")
	Success   = lipgloss.Color("#10B981")
	Warning   = lipgloss.Color("#F59E0B")
	Danger    = lipgloss.Color("#EF4444")
	Accent    = lipgloss.Color("#C084FC")
	Text      = lipgloss.Color("#F3F4F6")
	TextDim   = lipgloss.Color("#9CA3AF")
	Border    = lipgloss.Color("#4B5563")
	BgDark    = lipgloss.Color("#1F2937")
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	FileNameStyle = lipgloss.NewStyle().
			Foreground(Text)

	FileSizeStyle = lipgloss.NewStyle().
			Foreground(Warning)

	ContentTypeStyle = lipgloss.NewStyle().
				Foreground(TextDim)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(TextDim)

	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// categoryColors keeps each destination visually distinct across screens.
var categoryColors = map[classify.Category]lipgloss.Color{
	classify.Multimedia: lipgloss.Color("#C084FC"),
	classify.Docs:       lipgloss.Color("#3B82F6"),
	classify.Compressed: lipgloss.Color("#F59E0B"),
	classify.Misc:       lipgloss.Color("#9CA3AF"),
}

// CategoryColor returns the display color for a category.
func CategoryColor(cat classify.Category) lipgloss.Color {
	if c, ok := categoryColors[cat]; ok {
		return c
	}
	return Text
}

// CategoryStyle returns a bold style in the category's color.
func CategoryStyle(cat classify.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CategoryColor(cat)).Bold(true)
}

// Bar renders a fixed-width block bar filled to current/total.
func Bar(current, total, width int) string {
	filled := 0
	if total > 0 {
		filled = current * width / total
	}
	if filled > width {
		filled = width
	}

	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return lipgloss.NewStyle().Foreground(Primary).Render(bar)
}

// Truncate shortens s to at most maxLen runes, ellipsized.
func Truncate(s string, maxLen int) string {
	if maxLen <= 3 {
		maxLen = 3
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
