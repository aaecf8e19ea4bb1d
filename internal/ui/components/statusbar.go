package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/m3da1/file-organizer/internal/ui/styles"
)

// Shortcut is one key hint displayed in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar renders a single-line footer with the screen name on the left
// and ordered key hints on the right.
type StatusBar struct {
	screen    string
	info      string
	shortcuts []Shortcut
}

// NewStatusBar creates an empty status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetScreen sets the current screen name.
func (s *StatusBar) SetScreen(name string) {
	s.screen = name
}

// SetInfo sets the free-form info segment shown next to the screen name.
func (s *StatusBar) SetInfo(info string) {
	s.info = info
}

// SetShortcuts replaces the key hints, preserving the given order.
func (s *StatusBar) SetShortcuts(shortcuts ...Shortcut) {
	s.shortcuts = shortcuts
}

// Render renders the status bar at the given width.
func (s *StatusBar) Render(width int) string {
	if width <= 0 {
		width = 80
	}

	var left []string
	if s.screen != "" {
		left = append(left, styles.BoldStyle.Render(s.screen))
	}
	if s.info != "" {
		left = append(left, s.info)
	}
	leftSide := strings.Join(left, " • ")

	var hints []string
	for _, sc := range s.shortcuts {
		hints = append(hints, fmt.Sprintf("%s:%s", styles.DimStyle.Render(sc.Key), sc.Desc))
	}
	rightSide := strings.Join(hints, "  ")

	spacing := width - lipgloss.Width(leftSide) - lipgloss.Width(rightSide) - 2
	if spacing < 1 {
		spacing = 1
	}

	line := leftSide + strings.Repeat(" ", spacing) + rightSide

	barStyle := lipgloss.NewStyle().
		Foreground(styles.Text).
		Background(styles.BgDark).
		Padding(0, 1).
		Width(width)

	return barStyle.Render(line)
}
