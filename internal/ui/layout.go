package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskboard/internal/theme"
)

// Layout manages the terminal layout dimensions: a one-line header, the
// content area, and a one-line status bar.
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a Layout with the given terminal dimensions.
func NewLayout(width, height int) Layout {
	return Layout{Width: width, Height: height}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the main content area,
// accounting for the header and status bar.
func (l Layout) ContentHeight() int {
	return l.Height - 2
}

// RenderHeader renders the top header bar with the title on the left and
// a short status (e.g. unread badge) on the right.
func (l Layout) RenderHeader(title, right string) string {
	return l.fillBar(theme.HeaderStyle, title, right)
}

// RenderStatusBar renders the bottom status bar with hints or messages.
func (l Layout) RenderStatusBar(text string) string {
	return l.fillBar(theme.StatusBarStyle, text, "")
}

// RenderFrame composes the full terminal view by vertically joining the
// header, content area, and status bar.
func (l Layout) RenderFrame(header, content, statusBar string) string {
	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// fillBar renders left and right segments in the given style and pads the
// gap between them to the full terminal width.
func (l Layout) fillBar(style lipgloss.Style, left, right string) string {
	leftRendered := style.Render(left)
	rightRendered := ""
	if right != "" {
		rightRendered = style.Render(right)
	}

	gap := l.Width - lipgloss.Width(leftRendered) - lipgloss.Width(rightRendered)
	if gap < 0 {
		gap = 0
	}

	filler := style.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(style.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, filler, rightRendered)
}
