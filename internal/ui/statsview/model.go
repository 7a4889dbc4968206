package statsview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskboard/internal/query"
	"github.com/nhle/taskboard/internal/theme"
)

// barWidth is the character width of a fully filled distribution bar.
const barWidth = 24

// Model renders the analytics view: aggregate counters, completion rate,
// and the priority and category distributions. It is display-only; the
// caller recomputes the data after every mutation.
type Model struct {
	summary    query.Summary
	rate       float64
	priorities []query.Bucket
	categories []query.Bucket
	width      int
	height     int
}

// New creates a new stats view model.
func New(width, height int) Model {
	return Model{width: width, height: height}
}

// SetData replaces the displayed aggregates.
func (m *Model) SetData(summary query.Summary, rate float64, priorities, categories []query.Bucket) {
	m.summary = summary
	m.rate = rate
	m.priorities = priorities
	m.categories = categories
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the analytics panels.
func (m Model) View() string {
	counters := theme.PanelStyle.Render(
		theme.PanelTitleStyle.Render("Overview") + "\n" + m.renderCounters(),
	)
	prios := theme.PanelStyle.Render(
		theme.PanelTitleStyle.Render("Tasks by Priority") + "\n" + m.renderBuckets(m.priorities, true),
	)
	cats := theme.PanelStyle.Render(
		theme.PanelTitleStyle.Render("Category Distribution") + "\n" + m.renderBuckets(m.categories, false),
	)

	return lipgloss.JoinVertical(lipgloss.Left, counters, prios, cats)
}

// renderCounters draws the four dashboard counters and the completion rate.
func (m Model) renderCounters() string {
	lines := []string{
		fmt.Sprintf("Total tasks      %4d", m.summary.Total),
		fmt.Sprintf("Pending          %4d", m.summary.Pending),
		fmt.Sprintf("Completed        %4d", m.summary.Completed),
		fmt.Sprintf("High priority    %4d", m.summary.HighPriorityPending),
		"",
		fmt.Sprintf("Completion rate  %3.0f%%", m.rate),
	}
	return strings.Join(lines, "\n")
}

// renderBuckets draws one bar per bucket, filled proportionally to its
// percentage share.
func (m Model) renderBuckets(buckets []query.Bucket, colorByPriority bool) string {
	var lines []string
	for _, b := range buckets {
		filled := int(b.Percent / 100 * barWidth)
		if filled > barWidth {
			filled = barWidth
		}

		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		if colorByPriority {
			bar = theme.BarStyle(b.Name).Render(bar)
		} else {
			bar = theme.CategoryStyle.Render(bar)
		}

		lines = append(lines, fmt.Sprintf("%-12s %s %3d", b.Name, bar, b.Count))
	}
	return strings.Join(lines, "\n")
}
