package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"swipetabs/internal/tabview"
)

// HeaderHeight is the number of lines drawn by RenderHeader
const HeaderHeight = 2

const indicatorRune = "▔"

// RenderHeader draws the tab bar and an indicator that follows the
// continuous position, so it slides while a page is being dragged
func (r *Renderer) RenderHeader(props tabview.SceneRendererProps) string {
	routes := props.NavigationState.Routes
	width := props.Layout.Width

	if !props.Layout.Known() {
		titles := make([]string, len(routes))
		for i, route := range routes {
			titles[i] = r.tabStyle(route.Key, i == props.NavigationState.Index).Render(route.Title)
		}
		return strings.Join(titles, " │ ") + "\n"
	}

	cell := width / len(routes)
	if cell < 1 {
		cell = 1
	}

	tabs := make([]string, len(routes))
	for i, route := range routes {
		title := route.Title
		if title == "" {
			title = route.Key
		}
		tabs[i] = r.tabStyle(route.Key, i == nearest(props.Position)).
			Width(cell).
			MaxWidth(cell).
			Align(lipgloss.Center).
			Render(title)
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	return bar + "\n" + r.indicator(props.Position, cell, width)
}

// indicator places a cell-wide bar at position * cell
func (r *Renderer) indicator(position float64, cell, width int) string {
	x := int(math.Round(position * float64(cell)))
	if x < 0 {
		x = 0
	}
	if x > width-cell {
		x = width - cell
	}
	if x < 0 {
		x = 0
	}
	return strings.Repeat(" ", x) + r.styles.Indicator.Render(strings.Repeat(indicatorRune, cell))
}

func (r *Renderer) tabStyle(key string, active bool) lipgloss.Style {
	switch {
	case r.locked[key]:
		return r.styles.LockedTab
	case active:
		return r.styles.ActiveTab
	default:
		return r.styles.Tab
	}
}

func nearest(position float64) int {
	return int(math.Round(position))
}
