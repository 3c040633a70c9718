package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"swipetabs/internal/tabview"
)

// FooterHeight is the number of lines drawn by RenderFooter
const FooterHeight = 1

// Renderer draws the header, footer and scenes of the tab view
type Renderer struct {
	styles *Styles
	help   help.Model
	keys   help.KeyMap

	bodies map[string]string
	locked map[string]bool

	status    string
	statusErr bool
}

// NewRenderer creates a renderer. bodies maps route keys to scene text.
func NewRenderer(keys help.KeyMap, bodies map[string]string, locked map[string]bool) *Renderer {
	h := help.New()
	h.ShortSeparator = " · "
	if locked == nil {
		locked = map[string]bool{}
	}
	return &Renderer{
		styles: NewStyles(),
		help:   h,
		keys:   keys,
		bodies: bodies,
		locked: locked,
	}
}

// SetStatus shows a message in the footer until it is cleared
func (r *Renderer) SetStatus(msg string, isErr bool) {
	r.status = msg
	r.statusErr = isErr
}

// Status returns the footer message
func (r *Renderer) Status() string { return r.status }

// RenderFooter draws the position, the status message and the key help
func (r *Renderer) RenderFooter(props tabview.SceneRendererProps) string {
	n := len(props.NavigationState.Routes)
	pos := r.styles.Position.Render(fmt.Sprintf("%d/%d", props.NavigationState.Index+1, n))

	var status string
	if r.status != "" {
		style := r.styles.Status
		if r.statusErr {
			style = r.styles.StatusError
		}
		status = " " + style.Render(r.status)
	}

	left := pos + status
	r.help.Width = props.Layout.Width - lipgloss.Width(left) - 2
	keys := r.styles.Help.Render(r.help.View(r.keys))

	line := left + "  " + keys
	if props.Layout.Known() {
		line = lipgloss.NewStyle().MaxWidth(props.Layout.Width).Render(line)
	}
	return line
}

// RenderScene draws a route's title and body
func (r *Renderer) RenderScene(props tabview.SceneProps) string {
	title := props.Route.Title
	if title == "" {
		title = props.Route.Key
	}
	body, ok := r.bodies[props.Route.Key]
	if !ok || body == "" {
		body = r.styles.Dim.Render("(empty)")
	}
	if r.locked[props.Route.Key] {
		title += " (locked)"
	}

	scene := r.styles.Scene
	if props.Width > 0 {
		frame := scene.GetHorizontalFrameSize()
		inner := props.Width - frame
		if inner < 1 {
			inner = 1
		}
		scene = scene.Width(props.Width - scene.GetHorizontalMargins())
		body = r.styles.SceneBody.Width(inner).Render(body)
	} else {
		body = r.styles.SceneBody.Render(body)
	}

	return scene.Render(lipgloss.JoinVertical(lipgloss.Left,
		r.styles.SceneTitle.Render(title),
		body,
	))
}
