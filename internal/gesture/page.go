package gesture

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"
)

// PageEvents receives the event stream of a PageWidget
type PageEvents interface {
	// OnPageScroll reports the page left of the viewport and how far (0..1)
	// the viewport has moved towards the next one
	OnPageScroll(position int, offset float64)
	OnPageScrollStateChanged(state ScrollState)
	OnPageSelected(position int)
}

// PageWidget is a view pager that moves in whole pages. Its position is
// kept in page units so it works before the page width is known.
type PageWidget struct {
	id     uint64
	keys   KeyMap
	events PageEvents

	width int
	count int

	pos      float64
	selected int
	state    ScrollState

	scrollEnabled bool
	pressed       bool
	originX       int
	originPos     float64

	anim *tween
	seq  int
}

// NewPageWidget creates a pager showing initialPage
func NewPageWidget(initialPage int) *PageWidget {
	return &PageWidget{
		id:            nextWidgetID(),
		keys:          DefaultKeyMap(),
		pos:           float64(initialPage),
		selected:      initialPage,
		scrollEnabled: true,
	}
}

// SetEvents sets the receiver of page events
func (w *PageWidget) SetEvents(events PageEvents) {
	w.events = events
}

// SetKeyMap replaces the swipe keys
func (w *PageWidget) SetKeyMap(keys KeyMap) {
	w.keys = keys
}

// SetScrollEnabled toggles user gestures. Programmatic page changes
// always work.
func (w *PageWidget) SetScrollEnabled(enabled bool) {
	w.scrollEnabled = enabled
}

// Resize updates the page width and the number of pages
func (w *PageWidget) Resize(width, count int) {
	w.width = width
	w.count = count
}

// Page returns the selected page
func (w *PageWidget) Page() int { return w.selected }

// Position returns the continuous position in page units
func (w *PageWidget) Position() float64 { return w.pos }

// State returns the gesture state
func (w *PageWidget) State() ScrollState { return w.state }

// SetPage animates to page
func (w *PageWidget) SetPage(page int) tea.Cmd {
	w.pressed = false
	return w.settle(page)
}

// SetPageWithoutAnimation jumps to page immediately
func (w *PageWidget) SetPageWithoutAnimation(page int) {
	w.cancelAnim()
	w.pressed = false
	w.pos = float64(page)
	w.emitScroll()
	w.selectPage(page)
	w.setState(StateIdle)
}

// Update handles input and animation frames
func (w *PageWidget) Update(msg tea.Msg) tea.Cmd {
	if f, ok := msg.(frameMsg); ok {
		return w.handleFrame(f)
	}

	in := classify(msg, w.keys)
	if in.kind == inputNone || !w.scrollEnabled {
		return nil
	}

	switch in.kind {
	case inputPress:
		if w.width <= 0 || w.count < 2 {
			return nil
		}
		w.cancelAnim()
		w.pressed = true
		w.originX = in.x
		w.originPos = w.pos
		w.setState(StateDragging)
	case inputMotion:
		if !w.pressed {
			return nil
		}
		delta := float64(in.x-w.originX) / float64(w.width)
		w.pos = clamp(w.originPos-delta, 0, w.maxPos())
		w.emitScroll()
	case inputRelease:
		if !w.pressed {
			return nil
		}
		w.pressed = false
		return w.settle(int(math.Round(w.pos)))
	case inputStepPrev, inputStepNext:
		if w.count < 2 || w.pressed {
			return nil
		}
		target := w.selected + 1
		if in.kind == inputStepPrev {
			target = w.selected - 1
		}
		target = int(clamp(float64(target), 0, w.maxPos()))
		if target == w.selected && w.anim == nil {
			return nil
		}
		w.setState(StateDragging)
		return w.settle(target)
	}
	return nil
}

// View renders the pages visible at the current position
func (w *PageWidget) View(pages []string, height int) string {
	return Strip(pages, w.width, height, int(math.Round(w.pos*float64(w.width))))
}

func (w *PageWidget) maxPos() float64 {
	if w.count < 1 {
		return 0
	}
	return float64(w.count - 1)
}

func (w *PageWidget) settle(page int) tea.Cmd {
	w.cancelAnim()
	w.setState(StateSettling)
	w.selectPage(page)
	if w.pos == float64(page) {
		w.emitScroll()
		w.setState(StateIdle)
		return nil
	}
	w.anim = newTween(w.pos, float64(page))
	return frame(w.id, w.seq)
}

func (w *PageWidget) handleFrame(f frameMsg) tea.Cmd {
	if f.id != w.id || f.seq != w.seq || w.anim == nil {
		return nil
	}
	v, done := w.anim.step()
	w.pos = v
	w.emitScroll()
	if done {
		w.anim = nil
		w.setState(StateIdle)
		return nil
	}
	return frame(w.id, w.seq)
}

func (w *PageWidget) cancelAnim() {
	w.anim = nil
	w.seq++
}

func (w *PageWidget) emitScroll() {
	if w.events == nil {
		return
	}
	page := math.Floor(w.pos)
	w.events.OnPageScroll(int(page), w.pos-page)
}

func (w *PageWidget) selectPage(page int) {
	if page == w.selected {
		return
	}
	w.selected = page
	if w.events != nil {
		w.events.OnPageSelected(page)
	}
}

func (w *PageWidget) setState(state ScrollState) {
	if state == w.state {
		return
	}
	w.state = state
	if w.events != nil {
		w.events.OnPageScrollStateChanged(state)
	}
}
