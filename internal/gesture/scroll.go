package gesture

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"
)

// ScrollEvents receives the event stream of a ScrollWidget
type ScrollEvents interface {
	OnScroll(x float64)
	OnScrollBeginDrag()
	OnMomentumScrollEnd(x float64)
}

// ScrollWidget is a horizontally scrolling strip with paging enabled.
// Offsets are in cells.
type ScrollWidget struct {
	id     uint64
	keys   KeyMap
	events ScrollEvents

	width int
	count int
	x     float64

	scrollEnabled bool
	pressed       bool
	originX       int
	originOffset  float64

	anim     *tween
	momentum bool
	seq      int
}

// NewScrollWidget creates a scroll strip at offset 0
func NewScrollWidget() *ScrollWidget {
	return &ScrollWidget{
		id:            nextWidgetID(),
		keys:          DefaultKeyMap(),
		scrollEnabled: true,
	}
}

// SetEvents sets the receiver of scroll events
func (w *ScrollWidget) SetEvents(events ScrollEvents) {
	w.events = events
}

// SetKeyMap replaces the swipe keys
func (w *ScrollWidget) SetKeyMap(keys KeyMap) {
	w.keys = keys
}

// SetScrollEnabled toggles user gestures
func (w *ScrollWidget) SetScrollEnabled(enabled bool) {
	w.scrollEnabled = enabled
}

// Resize updates the page width and the number of pages
func (w *ScrollWidget) Resize(width, count int) {
	w.width = width
	w.count = count
}

// Offset returns the current scroll offset in cells
func (w *ScrollWidget) Offset() float64 { return w.x }

// Dragging reports whether the user is holding the strip
func (w *ScrollWidget) Dragging() bool { return w.pressed }

// ScrollTo moves the strip programmatically. It never reports a momentum end.
func (w *ScrollWidget) ScrollTo(x float64, animated bool) tea.Cmd {
	w.cancelAnim()
	w.pressed = false
	x = clamp(x, 0, w.maxOffset())
	if !animated || x == w.x {
		w.x = x
		w.emitScroll()
		return nil
	}
	w.anim = newTween(w.x, x)
	return frame(w.id, w.seq)
}

// Update handles input and animation frames
func (w *ScrollWidget) Update(msg tea.Msg) tea.Cmd {
	if f, ok := msg.(frameMsg); ok {
		return w.handleFrame(f)
	}

	in := classify(msg, w.keys)
	if in.kind == inputNone || !w.scrollEnabled || w.width <= 0 || w.count < 2 {
		return nil
	}

	switch in.kind {
	case inputPress:
		w.cancelAnim()
		w.pressed = true
		w.originX = in.x
		w.originOffset = w.x
		w.beginDrag()
	case inputMotion:
		if !w.pressed {
			return nil
		}
		w.x = clamp(w.originOffset-float64(in.x-w.originX), 0, w.maxOffset())
		w.emitScroll()
	case inputRelease:
		if !w.pressed {
			return nil
		}
		w.pressed = false
		page := math.Round(w.x / float64(w.width))
		return w.glide(page * float64(w.width))
	case inputStepPrev, inputStepNext:
		if w.pressed {
			return nil
		}
		page := math.Round(w.x / float64(w.width))
		if w.anim != nil {
			page = math.Round(w.anim.to / float64(w.width))
		}
		if in.kind == inputStepPrev {
			page--
		} else {
			page++
		}
		target := clamp(page*float64(w.width), 0, w.maxOffset())
		w.beginDrag()
		return w.glide(target)
	}
	return nil
}

// View renders the visible window of the strip
func (w *ScrollWidget) View(pages []string, height int) string {
	return Strip(pages, w.width, height, int(math.Round(w.x)))
}

func (w *ScrollWidget) maxOffset() float64 {
	if w.count < 1 || w.width <= 0 {
		return 0
	}
	return float64((w.count - 1) * w.width)
}

// glide animates to a page boundary and reports the momentum end
func (w *ScrollWidget) glide(target float64) tea.Cmd {
	w.cancelAnim()
	if target == w.x {
		w.endMomentum()
		return nil
	}
	w.anim = newTween(w.x, target)
	w.momentum = true
	return frame(w.id, w.seq)
}

func (w *ScrollWidget) handleFrame(f frameMsg) tea.Cmd {
	if f.id != w.id || f.seq != w.seq || w.anim == nil {
		return nil
	}
	v, done := w.anim.step()
	w.x = v
	w.emitScroll()
	if !done {
		return frame(w.id, w.seq)
	}
	w.anim = nil
	if w.momentum {
		w.momentum = false
		w.endMomentum()
	}
	return nil
}

func (w *ScrollWidget) cancelAnim() {
	w.anim = nil
	w.momentum = false
	w.seq++
}

func (w *ScrollWidget) beginDrag() {
	if w.events != nil {
		w.events.OnScrollBeginDrag()
	}
}

func (w *ScrollWidget) emitScroll() {
	if w.events != nil {
		w.events.OnScroll(w.x)
	}
}

func (w *ScrollWidget) endMomentum() {
	if w.events != nil {
		w.events.OnMomentumScrollEnd(w.x)
	}
}
