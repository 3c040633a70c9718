package tabview

import (
	"log"
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"swipetabs/internal/gesture"
)

// ScrollWidget is the primitive driven by ScrollPager
type ScrollWidget interface {
	SetEvents(events gesture.ScrollEvents)
	Resize(width, count int)
	SetScrollEnabled(enabled bool)
	ScrollTo(x float64, animated bool) tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(pages []string, height int) string
}

type scrollSyncMsg struct {
	pager *ScrollPager
}

// ScrollPager drives a horizontally scrolling strip with paging. Progress
// holds the scroll offset in cells; position = progress / width.
type ScrollPager struct {
	widget  ScrollWidget
	props   PagerProps
	mounted bool

	slots     int
	lastIndex int
	// page the strip rests on after the last gesture
	settled  int
	dragging bool

	pending pendingCmds
}

// NewScrollPager wraps widget; nil creates a terminal ScrollWidget
func NewScrollPager(widget ScrollWidget) *ScrollPager {
	if widget == nil {
		widget = gesture.NewScrollWidget()
	}
	p := &ScrollPager{widget: widget}
	widget.SetEvents(p)
	return p
}

// Normalize implements Pager
func (p *ScrollPager) Normalize(props PagerProps) float64 {
	return NormalizeScroll(props.Progress.Get(), props.Layout.Width, props.NavigationState.Index)
}

// Mount implements Pager
func (p *ScrollPager) Mount(props PagerProps) tea.Cmd {
	p.props = props
	p.mounted = true
	p.slots = props.SlotCount()
	p.lastIndex = props.NavigationState.Index
	p.settled = p.lastIndex
	p.widget.Resize(props.Layout.Width, p.slots)
	p.widget.SetScrollEnabled(props.SwipeEnabled)
	return p.pending.flush(p.widget.ScrollTo(p.target(), false))
}

// Update implements Pager
func (p *ScrollPager) Update(props PagerProps) tea.Cmd {
	if !p.mounted {
		return nil
	}
	prev := p.props
	p.props = props
	p.widget.SetScrollEnabled(props.SwipeEnabled)

	index := props.NavigationState.Index
	var cmd tea.Cmd
	if slots := props.SlotCount(); prev.Layout != props.Layout || slots != p.slots {
		p.slots = slots
		p.widget.Resize(props.Layout.Width, slots)
		cmd = func() tea.Msg { return scrollSyncMsg{pager: p} }
	} else if !p.dragging && (index != p.lastIndex || index != p.settled) {
		cmd = p.widget.ScrollTo(p.target(), props.AnimationEnabled)
	}
	p.lastIndex = index
	if !p.dragging {
		p.settled = index
	}
	return p.pending.flush(cmd)
}

// HandleMsg implements Pager
func (p *ScrollPager) HandleMsg(msg tea.Msg) tea.Cmd {
	if !p.mounted {
		return nil
	}
	if sync, ok := msg.(scrollSyncMsg); ok {
		if sync.pager != p || p.dragging {
			return nil
		}
		return p.pending.flush(p.widget.ScrollTo(p.target(), false))
	}
	return p.pending.flush(p.widget.Update(msg))
}

// View implements Pager
func (p *ScrollPager) View(props PagerProps, pages []string, height int) string {
	return p.widget.View(pages, height)
}

// Dragging reports whether a gesture is in flight
func (p *ScrollPager) Dragging() bool { return p.dragging }

func (p *ScrollPager) target() float64 {
	return float64(p.props.NavigationState.Index * p.props.Layout.Width)
}

// OnScroll implements gesture.ScrollEvents
func (p *ScrollPager) OnScroll(x float64) {
	p.props.Progress.Set(x)
}

// OnScrollBeginDrag implements gesture.ScrollEvents
func (p *ScrollPager) OnScrollBeginDrag() {
	p.dragging = true
}

// OnMomentumScrollEnd implements gesture.ScrollEvents
func (p *ScrollPager) OnMomentumScrollEnd(x float64) {
	p.dragging = false
	width := p.props.Layout.Width
	if width <= 0 {
		return
	}

	next := int(math.Round(x / float64(width)))
	p.props.Offset.Store(float64(next))

	index := p.props.NavigationState.Index
	if next == index {
		return
	}
	if p.props.JumpToIndex != nil && p.props.JumpToIndex(next) {
		// the owner may still refuse by echoing the old index
		p.settled = next
		return
	}
	log.Printf("tabview: jump to %d dropped, scrolling back to %d", next, index)
	p.pending.add(p.widget.ScrollTo(p.target(), true))
}
