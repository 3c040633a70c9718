package tabview

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"swipetabs/internal/gesture"
)

// PageWidget is the primitive driven by PageEventPager
type PageWidget interface {
	SetEvents(events gesture.PageEvents)
	Resize(width, count int)
	SetScrollEnabled(enabled bool)
	SetPage(page int) tea.Cmd
	SetPageWithoutAnimation(page int)
	Position() float64
	Update(msg tea.Msg) tea.Cmd
	View(pages []string, height int) string
}

// pageSyncMsg re-seats the page one frame after a layout change
type pageSyncMsg struct {
	pager *PageEventPager
}

// PageEventPager drives a view pager that reports page index plus
// fraction. Position = progress + offset.
type PageEventPager struct {
	widget  PageWidget
	props   PagerProps
	mounted bool

	// currentIndex is the page the widget settled on or was sent to
	currentIndex int
	idle         bool
	slots        int

	pending pendingCmds
}

// NewPageEventPager wraps widget; nil creates a terminal PageWidget
func NewPageEventPager(widget PageWidget) *PageEventPager {
	if widget == nil {
		widget = gesture.NewPageWidget(0)
	}
	p := &PageEventPager{widget: widget, idle: true}
	widget.SetEvents(p)
	return p
}

// Normalize implements Pager
func (p *PageEventPager) Normalize(props PagerProps) float64 {
	return NormalizePageEvent(props.Progress.Get(), props.Offset.Get(), props.NavigationState.Index)
}

// Mount implements Pager
func (p *PageEventPager) Mount(props PagerProps) tea.Cmd {
	p.props = props
	p.mounted = true
	p.currentIndex = props.NavigationState.Index
	p.slots = props.SlotCount()
	p.widget.Resize(props.Layout.Width, p.slots)
	p.widget.SetScrollEnabled(props.SwipeEnabled)
	p.widget.SetPageWithoutAnimation(p.currentIndex)
	return p.pending.flush()
}

// Update implements Pager
func (p *PageEventPager) Update(props PagerProps) tea.Cmd {
	if !p.mounted {
		return nil
	}
	prev := p.props
	p.props = props
	p.widget.SetScrollEnabled(props.SwipeEnabled)

	var deferred tea.Cmd
	if slots := props.SlotCount(); prev.Layout != props.Layout || slots != p.slots {
		p.slots = slots
		p.widget.Resize(props.Layout.Width, slots)
		deferred = func() tea.Msg { return pageSyncMsg{pager: p} }
	}

	// A gesture in flight has priority over the external index
	if p.idle {
		p.pending.add(p.setPage(props.NavigationState.Index))
	}
	return p.pending.flush(deferred)
}

// HandleMsg implements Pager
func (p *PageEventPager) HandleMsg(msg tea.Msg) tea.Cmd {
	if !p.mounted {
		return nil
	}
	if sync, ok := msg.(pageSyncMsg); ok {
		if sync.pager != p {
			return nil
		}
		return p.pending.flush(p.resync())
	}
	return p.pending.flush(p.widget.Update(msg))
}

// View implements Pager
func (p *PageEventPager) View(props PagerProps, pages []string, height int) string {
	return p.widget.View(pages, height)
}

// CurrentIndex returns the page the pager tracks as settled
func (p *PageEventPager) CurrentIndex() int { return p.currentIndex }

// Idle reports whether no gesture is in flight
func (p *PageEventPager) Idle() bool { return p.idle }

func (p *PageEventPager) setPage(index int) tea.Cmd {
	if p.currentIndex == index {
		return nil
	}
	p.currentIndex = index
	if p.props.AnimationEnabled {
		return p.widget.SetPage(index)
	}
	p.widget.SetPageWithoutAnimation(index)
	return nil
}

// resync runs one frame after a layout change
func (p *PageEventPager) resync() tea.Cmd {
	if !p.idle {
		return nil
	}
	index := p.props.NavigationState.Index
	if p.currentIndex != index {
		return p.setPage(index)
	}
	if p.widget.Position() != float64(index) {
		p.widget.SetPageWithoutAnimation(index)
	}
	return nil
}

// OnPageScroll implements gesture.PageEvents. It writes straight into the
// values without touching the update cycle.
func (p *PageEventPager) OnPageScroll(position int, offset float64) {
	p.props.Progress.Store(offset)
	p.props.Offset.Set(float64(position))
}

// OnPageSelected implements gesture.PageEvents
func (p *PageEventPager) OnPageSelected(position int) {
	p.currentIndex = position
}

// OnPageScrollStateChanged implements gesture.PageEvents
func (p *PageEventPager) OnPageScrollStateChanged(state gesture.ScrollState) {
	if state != gesture.StateIdle {
		p.idle = false
		return
	}
	p.idle = true

	index := p.props.NavigationState.Index
	if p.currentIndex == index {
		return
	}
	if p.props.JumpToIndex != nil && p.props.JumpToIndex(p.currentIndex) {
		return
	}
	log.Printf("tabview: jump to %d dropped, returning to %d", p.currentIndex, index)
	p.pending.add(p.setPage(index))
}
