package tabview

import (
	"context"
	"log"

	"swipetabs/internal/domain"
)

// TransitionerConfig wires a Transitioner to its owner
type TransitionerConfig struct {
	NavigationState    domain.NavigationState
	OnRequestChangeTab func(index int)
	OnChangePosition   func(position float64)
	CanJumpToTab       func(route domain.Route) bool
	InitialLayout      domain.Layout
	Normalize          func(props PagerProps) float64
	SwipeEnabled       bool
	AnimationEnabled   bool
}

// Transitioner owns the layout and the Progress/Offset values, builds the
// props handed to the pager and validates every jump request before it
// reaches the owner.
type Transitioner struct {
	ctx    context.Context
	cancel context.CancelFunc
	cfg    TransitionerConfig

	nav      domain.NavigationState
	layout   domain.Layout
	progress *Value
	offset   *Value

	swipeEnabled     bool
	animationEnabled bool

	unlisten []func()
}

// NewTransitioner creates a transitioner whose lifetime ends when ctx is
// cancelled or Close is called
func NewTransitioner(ctx context.Context, cfg TransitionerConfig) *Transitioner {
	ctx, cancel := context.WithCancel(ctx)
	t := &Transitioner{
		ctx:    ctx,
		cancel: cancel,
		cfg:    cfg,
		nav:    cfg.NavigationState,
		layout: domain.Layout{
			Width:  cfg.InitialLayout.Width,
			Height: cfg.InitialLayout.Height,
		},
		progress:         NewValue(0),
		offset:           NewValue(float64(cfg.NavigationState.Index)),
		swipeEnabled:     cfg.SwipeEnabled,
		animationEnabled: cfg.AnimationEnabled,
	}

	notify := func(float64) { t.handleChangePosition() }
	t.unlisten = []func(){
		t.progress.AddListener(notify),
		t.offset.AddListener(notify),
	}
	return t
}

// HandleLayout records a measured size. It reports whether the layout
// changed; an unchanged size only flips Measured the first time.
func (t *Transitioner) HandleLayout(width, height int) bool {
	if t.layout.Measured && t.layout.SameSize(width, height) {
		return false
	}
	t.layout = domain.Layout{Width: width, Height: height, Measured: true}
	return true
}

// JumpToIndex forwards a validated tab change request to the owner.
// Requests after Close, for an index outside the routes, or refused by
// CanJumpToTab are dropped without any signal to the owner.
func (t *Transitioner) JumpToIndex(index int) bool {
	if t.ctx.Err() != nil {
		return false
	}
	if !t.nav.InRange(index) {
		log.Printf("tabview: ignoring jump to %d, %d routes", index, len(t.nav.Routes))
		return false
	}
	if t.cfg.CanJumpToTab != nil && !t.cfg.CanJumpToTab(t.nav.Routes[index]) {
		return false
	}
	t.cfg.OnRequestChangeTab(index)
	return true
}

// SetNavigationState replaces the externally owned state
func (t *Transitioner) SetNavigationState(nav domain.NavigationState) {
	t.nav = nav
}

// SetSwipeEnabled is forwarded to the pager through props
func (t *Transitioner) SetSwipeEnabled(enabled bool) {
	t.swipeEnabled = enabled
}

// SetAnimationEnabled is forwarded to the pager through props
func (t *Transitioner) SetAnimationEnabled(enabled bool) {
	t.animationEnabled = enabled
}

// PagerProps builds the contract consumed by the pager
func (t *Transitioner) PagerProps() PagerProps {
	return PagerProps{
		Layout:           t.layout,
		NavigationState:  t.nav,
		Progress:         t.progress,
		Offset:           t.offset,
		JumpToIndex:      t.JumpToIndex,
		SwipeEnabled:     t.swipeEnabled,
		AnimationEnabled: t.animationEnabled,
	}
}

// Position recomputes the normalized position from the live values
func (t *Transitioner) Position() float64 {
	if t.cfg.Normalize == nil {
		return float64(t.nav.Index)
	}
	return t.cfg.Normalize(t.PagerProps())
}

// Layout returns the current layout
func (t *Transitioner) Layout() domain.Layout { return t.layout }

// NavigationState returns the last state received from the owner
func (t *Transitioner) NavigationState() domain.NavigationState { return t.nav }

// Progress returns the live progress value
func (t *Transitioner) Progress() *Value { return t.progress }

// Offset returns the live offset value
func (t *Transitioner) Offset() *Value { return t.offset }

// Done is closed once the transitioner is torn down
func (t *Transitioner) Done() <-chan struct{} { return t.ctx.Done() }

// Close tears the transitioner down. Late callbacks from the pager become
// no-ops.
func (t *Transitioner) Close() {
	t.cancel()
	for _, fn := range t.unlisten {
		fn()
	}
	t.unlisten = nil
}

func (t *Transitioner) handleChangePosition() {
	if t.ctx.Err() != nil || t.cfg.OnChangePosition == nil {
		return
	}
	t.cfg.OnChangePosition(t.Position())
}
