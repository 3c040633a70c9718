package tabview

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"swipetabs/internal/domain"
)

// View composes the Transitioner, the Pager and scene rendering. It keeps
// track of which scenes have been visited for lazy mounting.
type View struct {
	opts         Options
	transitioner *Transitioner
	pager        Pager
	loaded       *LoadedSet
	mounted      bool
}

// New validates opts and builds a view. Configuration errors are returned
// here rather than surfacing as a broken render later.
func New(ctx context.Context, opts Options) (*View, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("tabview: %w", err)
	}

	pager := opts.Pager
	if pager == nil {
		var err error
		pager, err = SelectPager(DetectCapability(), nil)
		if err != nil {
			return nil, fmt.Errorf("tabview: %w", err)
		}
	}

	v := &View{
		opts:   opts,
		pager:  pager,
		loaded: NewLoadedSet(opts.NavigationState.Index),
	}

	var initial domain.Layout
	if opts.InitialLayout != nil {
		initial = *opts.InitialLayout
	}
	v.transitioner = NewTransitioner(ctx, TransitionerConfig{
		NavigationState:    opts.NavigationState,
		OnRequestChangeTab: opts.OnRequestChangeTab,
		OnChangePosition:   v.handleChangePosition,
		CanJumpToTab:       opts.CanJumpToTab,
		InitialLayout:      initial,
		Normalize:          pager.Normalize,
		SwipeEnabled:       opts.SwipeEnabled,
		AnimationEnabled:   opts.AnimationEnabled,
	})
	return v, nil
}

// Init mounts the pager
func (v *View) Init() tea.Cmd {
	if v.mounted {
		return nil
	}
	v.mounted = true
	return v.pager.Mount(v.transitioner.PagerProps())
}

// Update forwards input and animation messages to the pager
func (v *View) Update(msg tea.Msg) tea.Cmd {
	if !v.mounted || v.Closed() {
		return nil
	}
	return v.pager.HandleMsg(msg)
}

// SetSize reports the measured size of the view
func (v *View) SetSize(width, height int) tea.Cmd {
	if !v.transitioner.HandleLayout(width, height) {
		return nil
	}
	return v.updatePager()
}

// SetNavigationState hands the owner's new state to the view. Invalid
// states are rejected and the previous one is kept.
func (v *View) SetNavigationState(nav domain.NavigationState) (tea.Cmd, error) {
	if err := nav.Validate(); err != nil {
		return nil, fmt.Errorf("tabview: rejected navigation state: %w", err)
	}
	v.transitioner.SetNavigationState(nav)
	if v.opts.Lazy {
		v.markLoaded(nav.Index)
	}
	return v.updatePager(), nil
}

// SetSwipeEnabled toggles user gestures on the pager
func (v *View) SetSwipeEnabled(enabled bool) tea.Cmd {
	v.transitioner.SetSwipeEnabled(enabled)
	return v.updatePager()
}

// SetAnimationEnabled toggles animated programmatic page changes
func (v *View) SetAnimationEnabled(enabled bool) tea.Cmd {
	v.transitioner.SetAnimationEnabled(enabled)
	return v.updatePager()
}

// JumpToIndex requests a tab change through the same validation as a
// settled gesture
func (v *View) JumpToIndex(index int) bool {
	return v.transitioner.JumpToIndex(index)
}

// Close unmounts the view. Late pager callbacks become no-ops.
func (v *View) Close() {
	v.transitioner.Close()
}

// Closed reports whether Close was called or the parent context ended
func (v *View) Closed() bool {
	select {
	case <-v.transitioner.Done():
		return true
	default:
		return false
	}
}

// Position returns the current normalized position
func (v *View) Position() float64 { return v.transitioner.Position() }

// Layout returns the current layout
func (v *View) Layout() domain.Layout { return v.transitioner.Layout() }

// NavigationState returns the last state received from the owner
func (v *View) NavigationState() domain.NavigationState {
	return v.transitioner.NavigationState()
}

// Loaded returns the visited scene indices in ascending order
func (v *View) Loaded() []int { return v.loaded.Indices() }

// Pager returns the active pager
func (v *View) Pager() Pager { return v.pager }

// View renders header, pager and footer
func (v *View) View() string {
	props := v.transitioner.PagerProps()
	shared := SceneRendererProps{
		PagerProps: props,
		Position:   v.pager.Normalize(props),
	}

	var header, footer string
	if v.opts.RenderHeader != nil {
		header = v.opts.RenderHeader(shared)
	}
	if v.opts.RenderFooter != nil {
		footer = v.opts.RenderFooter(shared)
	}

	height := props.Layout.Height
	if header != "" {
		height -= lipgloss.Height(header)
	}
	if footer != "" {
		height -= lipgloss.Height(footer)
	}
	if height < 0 {
		height = 0
	}

	body := v.pager.View(props, v.renderPages(shared, height), height)

	parts := make([]string, 0, 3)
	for _, part := range []string{header, body, footer} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderPages lays every route out in a fixed-width slot once the width is
// known. Before that only the focused scene is rendered, unsized.
func (v *View) renderPages(shared SceneRendererProps, height int) []string {
	nav := shared.NavigationState
	layout := shared.Layout

	if !layout.Known() {
		return []string{v.renderScene(SceneProps{
			SceneRendererProps: shared,
			Route:              nav.CurrentRoute(),
			Index:              nav.Index,
			Focused:            true,
			Height:             height,
		})}
	}

	slot := lipgloss.NewStyle().Width(layout.Width).MaxWidth(layout.Width)
	if height > 0 {
		slot = slot.Height(height).MaxHeight(height)
	}

	pages := make([]string, len(nav.Routes))
	for i, route := range nav.Routes {
		pages[i] = slot.Render(v.renderScene(SceneProps{
			SceneRendererProps: shared,
			Route:              route,
			Index:              i,
			Focused:            i == nav.Index,
			Width:              layout.Width,
			Height:             height,
		}))
	}
	return pages
}

// renderScene draws an empty placeholder for scenes not loaded yet
func (v *View) renderScene(props SceneProps) string {
	if v.opts.Lazy && !v.loaded.Contains(props.Index) {
		return ""
	}
	return v.opts.RenderScene(props)
}

func (v *View) updatePager() tea.Cmd {
	if !v.mounted || v.Closed() {
		return nil
	}
	return v.pager.Update(v.transitioner.PagerProps())
}

func (v *View) handleChangePosition(position float64) {
	if v.opts.OnChangePosition != nil {
		v.opts.OnChangePosition(position)
	}
	if !v.opts.Lazy {
		return
	}
	nav := v.transitioner.NavigationState()
	next := LoadCandidate(position, nav.Index)
	if !nav.InRange(next) {
		return
	}
	v.markLoaded(next)
}

func (v *View) markLoaded(index int) {
	if v.loaded.Add(index) && v.opts.OnLoad != nil {
		v.opts.OnLoad(index)
	}
}
