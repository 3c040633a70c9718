// Package tabview implements a horizontally paged tab view whose active page
// follows an externally owned navigation index.
//
// The view never changes the index itself. Gestures end in a request
// (Options.OnRequestChangeTab); the owner validates it and hands a new
// NavigationState back through View.SetNavigationState, after which the
// pager reconciles its page.
//
// Live gesture progress is written to Value cells outside the Update cycle
// and turned into a continuous position by the active Pager's normalizer.
package tabview

import (
	"swipetabs/internal/domain"
)

// PagerProps is the contract handed from the Transitioner to the Pager
type PagerProps struct {
	Layout          domain.Layout
	NavigationState domain.NavigationState
	Progress        *Value
	Offset          *Value

	// JumpToIndex asks for a tab change. It reports whether the request was
	// forwarded to the owner; false means it was dropped.
	JumpToIndex func(index int) bool

	SwipeEnabled     bool
	AnimationEnabled bool
}

// SlotCount is the number of pages laid out for these props: one per route
// once the width is known, a single full-width page before that.
func (p PagerProps) SlotCount() int {
	if p.Layout.Known() {
		return len(p.NavigationState.Routes)
	}
	return 1
}

// SceneRendererProps is what header, footer and scene renderers receive
type SceneRendererProps struct {
	PagerProps
	Position float64
}

// SceneProps describes one scene to render
type SceneProps struct {
	SceneRendererProps
	Route   domain.Route
	Index   int
	Focused bool
	Width   int
	Height  int
}
