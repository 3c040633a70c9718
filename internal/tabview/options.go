package tabview

import (
	"errors"
	"fmt"

	"swipetabs/internal/domain"
)

// Options configures a View
type Options struct {
	// NavigationState is the owner's current state. Required.
	NavigationState domain.NavigationState
	// OnRequestChangeTab is the only channel through which the view asks
	// for a new index. Required.
	OnRequestChangeTab func(index int)
	// OnChangePosition is called with every recomputed position
	OnChangePosition func(position float64)
	// OnLoad is called when a lazy scene is mounted for the first time
	OnLoad func(index int)

	// InitialLayout seeds the size before the first measurement
	InitialLayout *domain.Layout
	// CanJumpToTab gates jump requests
	CanJumpToTab func(route domain.Route) bool
	// Lazy defers rendering a scene until it has been visited
	Lazy bool

	// RenderScene draws one scene. Required.
	RenderScene  func(props SceneProps) string
	RenderHeader func(props SceneRendererProps) string
	RenderFooter func(props SceneRendererProps) string

	// Pager overrides the pager chosen by DetectCapability
	Pager Pager

	SwipeEnabled     bool
	AnimationEnabled bool
}

// NewOptions returns options with swipe and animation enabled
func NewOptions(nav domain.NavigationState, onRequestChangeTab func(int), renderScene func(SceneProps) string) Options {
	return Options{
		NavigationState:    nav,
		OnRequestChangeTab: onRequestChangeTab,
		RenderScene:        renderScene,
		SwipeEnabled:       true,
		AnimationEnabled:   true,
	}
}

var (
	ErrNoSceneRenderer = errors.New("RenderScene is required")
	ErrNoRequestFunc   = errors.New("OnRequestChangeTab is required")
)

func (o Options) validate() error {
	if o.RenderScene == nil {
		return ErrNoSceneRenderer
	}
	if o.OnRequestChangeTab == nil {
		return ErrNoRequestFunc
	}
	if err := o.NavigationState.Validate(); err != nil {
		return fmt.Errorf("invalid navigation state: %w", err)
	}
	if o.InitialLayout != nil && (o.InitialLayout.Width < 0 || o.InitialLayout.Height < 0) {
		return fmt.Errorf("invalid initial layout %dx%d", o.InitialLayout.Width, o.InitialLayout.Height)
	}
	return nil
}
